package value

import (
	"bytes"

	"github.com/goccy/sqlvalue/types"
)

type TextType struct {
	baseType
}

// Compare orders text by its bytes; a shorter prefix sorts first.
func (t TextType) Compare(left, right *Value) int {
	t.mustMatch(left, right)
	return bytes.Compare(left.textBytes(), right.textBytes())
}

func (t TextType) ToString(v *Value) (string, error) {
	return string(v.textBytes()), nil
}

// Parse never fails: the input is stored verbatim.
func (t TextType) Parse(s string) (*Value, error) {
	return NewString(s), nil
}

func (t TextType) Cast(v *Value, to types.AttributeKind) (*Value, error) {
	return castDefault(t, v, to)
}
