package value

import (
	"fmt"

	"github.com/goccy/sqlvalue/types"
)

// DataType carries the behavior of one AttributeKind. Implementations are
// stateless and shared by every Value of that kind.
type DataType interface {
	Kind() types.AttributeKind

	// Compare returns -1, 0 or 1. Both operands must be of this kind;
	// anything else is a programming error and panics.
	Compare(left, right *Value) int
	ToString(v *Value) (string, error)
	Parse(s string) (*Value, error)
	Cast(v *Value, to types.AttributeKind) (*Value, error)

	Add(left, right *Value) (*Value, error)
	Sub(left, right *Value) (*Value, error)
	Mul(left, right *Value) (*Value, error)
	Div(left, right *Value) (*Value, error)
}

// baseType supplies the default behavior: every operation is unsupported.
type baseType struct {
	kind types.AttributeKind
}

func (t baseType) Kind() types.AttributeKind { return t.kind }

func (t baseType) Compare(left, right *Value) int {
	t.mustMatch(left, right)
	panic(fmt.Sprintf("compare is unsupported for %s", t.kind))
}

func (t baseType) ToString(v *Value) (string, error) {
	return "", unsupportedf("to string is unsupported for %s", t.kind)
}

func (t baseType) Parse(s string) (*Value, error) {
	return nil, unsupportedf("parse is unsupported for %s", t.kind)
}

func (t baseType) Cast(v *Value, to types.AttributeKind) (*Value, error) {
	return nil, unsupportedf("cast from %s to %s is unsupported", t.kind, to)
}

func (t baseType) Add(left, right *Value) (*Value, error) {
	return nil, unsupportedf("add operation is unsupported for %s and %s", left.kind, right.kind)
}

func (t baseType) Sub(left, right *Value) (*Value, error) {
	return nil, unsupportedf("sub operation is unsupported for %s and %s", left.kind, right.kind)
}

func (t baseType) Mul(left, right *Value) (*Value, error) {
	return nil, unsupportedf("mul operation is unsupported for %s and %s", left.kind, right.kind)
}

func (t baseType) Div(left, right *Value) (*Value, error) {
	return nil, unsupportedf("div operation is unsupported for %s and %s", left.kind, right.kind)
}

func (t baseType) mustMatch(left, right *Value) {
	if left.kind != t.kind || right.kind != t.kind {
		panic(fmt.Sprintf("invalid type: cannot compare %s with %s as %s", left.kind, right.kind, t.kind))
	}
}

// castDefault implements the casts shared by every kind: identity and text.
func castDefault(t DataType, v *Value, to types.AttributeKind) (*Value, error) {
	switch to {
	case t.Kind():
		return v.Clone(), nil
	case types.Text:
		s, err := t.ToString(v)
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	}
	return nil, unsupportedf("cast from %s to %s is unsupported", t.Kind(), to)
}

func compareInt32(l, r int32) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}
