package value

import (
	"strconv"
	"strings"

	"github.com/goccy/sqlvalue/internal/logger"
	"github.com/goccy/sqlvalue/types"
	"go.uber.org/zap"
)

// IntegerType is the DataType of 32-bit signed integers.
// Arithmetic belongs to the numeric promotion layer and is unsupported here.
type IntegerType struct {
	baseType
}

func (t IntegerType) Compare(left, right *Value) int {
	t.mustMatch(left, right)
	return compareInt32(int32(left.bits), int32(right.bits))
}

func (t IntegerType) ToString(v *Value) (string, error) {
	return strconv.FormatInt(int64(v.GetInt()), 10), nil
}

func (t IntegerType) Parse(s string) (*Value, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		logger.Default().Warn("failed to parse integer", zap.String("s", s), zap.Error(err))
		return nil, invalidArgumentf("failed to parse %q as integer", s)
	}
	return NewInt(int32(n)), nil
}

func (t IntegerType) Cast(v *Value, to types.AttributeKind) (*Value, error) {
	return castDefault(t, v, to)
}
