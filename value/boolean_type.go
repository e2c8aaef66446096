package value

import (
	"strings"

	"github.com/goccy/sqlvalue/internal/logger"
	"github.com/goccy/sqlvalue/types"
	"go.uber.org/zap"
)

type BooleanType struct {
	baseType
}

// Compare orders false before true.
func (t BooleanType) Compare(left, right *Value) int {
	t.mustMatch(left, right)
	l, r := left.GetBoolean(), right.GetBoolean()
	switch {
	case l == r:
		return 0
	case r:
		return -1
	}
	return 1
}

func (t BooleanType) ToString(v *Value) (string, error) {
	if v.GetBoolean() {
		return "true", nil
	}
	return "false", nil
}

func (t BooleanType) Parse(s string) (*Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "on", "1":
		return NewBoolean(true), nil
	case "false", "f", "no", "n", "off", "0":
		return NewBoolean(false), nil
	}
	logger.Default().Warn("failed to parse boolean", zap.String("s", s))
	return nil, invalidArgumentf("failed to parse %q as boolean", s)
}

func (t BooleanType) Cast(v *Value, to types.AttributeKind) (*Value, error) {
	return castDefault(t, v, to)
}
