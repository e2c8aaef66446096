package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/sqlvalue/internal/logger"
	"github.com/goccy/sqlvalue/types"
	"go.uber.org/zap"
)

// floatPrecision is the number of fractional digits kept by FloatType.ToString.
const floatPrecision = 2

type FloatType struct {
	baseType
}

// Compare treats floats closer than epsilon as equal.
func (t FloatType) Compare(left, right *Value) int {
	t.mustMatch(left, right)
	d := math.Float32frombits(left.bits) - math.Float32frombits(right.bits)
	switch {
	case d >= epsilon:
		return 1
	case d <= -epsilon:
		return -1
	}
	return 0
}

// ToString renders a fixed number of fractional digits and trims the
// trailing zeros, so 1.50 becomes "1.5" and 2.00 becomes "2".
func (t FloatType) ToString(v *Value) (string, error) {
	s := strconv.FormatFloat(float64(v.GetFloat()), 'f', floatPrecision, 32)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s, nil
}

func (t FloatType) Parse(s string) (*Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		logger.Default().Warn("failed to parse float", zap.String("s", s), zap.Error(err))
		return nil, invalidArgumentf("failed to parse %q as float", s)
	}
	return NewFloat(float32(f)), nil
}

func (t FloatType) Cast(v *Value, to types.AttributeKind) (*Value, error) {
	return castDefault(t, v, to)
}
