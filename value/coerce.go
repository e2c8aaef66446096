package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/sqlvalue/internal/logger"
	"github.com/goccy/sqlvalue/types"
	"go.uber.org/zap"
)

// epsilon is the tolerance used for float truthiness and float comparison.
const epsilon = 1e-6

// The Get accessors are lenient coercions for the executor, not validating
// parsers: text that does not start with a number reads as zero.

func (v *Value) GetInt() int32 {
	switch v.kind {
	case types.Integer, types.Date:
		return int32(v.bits)
	case types.Float:
		return int32(math.Float32frombits(v.bits))
	case types.Boolean:
		if v.bits != 0 {
			return 1
		}
		return 0
	case types.Text:
		s := string(v.textBytes())
		n, err := leadingInt(s)
		if err != nil {
			logger.Default().Debug("failed to convert string to number", zap.String("s", s), zap.Error(err))
			return 0
		}
		return int32(n)
	}
	logger.Default().Warn("unknown data type", zap.Stringer("type", v.kind))
	return 0
}

func (v *Value) GetFloat() float32 {
	switch v.kind {
	case types.Float:
		return math.Float32frombits(v.bits)
	case types.Integer, types.Date:
		return float32(int32(v.bits))
	case types.Boolean:
		if v.bits != 0 {
			return 1
		}
		return 0
	case types.Text:
		s := string(v.textBytes())
		f, err := leadingFloat(s)
		if err != nil {
			logger.Default().Debug("failed to convert string to float", zap.String("s", s), zap.Error(err))
			return 0
		}
		return float32(f)
	}
	logger.Default().Warn("unknown data type", zap.Stringer("type", v.kind))
	return 0
}

func (v *Value) GetBoolean() bool {
	switch v.kind {
	case types.Boolean, types.Integer, types.Date:
		return v.bits != 0
	case types.Float:
		f := math.Float32frombits(v.bits)
		return f >= epsilon || f <= -epsilon
	case types.Text:
		// any present buffer is true, even one that spells zero
		return v.text != nil
	}
	logger.Default().Warn("unknown data type", zap.Stringer("type", v.kind))
	return false
}

func (v *Value) GetString() string {
	return v.ToString()
}

// GetDate returns the date code of a Date value and 0 for any other kind.
func (v *Value) GetDate() int32 {
	if v.kind != types.Date {
		logger.Default().Warn("unsupported get date from type", zap.Stringer("type", v.kind))
		return 0
	}
	return int32(v.bits)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// leadingInt parses the longest integer prefix of s after leading spaces.
func leadingInt(s string) (int64, error) {
	s = skipSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0, fmt.Errorf("no digits in %q", s)
	}
	return strconv.ParseInt(s[:i], 10, 64)
}

// leadingFloat parses the longest decimal float prefix of s after leading
// spaces, including inf and nan spellings.
func leadingFloat(s string) (float64, error) {
	s = skipSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	rest := strings.ToLower(s[i:])
	for _, special := range []string{"infinity", "inf", "nan"} {
		if strings.HasPrefix(rest, special) {
			return strconv.ParseFloat(s[:i+len(special)], 64)
		}
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("no digits in %q", s)
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return strconv.ParseFloat(s[:i], 32)
}
