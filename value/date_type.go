package value

import (
	"github.com/goccy/sqlvalue/internal/calendar"
	"github.com/goccy/sqlvalue/internal/logger"
	"github.com/goccy/sqlvalue/types"
	"go.uber.org/zap"
)

// DateType is the DataType of calendar dates stored as YYYYMMDD codes.
//
// Date arithmetic accepts a day count on either side of Add and on the right
// side of Sub. Subtracting two dates yields the difference of their codes,
// not the number of elapsed days; use DaysBetween for the latter.
type DateType struct {
	baseType
}

func (t DateType) Compare(left, right *Value) int {
	t.mustMatch(left, right)
	return compareInt32(int32(left.bits), int32(right.bits))
}

func (t DateType) ToString(v *Value) (string, error) {
	return calendar.Format(v.GetDate()), nil
}

func (t DateType) Parse(s string) (*Value, error) {
	code, err := t.StrToDate(s)
	if err != nil {
		return nil, err
	}
	return NewDate(code), nil
}

// StrToDate converts "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS" to a valid date code.
func (t DateType) StrToDate(s string) (int32, error) {
	code, err := calendar.Parse(s)
	if err != nil {
		logger.Default().Warn("failed to convert string to date", zap.String("s", s), zap.Error(err))
		return 0, invalidArgumentf("%s", err)
	}
	return code, nil
}

func (t DateType) Cast(v *Value, to types.AttributeKind) (*Value, error) {
	return castDefault(t, v, to)
}

func (t DateType) Add(left, right *Value) (*Value, error) {
	switch {
	case left.kind == types.Date && right.kind == types.Integer:
		return t.addDays(left.GetDate(), int(right.GetInt()))
	case left.kind == types.Integer && right.kind == types.Date:
		return t.addDays(right.GetDate(), int(left.GetInt()))
	}
	return t.baseType.Add(left, right)
}

func (t DateType) Sub(left, right *Value) (*Value, error) {
	switch {
	case left.kind == types.Date && right.kind == types.Date:
		return NewInt(left.GetDate() - right.GetDate()), nil
	case left.kind == types.Date && right.kind == types.Integer:
		return t.addDays(left.GetDate(), -int(right.GetInt()))
	}
	return t.baseType.Sub(left, right)
}

func (t DateType) addDays(code int32, days int) (*Value, error) {
	ret, err := calendar.AddDays(code, days)
	if err != nil {
		return nil, invalidArgumentf("%s", err)
	}
	return NewDate(ret), nil
}

// DaysBetween returns the number of days elapsed from right to left.
func (t DateType) DaysBetween(left, right *Value) (int, error) {
	if left.kind != types.Date || right.kind != types.Date {
		return 0, unsupportedf("days between is unsupported for %s and %s", left.kind, right.kind)
	}
	days, err := calendar.DaysBetween(left.GetDate(), right.GetDate())
	if err != nil {
		return 0, invalidArgumentf("%s", err)
	}
	return days, nil
}
