// Package calendar implements the proleptic Gregorian calendar rules used by
// the DATE type. Dates are carried as an integer code year*10000+month*100+day.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinYear = 1000
	MaxYear = 9999

	dateLen      = len("2006-01-02")
	timestampLen = len("2006-01-02 15:04:05")
)

var (
	ErrInvalidFormat = errors.New("invalid date format")
	ErrInvalidDate   = errors.New("invalid date")
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the length of month in year, or -1 when month is out of range.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return -1
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

func IsValidDate(year, month, day int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

func Encode(year, month, day int) int32 {
	return int32(year*10000 + month*100 + day)
}

func Decode(code int32) (year, month, day int) {
	c := int(code)
	return c / 10000, (c / 100) % 100, c % 100
}

func IsValidCode(code int32) bool {
	return IsValidDate(Decode(code))
}

// Parse converts "YYYY-MM-DD" (or "YYYY-MM-DD HH:MM:SS", whose time part is
// dropped) into a date code.
func Parse(s string) (int32, error) {
	s = strings.TrimSpace(s)
	switch {
	case len(s) == dateLen:
	case len(s) == timestampLen && s[dateLen] == ' ':
		s = s[:dateLen]
	default:
		return 0, fmt.Errorf("%w: %q has unexpected length %d", ErrInvalidFormat, s, len(s))
	}
	for i := 0; i < dateLen; i++ {
		c := s[i]
		if i == 4 || i == 7 {
			if c != '-' {
				return 0, fmt.Errorf("%w: expected '-' at position %d in %q", ErrInvalidFormat, i, s)
			}
			continue
		}
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: unexpected character %q at position %d in %q", ErrInvalidFormat, c, i, s)
		}
	}
	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFormat, err)
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFormat, err)
	}
	day, err := strconv.Atoi(s[8:10])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFormat, err)
	}
	if !IsValidDate(year, month, day) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	return Encode(year, month, day), nil
}

func Format(code int32) string {
	year, month, day := Decode(code)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// AddDays shifts code by days, carrying whole months into month and year until
// the day of month is in range again. The loop runs once per month crossed.
func AddDays(code int32, days int) (int32, error) {
	year, month, day := Decode(code)
	if !IsValidDate(year, month, day) {
		return 0, fmt.Errorf("%w: code %d", ErrInvalidDate, code)
	}
	day += days
	for day > DaysInMonth(year, month) {
		day -= DaysInMonth(year, month)
		month++
		if month > 12 {
			month = 1
			year++
		}
		if year > MaxYear {
			return 0, fmt.Errorf("%w: %s %+d days is after year %d", ErrInvalidDate, Format(code), days, MaxYear)
		}
	}
	for day <= 0 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		if year < MinYear {
			return 0, fmt.Errorf("%w: %s %+d days is before year %d", ErrInvalidDate, Format(code), days, MinYear)
		}
		day += DaysInMonth(year, month)
	}
	return Encode(year, month, day), nil
}

// DayNumber returns the ordinal day of the date counted from 0001-01-01 (day 1).
func DayNumber(year, month, day int) int {
	y := year - 1
	n := y*365 + y/4 - y/100 + y/400
	for m := 1; m < month; m++ {
		n += DaysInMonth(year, m)
	}
	return n + day
}

// DaysBetween returns the elapsed days from b to a.
func DaysBetween(a, b int32) (int, error) {
	if !IsValidCode(a) {
		return 0, fmt.Errorf("%w: code %d", ErrInvalidDate, a)
	}
	if !IsValidCode(b) {
		return 0, fmt.Errorf("%w: code %d", ErrInvalidDate, b)
	}
	return DayNumber(Decode(a)) - DayNumber(Decode(b)), nil
}
