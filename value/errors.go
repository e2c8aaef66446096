package value

import (
	"errors"
	"fmt"
)

// Code classifies the outcome of a type-aware operation.
type Code string

const (
	Success         Code = "success"
	InvalidArgument Code = "invalidArgument"
	Unsupported     Code = "unsupported"
	Failure         Code = "failure"
)

// Error is returned by parse, cast and arithmetic operations.
// errors.Is matches any two Errors that share a Code.
type Error struct {
	Code    Code
	Message string
}

var (
	ErrInvalidArgument = &Error{Code: InvalidArgument, Message: "invalid argument"}
	ErrUnsupported     = &Error{Code: Unsupported, Message: "unsupported operation"}
	ErrFailure         = &Error{Code: Failure, Message: "internal failure"}
)

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func invalidArgumentf(format string, args ...interface{}) *Error {
	return &Error{Code: InvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func unsupportedf(format string, args ...interface{}) *Error {
	return &Error{Code: Unsupported, Message: fmt.Sprintf(format, args...)}
}

// CodeOf maps err to its Code. nil is Success and errors that carry no Code are Failure.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Failure
}
