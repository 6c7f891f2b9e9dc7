package daterange

import (
	"errors"
	"fmt"
)

// ErrorKind represents the type of error that occurred.
type ErrorKind string

const (
	ErrorKindInvalidParameter ErrorKind = "invalid_parameter"
	ErrorKindRangeExceeded    ErrorKind = "range_exceeded"
	ErrorKindEmptyRange       ErrorKind = "empty_range"
)

// Sentinels for errors.Is. Every *Error unwraps to exactly one of them.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrRangeExceeded    = errors.New("offset exceeds range length")
	ErrEmptyRange       = errors.New("range has not been generated")
)

// Error describes a rejected call: which parameter was wrong, the value
// that was passed and what was expected instead.
type Error struct {
	Kind        ErrorKind
	Param       string
	Value       any
	Expected    string
	Description string
	Message     string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the sentinel matching e.Kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case ErrorKindInvalidParameter:
		return ErrInvalidParameter
	case ErrorKindRangeExceeded:
		return ErrRangeExceeded
	case ErrorKindEmptyRange:
		return ErrEmptyRange
	}
	return nil
}

// InvalidParameter creates an error for a value that violates a domain constraint.
func InvalidParameter(param string, value any, expected, description string) *Error {
	msg := fmt.Sprintf("invalid %s: got %v, expected %s", param, value, expected)
	if description != "" {
		msg += " (" + description + ")"
	}
	return &Error{
		Kind:        ErrorKindInvalidParameter,
		Param:       param,
		Value:       value,
		Expected:    expected,
		Description: description,
		Message:     msg,
	}
}

// RangeExceeded creates an error for negative offsets that would remove
// more dates than the sequence holds.
func RangeExceeded(param string, value any, length int, message string) *Error {
	return &Error{
		Kind:     ErrorKindRangeExceeded,
		Param:    param,
		Value:    value,
		Expected: fmt.Sprintf("at least one remaining date out of %d", length),
		Message:  message,
	}
}

// EmptyRange creates an error for an operation that needs a generated range.
func EmptyRange(operation string) *Error {
	return &Error{
		Kind:        ErrorKindEmptyRange,
		Param:       "range",
		Expected:    "a generated range",
		Description: operation,
		Message:     fmt.Sprintf("cannot %s an empty range: generate it with Days, Week, MonthExact or MonthExtended first", operation),
	}
}
