package validator

import "errors"

// Failure kinds. A *ValidationError unwraps to one of them.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrOutOfRange is returned when a numeric or date value is outside the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidLength is returned when a string is shorter or longer than allowed.
	ErrInvalidLength = errors.New("invalid length")

	// ErrPatternMismatch is returned when a string does not fully match a regular expression.
	ErrPatternMismatch = errors.New("value does not match pattern")

	// ErrRestricted is returned when a date falls on a disallowed weekday or month.
	ErrRestricted = errors.New("date is restricted")
)

// Direction of a bound violation, carried next to ErrOutOfRange or
// ErrInvalidLength so that a combined NOT_IN_RANGE failure still tells which
// side was crossed.
var (
	ErrAboveMaximum = errors.New("above maximum")
	ErrBelowMinimum = errors.New("below minimum")
)

// Configuration and usage errors. These are not validation failures.
var (
	ErrUnsupportedValue = errors.New("unsupported value type")
	ErrInvalidPattern   = errors.New("invalid regular expression")
	ErrInvalidList      = errors.New("invalid list")
)
