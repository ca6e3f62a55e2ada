package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

// Validator checks an already converted value. Validate returns the value
// unchanged on success. Nil values always pass.
type Validator interface {
	Validate(value any, label string) (any, error)
	Hints(f convert.Formatter) []message.Message
}

// ValidationError represents a single validation failure.
type ValidationError struct {
	Kind    error           `json:"-"`
	Bound   error           `json:"-"` // ErrAboveMaximum or ErrBelowMinimum for bound violations
	Code    string          `json:"code"`
	Field   string          `json:"field"`
	Value   any             `json:"value"`
	Message message.Message `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Kind)
}

func (e ValidationError) Unwrap() []error {
	if e.Bound == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Bound}
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, len(ve))
	for i, err := range ve {
		errs[i] = err
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []message.Message {
	var messages []message.Message
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Run validates value with each validator in order and stops at the first
// failure.
func Run(value any, label string, validators ...Validator) (any, error) {
	for _, v := range validators {
		if _, err := v.Validate(value, label); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// Check pairs a labelled value with the validators it must satisfy.
type Check struct {
	Label      string
	Value      any
	Validators []Validator
}

// Apply runs every check and aggregates the first failure of each field.
// Errors that are not validation failures are returned immediately.
func Apply(checks ...Check) error {
	var errs ValidationErrors

	for _, c := range checks {
		_, err := Run(c.Value, c.Label, c.Validators...)
		if err == nil {
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		errs.Add(*ve)
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error. A single
// *ValidationError is returned as a one element collection.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{*single}
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

// boundError is newError for a crossed bound.
func boundError(kind error, tooLow bool, class, code, label string, value any, args ...any) *ValidationError {
	err := newError(kind, class, code, label, value, args...)
	err.Bound = ErrAboveMaximum
	if tooLow {
		err.Bound = ErrBelowMinimum
	}
	return err
}

func newError(kind error, class, code, label string, value any, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Code:    code,
		Field:   label,
		Value:   value,
		Message: message.New(message.ValidatorKey(class, code), args...),
	}
}
