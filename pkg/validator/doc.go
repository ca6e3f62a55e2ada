// Package validator provides the validators that run after conversion: Range,
// Length, RegExp, DateTimeRange and DateRestriction.
//
// Every validator implements Validator. Validate returns the value unchanged
// or a *ValidationError carrying a message key such as
// org.apache.myfaces.trinidad.validator.LengthValidator.MAXIMUM and its
// positional arguments; it never renders user-facing text. Hints describes
// the constraint before submission and never fails.
//
// # Architecture
//
// Each source file holds one validator. Validators are immutable after
// construction and safe for concurrent use. Nil values pass every validator,
// so a blank field that converted to nil is not rejected here.
//
// Core building blocks:
//   - Validator         – Validate and Hints contract
//   - ValidationError   – a single failure with its kind, code and message
//   - ValidationErrors  – slice type that implements the error interface
//   - Check / Apply     – validate several labelled values and aggregate failures
//   - ParseList         – safe parser for list-valued configuration
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Check{Label: "Quantity", Value: qty, Validators: []validator.Validator{
//	        validator.NewRange(validator.Bound(1.0), validator.Bound(10.0)),
//	    }},
//	    validator.Check{Label: "Delivery", Value: day, Validators: []validator.Validator{
//	        validator.NewDateRestriction([]string{"sat", "sun"}, nil),
//	    }},
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // render verrs.Get("Quantity") with a translator
//	}
//
// # Error Handling
//
// ValidationError unwraps to ErrOutOfRange, ErrInvalidLength,
// ErrPatternMismatch or ErrRestricted, and bound violations also to
// ErrAboveMaximum or ErrBelowMinimum. Values of a type a validator cannot
// inspect yield ErrUnsupportedValue, which is not a validation failure.
package validator
