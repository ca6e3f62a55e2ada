package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percussion/percussioncms-sub004/pkg/message"
	"github.com/percussion/percussioncms-sub004/pkg/validator"
)

func failure(field, key string) validator.ValidationError {
	return validator.ValidationError{
		Kind:    validator.ErrOutOfRange,
		Field:   field,
		Message: message.New(key),
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(failure("age", "k"))
		assert.Equal(t, "validation failed: age: value out of range", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(failure("age", "k"))
		errs.Add(validator.ValidationError{Kind: validator.ErrInvalidLength, Field: "name"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "age: value out of range")
		assert.Contains(t, errorMsg, "name: invalid length")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(failure("email", "a"))
	errs.Add(failure("email", "b"))
	errs.Add(failure("password", "c"))

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("get returns messages in order", func(t *testing.T) {
		assert.Equal(t, []message.Message{message.New("a"), message.New("b")}, errs.Get("email"))
		assert.Empty(t, errs.Get("nonexistent"))
	})

	t.Run("get errors", func(t *testing.T) {
		result := errs.GetErrors("email")
		assert.Len(t, result, 2)
		assert.Empty(t, errs.GetErrors("nonexistent"))
	})

	t.Run("fields are unique", func(t *testing.T) {
		assert.Equal(t, []string{"email", "password"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})

	t.Run("unwraps to failure kinds", func(t *testing.T) {
		assert.ErrorIs(t, errs, validator.ErrOutOfRange)
		assert.NotErrorIs(t, errs, validator.ErrRestricted)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	short := validator.NewLength(nil, validator.Bound(3))
	upper, err := validator.NewRegExp("[A-Z]+")
	require.NoError(t, err)

	t.Run("returns the value when every validator passes", func(t *testing.T) {
		v, err := validator.Run("ABC", "Code", short, upper)
		require.NoError(t, err)
		assert.Equal(t, "ABC", v)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		_, err := validator.Run("abcd", "Code", short, upper)
		assert.ErrorIs(t, err, validator.ErrInvalidLength)
		assert.NotErrorIs(t, err, validator.ErrPatternMismatch)
	})

	t.Run("nil passes", func(t *testing.T) {
		v, err := validator.Run(nil, "Code", short, upper)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("aggregates failures per field", func(t *testing.T) {
		err := validator.Apply(
			validator.Check{Label: "age", Value: 200, Validators: []validator.Validator{
				validator.NewRange(validator.Bound(0.0), validator.Bound(150.0)),
			}},
			validator.Check{Label: "name", Value: "Al", Validators: []validator.Validator{
				validator.NewLength(validator.Bound(3), nil),
			}},
			validator.Check{Label: "code", Value: "ABC", Validators: []validator.Validator{
				validator.NewLength(validator.Bound(3), validator.Bound(3)),
			}},
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"age", "name"}, errs.Fields())
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("returns nil when everything passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.Check{Label: "x", Value: 1}))
	})

	t.Run("usage errors are not aggregated", func(t *testing.T) {
		err := validator.Apply(validator.Check{Label: "x", Value: struct{}{}, Validators: []validator.Validator{
			validator.NewRange(nil, validator.Bound(1.0)),
		}})
		assert.ErrorIs(t, err, validator.ErrUnsupportedValue)
		assert.False(t, validator.IsValidationError(err))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	_, err := validator.NewRange(nil, validator.Bound(1.0)).Validate(2, "n")
	wrapped := fmt.Errorf("submit: %w", err)
	errs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, errs, 1)
	assert.Equal(t, "MAXIMUM", errs[0].Code)
}
