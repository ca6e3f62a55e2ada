package validator

import (
	"unicode/utf8"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

const lengthClass = "LengthValidator"

// Length checks the number of characters in a string. Equal bounds report
// EXACT instead of a range message.
type Length struct {
	min, max *int
	opts     options
}

// NewLength returns a length validator. Either bound may be nil.
func NewLength(min, max *int, opts ...Option) *Length {
	return &Length{min: min, max: max, opts: newOptions(opts)}
}

func (l *Length) exact() bool {
	return l.min != nil && l.max != nil && *l.min == *l.max
}

func (l *Length) Validate(value any, label string) (any, error) {
	if isNil(value) {
		return value, nil
	}
	s, ok := toString(value)
	if !ok {
		return nil, unsupported(value)
	}

	n := utf8.RuneCountInString(s)
	tooShort := l.min != nil && n < *l.min
	tooLong := l.max != nil && n > *l.max
	if !tooShort && !tooLong {
		return value, nil
	}

	var err *ValidationError
	switch {
	case l.exact():
		err = boundError(ErrInvalidLength, tooShort, lengthClass, "EXACT", label, value, label, s, *l.min)
		err.Message = l.opts.overrides.Apply(message.OverrideExact, err.Message)
	case l.min != nil && l.max != nil:
		err = boundError(ErrInvalidLength, tooShort, lengthClass, "NOT_IN_RANGE", label, value, label, s, *l.min, *l.max)
		err.Message = l.opts.overrides.Apply(message.OverrideRange, err.Message)
	case tooShort:
		err = boundError(ErrInvalidLength, true, lengthClass, "MINIMUM", label, value, label, s, *l.min)
		err.Message = l.opts.overrides.Apply(message.OverrideMin, err.Message)
	default:
		err = boundError(ErrInvalidLength, false, lengthClass, "MAXIMUM", label, value, label, s, *l.max)
		err.Message = l.opts.overrides.Apply(message.OverrideMax, err.Message)
	}
	return nil, err
}

func (l *Length) Hints(convert.Formatter) []message.Message {
	var m message.Message
	switch {
	case l.exact():
		m = message.New(message.ValidatorKey(lengthClass, "EXACT_HINT"), *l.min)
	case l.min != nil && l.max != nil:
		m = message.New(message.ValidatorKey(lengthClass, "RANGE_HINT"), *l.min, *l.max)
	case l.min != nil:
		m = message.New(message.ValidatorKey(lengthClass, "MINIMUM_HINT"), *l.min)
	case l.max != nil:
		m = message.New(message.ValidatorKey(lengthClass, "MAXIMUM_HINT"), *l.max)
	default:
		return nil
	}
	return []message.Message{l.opts.overrides.Apply(message.OverrideHint, m)}
}
