package validator

import (
	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

const rangeClass = "RangeValidator"

// Range checks a number against inclusive bounds. With both bounds a failure
// reports NOT_IN_RANGE; with one bound MINIMUM or MAXIMUM; with none every
// value passes.
type Range struct {
	min, max *float64
	opts     options
}

// NewRange returns a range validator. Either bound may be nil.
func NewRange(min, max *float64, opts ...Option) *Range {
	return &Range{min: min, max: max, opts: newOptions(opts)}
}

func (r *Range) Validate(value any, label string) (any, error) {
	if isNil(value) {
		return value, nil
	}
	n, ok := toFloat(value)
	if !ok {
		return nil, unsupported(value)
	}

	tooLow := r.min != nil && n < *r.min
	tooHigh := r.max != nil && n > *r.max
	if !tooLow && !tooHigh {
		return value, nil
	}

	f := r.opts.formatter
	shown := display(f, value)
	var err *ValidationError
	switch {
	case r.min != nil && r.max != nil:
		err = boundError(ErrOutOfRange, tooLow, rangeClass, "NOT_IN_RANGE", label, value, label, shown, display(f, *r.min), display(f, *r.max))
		err.Message = r.opts.overrides.Apply(message.OverrideRange, err.Message)
	case tooLow:
		err = boundError(ErrOutOfRange, tooLow, rangeClass, "MINIMUM", label, value, label, shown, display(f, *r.min))
		err.Message = r.opts.overrides.Apply(message.OverrideMin, err.Message)
	default:
		err = boundError(ErrOutOfRange, tooLow, rangeClass, "MAXIMUM", label, value, label, shown, display(f, *r.max))
		err.Message = r.opts.overrides.Apply(message.OverrideMax, err.Message)
	}
	return nil, err
}

func (r *Range) Hints(f convert.Formatter) []message.Message {
	if f == nil {
		f = r.opts.formatter
	}
	var m message.Message
	switch {
	case r.min != nil && r.max != nil:
		m = message.New(message.ValidatorKey(rangeClass, "RANGE_HINT"), display(f, *r.min), display(f, *r.max))
	case r.min != nil:
		m = message.New(message.ValidatorKey(rangeClass, "MINIMUM_HINT"), display(f, *r.min))
	case r.max != nil:
		m = message.New(message.ValidatorKey(rangeClass, "MAXIMUM_HINT"), display(f, *r.max))
	default:
		return nil
	}
	return []message.Message{r.opts.overrides.Apply(message.OverrideHint, m)}
}
