package validator

import (
	"time"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

const dateTimeRangeClass = "DateTimeRangeValidator"

// fallbackLayout renders dates when no converter is paired with the validator.
const fallbackLayout = "2006-01-02"

// DateTimeRange checks a date against inclusive bounds in epoch milliseconds.
type DateTimeRange struct {
	min, max *int64
	opts     options
}

// NewDateTimeRange returns a date range validator. Either bound may be nil.
func NewDateTimeRange(minMillis, maxMillis *int64, opts ...Option) *DateTimeRange {
	return &DateTimeRange{min: minMillis, max: maxMillis, opts: newOptions(opts)}
}

// NewDateTimeRangeBetween is NewDateTimeRange for time.Time bounds; a zero
// time means no bound.
func NewDateTimeRangeBetween(min, max time.Time, opts ...Option) *DateTimeRange {
	var lo, hi *int64
	if !min.IsZero() {
		lo = Bound(min.UnixMilli())
	}
	if !max.IsZero() {
		hi = Bound(max.UnixMilli())
	}
	return NewDateTimeRange(lo, hi, opts...)
}

func (r *DateTimeRange) Validate(value any, label string) (any, error) {
	if isNil(value) {
		return value, nil
	}
	t, ok := toTime(value)
	if !ok {
		return nil, unsupported(value)
	}

	ms := t.UnixMilli()
	tooEarly := r.min != nil && ms < *r.min
	tooLate := r.max != nil && ms > *r.max
	if !tooEarly && !tooLate {
		return value, nil
	}

	f := r.opts.formatter
	shown := formatMillis(f, ms)
	var err *ValidationError
	switch {
	case r.min != nil && r.max != nil:
		err = boundError(ErrOutOfRange, tooEarly, dateTimeRangeClass, "NOT_IN_RANGE", label, value,
			label, shown, formatMillis(f, *r.min), formatMillis(f, *r.max))
		err.Message = r.opts.overrides.Apply(message.OverrideRange, err.Message)
	case tooEarly:
		err = boundError(ErrOutOfRange, true, dateTimeRangeClass, "MINIMUM", label, value,
			label, shown, formatMillis(f, *r.min))
		err.Message = r.opts.overrides.Apply(message.OverrideMin, err.Message)
	default:
		err = boundError(ErrOutOfRange, false, dateTimeRangeClass, "MAXIMUM", label, value,
			label, shown, formatMillis(f, *r.max))
		err.Message = r.opts.overrides.Apply(message.OverrideMax, err.Message)
	}
	return nil, err
}

func (r *DateTimeRange) Hints(f convert.Formatter) []message.Message {
	if f == nil {
		f = r.opts.formatter
	}
	var m message.Message
	switch {
	case r.min != nil && r.max != nil:
		m = message.New(message.ValidatorKey(dateTimeRangeClass, "RANGE_HINT"), formatMillis(f, *r.min), formatMillis(f, *r.max))
	case r.min != nil:
		m = message.New(message.ValidatorKey(dateTimeRangeClass, "MINIMUM_HINT"), formatMillis(f, *r.min))
	case r.max != nil:
		m = message.New(message.ValidatorKey(dateTimeRangeClass, "MAXIMUM_HINT"), formatMillis(f, *r.max))
	default:
		return nil
	}
	return []message.Message{r.opts.overrides.Apply(message.OverrideHint, m)}
}

// formatMillis renders an instant through f, never as a raw epoch number.
func formatMillis(f convert.Formatter, ms int64) string {
	t := time.UnixMilli(ms)
	if f == nil {
		return t.UTC().Format(fallbackLayout)
	}
	return f.FormatValue(t)
}
