package validator

import (
	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/locale"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

// Option configures a validator.
type Option func(*options)

type options struct {
	overrides message.Overrides
	formatter convert.Formatter
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMessages sets custom templates keyed by override name.
func WithMessages(o message.Overrides) Option {
	return func(opts *options) {
		opts.overrides = o.Clone()
	}
}

// WithFormatter renders values and bounds in failure messages the way the
// paired converter displays them.
func WithFormatter(f convert.Formatter) Option {
	return func(opts *options) {
		opts.formatter = f
	}
}

// symbolSource is implemented by converters that know their locale table.
type symbolSource interface {
	Symbols() locale.Symbols
}

// symbolsOf returns the locale table of f, or English.
func symbolsOf(f convert.Formatter) locale.Symbols {
	if s, ok := f.(symbolSource); ok {
		return s.Symbols()
	}
	return locale.English()
}

// Bound returns a pointer to v, for optional constraint arguments.
func Bound[T any](v T) *T { return &v }
