package formconv

import (
	"log/slog"
	"time"

	"github.com/percussion/percussioncms-sub004/pkg/datetime"
	"github.com/percussion/percussioncms-sub004/pkg/i18n"
	"github.com/percussion/percussioncms-sub004/pkg/locale"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRegistry replaces the locale registry built from the configuration.
func WithRegistry(r *locale.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithTranslator replaces the message catalog built from the configuration.
func WithTranslator(t *i18n.Translator) Option {
	return func(e *Engine) {
		if t != nil {
			e.translator = t
		}
	}
}

// WithClock sets the time source for the sliding two-digit year window.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// ConverterOption adjusts a single converter built by the Engine.
type ConverterOption func(*converterSettings)

type converterSettings struct {
	typ          datetime.Type
	offset       *int
	messages     message.Overrides
	min, max     *float64
	maxPrecision int
	maxScale     int
}

// WithType forces a date/time converter to date, time or both.
func WithType(t datetime.Type) ConverterOption {
	return func(s *converterSettings) { s.typ = t }
}

// WithOffset fixes the zone of a date/time converter, in minutes east of UTC.
func WithOffset(minutes int) ConverterOption {
	return func(s *converterSettings) { s.offset = &minutes }
}

// WithMessages sets custom message templates. Converters with custom
// messages are not cached.
func WithMessages(o message.Overrides) ConverterOption {
	return func(s *converterSettings) { s.messages = o.Clone() }
}

// WithMin sets the lower bound of a numeric converter.
func WithMin(v float64) ConverterOption {
	return func(s *converterSettings) { s.min = &v }
}

// WithMax sets the upper bound of a numeric converter.
func WithMax(v float64) ConverterOption {
	return func(s *converterSettings) { s.max = &v }
}

// WithPrecision limits the total and fractional digit counts of a numeric
// converter. Zero leaves a limit off.
func WithPrecision(maxPrecision, maxScale int) ConverterOption {
	return func(s *converterSettings) {
		s.maxPrecision = maxPrecision
		s.maxScale = maxScale
	}
}

func newSettings(opts []ConverterOption) converterSettings {
	var s converterSettings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
