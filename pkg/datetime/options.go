package datetime

import (
	"time"

	"github.com/percussion/percussioncms-sub004/pkg/message"
)

// Option configures a Converter.
type Option func(*Converter)

// WithType sets the message family instead of inferring it from the pattern.
func WithType(t Type) Option {
	return func(c *Converter) {
		c.typ = t
	}
}

// WithOffset fixes the converter zone to minutes east of UTC.
func WithOffset(minutes int) Option {
	return func(c *Converter) {
		c.SetOffset(minutes)
	}
}

// WithMessages sets custom templates for the "detail" and "hint" messages.
func WithMessages(o message.Overrides) Option {
	return func(c *Converter) {
		c.overrides = o.Clone()
	}
}

// WithTwoDigitYearStart sets the first year of the two-digit year window.
// Zero keeps the sliding window.
func WithTwoDigitYearStart(year int) Option {
	return func(c *Converter) {
		c.pivot = year
	}
}

// WithClock replaces time.Now for the sliding two-digit year window.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}
