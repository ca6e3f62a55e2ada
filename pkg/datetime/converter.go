package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/locale"
	"github.com/percussion/percussioncms-sub004/pkg/message"
	"github.com/percussion/percussioncms-sub004/pkg/pattern"
)

// Class is the message class of the converter.
const Class = "DateTimeConverter"

// Type selects the message family of a converter.
type Type string

const (
	TypeDate Type = "date"
	TypeTime Type = "time"
	TypeBoth Type = "both"
)

// Converter parses and formats date/time values with one primary pattern and
// a list of lenient variants derived from it. A Converter is safe for
// concurrent use once configured.
type Converter struct {
	primary   pattern.Pattern
	variants  []pattern.Pattern
	symbols   locale.Symbols
	typ       Type
	overrides message.Overrides
	loc       *time.Location
	offset    *int
	pivot     int
	now       func() time.Time
}

var _ convert.Converter = (*Converter)(nil)

// New compiles p and derives its variants.
func New(p string, symbols locale.Symbols, opts ...Option) *Converter {
	c := &Converter{
		primary: pattern.Compile(p),
		symbols: symbols,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.typ == "" {
		c.typ = InferType(c.primary)
	}
	c.variants = Variants(c.primary)
	return c
}

// InferType reports whether p carries date fields, time fields or both.
func InferType(p pattern.Pattern) Type {
	date := p.HasField("yMdEG")
	clock := p.HasField("aHhKkmsS")
	switch {
	case date && clock:
		return TypeBoth
	case clock:
		return TypeTime
	default:
		return TypeDate
	}
}

// Pattern returns the primary pattern.
func (c *Converter) Pattern() string { return c.primary.String() }

// Type returns the message family.
func (c *Converter) Type() Type { return c.typ }

// Symbols returns the locale table the converter formats with.
func (c *Converter) Symbols() locale.Symbols { return c.symbols }

// Variants returns every pattern tried by Parse, primary first.
func (c *Converter) Variants() []string {
	out := make([]string, len(c.variants))
	for i, v := range c.variants {
		out[i] = v.String()
	}
	return out
}

// SetOffset fixes the zone used by Parse and Format to minutes east of UTC.
// It is configuration: call it before the converter is shared.
func (c *Converter) SetOffset(minutes int) {
	c.offset = &minutes
	c.loc = time.FixedZone("", minutes*60)
}

// Offset returns the configured offset in minutes, if any.
func (c *Converter) Offset() (int, bool) {
	if c.offset == nil {
		return 0, false
	}
	return *c.offset, true
}

func (c *Converter) location() *time.Location {
	if c.loc != nil {
		return c.loc
	}
	return time.Local
}

// Format renders t with the primary pattern in the converter zone.
func (c *Converter) Format(t time.Time) string {
	return c.primary.Format(t.In(c.location()), &c.symbols)
}

// FormatValue formats time.Time, *time.Time and epoch milliseconds.
func (c *Converter) FormatValue(v any) string {
	switch x := v.(type) {
	case time.Time:
		return c.Format(x)
	case *time.Time:
		if x == nil {
			return ""
		}
		return c.Format(*x)
	case int64:
		return c.Format(time.UnixMilli(x))
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Example renders the sample instant used in hints and error messages.
func (c *Converter) Example() string {
	return c.Format(time.Date(1998, time.November, 29, 15, 45, 31, 0, c.location()))
}

// Parse trims input and tries every variant in order. Blank input yields
// (nil, nil). When no variant matches the error describes the primary
// pattern only.
func (c *Converter) Parse(input, label string) (*time.Time, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return nil, nil
	}

	opts := pattern.ParseOptions{
		Location:          c.location(),
		TwoDigitYearStart: c.pivot,
		Now:               c.now,
	}
	for _, v := range c.variants {
		if t, ok := v.Parse(raw, &c.symbols, opts); ok {
			return &t, nil
		}
	}
	return nil, c.conversionError(label, raw)
}

// ParseValue is Parse returning a time.Time or nil.
func (c *Converter) ParseValue(input, label string) (any, error) {
	t, err := c.Parse(input, label)
	if err != nil || t == nil {
		return nil, err
	}
	return *t, nil
}

func (c *Converter) conversionError(label, raw string) *convert.ConversionError {
	code := "CONVERT_DATE"
	switch c.typ {
	case TypeTime:
		code = "CONVERT_TIME"
	case TypeBoth:
		code = "CONVERT_BOTH"
	}
	msg := message.New(message.ConverterKey(Class, code), label, raw, c.Example())
	return &convert.ConversionError{
		Kind:    convert.ErrConvert,
		Code:    code,
		Label:   label,
		Value:   raw,
		Message: c.overrides.Apply(message.OverrideDetail, msg),
	}
}

// Hints describes the expected input format.
func (c *Converter) Hints() []message.Message {
	code := "DATE_HINT"
	switch c.typ {
	case TypeTime:
		code = "TIME_HINT"
	case TypeBoth:
		code = "DATETIME_HINT"
	}
	msg := message.New(message.ConverterKey(Class, code), c.Example())
	return []message.Message{c.overrides.Apply(message.OverrideHint, msg)}
}
