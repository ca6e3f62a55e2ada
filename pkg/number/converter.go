package number

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/locale"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

// Number is the set of Go types backing the converter kinds.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// decimalPattern accepts a normalised plain decimal: optional sign, digits and
// at most one '.'.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// Converter parses locale formatted numbers into T and checks them against
// inclusive bounds.
type Converter[T Number] struct {
	kind      Kind
	symbols   locale.Symbols
	min, max  T
	precision int
	scale     int
	overrides message.Overrides
}

var _ convert.Converter = (*Converter[int32])(nil)

func newConverter[T Number](kind Kind, symbols locale.Symbols, lo, hi T, opts []Option[T]) *Converter[T] {
	c := &Converter[T]{kind: kind, symbols: symbols, min: lo, max: hi}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewInteger returns an int32 converter.
func NewInteger(symbols locale.Symbols, opts ...Option[int32]) *Converter[int32] {
	return newConverter[int32](Integer, symbols, math.MinInt32, math.MaxInt32, opts)
}

// NewLong returns an int64 converter.
func NewLong(symbols locale.Symbols, opts ...Option[int64]) *Converter[int64] {
	return newConverter[int64](Long, symbols, math.MinInt64, math.MaxInt64, opts)
}

// NewShort returns an int16 converter.
func NewShort(symbols locale.Symbols, opts ...Option[int16]) *Converter[int16] {
	return newConverter[int16](Short, symbols, math.MinInt16, math.MaxInt16, opts)
}

// NewByte returns an int8 converter with the range -128..127.
func NewByte(symbols locale.Symbols, opts ...Option[int8]) *Converter[int8] {
	return newConverter[int8](Byte, symbols, math.MinInt8, math.MaxInt8, opts)
}

// NewDouble returns a float64 converter.
func NewDouble(symbols locale.Symbols, opts ...Option[float64]) *Converter[float64] {
	return newConverter[float64](Double, symbols, -math.MaxFloat64, math.MaxFloat64, opts)
}

// NewFloat returns a float32 converter.
func NewFloat(symbols locale.Symbols, opts ...Option[float32]) *Converter[float32] {
	return newConverter[float32](Float, symbols, -math.MaxFloat32, math.MaxFloat32, opts)
}

// Kind returns the converter kind.
func (c *Converter[T]) Kind() Kind { return c.kind }

// Bounds returns the inclusive minimum and maximum.
func (c *Converter[T]) Bounds() (T, T) { return c.min, c.max }

// Parse trims input and converts it. Blank input yields (nil, nil).
func (c *Converter[T]) Parse(input, label string) (*T, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return nil, nil
	}

	s, ok := c.normalize(raw)
	if !ok {
		return nil, c.convertError(label, raw)
	}
	if c.kind.Integral() {
		return c.parseIntegral(s, label, raw)
	}
	return c.parseFloat(s, label, raw)
}

// ParseValue is Parse returning a T or nil.
func (c *Converter[T]) ParseValue(input, label string) (any, error) {
	v, err := c.Parse(input, label)
	if err != nil || v == nil {
		return nil, err
	}
	return *v, nil
}

// normalize removes grouping separators, maps the locale decimal separator to
// '.' and rejects anything that is not a plain decimal.
func (c *Converter[T]) normalize(raw string) (string, bool) {
	groups := c.groupingSeparators()
	for _, g := range groups {
		if strings.HasPrefix(raw, g) || strings.HasSuffix(raw, g) {
			return "", false
		}
	}

	s := raw
	for _, g := range groups {
		s = strings.ReplaceAll(s, g, "")
	}
	if d := c.symbols.DecimalSeparator; d != "" && d != "." {
		s = strings.ReplaceAll(s, d, ".")
	}
	if strings.ContainsAny(s, "eE") || !decimalPattern.MatchString(s) {
		return "", false
	}
	return s, c.withinPrecision(s)
}

// groupingSeparators returns the locale grouping separator. Locales grouping
// with a no-break space also accept a plain space.
func (c *Converter[T]) groupingSeparators() []string {
	switch g := c.symbols.GroupingSeparator; g {
	case "":
		return nil
	case "\u00a0", "\u202f":
		return []string{g, " "}
	default:
		return []string{g}
	}
}

// withinPrecision checks the significant digit count against maxPrecision and
// the fraction digit count against maxScale. Zero disables a limit.
func (c *Converter[T]) withinPrecision(s string) bool {
	if c.precision <= 0 && c.scale <= 0 {
		return true
	}
	intPart, frac, _ := strings.Cut(strings.TrimLeft(s, "+-"), ".")
	intPart = strings.TrimLeft(intPart, "0")
	if c.scale > 0 && len(frac) > c.scale {
		return false
	}
	if c.precision > 0 && len(intPart)+len(frac) > c.precision {
		return false
	}
	return true
}

func (c *Converter[T]) parseIntegral(s, label, raw string) (*T, error) {
	intPart, frac, _ := strings.Cut(s, ".")
	if strings.Trim(frac, "0") != "" {
		return nil, c.convertError(label, raw)
	}
	if intPart == "" || intPart == "+" || intPart == "-" {
		intPart += "0"
	}

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(intPart, "-") {
				return nil, c.minimumError(label, raw)
			}
			return nil, c.maximumError(label, raw)
		}
		return nil, c.convertError(label, raw)
	}
	if n > int64(c.max) {
		return nil, c.maximumError(label, raw)
	}
	if n < int64(c.min) {
		return nil, c.minimumError(label, raw)
	}
	v := T(n)
	return &v, nil
}

func (c *Converter[T]) parseFloat(s, label, raw string) (*T, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, c.convertError(label, raw)
	}
	if f > float64(c.max) {
		return nil, c.maximumError(label, raw)
	}
	if f < float64(c.min) {
		return nil, c.minimumError(label, raw)
	}
	v := T(f)
	return &v, nil
}

// Format stringifies n with the locale decimal separator.
func (c *Converter[T]) Format(n T) string {
	var s string
	if c.kind.Integral() {
		s = strconv.FormatInt(int64(n), 10)
	} else {
		s = strconv.FormatFloat(float64(n), 'f', -1, c.kind.bits())
	}
	if d := c.symbols.DecimalSeparator; d != "" && d != "." {
		s = strings.Replace(s, ".", d, 1)
	}
	return s
}

// FormatValue formats T or *T; anything else is printed as is.
func (c *Converter[T]) FormatValue(v any) string {
	switch x := v.(type) {
	case T:
		return c.Format(x)
	case *T:
		if x == nil {
			return ""
		}
		return c.Format(*x)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Hints returns nothing: numeric input needs no format example.
func (c *Converter[T]) Hints() []message.Message { return nil }

func (c *Converter[T]) convertError(label, raw string) error {
	msg := message.New(message.ConverterKey(c.kind.Class(), "CONVERT"), label, raw)
	return &convert.ConversionError{
		Kind:    convert.ErrConvert,
		Code:    "CONVERT",
		Label:   label,
		Value:   raw,
		Message: c.overrides.Apply(message.OverrideNumber, msg),
	}
}

func (c *Converter[T]) maximumError(label, raw string) error {
	msg := message.New(message.ConverterKey(c.kind.Class(), "MAXIMUM"), label, raw, c.max)
	return &convert.ConversionError{
		Kind:    convert.ErrMaximum,
		Code:    "MAXIMUM",
		Label:   label,
		Value:   raw,
		Message: c.overrides.Apply(message.OverrideMax, msg),
	}
}

func (c *Converter[T]) minimumError(label, raw string) error {
	msg := message.New(message.ConverterKey(c.kind.Class(), "MINIMUM"), label, raw, c.min)
	return &convert.ConversionError{
		Kind:    convert.ErrMinimum,
		Code:    "MINIMUM",
		Label:   label,
		Value:   raw,
		Message: c.overrides.Apply(message.OverrideMin, msg),
	}
}
