package number

import (
	"fmt"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/locale"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

// Option configures a Converter.
type Option[T Number] func(*Converter[T])

// WithMin narrows the inclusive minimum.
func WithMin[T Number](v T) Option[T] {
	return func(c *Converter[T]) {
		c.min = v
	}
}

// WithMax narrows the inclusive maximum.
func WithMax[T Number](v T) Option[T] {
	return func(c *Converter[T]) {
		c.max = v
	}
}

// WithMaxPrecision limits the number of significant digits. Leading zeros do
// not count. Zero means unlimited.
func WithMaxPrecision[T Number](digits int) Option[T] {
	return func(c *Converter[T]) {
		c.precision = digits
	}
}

// WithMaxScale limits the number of fraction digits. Zero means unlimited.
func WithMaxScale[T Number](digits int) Option[T] {
	return func(c *Converter[T]) {
		c.scale = digits
	}
}

// WithMessages sets custom templates for the "number", "min" and "max" messages.
func WithMessages[T Number](o message.Overrides) Option[T] {
	return func(c *Converter[T]) {
		c.overrides = o.Clone()
	}
}

// Config is the kind-independent form of the options, used where the kind is
// only known at run time.
type Config struct {
	Min          *float64          `json:"min,omitempty" yaml:"min,omitempty"`
	Max          *float64          `json:"max,omitempty" yaml:"max,omitempty"`
	MaxPrecision int               `json:"max_precision,omitempty" yaml:"max_precision,omitempty"`
	MaxScale     int               `json:"max_scale,omitempty" yaml:"max_scale,omitempty"`
	Messages     message.Overrides `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// New builds the converter for kind from cfg.
func New(kind Kind, symbols locale.Symbols, cfg Config) (convert.Converter, error) {
	switch kind {
	case Integer:
		return build(cfg, symbols, NewInteger)
	case Long:
		return build(cfg, symbols, NewLong)
	case Short:
		return build(cfg, symbols, NewShort)
	case Byte:
		return build(cfg, symbols, NewByte)
	case Double:
		return build(cfg, symbols, NewDouble)
	case Float:
		return build(cfg, symbols, NewFloat)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func build[T Number](cfg Config, symbols locale.Symbols, ctor func(locale.Symbols, ...Option[T]) *Converter[T]) (convert.Converter, error) {
	lo, hi := ctor(symbols).Bounds()
	opts := []Option[T]{
		WithMaxPrecision[T](cfg.MaxPrecision),
		WithMaxScale[T](cfg.MaxScale),
		WithMessages[T](cfg.Messages),
	}
	if cfg.Min != nil {
		if *cfg.Min < float64(lo) || *cfg.Min > float64(hi) {
			return nil, fmt.Errorf("%w: min %v", ErrBoundOutOfRange, *cfg.Min)
		}
		opts = append(opts, WithMin(T(*cfg.Min)))
	}
	if cfg.Max != nil {
		if *cfg.Max < float64(lo) || *cfg.Max > float64(hi) {
			return nil, fmt.Errorf("%w: max %v", ErrBoundOutOfRange, *cfg.Max)
		}
		opts = append(opts, WithMax(T(*cfg.Max)))
	}
	return ctor(symbols, opts...), nil
}
