package formconv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/percussion/percussioncms-sub004/pkg/cache"
	"github.com/percussion/percussioncms-sub004/pkg/config"
	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/datetime"
	"github.com/percussion/percussioncms-sub004/pkg/i18n"
	"github.com/percussion/percussioncms-sub004/pkg/locale"
	"github.com/percussion/percussioncms-sub004/pkg/logger"
	"github.com/percussion/percussioncms-sub004/pkg/number"
	"github.com/percussion/percussioncms-sub004/pkg/validator"
)

// Engine builds converters for a configured set of locales and renders their
// failures through a message catalog. An Engine is safe for concurrent use.
type Engine struct {
	cfg        config.Engine
	offset     *int
	registry   *locale.Registry
	translator *i18n.Translator
	logger     *slog.Logger
	now        func() time.Time
	converters *cache.LRUCache[dateTimeKey, *datetime.Converter]
}

type dateTimeKey struct {
	pattern   string
	locale    string
	typ       datetime.Type
	offset    int
	hasOffset bool
}

// New builds an Engine from cfg. Symbol tables from cfg.SymbolsPath and
// catalog entries from cfg.CatalogPath are layered over the built-in ones.
func New(ctx context.Context, cfg config.Engine, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(ErrEngineSetup, err)
	}
	offset, _ := cfg.Offset()

	e := &Engine{
		cfg:    cfg,
		offset: offset,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		e.registry = locale.NewRegistry(locale.WithFallback(cfg.Locale), locale.WithLogger(e.logger))
		if cfg.SymbolsPath != "" {
			if err := e.registry.RegisterFile(ctx, cfg.SymbolsPath); err != nil {
				return nil, errors.Join(ErrEngineSetup, err)
			}
		}
	}

	if e.translator == nil {
		extra, err := catalogAdapter(cfg.CatalogPath)
		if err != nil {
			return nil, errors.Join(ErrEngineSetup, err)
		}
		tr, err := i18n.NewDefault(ctx, extra,
			i18n.WithLogger(e.logger),
			i18n.WithMissingTranslationsLogging(true),
		)
		if err != nil {
			return nil, errors.Join(ErrEngineSetup, err)
		}
		e.translator = tr
	}

	e.converters = cache.NewLRUCache[dateTimeKey, *datetime.Converter](cfg.CacheSize)
	e.logger.DebugContext(ctx, "engine ready",
		logger.Locale(cfg.Locale),
		slog.Any("locales", e.registry.Tags()),
		slog.Any("languages", e.translator.SupportedLanguages()),
	)
	return e, nil
}

// NewLogger builds the logger described by cfg, writing to w.
func NewLogger(cfg config.Engine, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	return logger.New(
		logger.WithEnvironment(cfg.Env, "formconv"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithContextExtractors(logger.FromContext("lang", i18n.LanguageFrom)),
	), nil
}

func catalogAdapter(path string) ([]i18n.TranslationAdapter, error) {
	if path == "" {
		return nil, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return []i18n.TranslationAdapter{
			i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), path),
		}, nil
	}
	parser := i18n.NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCatalog, path)
	}
	return []i18n.TranslationAdapter{i18n.NewFileAdapter(parser, path)}, nil
}

// Config returns the settings the Engine was built with.
func (e *Engine) Config() config.Engine { return e.cfg }

// Registry returns the locale registry.
func (e *Engine) Registry() *locale.Registry { return e.registry }

// Translator returns the message catalog.
func (e *Engine) Translator() *i18n.Translator { return e.translator }

// CacheStats reports how often compiled date/time converters were reused.
func (e *Engine) CacheStats() cache.Stats { return e.converters.Stats() }

// Symbols returns the symbol table that best matches tag. An empty tag
// selects the configured locale.
func (e *Engine) Symbols(tag string) (locale.Symbols, error) {
	if tag == "" {
		tag = e.cfg.Locale
	}
	return e.registry.Lookup(tag)
}

// DateTime returns a converter for pattern in the given locale. Converters
// without custom messages are cached and shared, so callers must not call
// SetOffset on them; pass WithOffset instead.
func (e *Engine) DateTime(pattern, tag string, opts ...ConverterOption) (*datetime.Converter, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	if tag == "" {
		tag = e.cfg.Locale
	}
	matched, sym, err := e.registry.Resolve(tag)
	if err != nil {
		return nil, err
	}

	cs := newSettings(opts)
	offset := cs.offset
	if offset == nil {
		offset = e.offset
	}

	dtOpts := []datetime.Option{
		datetime.WithClock(e.now),
		datetime.WithTwoDigitYearStart(e.cfg.TwoDigitYearStart),
	}
	if cs.typ != "" {
		dtOpts = append(dtOpts, datetime.WithType(cs.typ))
	}
	if offset != nil {
		dtOpts = append(dtOpts, datetime.WithOffset(*offset))
	}
	if len(cs.messages) > 0 {
		return datetime.New(pattern, sym, append(dtOpts, datetime.WithMessages(cs.messages))...), nil
	}

	key := dateTimeKey{pattern: pattern, locale: matched.String(), typ: cs.typ}
	if offset != nil {
		key.offset, key.hasOffset = *offset, true
	}
	conv, hit, err := e.converters.GetOrLoad(key, func() (*datetime.Converter, error) {
		return datetime.New(pattern, sym, dtOpts...), nil
	})
	if err != nil {
		return nil, err
	}
	if !hit {
		e.logger.Debug("date/time converter compiled",
			logger.Pattern(pattern),
			logger.Locale(key.locale),
			slog.Int("variants", len(conv.Variants())),
		)
	}
	return conv, nil
}

// Number returns a numeric converter of kind in the given locale.
func (e *Engine) Number(kind number.Kind, tag string, opts ...ConverterOption) (convert.Converter, error) {
	sym, err := e.Symbols(tag)
	if err != nil {
		return nil, err
	}
	cs := newSettings(opts)
	return number.New(kind, sym, number.Config{
		Min:          cs.min,
		Max:          cs.max,
		MaxPrecision: cs.maxPrecision,
		MaxScale:     cs.maxScale,
		Messages:     cs.messages,
	})
}

// Convert parses raw with conv. Blank input converts to nil.
func (e *Engine) Convert(conv convert.Converter, raw, label string) (any, error) {
	return e.convert(context.Background(), conv, raw, label)
}

// Validate runs validators in order and returns the first failure.
func (e *Engine) Validate(value any, label string, validators ...validator.Validator) (any, error) {
	return e.validate(context.Background(), value, label, validators...)
}

// Process converts raw and validates the result, the way a form field is
// checked on submit.
func (e *Engine) Process(conv convert.Converter, raw, label string, validators ...validator.Validator) (any, error) {
	return e.ProcessContext(context.Background(), conv, raw, label, validators...)
}

// ProcessContext is Process with request-scoped logging: failures are logged
// with the message language stored in ctx.
func (e *Engine) ProcessContext(ctx context.Context, conv convert.Converter, raw, label string, validators ...validator.Validator) (any, error) {
	v, err := e.convert(ctx, conv, raw, label)
	if err != nil {
		return nil, err
	}
	return e.validate(ctx, v, label, validators...)
}

func (e *Engine) convert(ctx context.Context, conv convert.Converter, raw, label string) (any, error) {
	v, err := conv.ParseValue(raw, label)
	if err != nil {
		e.logger.DebugContext(ctx, "conversion failed", logger.Label(label), logger.Error(err))
		return nil, err
	}
	return v, nil
}

func (e *Engine) validate(ctx context.Context, value any, label string, validators ...validator.Validator) (any, error) {
	v, err := validator.Run(value, label, validators...)
	if err != nil {
		e.logger.DebugContext(ctx, "validation failed", logger.Label(label), logger.Error(err))
		return nil, err
	}
	return v, nil
}
