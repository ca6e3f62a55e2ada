package locale

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is requested or nothing matches.
const DefaultLocale = "en"

// Registry resolves locale tags to symbol tables.
type Registry struct {
	mu       sync.RWMutex
	tables   map[language.Tag]Symbols
	tags     []language.Tag
	matcher  language.Matcher
	fallback language.Tag
	logger   *slog.Logger
	builtins bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithFallback sets the tag used when a lookup matches nothing. Invalid tags
// are ignored.
func WithFallback(tag string) RegistryOption {
	return func(r *Registry) {
		if t, err := language.Parse(tag); err == nil {
			r.fallback = t
		}
	}
}

// WithoutBuiltins creates an empty registry. At least one table must be
// registered for the fallback tag before lookups succeed.
func WithoutBuiltins() RegistryOption {
	return func(r *Registry) { r.builtins = false }
}

// WithLogger sets the logger used to report registrations and fallbacks.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns a registry preloaded with the built-in tables.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		tables:   make(map[language.Tag]Symbols),
		fallback: language.English,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		builtins: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.builtins {
		for tag, sym := range builtins() {
			r.tables[language.MustParse(tag)] = sym
		}
	}
	r.rebuild()
	return r
}

// Register adds or replaces the table for tag.
func (r *Registry) Register(tag string, sym Symbols) error {
	t, err := language.Parse(tag)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %q", ErrInvalidTag, tag), err)
	}
	if err := sym.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[t] = sym
	r.rebuild()
	r.logger.Debug("locale symbols registered", "locale", t.String())
	return nil
}

// rebuild recomputes the matcher. The fallback tag is placed first so the
// matcher returns it when confidence is language.No. Callers hold the lock.
func (r *Registry) rebuild() {
	tags := make([]language.Tag, 0, len(r.tables))
	for t := range r.tables {
		if t != r.fallback {
			tags = append(tags, t)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	if _, ok := r.tables[r.fallback]; ok {
		tags = append([]language.Tag{r.fallback}, tags...)
	}
	r.tags = tags
	if len(tags) > 0 {
		r.matcher = language.NewMatcher(tags)
	} else {
		r.matcher = nil
	}
}

// Lookup returns the table that best matches tag. An empty tag selects the
// fallback.
func (r *Registry) Lookup(tag string) (Symbols, error) {
	_, sym, err := r.Resolve(tag)
	return sym, err
}

// Resolve is like Lookup but also reports the registered tag that matched.
func (r *Registry) Resolve(tag string) (language.Tag, Symbols, error) {
	want := r.fallback
	if tag != "" {
		t, err := language.Parse(tag)
		if err != nil {
			return language.Und, Symbols{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidTag, tag), err)
		}
		want = t
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.matcher == nil {
		return language.Und, Symbols{}, fmt.Errorf("%w: no tables registered", ErrInvalidSymbols)
	}
	_, idx, conf := r.matcher.Match(want)
	matched := r.tags[idx]
	if conf == language.No {
		r.logger.Debug("locale not matched, using fallback", "locale", want.String(), "fallback", matched.String())
	}
	return matched, r.tables[matched], nil
}

// Tags lists the registered locale tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.tags))
	for _, t := range r.tags {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}
