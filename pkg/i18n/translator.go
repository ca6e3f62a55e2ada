package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"golang.org/x/text/language"

	"github.com/percussion/percussioncms-sub004/pkg/message"
)

// ErrLanguageNotSupported indicates that the requested language is not available
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}

// Translator renders catalog messages. It implements the message factory
// consumed by converters and validators: a message.Message carries a key and
// positional arguments, and the Translator turns it into localized text.
type Translator struct {
	translations   map[string]map[string]any
	langs          []string
	matcher        language.Matcher
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, fmt.Errorf("adapter is nil")
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
		adapter:        adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.langs = t.supportedLanguages()
	t.matcher = newMatcher(t.langs)
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.langs)
	return t, nil
}

// validateTranslations checks if the translations map has a valid structure.
func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("No translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns a list of language codes that have translations available.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.langs...)
}

// Resolve maps a requested language such as "de-AT" or "en_GB" onto the
// closest catalog language, falling back to the default language.
func (t *Translator) Resolve(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(lang)
}

func (t *Translator) resolve(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	if match := matchLanguage(t.matcher, t.langs, lang); match != "" {
		return match
	}
	return t.defaultLang
}

// getTranslation looks the key up as a flat entry first, since catalog keys
// such as "org.apache.myfaces.trinidad.convert.DateTimeConverter.CONVERT_DATE"
// contain dots, and then traverses nested maps using dot-separated parts.
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	if val, ok := m[key]; ok {
		return val, true
	}

	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[t.resolve(lang)]
	if !ok {
		return false
	}

	_, ok = t.getTranslation(langMap, key)
	return ok
}

// lookup returns the string template stored for key.
func (t *Translator) lookup(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("Translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return "", false
	}
}

func (t *Translator) buildParams(args []string) map[string]string {
	params := make(map[string]string)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

func (t *Translator) sprintf(tmpl string, args []string) string {
	return namedSprintf(tmpl, t.buildParams(args))
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf performs substitution of named placeholders in the form "%{key}".
// Unknown names are kept as is.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// T translates a key for the given language.
// Arguments are key-value pairs substituted into "%{name}" placeholders:
//
//	// With translation "welcome": "Hello, %{name}!"
//	msg := translator.T("en", "welcome", "name", "John")
//	// Returns: "Hello, John!"
//
// If the translation is missing the key is returned when fallback to key is
// enabled, otherwise an empty string.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(t.resolve(lang), key); ok {
		return t.sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return t.sprintf(key, args)
	}
	return ""
}

// Td translates a key with a default fallback if not found
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(t.resolve(lang), key); ok {
		return t.sprintf(tmpl, args)
	}
	return t.sprintf(defaultValue, args)
}

// Render turns a structured message into text. A custom template on the
// message wins over the catalog entry. Positional placeholders {0}, {1}, ...
// take the message arguments in order; named placeholders %{0}, %{1}, ...
// are accepted as well. A message with no catalog entry renders as
// message.Message.String when fallback to key is enabled.
func (t *Translator) Render(lang string, m message.Message) string {
	tmpl := m.Template
	if tmpl == "" {
		t.mu.RLock()
		found, ok := t.lookup(t.resolve(lang), m.Key)
		t.mu.RUnlock()
		if !ok {
			if t.fallbackToKey {
				return m.String()
			}
			return ""
		}
		tmpl = found
	}

	if strings.Contains(tmpl, "%{") {
		params := make(map[string]string, len(m.Args))
		for i, a := range m.Args {
			params[fmt.Sprint(i)] = fmt.Sprint(a)
		}
		tmpl = namedSprintf(tmpl, params)
	}
	return message.Format(tmpl, m.Args...)
}

// RenderAll renders messages in order.
func (t *Translator) RenderAll(lang string, msgs []message.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = t.Render(lang, m)
	}
	return out
}

// ExportJSON returns all translations for a language as a JSON string
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[lang]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}

	bytes, err := json.Marshal(translations)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}

	return string(bytes), nil
}
