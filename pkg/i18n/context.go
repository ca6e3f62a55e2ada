package i18n

import (
	"context"
)

type languageContextKey struct{}

// WithLanguage stores the message language for the request in ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFrom returns the language stored by WithLanguage.
func LanguageFrom(ctx context.Context) (string, bool) {
	lang, _ := ctx.Value(languageContextKey{}).(string)
	return lang, lang != ""
}

// WithAcceptLanguage stores the catalog language that best matches an
// Accept-Language header value. ctx is returned unchanged when nothing matches.
func (t *Translator) WithAcceptLanguage(ctx context.Context, header string) context.Context {
	lang := ParseAcceptLanguage(header, t.SupportedLanguages(), "")
	if lang == "" {
		return ctx
	}
	return WithLanguage(ctx, lang)
}
