package i18n

import (
	"context"
	"embed"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// DefaultCatalog returns an adapter over the built-in English and German
// catalog, which covers every message key emitted by the converters and
// validators.
func DefaultCatalog() TranslationAdapter {
	return NewEmbeddedFsAdapter(NewYAMLParser(), catalogFS, "catalog")
}

// NewDefault returns a Translator over the built-in catalog, layered under
// the optional extra sources.
func NewDefault(ctx context.Context, extra []TranslationAdapter, options ...Option) (*Translator, error) {
	sources := append(MultiAdapter{DefaultCatalog()}, extra...)
	return NewTranslator(ctx, sources, options...)
}
