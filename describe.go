package formconv

import (
	"context"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/i18n"
	"github.com/percussion/percussioncms-sub004/pkg/message"
	"github.com/percussion/percussioncms-sub004/pkg/validator"
)

func (e *Engine) lang(lang string) string {
	if lang == "" {
		return e.cfg.Locale
	}
	return lang
}

// Messages returns the structured messages carried by err: one for a
// conversion failure, one per failure for validation errors. Other errors
// carry none.
func Messages(err error) []message.Message {
	if err == nil {
		return nil
	}
	if cerr, ok := convert.AsConversionError(err); ok {
		return []message.Message{cerr.Message}
	}
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return nil
	}
	out := make([]message.Message, len(verrs))
	for i, v := range verrs {
		out[i] = v.Message
	}
	return out
}

// Describe renders err for display in lang. An empty lang uses the
// configured locale. Errors that carry no message fall back to their
// Error text, and several validation failures yield the first one.
func (e *Engine) Describe(lang string, err error) string {
	if err == nil {
		return ""
	}
	msgs := Messages(err)
	if len(msgs) == 0 {
		return err.Error()
	}
	return e.translator.Render(e.lang(lang), msgs[0])
}

// DescribeContext is Describe in the language stored in ctx by
// i18n.WithLanguage or Translator.WithAcceptLanguage.
func (e *Engine) DescribeContext(ctx context.Context, err error) string {
	lang, _ := i18n.LanguageFrom(ctx)
	return e.Describe(lang, err)
}

// DescribeAll renders every message carried by err.
func (e *Engine) DescribeAll(lang string, err error) []string {
	if err == nil {
		return nil
	}
	msgs := Messages(err)
	if len(msgs) == 0 {
		return []string{err.Error()}
	}
	return e.translator.RenderAll(e.lang(lang), msgs)
}

// Hints renders the pre-submission hints of conv and then of each validator,
// with validator values shown the way conv formats them.
func (e *Engine) Hints(lang string, conv convert.Converter, validators ...validator.Validator) []string {
	var msgs []message.Message
	var f convert.Formatter
	if conv != nil {
		msgs = append(msgs, conv.Hints()...)
		f = conv
	}
	for _, v := range validators {
		msgs = append(msgs, v.Hints(f)...)
	}
	return e.translator.RenderAll(e.lang(lang), msgs)
}
