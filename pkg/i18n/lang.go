package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header size handed to the tag parser.
const maxAcceptLanguageLength = 4096

func newMatcher(langs []string) language.Matcher {
	if len(langs) == 0 {
		return nil
	}
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			tag = language.Und
		}
		tags = append(tags, tag)
	}
	return language.NewMatcher(tags)
}

// matchLanguage returns the entry of langs that best serves requested, or ""
// when nothing matches with at least low confidence.
func matchLanguage(m language.Matcher, langs []string, requested string) string {
	if m == nil || len(langs) == 0 || requested == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(requested, "_", "-"))
	if err != nil {
		return ""
	}
	_, idx, conf := m.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(langs) {
		return ""
	}
	return langs[idx]
}

// ParseAcceptLanguage negotiates an Accept-Language header against the
// supported languages. Quality values are honoured and regional tags fall
// back to their base language (en-US matches en).
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}

	m := newMatcher(supportedLangs)
	for _, tag := range tags {
		if _, idx, conf := m.Match(tag); conf != language.No && idx >= 0 {
			return strings.ToLower(supportedLangs[idx])
		}
	}
	return defaultLang
}
