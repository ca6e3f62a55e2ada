// Package message defines the structured messages produced by converters and
// validators. A Message carries a catalog key and positional arguments; turning
// it into user-facing text is the job of a renderer such as i18n.Translator.
package message

import (
	"fmt"
	"strconv"
	"strings"
)

// Catalog namespaces. Keys are namespace + class + "." + code.
const (
	ConverterNamespace = "org.apache.myfaces.trinidad.convert."
	ValidatorNamespace = "org.apache.myfaces.trinidad.validator."
)

// ConverterKey returns the catalog key for a converter message, for example
// "org.apache.myfaces.trinidad.convert.DateTimeConverter.CONVERT_DATE".
func ConverterKey(class, code string) string {
	return ConverterNamespace + class + "." + code
}

// ValidatorKey returns the catalog key for a validator message.
func ValidatorKey(class, code string) string {
	return ValidatorNamespace + class + "." + code
}

// Message is a catalog key plus the positional arguments for its template.
// Template, when set, replaces the catalog entry.
type Message struct {
	Key      string `json:"key"`
	Template string `json:"template,omitempty"`
	Args     []any  `json:"args,omitempty"`
}

// New returns a message for key with args.
func New(key string, args ...any) Message {
	return Message{Key: key, Args: args}
}

// HasTemplate reports whether the message carries its own template.
func (m Message) HasTemplate() bool { return m.Template != "" }

// String renders the message without a catalog: the custom template if one is
// set, otherwise the key followed by the arguments.
func (m Message) String() string {
	if m.HasTemplate() {
		return Format(m.Template, m.Args...)
	}
	if len(m.Args) == 0 {
		return m.Key
	}
	parts := make([]string, len(m.Args))
	for i, a := range m.Args {
		parts[i] = fmt.Sprint(a)
	}
	return m.Key + " [" + strings.Join(parts, ", ") + "]"
}

// Format substitutes {0}, {1}, ... in template with args. Placeholders
// without a matching argument are left untouched.
func Format(template string, args ...any) string {
	if len(args) == 0 || !strings.Contains(template, "{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		if template[i] != '{' {
			b.WriteByte(template[i])
			i++
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			b.WriteString(template[i:])
			break
		}
		n, err := strconv.Atoi(template[i+1 : i+end])
		if err != nil || n < 0 || n >= len(args) {
			b.WriteByte('{')
			i++
			continue
		}
		fmt.Fprint(&b, args[n])
		i += end + 1
	}
	return b.String()
}
