package pattern

import (
	"strings"
	"time"

	"github.com/percussion/percussioncms-sub004/pkg/locale"
)

// Pattern is a compiled, immutable pattern.
type Pattern struct {
	source string
	tokens []Token
}

// Compile tokenizes source. Compilation is total; unsupported letters are
// kept and handled leniently by Format and strictly by Parse.
func Compile(source string) Pattern {
	return Pattern{source: source, tokens: Tokenize(source)}
}

// String returns the pattern source.
func (p Pattern) String() string { return p.source }

// Tokens returns a copy of the compiled tokens.
func (p Pattern) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// HasField reports whether any field token uses one of letters.
func (p Pattern) HasField(letters string) bool {
	for _, t := range p.tokens {
		if t.Kind == KindField && strings.IndexByte(letters, t.Letter) >= 0 {
			return true
		}
	}
	return false
}

// HasFieldCount reports whether the pattern contains letter with exactly count repetitions.
func (p Pattern) HasFieldCount(letter byte, count int) bool {
	for _, t := range p.tokens {
		if t.IsField(letter) && t.Count == count {
			return true
		}
	}
	return false
}

// WithFieldCount returns a pattern where every run of letter with length from
// is rewritten to length to.
func (p Pattern) WithFieldCount(letter byte, from, to int) Pattern {
	tokens := p.Tokens()
	for i, t := range tokens {
		if t.IsField(letter) && t.Count == from {
			tokens[i].Count = to
		}
	}
	return Compile(render(tokens))
}

// HasLiteral reports whether an unquoted literal contains s.
func (p Pattern) HasLiteral(s string) bool {
	for _, t := range p.tokens {
		if t.Kind == KindLiteral && !t.Quoted && strings.Contains(t.Text, s) {
			return true
		}
	}
	return false
}

// ReplaceLiteral substitutes old with replacement in unquoted literals only.
func (p Pattern) ReplaceLiteral(old, replacement string) Pattern {
	tokens := p.Tokens()
	for i, t := range tokens {
		if t.Kind == KindLiteral && !t.Quoted {
			tokens[i].Text = strings.ReplaceAll(t.Text, old, replacement)
		}
	}
	return Compile(render(tokens))
}

// Format renders t field by field. t is formatted in its own location.
func (p Pattern) Format(t time.Time, sym *locale.Symbols) string {
	var b strings.Builder
	for _, tok := range p.tokens {
		appendToken(&b, tok, sym, t)
	}
	return b.String()
}
