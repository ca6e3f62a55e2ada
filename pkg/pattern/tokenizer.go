package pattern

import (
	"strings"
	"unicode/utf8"
)

// Kind distinguishes field tokens from literal tokens.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindField
)

// Token is one clump of a pattern: a run of a single repeated field letter,
// a run of a repeated non-letter character, or a quoted literal.
type Token struct {
	Kind   Kind
	Letter byte   // field letter, set for KindField
	Count  int    // run length of the field letter
	Text   string // literal text with quoting removed, set for KindLiteral
	Quoted bool   // literal came from a single-quoted section
	Start  int    // byte offset of the source span
	Length int    // byte length of the source span
}

// IsField reports whether the token is a field of the given letter.
func (t Token) IsField(letter byte) bool {
	return t.Kind == KindField && t.Letter == letter
}

// Source returns the pattern text the token was scanned from.
func (t Token) Source(pattern string) string {
	return pattern[t.Start : t.Start+t.Length]
}

func isFieldLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Tokenize splits pattern into tokens. It never fails: unterminated quotes run
// to the end of the pattern. Concatenating every token's source span yields
// the original pattern.
func Tokenize(pattern string) []Token {
	var tokens []Token
	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		if r == '\'' {
			tok := scanQuoted(pattern, i)
			tokens = append(tokens, tok)
			i += tok.Length
			continue
		}

		j, count := i+size, 1
		for j < len(pattern) {
			next, n := utf8.DecodeRuneInString(pattern[j:])
			if next != r {
				break
			}
			j += n
			count++
		}

		if isFieldLetter(r) {
			tokens = append(tokens, Token{Kind: KindField, Letter: byte(r), Count: count, Start: i, Length: j - i})
		} else {
			tokens = append(tokens, Token{Kind: KindLiteral, Text: pattern[i:j], Start: i, Length: j - i})
		}
		i = j
	}
	return tokens
}

// scanQuoted reads a quoted literal starting at pattern[start] == '\''.
// A bare '' is a single quote character; inside a quoted run a doubled quote
// is an escaped quote.
func scanQuoted(pattern string, start int) Token {
	if start+1 < len(pattern) && pattern[start+1] == '\'' {
		return Token{Kind: KindLiteral, Text: "'", Quoted: true, Start: start, Length: 2}
	}

	var b strings.Builder
	i := start + 1
	for i < len(pattern) {
		if pattern[i] == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			i++
			return Token{Kind: KindLiteral, Text: b.String(), Quoted: true, Start: start, Length: i - start}
		}
		b.WriteByte(pattern[i])
		i++
	}
	return Token{Kind: KindLiteral, Text: b.String(), Quoted: true, Start: start, Length: len(pattern) - start}
}

// render writes tokens back to pattern syntax.
func render(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		switch {
		case t.Kind == KindField:
			b.WriteString(strings.Repeat(string(t.Letter), t.Count))
		case t.Quoted && t.Text == "'":
			b.WriteString("''")
		case t.Quoted:
			b.WriteByte('\'')
			b.WriteString(strings.ReplaceAll(t.Text, "'", "''"))
			b.WriteByte('\'')
		default:
			b.WriteString(t.Text)
		}
	}
	return b.String()
}
