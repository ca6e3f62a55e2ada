package pattern

import "strings"

type field uint16

const (
	fieldYear field = 1 << iota
	fieldMonth
	fieldDay
	fieldHour
	fieldMinute
	fieldSecond
	fieldMilli
	fieldWeekday
	fieldZone
)

// ParseContext carries the state of a single Parse call: the input, a cursor
// that only moves forward and the fields accumulated so far. A context is
// never reused once a token has failed.
type ParseContext struct {
	input string
	pos   int

	year, month, day     int // month is 1-based
	hour, minute, second int
	milli, weekday       int
	offset               int // zone offset in seconds
	set                  field

	isPM, isBC bool
}

// NewParseContext returns a context positioned at the start of input.
func NewParseContext(input string) *ParseContext {
	return &ParseContext{input: input}
}

// Pos returns the cursor position.
func (c *ParseContext) Pos() int { return c.pos }

// Remaining returns the unconsumed input.
func (c *ParseContext) Remaining() string { return c.input[c.pos:] }

// Done reports whether the whole input has been consumed.
func (c *ParseContext) Done() bool { return c.pos == len(c.input) }

func (c *ParseContext) has(f field) bool { return c.set&f != 0 }

func (c *ParseContext) store(f field, dst *int, v int) {
	*dst = v
	c.set |= f
}

// accumulateNumber consumes up to maxLength ASCII digits. It fails when no
// digit is available.
func (c *ParseContext) accumulateNumber(maxLength int) (int, bool) {
	start := c.pos
	v := 0
	for c.pos < len(c.input) && c.pos-start < maxLength {
		ch := c.input[c.pos]
		if ch < '0' || ch > '9' {
			break
		}
		v = v*10 + int(ch-'0')
		c.pos++
	}
	return v, c.pos > start
}

// matchText consumes text if the input continues with it, ignoring case.
func (c *ParseContext) matchText(text string) bool {
	end := c.pos + len(text)
	if end > len(c.input) {
		return false
	}
	if !strings.EqualFold(c.input[c.pos:end], text) {
		return false
	}
	c.pos = end
	return true
}

// matchArray tries each candidate in order and returns the index of the
// first one that matches. Callers order candidates so that a longer name is
// tried before any shorter name it starts with.
func (c *ParseContext) matchArray(candidates []string) (int, bool) {
	for i, cand := range candidates {
		if cand != "" && c.matchText(cand) {
			return i, true
		}
	}
	return -1, false
}

// peek returns the byte under the cursor, or 0 at the end of input.
func (c *ParseContext) peek() byte {
	if c.pos >= len(c.input) {
		return 0
	}
	return c.input[c.pos]
}
