package pattern

import (
	"sort"
	"time"

	"github.com/percussion/percussioncms-sub004/pkg/locale"
)

// ParseOptions controls how accumulated fields become a time.Time.
type ParseOptions struct {
	// Location for the resulting value. A parsed z or Z field overrides it.
	// Nil means time.Local.
	Location *time.Location
	// TwoDigitYearStart is the first year of the 100 year window used to
	// expand two-digit years. Zero selects the sliding window around Now.
	TwoDigitYearStart int
	// Now supplies the current time for the sliding window. Nil means time.Now.
	Now func() time.Time
}

func (o ParseOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o ParseOptions) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.Local
}

// ExpandTwoDigitYear maps a two-digit year into a full year. With a pivot the
// result is the first year not before pivot ending in year. Without one the
// year lands in the last century unless that is more than 80 years ago.
func ExpandTwoDigitYear(year, pivot int, now time.Time) int {
	if pivot > 0 {
		year += pivot - pivot%100
		if year < pivot {
			year += 100
		}
		return year
	}
	current := now.Year()
	year += current - current%100 - 100
	if year+80 < current {
		year += 100
	}
	return year
}

// Parse reads input against the pattern. The whole input must be consumed
// and the resulting date must not be normalised by the calendar, so
// "2023-02-29" fails rather than becoming March 1st.
func (p Pattern) Parse(input string, sym *locale.Symbols, opts ParseOptions) (time.Time, bool) {
	ctx := NewParseContext(input)
	for _, tok := range p.tokens {
		if !ParseToken(tok, p.source, sym, ctx, opts) {
			return time.Time{}, false
		}
	}
	if !ctx.Done() {
		return time.Time{}, false
	}
	return ctx.resolve(opts)
}

// ParseToken consumes the input for one token and records the field value.
// It returns false when the input does not match; the context must then be
// discarded.
func ParseToken(tok Token, source string, sym *locale.Symbols, ctx *ParseContext, opts ParseOptions) bool {
	if tok.Kind == KindLiteral {
		return ctx.matchText(tok.Text)
	}

	n := tok.Count
	switch tok.Letter {
	case 'y':
		return parseYear(tok, ctx, opts)
	case 'M':
		if n <= 2 {
			v, ok := ctx.accumulateNumber(2)
			if !ok {
				return false
			}
			ctx.store(fieldMonth, &ctx.month, v)
			return true
		}
		names := sym.Months[:]
		if n == 3 {
			names = sym.ShortMonths[:]
		}
		idx, ok := matchLongestFirst(ctx, names)
		if !ok {
			return false
		}
		ctx.store(fieldMonth, &ctx.month, idx+1)
		return true
	case 'E':
		names := sym.Weekdays[:]
		if n <= 3 {
			names = sym.ShortWeekdays[:]
		}
		idx, ok := matchLongestFirst(ctx, names)
		if !ok {
			return false
		}
		ctx.store(fieldWeekday, &ctx.weekday, idx)
		return true
	case 'G':
		idx, ok := ctx.matchArray(sym.Eras[:])
		if !ok {
			return false
		}
		ctx.isBC = idx == 0
		return true
	case 'a':
		idx, ok := ctx.matchArray(sym.AmPm[:])
		if !ok {
			return false
		}
		ctx.isPM = idx == 1
		return true
	case 'd':
		return accumulateInto(ctx, fieldDay, &ctx.day, 2)
	case 'H', 'K':
		return accumulateInto(ctx, fieldHour, &ctx.hour, 2)
	case 'h':
		if !accumulateInto(ctx, fieldHour, &ctx.hour, 2) {
			return false
		}
		if ctx.hour == 12 {
			ctx.hour = 0
		}
		return true
	case 'k':
		if !accumulateInto(ctx, fieldHour, &ctx.hour, 2) {
			return false
		}
		if ctx.hour == 24 {
			ctx.hour = 0
		}
		return true
	case 'm':
		return accumulateInto(ctx, fieldMinute, &ctx.minute, 2)
	case 's':
		return accumulateInto(ctx, fieldSecond, &ctx.second, 2)
	case 'S':
		return accumulateInto(ctx, fieldMilli, &ctx.milli, 3)
	case 'z':
		return parseGMTOffset(ctx)
	case 'Z':
		return parseRFC822Offset(ctx)
	default:
		return ctx.matchText(tok.Source(source))
	}
}

func accumulateInto(ctx *ParseContext, f field, dst *int, maxLength int) bool {
	v, ok := ctx.accumulateNumber(maxLength)
	if !ok {
		return false
	}
	ctx.store(f, dst, v)
	return true
}

func parseYear(tok Token, ctx *ParseContext, opts ParseOptions) bool {
	start := ctx.Pos()
	year, ok := ctx.accumulateNumber(4)
	if !ok {
		return false
	}
	consumed := ctx.Pos() - start

	// A two letter pattern must not swallow a short three or four digit run
	// such as "024".
	if tok.Count <= 2 && consumed > 2 && year <= 999 {
		return false
	}
	if tok.Count == 4 && consumed == 3 {
		return false
	}
	if consumed <= 2 {
		year = ExpandTwoDigitYear(year, opts.TwoDigitYearStart, opts.now())
	}
	if year == 0 {
		return false
	}
	ctx.store(fieldYear, &ctx.year, year)
	return true
}

// parseGMTOffset reads "GMT" optionally followed by +hh:mm or -hh:mm.
func parseGMTOffset(ctx *ParseContext) bool {
	if !ctx.matchText("GMT") {
		return false
	}
	sign := ctx.peek()
	if sign != '+' && sign != '-' {
		ctx.store(fieldZone, &ctx.offset, 0)
		return true
	}
	ctx.pos++
	hours, ok := exactDigits(ctx, 2)
	if !ok || !ctx.matchText(":") {
		return false
	}
	minutes, ok := exactDigits(ctx, 2)
	if !ok {
		return false
	}
	offset := (hours*60 + minutes) * 60
	if sign == '-' {
		offset = -offset
	}
	ctx.store(fieldZone, &ctx.offset, offset)
	return true
}

// parseRFC822Offset reads exactly five characters: a sign and hhmm.
func parseRFC822Offset(ctx *ParseContext) bool {
	if len(ctx.Remaining()) < 5 {
		return false
	}
	sign := ctx.peek()
	if sign != '+' && sign != '-' {
		return false
	}
	ctx.pos++
	hours, ok := exactDigits(ctx, 2)
	if !ok {
		return false
	}
	minutes, ok := exactDigits(ctx, 2)
	if !ok {
		return false
	}
	offset := (hours*60 + minutes) * 60
	if sign == '-' {
		offset = -offset
	}
	ctx.store(fieldZone, &ctx.offset, offset)
	return true
}

func exactDigits(ctx *ParseContext, n int) (int, bool) {
	start := ctx.Pos()
	v, ok := ctx.accumulateNumber(n)
	return v, ok && ctx.Pos()-start == n
}

// matchLongestFirst offers names to matchArray longest first so that a name
// is never shadowed by a shorter prefix of it, and maps the result back to
// the original index.
func matchLongestFirst(ctx *ParseContext, names []string) (int, bool) {
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return len(names[order[a]]) > len(names[order[b]]) })

	ordered := make([]string, len(names))
	for i, idx := range order {
		ordered[i] = names[idx]
	}
	i, ok := ctx.matchArray(ordered)
	if !ok {
		return -1, false
	}
	return order[i], true
}

// resolve applies the accumulated fields to a scratch time and reads them
// back. Any difference means the calendar normalised an invalid value.
func (c *ParseContext) resolve(opts ParseOptions) (time.Time, bool) {
	year, month, day := 1970, 1, 1
	if c.has(fieldYear) {
		year = c.year
		if c.isBC {
			year = 1 - year
		}
	}
	if c.has(fieldMonth) {
		month = c.month
	}
	if c.has(fieldDay) {
		day = c.day
	}
	hour := c.hour
	if c.isPM && hour < 12 {
		hour += 12
	}

	loc := opts.location()
	if c.has(fieldZone) {
		loc = time.FixedZone("", c.offset)
	}

	t := time.Date(year, time.Month(month), day, hour, c.minute, c.second, c.milli*int(time.Millisecond), loc)

	switch {
	case c.has(fieldYear) && t.Year() != year:
		return time.Time{}, false
	case c.has(fieldMonth) && int(t.Month()) != month:
		return time.Time{}, false
	case c.has(fieldDay) && t.Day() != day:
		return time.Time{}, false
	case c.has(fieldHour) && t.Hour() != hour:
		return time.Time{}, false
	case c.has(fieldMinute) && t.Minute() != c.minute:
		return time.Time{}, false
	case c.has(fieldSecond) && t.Second() != c.second:
		return time.Time{}, false
	case c.has(fieldMilli) && t.Nanosecond()/int(time.Millisecond) != c.milli:
		return time.Time{}, false
	case c.has(fieldWeekday) && int(t.Weekday()) != c.weekday:
		return time.Time{}, false
	}
	return t, true
}
