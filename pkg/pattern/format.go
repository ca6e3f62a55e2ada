package pattern

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/percussion/percussioncms-sub004/pkg/locale"
)

// adEpoch is the first instant of year 1 AD. Values before it belong to the BC era.
var adEpoch = sync.OnceValue(func() time.Time {
	return time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
})

// isBC compares the wall clock of t, not its instant, against the AD epoch so
// that the era does not depend on the zone offset.
func isBC(t time.Time) bool {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return wall.Before(adEpoch())
}

// eraYear returns the year as displayed with an era designator: 0 is 1 BC,
// -1 is 2 BC and so on.
func eraYear(t time.Time) int {
	if isBC(t) {
		return 1 - t.Year()
	}
	return t.Year()
}

func appendToken(b *strings.Builder, tok Token, sym *locale.Symbols, t time.Time) {
	if tok.Kind == KindLiteral {
		b.WriteString(tok.Text)
		return
	}

	n := tok.Count
	switch tok.Letter {
	case 'y':
		year := eraYear(t)
		if n <= 2 {
			appendPadded(b, year%100, 2)
		} else {
			appendPadded(b, year, n)
		}
	case 'M':
		month := int(t.Month()) - 1
		switch {
		case n <= 2:
			appendPadded(b, month+1, n)
		case n == 3:
			b.WriteString(sym.ShortMonths[month])
		default:
			b.WriteString(sym.Months[month])
		}
	case 'd':
		appendPadded(b, t.Day(), n)
	case 'E':
		if n <= 3 {
			b.WriteString(sym.ShortWeekdays[t.Weekday()])
		} else {
			b.WriteString(sym.Weekdays[t.Weekday()])
		}
	case 'a':
		if t.Hour() >= 12 {
			b.WriteString(sym.AmPm[1])
		} else {
			b.WriteString(sym.AmPm[0])
		}
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		appendPadded(b, h, n)
	case 'K':
		appendPadded(b, t.Hour()%12, n)
	case 'H':
		appendPadded(b, t.Hour(), n)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		appendPadded(b, h, n)
	case 'm':
		appendPadded(b, t.Minute(), n)
	case 's':
		appendPadded(b, t.Second(), n)
	case 'S':
		appendPadded(b, t.Nanosecond()/int(time.Millisecond), n)
	case 'G':
		if isBC(t) {
			b.WriteString(sym.Eras[0])
		} else {
			b.WriteString(sym.Eras[1])
		}
	case 'z':
		b.WriteString("GMT")
		if _, offset := t.Zone(); offset != 0 {
			appendOffset(b, offset, true)
		}
	case 'Z':
		_, offset := t.Zone()
		appendOffset(b, offset, false)
	default:
		// Unsupported letters render as nothing.
	}
}

// appendOffset writes a zone offset in seconds as +hh:mm (colon) or +hhmm.
func appendOffset(b *strings.Builder, offset int, colon bool) {
	if offset < 0 {
		b.WriteByte('-')
		offset = -offset
	} else {
		b.WriteByte('+')
	}
	minutes := offset / 60
	appendPadded(b, minutes/60, 2)
	if colon {
		b.WriteByte(':')
	}
	appendPadded(b, minutes%60, 2)
}

// appendPadded writes n left-padded with zeros to at least width digits.
func appendPadded(b *strings.Builder, n, width int) {
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
