// Package pattern implements the date/time pattern engine: a tokenizer that
// groups a pattern into runs of field letters and literals, a formatter that
// renders a time.Time field by field, and a two-phase parser that accumulates
// fields leniently and then rejects anything the calendar would normalise.
//
// Pattern letters:
//
//	y  year (yy truncates to two digits)     M  month (M, MM numeric; MMM short; MMMM full)
//	d  day of month                          E  weekday (EEE short; EEEE full)
//	a  AM/PM marker                          G  era designator
//	h  hour 1-12     K  hour 0-11            H  hour 0-23      k  hour 1-24
//	m  minute        s  second               S  millisecond
//	z  GMT+hh:mm     Z  +hhmm
//
// Text between single quotes is literal; two adjacent single quotes produce a
// quote character. Any other letter is accepted: it formats as empty and must
// appear verbatim when parsing.
//
// # Usage
//
//	p := pattern.Compile("dd MMM yyyy HH:mm")
//	sym := locale.English()
//	s := p.Format(time.Now(), &sym)
//
//	t, ok := p.Parse("05 Mar 2024 13:30", &sym, pattern.ParseOptions{Location: time.UTC})
//
// A compiled Pattern is immutable and safe for concurrent use. Every Parse call
// allocates its own ParseContext.
package pattern
