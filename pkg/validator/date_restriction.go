package validator

import (
	"sort"
	"strings"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

const dateRestrictionClass = "DateRestrictionValidator"

var (
	weekdayCodes = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
	monthCodes   = [12]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
)

// DateRestriction rejects dates on disallowed weekdays or in disallowed
// months. Codes are three letters, case-insensitive: sun..sat and jan..dec.
// Unknown codes are ignored.
type DateRestriction struct {
	weekdays []int // time.Weekday values, ascending
	months   []int // 0-based months, ascending
	opts     options
}

// NewDateRestriction returns a restriction validator.
func NewDateRestriction(weekdays, months []string, opts ...Option) *DateRestriction {
	return &DateRestriction{
		weekdays: codeIndices(weekdays, weekdayCodes[:]),
		months:   codeIndices(months, monthCodes[:]),
		opts:     newOptions(opts),
	}
}

// NewDateRestrictionFromLists parses both lists with ParseList.
func NewDateRestrictionFromLists(weekdays, months string, opts ...Option) (*DateRestriction, error) {
	days, err := ParseList(weekdays)
	if err != nil {
		return nil, err
	}
	ms, err := ParseList(months)
	if err != nil {
		return nil, err
	}
	return NewDateRestriction(days, ms, opts...), nil
}

// codeIndices maps codes to their positions in table, dropping unknown codes
// and duplicates.
func codeIndices(codes []string, table []string) []int {
	seen := make(map[int]bool, len(codes))
	var out []int
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		for i, known := range table {
			if code == known && !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	sort.Ints(out)
	return out
}

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// Weekdays returns the disallowed weekday codes that were recognised.
func (d *DateRestriction) Weekdays() []string {
	out := make([]string, len(d.weekdays))
	for i, w := range d.weekdays {
		out[i] = weekdayCodes[w]
	}
	return out
}

// Months returns the disallowed month codes that were recognised.
func (d *DateRestriction) Months() []string {
	out := make([]string, len(d.months))
	for i, m := range d.months {
		out[i] = monthCodes[m]
	}
	return out
}

func (d *DateRestriction) Validate(value any, label string) (any, error) {
	if isNil(value) {
		return value, nil
	}
	t, ok := toTime(value)
	if !ok {
		return nil, unsupported(value)
	}

	f := d.opts.formatter
	sym := symbolsOf(f)
	shown := t.Format(fallbackLayout)
	if f != nil {
		shown = f.FormatValue(t)
	}

	if wd := int(t.Weekday()); contains(d.weekdays, wd) {
		err := newError(ErrRestricted, dateRestrictionClass, "WEEKDAY", label, value, label, shown, sym.WeekdayName(wd))
		err.Message = d.opts.overrides.Apply(message.OverrideDays, err.Message)
		return nil, err
	}
	if m := int(t.Month()) - 1; contains(d.months, m) {
		err := newError(ErrRestricted, dateRestrictionClass, "MONTH", label, value, label, shown, sym.MonthName(m))
		err.Message = d.opts.overrides.Apply(message.OverrideMonth, err.Message)
		return nil, err
	}
	return value, nil
}

// Hints lists the disallowed weekdays and months by their full localized
// names, taken from f when it carries a locale table.
func (d *DateRestriction) Hints(f convert.Formatter) []message.Message {
	if f == nil {
		f = d.opts.formatter
	}
	sym := symbolsOf(f)

	var hints []message.Message
	if len(d.weekdays) > 0 {
		names := make([]string, len(d.weekdays))
		for i, w := range d.weekdays {
			names[i] = sym.WeekdayName(w)
		}
		m := message.New(message.ValidatorKey(dateRestrictionClass, "WEEKDAY_HINT"), strings.Join(names, ", "))
		hints = append(hints, d.opts.overrides.Apply(message.OverrideHint, m))
	}
	if len(d.months) > 0 {
		names := make([]string, len(d.months))
		for i, m := range d.months {
			names[i] = sym.MonthName(m)
		}
		m := message.New(message.ValidatorKey(dateRestrictionClass, "MONTH_HINT"), strings.Join(names, ", "))
		hints = append(hints, d.opts.overrides.Apply(message.OverrideHint, m))
	}
	return hints
}
