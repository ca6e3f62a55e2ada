package locale

import (
	"fmt"
	"strings"
)

// Symbols is an immutable table of locale specific names and separators.
// Month arrays are indexed from January (0); weekday arrays from Sunday (0).
type Symbols struct {
	Months            [12]string
	ShortMonths       [12]string
	Weekdays          [7]string
	ShortWeekdays     [7]string
	Eras              [2]string // BC, AD
	AmPm              [2]string // AM, PM
	DecimalSeparator  string
	GroupingSeparator string
}

// symbolsFile is the on-disk shape of a table. Slices are used so that a
// wrong element count is reported instead of silently truncated.
type symbolsFile struct {
	Months            []string `yaml:"months" json:"months"`
	ShortMonths       []string `yaml:"short_months" json:"short_months"`
	Weekdays          []string `yaml:"weekdays" json:"weekdays"`
	ShortWeekdays     []string `yaml:"short_weekdays" json:"short_weekdays"`
	Eras              []string `yaml:"eras" json:"eras"`
	AmPm              []string `yaml:"ampm" json:"ampm"`
	DecimalSeparator  string   `yaml:"decimal_separator" json:"decimal_separator"`
	GroupingSeparator string   `yaml:"grouping_separator" json:"grouping_separator"`
}

func (f symbolsFile) toSymbols() (Symbols, error) {
	var s Symbols
	if err := copyExact(s.Months[:], f.Months, "months"); err != nil {
		return Symbols{}, err
	}
	if err := copyExact(s.ShortMonths[:], f.ShortMonths, "short_months"); err != nil {
		return Symbols{}, err
	}
	if err := copyExact(s.Weekdays[:], f.Weekdays, "weekdays"); err != nil {
		return Symbols{}, err
	}
	if err := copyExact(s.ShortWeekdays[:], f.ShortWeekdays, "short_weekdays"); err != nil {
		return Symbols{}, err
	}
	if err := copyExact(s.Eras[:], f.Eras, "eras"); err != nil {
		return Symbols{}, err
	}
	if err := copyExact(s.AmPm[:], f.AmPm, "ampm"); err != nil {
		return Symbols{}, err
	}
	s.DecimalSeparator = f.DecimalSeparator
	s.GroupingSeparator = f.GroupingSeparator
	if err := s.Validate(); err != nil {
		return Symbols{}, err
	}
	return s, nil
}

func copyExact(dst []string, src []string, name string) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%w: %s has %d entries, want %d", ErrInvalidSymbols, name, len(src), len(dst))
	}
	copy(dst, src)
	return nil
}

// Validate reports whether every name is present and the separators are
// usable. Decimal and grouping separators must differ.
func (s Symbols) Validate() error {
	groups := []struct {
		name   string
		values []string
	}{
		{"months", s.Months[:]},
		{"short_months", s.ShortMonths[:]},
		{"weekdays", s.Weekdays[:]},
		{"short_weekdays", s.ShortWeekdays[:]},
		{"eras", s.Eras[:]},
		{"ampm", s.AmPm[:]},
	}
	for _, g := range groups {
		for i, v := range g.values {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidSymbols, g.name, i)
			}
		}
	}
	if s.DecimalSeparator == "" {
		return fmt.Errorf("%w: decimal separator is empty", ErrInvalidSymbols)
	}
	if s.DecimalSeparator == s.GroupingSeparator {
		return fmt.Errorf("%w: decimal and grouping separators are both %q", ErrInvalidSymbols, s.DecimalSeparator)
	}
	return nil
}

// MonthName returns the full month name for a 0-based month index.
func (s Symbols) MonthName(month int) string {
	if month < 0 || month >= len(s.Months) {
		return ""
	}
	return s.Months[month]
}

// WeekdayName returns the full weekday name for a 0-based (Sunday) index.
func (s Symbols) WeekdayName(day int) string {
	if day < 0 || day >= len(s.Weekdays) {
		return ""
	}
	return s.Weekdays[day]
}
