package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/datetime"
	"github.com/percussion/percussioncms-sub004/pkg/validator"
)

var errNeedsPattern = errors.New("--after and --before need --pattern")

// constraintFlags describes the validators to run after conversion.
type constraintFlags struct {
	minLength, maxLength int
	regexp               string
	min, max             float64
	after, before        string
	notWeekdays          string
	notMonths            string
}

func (c *constraintFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&c.minLength, "min-length", 0, "minimum number of characters")
	f.IntVar(&c.maxLength, "max-length", 0, "maximum number of characters")
	f.StringVar(&c.regexp, "regexp", "", "regular expression the whole value must match")
	f.Float64Var(&c.min, "min", 0, "smallest allowed number")
	f.Float64Var(&c.max, "max", 0, "largest allowed number")
	f.StringVar(&c.after, "after", "", "earliest allowed date, written in --pattern")
	f.StringVar(&c.before, "before", "", "latest allowed date, written in --pattern")
	f.StringVar(&c.notWeekdays, "not-weekdays", "", "disallowed weekdays, e.g. sat,sun")
	f.StringVar(&c.notMonths, "not-months", "", "disallowed months, e.g. jul,aug")
}

// build returns the validators selected on cmd. Values in messages are shown
// the way conv formats them.
func (c *constraintFlags) build(cmd *cobra.Command, conv convert.Converter) ([]validator.Validator, error) {
	changed := cmd.Flags().Changed
	var opts []validator.Option
	if conv != nil {
		opts = append(opts, validator.WithFormatter(conv))
	}

	var out []validator.Validator
	if changed("min-length") || changed("max-length") {
		var lo, hi *int
		if changed("min-length") {
			lo = validator.Bound(c.minLength)
		}
		if changed("max-length") {
			hi = validator.Bound(c.maxLength)
		}
		out = append(out, validator.NewLength(lo, hi, opts...))
	}
	if c.regexp != "" {
		re, err := validator.NewRegExp(c.regexp, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	if changed("min") || changed("max") {
		var lo, hi *float64
		if changed("min") {
			lo = validator.Bound(c.min)
		}
		if changed("max") {
			hi = validator.Bound(c.max)
		}
		out = append(out, validator.NewRange(lo, hi, opts...))
	}
	if c.after != "" || c.before != "" {
		dc, ok := conv.(*datetime.Converter)
		if !ok {
			return nil, errNeedsPattern
		}
		lo, err := boundDate(dc, c.after, "after")
		if err != nil {
			return nil, err
		}
		hi, err := boundDate(dc, c.before, "before")
		if err != nil {
			return nil, err
		}
		out = append(out, validator.NewDateTimeRangeBetween(lo, hi, opts...))
	}
	if c.notWeekdays != "" || c.notMonths != "" {
		dr, err := validator.NewDateRestrictionFromLists(c.notWeekdays, c.notMonths, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, dr)
	}
	return out, nil
}

func boundDate(dc *datetime.Converter, s, flag string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := dc.Parse(s, "--"+flag)
	if err != nil {
		return time.Time{}, err
	}
	return *t, nil
}

func newValidateCmd(a *app) *cobra.Command {
	var (
		conv        converterFlags
		constraints constraintFlags
	)

	cmd := &cobra.Command{
		Use:   "validate <input>",
		Short: "Convert a value and run validators on it",
		Long: `Convert a value and run validators on it.

With --pattern the input is a date/time, with --kind a number, and plain text
otherwise. Validators run in flag order: length, regexp, range, date range,
date restriction. The first failure is reported.`,
		Example: `  formconv validate --pattern dd.MM.yyyy --not-weekdays sat,sun -l de 01.06.2024
  formconv validate --kind integer --min 1 --max 10 42
  formconv validate --min-length 3 --regexp '[A-Z]+' AB`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.converter(cmd, &conv)
			if err != nil {
				return err
			}
			validators, err := constraints.build(cmd, c)
			if err != nil {
				return a.reject(args[0], err)
			}

			var v any = strings.TrimSpace(args[0])
			if c != nil {
				v, err = a.engine.Process(c, args[0], a.label, validators...)
			} else {
				v, err = a.engine.Validate(v, a.label, validators...)
			}
			if err != nil {
				return a.reject(args[0], err)
			}

			r := result{Input: args[0], Value: v, Text: "ok"}
			if t, ok := v.(time.Time); ok {
				r.Value = t.Format(time.RFC3339)
			}
			return a.print(r)
		},
	}
	conv.registerDateTime(cmd)
	conv.registerNumber(cmd)
	constraints.register(cmd)

	return cmd
}

func newHintsCmd(a *app) *cobra.Command {
	var (
		conv        converterFlags
		constraints constraintFlags
	)

	cmd := &cobra.Command{
		Use:   "hints",
		Short: "Print the input hints for a converter and validators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.converter(cmd, &conv)
			if err != nil {
				return err
			}
			validators, err := constraints.build(cmd, c)
			if err != nil {
				return err
			}
			return a.print(result{Hints: a.engine.Hints(a.messageLang(), c, validators...)})
		},
	}
	conv.registerDateTime(cmd)
	conv.registerNumber(cmd)
	constraints.register(cmd)

	return cmd
}
