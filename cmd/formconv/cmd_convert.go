package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	formconv "github.com/percussion/percussioncms-sub004"
	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/datetime"
	"github.com/percussion/percussioncms-sub004/pkg/number"
)

// converterFlags selects a date/time converter (--pattern) or a numeric one
// (--kind).
type converterFlags struct {
	pattern   string
	typ       string
	kind      string
	min, max  float64
	precision int
	scale     int
}

func (c *converterFlags) registerDateTime(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.pattern, "pattern", "p", "", "date/time pattern, e.g. dd.MM.yyyy")
	cmd.Flags().StringVar(&c.typ, "type", "", "message family: date, time or both (default: inferred from the pattern)")
}

func (c *converterFlags) registerNumber(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.kind, "kind", "k", "", "number kind: Integer, Long, Short, Byte, Double or Float")
	cmd.Flags().Float64Var(&c.min, "conv-min", 0, "converter minimum")
	cmd.Flags().Float64Var(&c.max, "conv-max", 0, "converter maximum")
	cmd.Flags().IntVar(&c.precision, "precision", 0, "maximum significant digits")
	cmd.Flags().IntVar(&c.scale, "scale", 0, "maximum fraction digits")
}

func (a *app) dateTime(c *converterFlags) (*datetime.Converter, error) {
	var opts []formconv.ConverterOption
	switch t := datetime.Type(strings.ToLower(c.typ)); t {
	case "":
	case datetime.TypeDate, datetime.TypeTime, datetime.TypeBoth:
		opts = append(opts, formconv.WithType(t))
	default:
		return nil, fmt.Errorf("unknown --type %q: want date, time or both", c.typ)
	}
	return a.engine.DateTime(c.pattern, a.locale, opts...)
}

func (a *app) number(cmd *cobra.Command, c *converterFlags) (convert.Converter, error) {
	name := c.kind
	if name == "" {
		name = string(number.Integer)
	}
	kind, err := number.ParseKind(name)
	if err != nil {
		return nil, err
	}
	var opts []formconv.ConverterOption
	if cmd.Flags().Changed("conv-min") {
		opts = append(opts, formconv.WithMin(c.min))
	}
	if cmd.Flags().Changed("conv-max") {
		opts = append(opts, formconv.WithMax(c.max))
	}
	if c.precision > 0 || c.scale > 0 {
		opts = append(opts, formconv.WithPrecision(c.precision, c.scale))
	}
	return a.engine.Number(kind, a.locale, opts...)
}

// converter picks the date/time converter when a pattern is set, the numeric
// one when a kind is set, and nil otherwise.
func (a *app) converter(cmd *cobra.Command, c *converterFlags) (convert.Converter, error) {
	switch {
	case c.pattern != "":
		return a.dateTime(c)
	case c.kind != "":
		return a.number(cmd, c)
	default:
		return nil, nil
	}
}

func newParseCmd(a *app) *cobra.Command {
	var flags converterFlags

	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Parse a date/time with a pattern",
		Long: `Parse a date/time with a pattern and print it as RFC 3339.

Lenient variants of the pattern are tried as well, so "3/4/24" parses with
MM/dd/yyyy and "March 4, 2024" with MMM d, yyyy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.dateTime(&flags)
			if err != nil {
				return err
			}
			v, err := a.engine.Convert(conv, args[0], a.label)
			if err != nil {
				return a.reject(args[0], err)
			}
			r := result{Input: args[0]}
			if t, ok := v.(time.Time); ok {
				r.Text = t.Format(time.RFC3339)
				r.Value = r.Text
			}
			return a.print(r)
		},
	}
	flags.registerDateTime(cmd)
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var flags converterFlags

	cmd := &cobra.Command{
		Use:   "format <rfc3339|epoch-millis>",
		Short: "Format an instant with a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.dateTime(&flags)
			if err != nil {
				return err
			}
			t, err := parseInstant(args[0])
			if err != nil {
				return err
			}
			text := conv.Format(t)
			return a.print(result{Input: args[0], Value: text, Text: text})
		},
	}
	flags.registerDateTime(cmd)
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither RFC 3339 nor epoch milliseconds", s)
	}
	return time.UnixMilli(ms), nil
}

func newNumberCmd(a *app) *cobra.Command {
	var flags converterFlags

	cmd := &cobra.Command{
		Use:   "number <input>",
		Short: "Parse a number with the locale separators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.number(cmd, &flags)
			if err != nil {
				return err
			}
			v, err := a.engine.Convert(conv, args[0], a.label)
			if err != nil {
				return a.reject(args[0], err)
			}
			return a.print(result{Input: args[0], Value: v, Text: conv.FormatValue(v)})
		},
	}
	flags.registerNumber(cmd)

	return cmd
}
