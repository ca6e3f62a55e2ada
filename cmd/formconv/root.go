package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	formconv "github.com/percussion/percussioncms-sub004"
	"github.com/percussion/percussioncms-sub004/pkg/config"
)

// errRejected is returned after the failure messages were already printed.
var errRejected = errors.New("input rejected")

type app struct {
	out, errOut io.Writer
	engine      *formconv.Engine

	locale   string
	lang     string
	label    string
	offset   int
	asJSON   bool
	envFiles []string
}

type result struct {
	Input  string   `json:"input,omitempty"`
	Value  any      `json:"value,omitempty"`
	Text   string   `json:"text,omitempty"`
	Errors []string `json:"errors,omitempty"`
	Hints  []string `json:"hints,omitempty"`
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "formconv",
		Short: "Convert and validate form input with locale-aware patterns",
		Long: `Convert and validate form input the way a web form does on submit.

Configuration is read from FORMCONV_* environment variables (optionally
loaded from .env files); flags override the locale and time zone offset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.locale, "locale", "l", "", "locale of month and weekday names and separators (default $FORMCONV_LOCALE)")
	f.StringVar(&a.lang, "lang", "", "language of messages (default: the locale)")
	f.StringVar(&a.label, "label", "Value", "field label used in messages")
	f.IntVar(&a.offset, "offset", 0, "time zone offset in minutes east of UTC (default $FORMCONV_TZ_OFFSET_MINUTES or local time)")
	f.BoolVar(&a.asJSON, "json", false, "print results as JSON")
	f.StringSliceVar(&a.envFiles, "env-file", nil, ".env files to load before reading configuration")

	root.AddCommand(newParseCmd(a))
	root.AddCommand(newFormatCmd(a))
	root.AddCommand(newNumberCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newHintsCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return err
		}
	}
	cfg, err := config.LoadEngine()
	if err != nil {
		return err
	}
	if a.locale != "" {
		cfg.Locale = a.locale
	}
	if cmd.Flags().Changed("offset") {
		cfg.TZOffsetMinutes = strconv.Itoa(a.offset)
	}

	log, err := formconv.NewLogger(cfg, a.errOut)
	if err != nil {
		return err
	}
	a.engine, err = formconv.New(cmd.Context(), cfg, formconv.WithLogger(log))
	return err
}

func (a *app) messageLang() string {
	if a.lang != "" {
		return a.lang
	}
	return a.locale
}

// reject prints the messages carried by err and returns errRejected. Errors
// that carry no message are returned as they are.
func (a *app) reject(input string, err error) error {
	if len(formconv.Messages(err)) == 0 {
		return err
	}
	r := result{Input: input, Errors: a.engine.DescribeAll(a.messageLang(), err)}
	if a.asJSON {
		if perr := a.print(r); perr != nil {
			return perr
		}
		return errRejected
	}
	for _, line := range r.Errors {
		fmt.Fprintln(a.errOut, line)
	}
	return errRejected
}

func (a *app) print(r result) error {
	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	if len(r.Hints) > 0 {
		for _, h := range r.Hints {
			if _, err := fmt.Fprintln(a.out, h); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(a.out, r.Text)
	return err
}
