package validator

import (
	"fmt"
	"regexp"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

const regexpClass = "RegExpValidator"

// RegExp requires a string to match a regular expression over its whole length.
type RegExp struct {
	source string
	re     *regexp.Regexp
	opts   options
}

// NewRegExp compiles pattern. The expression is not anchored; a value passes
// only when the longest leftmost match spans the entire value.
func NewRegExp(pattern string, opts ...Option) (*RegExp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	re.Longest()
	return &RegExp{source: pattern, re: re, opts: newOptions(opts)}, nil
}

// Pattern returns the expression source.
func (r *RegExp) Pattern() string { return r.source }

// Matches reports whether s matches from its first to its last character.
func (r *RegExp) Matches(s string) bool {
	loc := r.re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

func (r *RegExp) Validate(value any, label string) (any, error) {
	if isNil(value) {
		return value, nil
	}
	s, ok := toString(value)
	if !ok {
		return nil, unsupported(value)
	}
	if r.Matches(s) {
		return value, nil
	}

	err := newError(ErrPatternMismatch, regexpClass, "NO_MATCH", label, value, label, s, r.source)
	err.Message = r.opts.overrides.Apply(message.OverrideDetail, err.Message)
	return nil, err
}

func (r *RegExp) Hints(convert.Formatter) []message.Message {
	m := message.New(message.ValidatorKey(regexpClass, "NO_MATCH_HINT"), r.source)
	return []message.Message{r.opts.overrides.Apply(message.OverrideHint, m)}
}
