package validator

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// ParseList reads a list of codes from configuration text. It accepts a JSON
// array (["sat","sun"]), a bracketed list with single quotes (['sat','sun'])
// and plain comma separated text (sat, sun). Blank items are dropped.
func ParseList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	open, closed := strings.HasPrefix(s, "["), strings.HasSuffix(s, "]")
	if open != closed {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidList, s)
	}
	if !open {
		return splitItems(s)
	}

	var items []string
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return compact(items), nil
	}
	return splitItems(s[1 : len(s)-1])
}

func splitItems(s string) ([]string, error) {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if n := len(item); n >= 2 && (item[0] == '\'' || item[0] == '"') {
			if item[n-1] != item[0] {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrInvalidList, item)
			}
			item = item[1 : n-1]
		}
		if strings.ContainsAny(item, `'"[]`) {
			return nil, fmt.Errorf("%w: unexpected character in %q", ErrInvalidList, item)
		}
		if item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}

func compact(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
