package datetime

import "github.com/percussion/percussioncms-sub004/pkg/pattern"

var separators = [...]string{"/", "-", "."}

// Variants derives the patterns a converter accepts, in the order they are
// tried. An abbreviated month also accepts a two and one letter numeric
// month. Every pattern using one of / - . also accepts the other two.
// Duplicates are dropped.
func Variants(primary pattern.Pattern) []pattern.Pattern {
	out := []pattern.Pattern{primary}
	seen := map[string]bool{primary.String(): true}
	add := func(p pattern.Pattern) {
		if !seen[p.String()] {
			seen[p.String()] = true
			out = append(out, p)
		}
	}

	if primary.HasFieldCount('M', 3) {
		add(primary.WithFieldCount('M', 3, 2))
		add(primary.WithFieldCount('M', 3, 1))
	}

	base := len(out)
	for i := 0; i < base; i++ {
		p := out[i]
		for _, sep := range separators {
			if !p.HasLiteral(sep) {
				continue
			}
			for _, other := range separators {
				if other != sep {
					add(p.ReplaceLiteral(sep, other))
				}
			}
		}
	}
	return out
}
