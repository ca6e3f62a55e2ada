package number

import (
	"fmt"
	"strings"
)

// Kind names a numeric converter. It is also the prefix of its message class.
type Kind string

const (
	Integer Kind = "Integer"
	Long    Kind = "Long"
	Short   Kind = "Short"
	Byte    Kind = "Byte"
	Double  Kind = "Double"
	Float   Kind = "Float"
)

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{Integer, Long, Short, Byte, Double, Float}
}

// ParseKind resolves a case-insensitive kind name such as "integer".
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(name, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Class returns the message class, for example "IntegerConverter".
func (k Kind) Class() string { return string(k) + "Converter" }

// Integral reports whether the kind rejects fractional values.
func (k Kind) Integral() bool { return k != Double && k != Float }

func (k Kind) bits() int {
	if k == Float {
		return 32
	}
	return 64
}
