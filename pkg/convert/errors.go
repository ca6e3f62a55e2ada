package convert

import (
	"errors"
	"fmt"

	"github.com/percussion/percussioncms-sub004/pkg/message"
)

// Conversion failure kinds. A *ConversionError unwraps to one of them.
var (
	ErrConvert = errors.New("value cannot be converted")
	ErrMaximum = errors.New("value is above the maximum")
	ErrMinimum = errors.New("value is below the minimum")
)

// ConversionError reports raw input that could not be turned into a typed
// value. It carries everything a renderer needs to build a localized sentence.
type ConversionError struct {
	Kind    error           `json:"-"`
	Code    string          `json:"code"`
	Label   string          `json:"label"`
	Value   string          `json:"value"`
	Message message.Message `json:"message"`
}

func (e *ConversionError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("%q: %v", e.Value, e.Kind)
	}
	return fmt.Sprintf("%s: %q: %v", e.Label, e.Value, e.Kind)
}

func (e *ConversionError) Unwrap() error { return e.Kind }

// AsConversionError extracts a *ConversionError from err.
func AsConversionError(err error) (*ConversionError, bool) {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
