// Package convert holds the contract shared by the date/time and numeric
// converters and the error they report.
package convert

import "github.com/percussion/percussioncms-sub004/pkg/message"

// Formatter renders a typed value the way its converter would display it.
// Validators use it to show bounds in the same notation the user types.
type Formatter interface {
	FormatValue(v any) string
}

// Converter turns raw text into a typed value and back.
//
// ParseValue returns (nil, nil) for blank input. A non-nil error is always a
// *ConversionError.
type Converter interface {
	Formatter
	ParseValue(input, label string) (any, error)
	Hints() []message.Message
}
