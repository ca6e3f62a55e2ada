// Package number provides the Integer, Long, Short, Byte, Double and Float
// converters.
//
// Input is trimmed, must not start or end with the locale grouping separator,
// and is normalised by dropping grouping separators and mapping the locale
// decimal separator to '.'. Exponents are rejected, integral kinds reject
// non-zero fractions, and values outside the inclusive bounds fail with the
// MAXIMUM or MINIMUM message of the kind, for example
// IntegerConverter.MAXIMUM with the label, the raw text and the bound.
//
// Precision and scale limits, when configured, are enforced: input with too
// many significant or fraction digits is a CONVERT failure.
package number
