// Package datetime provides the date/time converter.
//
// A Converter owns a primary pattern and the variants derived from it, so a
// field declared as "MM/dd/yyyy" also accepts "03-15-2024" and "03.15.2024".
// Format always uses the primary pattern. Parse trims its input, treats blank
// input as "no value" and reports failures as *convert.ConversionError keyed
// DateTimeConverter.CONVERT_DATE, CONVERT_TIME or CONVERT_BOTH with the label,
// the raw text and an example rendered with the primary pattern.
//
//	c := datetime.New("MM/dd/yyyy", locale.English(), datetime.WithOffset(60))
//	t, err := c.Parse(" 03/15/2024 ", "Start date")
//	if err != nil {
//		var ce *convert.ConversionError
//		errors.As(err, &ce)
//	}
//	s := c.Format(*t)
package datetime
