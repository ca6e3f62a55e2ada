// Package locale supplies the per-locale symbol tables consumed by the pattern
// engine and the converters: month and weekday names (full and abbreviated),
// era and AM/PM designators, and the decimal and grouping separators.
//
// Tables are immutable once built. A Registry holds any number of them and
// resolves a requested BCP 47 tag to the closest registered table using
// golang.org/x/text/language matching, so "en-GB" falls back to "en" and
// "de-AT" to "de".
//
// # Usage
//
//	reg := locale.NewRegistry()
//	sym, err := reg.Lookup("de-AT")
//	if err != nil {
//		return err
//	}
//	fmt.Println(sym.Months[2]) // "März"
//
// Additional locales can be loaded from YAML or JSON files:
//
//	tables, err := locale.LoadFile(ctx, "./symbols.yaml")
//	if err != nil {
//		return err
//	}
//	for tag, sym := range tables {
//		_ = reg.Register(tag, sym)
//	}
//
// # Concurrency
//
// Symbols values are plain data and safe to share. Registry lookups take a read
// lock; registration is expected to happen during start-up.
package locale
