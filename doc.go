// Package formconv converts and validates form input against locale-aware
// date/time patterns and numeric rules, and renders failures and hints
// through a message catalog.
//
// An Engine ties the pieces together: a locale registry of symbol tables, a
// translator over the built-in catalog (plus optional site catalogs) and a
// cache of compiled date/time converters.
//
//	cfg, err := config.LoadEngine()
//	if err != nil {
//		return err
//	}
//	engine, err := formconv.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	conv, err := engine.DateTime("dd.MM.yyyy", "de")
//	if err != nil {
//		return err
//	}
//	noWeekends := validator.NewDateRestriction([]string{"sat", "sun"}, nil, validator.WithFormatter(conv))
//
//	v, err := engine.Process(conv, r.FormValue("start"), "Start", noWeekends)
//	if err != nil {
//		// "Start: "31.02.2024" ist kein gültiges Datum. Beispiel: 29.11.1998"
//		msg := engine.Describe("de", err)
//		...
//	}
//
// Converters and validators live in their own packages (datetime, number,
// validator) and can be used without an Engine; they report failures as
// structured messages that any catalog can render.
package formconv
