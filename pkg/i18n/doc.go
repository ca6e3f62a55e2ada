// Package i18n renders the structured messages produced by converters and
// validators into localized text.
//
// A Translator loads a catalog through a TranslationAdapter (in-memory map,
// single file, directory, embed.FS, or several of those merged) and parses
// YAML or JSON. Catalog keys are looked up as flat dotted keys first, such as
// org.apache.myfaces.trinidad.convert.DateTimeConverter.CONVERT_DATE, and then
// as a path through nested maps.
//
// Templates use positional placeholders {0}, {1}, ... for message arguments;
// T and Td also substitute named placeholders %{name} from key-value pairs.
//
// # Usage
//
//	tr, err := i18n.NewDefault(ctx, nil)
//	if err != nil {
//		return err
//	}
//	_, err = conv.Parse("31/02/2024", "Start")
//	if cerr, ok := convert.AsConversionError(err); ok {
//		fmt.Println(tr.Render("de", cerr.Message))
//	}
//
// The built-in catalog (DefaultCatalog) carries English and German text for
// every key the converters and validators emit. Site catalogs layered through
// NewDefault override individual keys.
//
// Requested languages are matched with golang.org/x/text/language, so "de-AT"
// resolves to "de". Unknown languages use the default language, and unknown
// keys render as the key followed by the arguments unless fallback to key is
// disabled.
package i18n
