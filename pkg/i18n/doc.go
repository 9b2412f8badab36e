// Package i18n renders validation messages from per-language catalogs.
//
// A Catalog maps language code to flat message keys ("validation.max_value")
// and templates with %{name} placeholders. Catalogs are loaded through a
// Source (in-memory map, files, or an fs.FS such as an embedded directory)
// and a Parser (YAML or JSON). Nested catalog files are flattened into
// dot-separated keys at parse time.
//
// Language negotiation uses golang.org/x/text/language matching: a request
// for "en-US" resolves to "en" when only the base language has a catalog.
//
// # Usage
//
//	translator, err := i18n.New(ctx,
//	    i18n.NewFileSource(i18n.YAMLParser{}, "translations/en.yaml", "translations/de.yaml"),
//	    i18n.WithDefaultLanguage("en"),
//	)
//
//	msg := translator.T("de", "validation.max_value", map[string]any{"limit_value": 10})
//
// TranslateError localizes the structured failures produced by
// pkg/validator: each failure code is looked up under "validation.<code>"
// and rendered with the failure params, falling back to the validator's own
// default message when no catalog entry exists.
package i18n
