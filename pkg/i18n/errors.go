package i18n

import "errors"

var (
	// ErrNilSource is returned when a Translator is built without a source.
	ErrNilSource = errors.New("i18n: nil catalog source")

	// ErrEmptyCatalog is returned when a source yields no messages at all.
	ErrEmptyCatalog = errors.New("i18n: catalog is empty")

	// ErrInvalidLanguage is returned when a catalog language code does not
	// parse as a BCP 47 tag.
	ErrInvalidLanguage = errors.New("i18n: invalid language code")

	// ErrParse is returned when catalog content cannot be parsed.
	ErrParse = errors.New("i18n: failed to parse catalog")
)
