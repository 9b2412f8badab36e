package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

func newTestTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	translator, err := i18n.New(context.Background(),
		i18n.NewFileSource(i18n.YAMLParser{}, "testdata/en.yaml", "testdata/de.yaml"),
		i18n.WithDefaultLanguage("en"),
	)
	require.NoError(t, err)
	return translator
}

func TestNew(t *testing.T) {
	t.Run("loads catalogs with the default language first", func(t *testing.T) {
		translator := newTestTranslator(t)
		assert.Equal(t, []string{"en", "de"}, translator.Languages())
	})

	t.Run("nil source is an error", func(t *testing.T) {
		_, err := i18n.New(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilSource)
	})

	t.Run("empty catalog is an error", func(t *testing.T) {
		_, err := i18n.New(context.Background(), i18n.MapSource{})
		assert.ErrorIs(t, err, i18n.ErrEmptyCatalog)
	})

	t.Run("invalid language code is an error", func(t *testing.T) {
		_, err := i18n.New(context.Background(), i18n.MapSource{
			"not a tag": {"k": "v"},
		})
		assert.ErrorIs(t, err, i18n.ErrInvalidLanguage)
	})
}

func TestTranslatorT(t *testing.T) {
	translator := newTestTranslator(t)

	t.Run("renders params into the template", func(t *testing.T) {
		msg := translator.T("en", "greeting", map[string]any{"name": "John"})
		assert.Equal(t, "Hello, John!", msg)
	})

	t.Run("flattened keys address nested catalogs", func(t *testing.T) {
		msg := translator.T("en", "validation.max_value", map[string]any{"limit_value": 10})
		assert.Equal(t, "Make sure this value is 10 or less.", msg)
	})

	t.Run("regional request matches the base language", func(t *testing.T) {
		msg := translator.T("de-AT", "greeting", map[string]any{"name": "Hans"})
		assert.Equal(t, "Hallo, Hans!", msg)
	})

	t.Run("unknown language falls back to the default", func(t *testing.T) {
		msg := translator.T("fr", "greeting", map[string]any{"name": "Marie"})
		assert.Equal(t, "Hello, Marie!", msg)
	})

	t.Run("missing key falls back to the key", func(t *testing.T) {
		assert.Equal(t, "nope.missing", translator.T("en", "nope.missing", nil))
	})

	t.Run("missing key yields empty string with fallback disabled", func(t *testing.T) {
		strict, err := i18n.New(context.Background(),
			i18n.MapSource{"en": {"known": "ok"}},
			i18n.WithFallbackToKey(false),
		)
		require.NoError(t, err)
		assert.Equal(t, "", strict.T("en", "unknown", nil))
		assert.Equal(t, "ok", strict.T("en", "known", nil))
	})
}

func TestTranslatorMatch(t *testing.T) {
	translator := newTestTranslator(t)

	assert.Equal(t, "de", translator.Match("de"))
	assert.Equal(t, "de", translator.Match("de-CH"))
	assert.Equal(t, "en", translator.Match("en-US"))
	assert.Equal(t, "en", translator.Match("ja"))
	assert.Equal(t, "en", translator.Match("!!!"))
}

func TestTranslateError(t *testing.T) {
	translator := newTestTranslator(t)

	t.Run("localizes failures by code with their params", func(t *testing.T) {
		err := validator.NewMaxValue(10).Validate(11)
		require.Error(t, err)

		messages := translator.TranslateError("de", err)
		require.Len(t, messages, 1)
		assert.Equal(t, "Dieser Wert darf höchstens 10 sein.", messages[0])
	})

	t.Run("keeps the default message for uncatalogued codes", func(t *testing.T) {
		err := validator.NewProhibitNullCharacters().Validate("bad\x00value")
		messages := translator.TranslateError("en", err)
		require.Len(t, messages, 1)
		assert.Equal(t, "Null characters are not allowed.", messages[0])
	})

	t.Run("localizes every failure of an aggregate", func(t *testing.T) {
		err := validator.Apply("ab",
			validator.NewMinLength(5),
			validator.NewSlug(),
		)
		messages := translator.TranslateError("en", err)
		require.Len(t, messages, 1, "slug passes, only min_length fails")
		assert.Equal(t, "Use at least 5 characters (you used 2).", messages[0])
	})

	t.Run("returns nil for non-validation errors", func(t *testing.T) {
		assert.Nil(t, translator.TranslateError("en", nil))
		assert.Nil(t, translator.TranslateError("en", context.Canceled))
	})
}

func TestJSONParser(t *testing.T) {
	catalog, err := i18n.JSONParser{}.Parse([]byte(`{
		"en": {"validation": {"invalid": "Invalid value."}, "plain": "Plain."}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Invalid value.", catalog["en"]["validation.invalid"])
	assert.Equal(t, "Plain.", catalog["en"]["plain"])

	_, err = i18n.JSONParser{}.Parse([]byte(`{"en": "not a map"}`))
	assert.ErrorIs(t, err, i18n.ErrParse)
}
