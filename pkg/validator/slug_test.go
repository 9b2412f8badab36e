package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestSlugValidators(t *testing.T) {
	t.Run("ascii slug", func(t *testing.T) {
		v := validator.NewSlug()

		for _, value := range []string{"slug", "slug-with-dash", "slug_under", "Slug-123"} {
			assert.NoError(t, v.Validate(value), "value %q", value)
		}
		for _, value := range []string{"", "white space", "slug!", "slash/slug", "привет"} {
			err := v.Validate(value)
			require.Error(t, err, "value %q", value)
			assert.Equal(t, "invalid", validator.ExtractErrors(err)[0].Code)
		}
	})

	t.Run("unicode slug", func(t *testing.T) {
		v := validator.NewUnicodeSlug()

		for _, value := range []string{"slug", "привет-мир", "你好_世界", "ño-1"} {
			assert.NoError(t, v.Validate(value), "value %q", value)
		}
		for _, value := range []string{"", "white space", "slug!"} {
			assert.Error(t, v.Validate(value), "value %q", value)
		}
	})
}
