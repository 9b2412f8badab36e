package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Run("passes when every validator passes", func(t *testing.T) {
		err := validator.Apply("my-slug",
			validator.NewSlug(),
			validator.NewMaxLength(20),
			validator.NewProhibitNullCharacters(),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		err := validator.Apply("bad slug!",
			validator.NewSlug(),
			validator.NewMaxLength(5),
		)
		require.Error(t, err)

		errs := validator.ExtractErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"invalid", "max_length"}, errs.Codes())
	})

	t.Run("a failure does not stop later validators", func(t *testing.T) {
		err := validator.Apply("x",
			validator.NewMinLength(5),
			validator.NewSlug(),
			validator.NewMinLength(10),
		)
		errs := validator.ExtractErrors(err)
		require.Len(t, errs, 2)
		assert.True(t, errs.Has("min_length"))
	})

	t.Run("skips nil validators", func(t *testing.T) {
		err := validator.Apply("ok", nil, validator.NewSlug())
		assert.NoError(t, err)
	})

	t.Run("wraps unstructured failures", func(t *testing.T) {
		boom := validator.Func[string](func(string) error { return errors.New("boom") })
		err := validator.Apply("whatever", boom)
		errs := validator.ExtractErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "invalid", errs[0].Code)
		assert.Equal(t, "boom", errs[0].Message)
	})

	t.Run("flattens multi-failure validators", func(t *testing.T) {
		err := validator.Apply("not-an-email",
			validator.Func[string](validator.NewEmail().Validate),
			validator.NewMaxLength(3),
		)
		errs := validator.ExtractErrors(err)
		require.Len(t, errs, 2)
	})
}

func TestLimit(t *testing.T) {
	t.Run("fixed limit resolves to its value", func(t *testing.T) {
		assert.Equal(t, 42, validator.Fixed(42).Resolve())
	})

	t.Run("deferred limit resolves at call time", func(t *testing.T) {
		current := 1
		limit := validator.Deferred(func() int { return current })
		assert.Equal(t, 1, limit.Resolve())
		current = 7
		assert.Equal(t, 7, limit.Resolve())
	})
}
