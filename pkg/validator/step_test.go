package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestStepValueValidator(t *testing.T) {
	t.Run("multiples of the step pass", func(t *testing.T) {
		v := validator.MustStepValue(decimal.NewFromInt(3))
		for _, value := range []int64{-9, -3, 0, 3, 6, 30} {
			assert.NoError(t, v.Validate(decimal.NewFromInt(value)), "value %d", value)
		}
	})

	t.Run("non-multiples fail with step_size", func(t *testing.T) {
		v := validator.MustStepValue(decimal.NewFromInt(3))
		errs := validator.ExtractErrors(v.Validate(decimal.NewFromInt(4)))
		require.Len(t, errs, 1)
		assert.Equal(t, "step_size", errs[0].Code)
	})

	t.Run("offset shifts the grid", func(t *testing.T) {
		v := validator.MustStepValue(decimal.NewFromInt(3),
			validator.WithOffset(decimal.NewFromFloat(1.4)))

		for _, value := range []float64{1.4, 4.4, 7.4, 10.4} {
			assert.NoError(t, v.Validate(decimal.NewFromFloat(value)), "value %v", value)
		}

		errs := validator.ExtractErrors(v.Validate(decimal.NewFromFloat(2.4)))
		require.Len(t, errs, 1)
		assert.Equal(t, "step_size", errs[0].Code)
		assert.Contains(t, errs[0].Error(), "starting from 1.4")
	})

	t.Run("decimal arithmetic avoids float drift", func(t *testing.T) {
		// 0.3 is not representable in binary floating point; exact decimal
		// arithmetic must still accept 0.9 as three steps of 0.3.
		v := validator.MustStepValue(decimal.RequireFromString("0.3"))
		assert.NoError(t, v.Validate(decimal.RequireFromString("0.9")))
		assert.Error(t, v.Validate(decimal.RequireFromString("0.95")))
	})

	t.Run("deferred step and offset", func(t *testing.T) {
		step := decimal.NewFromInt(5)
		v := validator.NewStepValueFunc(func() decimal.Decimal { return step },
			validator.WithOffsetFunc(func() decimal.Decimal { return decimal.NewFromInt(1) }))

		assert.NoError(t, v.Validate(decimal.NewFromInt(6)))
		step = decimal.NewFromInt(2)
		assert.Error(t, v.Validate(decimal.NewFromInt(6)))
		assert.NoError(t, v.Validate(decimal.NewFromInt(7)))
	})

	t.Run("zero step is a configuration error", func(t *testing.T) {
		_, err := validator.NewStepValue(decimal.Zero)
		assert.Error(t, err)
		assert.Panics(t, func() { validator.MustStepValue(decimal.Zero) })
	})
}
