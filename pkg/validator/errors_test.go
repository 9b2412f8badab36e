package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestErrorRendering(t *testing.T) {
	t.Run("renders params into placeholders", func(t *testing.T) {
		err := &validator.Error{
			Code:    "max_value",
			Message: "Ensure this value is less than or equal to %{limit_value}.",
			Params:  map[string]any{"limit_value": 10, "value": 11},
		}
		assert.Equal(t, "Ensure this value is less than or equal to 10.", err.Error())
	})

	t.Run("keeps unknown placeholders literal", func(t *testing.T) {
		err := &validator.Error{
			Code:    "invalid",
			Message: "missing %{nope}",
			Params:  map[string]any{"value": "x"},
		}
		assert.Equal(t, "missing %{nope}", err.Error())
	})

	t.Run("returns message verbatim without params", func(t *testing.T) {
		err := &validator.Error{Code: "invalid", Message: "Enter a valid value."}
		assert.Equal(t, "Enter a valid value.", err.Error())
	})
}

func TestErrorsHelpers(t *testing.T) {
	errs := validator.Errors{
		{Code: "max_digits", Message: "too many digits"},
		{Code: "max_whole_digits", Message: "too many whole digits"},
		{Code: "max_digits", Message: "still too many digits"},
	}

	t.Run("reports codes in order", func(t *testing.T) {
		assert.Equal(t, []string{"max_digits", "max_whole_digits", "max_digits"}, errs.Codes())
	})

	t.Run("finds failures by code", func(t *testing.T) {
		assert.True(t, errs.Has("max_digits"))
		assert.False(t, errs.Has("min_value"))
		assert.Len(t, errs.Get("max_digits"), 2)
		assert.Empty(t, errs.Get("min_value"))
	})

	t.Run("joins messages", func(t *testing.T) {
		assert.Equal(t, "too many digits; too many whole digits; still too many digits", errs.Error())
	})

	t.Run("empty collection has a generic message", func(t *testing.T) {
		assert.Equal(t, "validation failed", validator.Errors{}.Error())
		assert.True(t, validator.Errors{}.IsEmpty())
	})
}

func TestExtractErrors(t *testing.T) {
	t.Run("extracts an Errors value", func(t *testing.T) {
		var err error = validator.Errors{{Code: "invalid", Message: "nope"}}
		extracted := validator.ExtractErrors(err)
		assert.Len(t, extracted, 1)
		assert.Equal(t, "invalid", extracted[0].Code)
	})

	t.Run("extracts through wrapping", func(t *testing.T) {
		var err error = validator.Errors{{Code: "invalid", Message: "nope"}}
		wrapped := fmt.Errorf("request rejected: %w", err)
		assert.Len(t, validator.ExtractErrors(wrapped), 1)
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("promotes a single failure", func(t *testing.T) {
		var err error = &validator.Error{Code: "min_length", Message: "too short"}
		extracted := validator.ExtractErrors(err)
		assert.Len(t, extracted, 1)
		assert.Equal(t, "min_length", extracted[0].Code)
	})

	t.Run("ignores foreign errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.Nil(t, validator.ExtractErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})
}
