package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Common failure codes shared by the built-in validators.
const (
	CodeInvalid          = "invalid"
	CodeMaxValue         = "max_value"
	CodeMinValue         = "min_value"
	CodeMaxLength        = "max_length"
	CodeMinLength        = "min_length"
	CodeMaxDigits        = "max_digits"
	CodeMaxDecimalPlaces = "max_decimal_places"
	CodeMaxWholeDigits   = "max_whole_digits"
	CodeStepSize         = "step_size"
	CodeInvalidExtension = "invalid_extension"
	CodeInvalidImage     = "invalid_image"
	CodeNullCharacters   = "null_characters_not_allowed"
)

// Error is a single validation failure. Code is a short machine-readable
// classifier ("invalid", "max_value", ...), Message is a human-readable
// template with %{name} placeholders, and Params holds the placeholder
// values. An Error is constructed when a check fails and never mutated
// afterwards.
type Error struct {
	Code    string
	Message string
	Params  map[string]any
}

// placeholderRegex finds named parameters in the form %{name}.
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Error renders the message template with the failure params. Placeholders
// without a matching param are left untouched.
func (e *Error) Error() string {
	if len(e.Params) == 0 {
		return e.Message
	}
	return placeholderRegex.ReplaceAllStringFunc(e.Message, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := e.Params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

func newError(code, message string, params map[string]any) *Error {
	return &Error{Code: code, Message: message, Params: params}
}

// Errors is an ordered collection of validation failures. Most validators
// produce a single *Error per invocation; DecimalValidator and Apply may
// report several independent failures at once.
type Errors []*Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether any failure carries the given code.
func (e Errors) Has(code string) bool {
	for _, err := range e {
		if err.Code == code {
			return true
		}
	}
	return false
}

// Get returns all failures carrying the given code.
func (e Errors) Get(code string) []*Error {
	var matched []*Error
	for _, err := range e {
		if err.Code == code {
			matched = append(matched, err)
		}
	}
	return matched
}

// Codes returns the failure codes in reporting order, without deduplication.
func (e Errors) Codes() []string {
	codes := make([]string, 0, len(e))
	for _, err := range e {
		codes = append(codes, err.Code)
	}
	return codes
}

// ExtractErrors unpacks structured validation failures from an error. A bare
// *Error is promoted to a single-element Errors. Returns nil when err carries
// no validation failures.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}

	var single *Error
	if errors.As(err, &single) {
		return Errors{single}
	}

	return nil
}

// IsValidationError reports whether err is (or wraps) a validation failure.
func IsValidationError(err error) bool {
	return ExtractErrors(err) != nil
}
