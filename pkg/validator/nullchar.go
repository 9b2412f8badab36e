package validator

import "strings"

// ProhibitNullCharacters fails when the value contains a null character.
// Null bytes survive most string handling and routinely break downstream
// storage, so they are rejected explicitly.
type ProhibitNullCharacters struct {
	message string
	code    string
}

// NewProhibitNullCharacters builds the validator.
// Honored options: WithMessage, WithCode.
func NewProhibitNullCharacters(opts ...Option) *ProhibitNullCharacters {
	o := newOptions(opts)
	return &ProhibitNullCharacters{
		message: o.messageOr("Null characters are not allowed."),
		code:    o.codeOr(CodeNullCharacters),
	}
}

// Validate checks that value contains no \x00 bytes.
func (v *ProhibitNullCharacters) Validate(value string) error {
	if strings.ContainsRune(value, '\x00') {
		return newError(v.code, v.message, map[string]any{"value": value})
	}
	return nil
}
