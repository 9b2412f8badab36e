package validator

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrFlagsWithCompiledPattern is returned when regexp flags are combined with
// an already compiled pattern. It is a construction-time configuration error,
// never a validation failure.
var ErrFlagsWithCompiledPattern = errors.New("validator: flags cannot be combined with a compiled pattern")

const defaultRegexMessage = "Enter a valid value."

// Regex validates that the value matches a compiled pattern. With inverse
// match enabled the check is complemented: matching values fail. The zero
// pattern ("") matches everything.
type Regex struct {
	re      *regexp.Regexp
	inverse bool
	message string
	code    string
}

// NewRegex compiles pattern and builds a regex validator.
// Honored options: WithFlags, WithInverseMatch, WithMessage, WithCode.
// An invalid pattern or flag set is a configuration error.
func NewRegex(pattern string, opts ...Option) (*Regex, error) {
	o := newOptions(opts)

	if o.flags != "" {
		pattern = "(?" + o.flags + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid pattern: %w", err)
	}

	return &Regex{
		re:      re,
		inverse: o.inverseMatch,
		message: o.messageOr(defaultRegexMessage),
		code:    o.codeOr(CodeInvalid),
	}, nil
}

// NewRegexCompiled builds a regex validator around an already compiled
// pattern. Honored options: WithInverseMatch, WithMessage, WithCode.
// Supplying WithFlags here is a configuration error.
func NewRegexCompiled(re *regexp.Regexp, opts ...Option) (*Regex, error) {
	o := newOptions(opts)

	if o.flags != "" {
		return nil, ErrFlagsWithCompiledPattern
	}
	if re == nil {
		return nil, errors.New("validator: nil pattern")
	}

	return &Regex{
		re:      re,
		inverse: o.inverseMatch,
		message: o.messageOr(defaultRegexMessage),
		code:    o.codeOr(CodeInvalid),
	}, nil
}

// MustRegex is NewRegex that panics on configuration errors. Intended for
// package-level validator construction where misconfiguration should prevent
// startup.
func MustRegex(pattern string, opts ...Option) *Regex {
	v, err := NewRegex(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks value against the pattern. Fails with the configured code
// when the pattern does not match (or matches, with inverse match on).
func (v *Regex) Validate(value string) error {
	if v.re.MatchString(value) == v.inverse {
		return newError(v.code, v.message, map[string]any{"value": value})
	}
	return nil
}

// Pattern exposes the compiled pattern, mainly for diagnostics.
func (v *Regex) Pattern() *regexp.Regexp {
	return v.re
}
