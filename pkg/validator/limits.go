package validator

import (
	"cmp"
	"unicode/utf8"
)

// MaxValue fails with code "max_value" when the value exceeds the limit.
// The boundary is inclusive: a value equal to the limit passes.
type MaxValue[T cmp.Ordered] struct {
	limit   Limit[T]
	message string
	code    string
}

// NewMaxValue builds a maximum-value validator with a fixed limit.
// Honored options: WithMessage, WithCode.
func NewMaxValue[T cmp.Ordered](limit T, opts ...Option) *MaxValue[T] {
	return newMaxValue(Fixed(limit), opts)
}

// NewMaxValueFunc builds a maximum-value validator whose limit is resolved on
// every validation, which supports moving limits such as "now".
func NewMaxValueFunc[T cmp.Ordered](fn func() T, opts ...Option) *MaxValue[T] {
	return newMaxValue(Deferred(fn), opts)
}

func newMaxValue[T cmp.Ordered](limit Limit[T], opts []Option) *MaxValue[T] {
	o := newOptions(opts)
	return &MaxValue[T]{
		limit:   limit,
		message: o.messageOr("Ensure this value is less than or equal to %{limit_value}."),
		code:    o.codeOr(CodeMaxValue),
	}
}

func (v *MaxValue[T]) Validate(value T) error {
	limit := v.limit.Resolve()
	if value > limit {
		return newError(v.code, v.message, map[string]any{
			"limit_value": limit,
			"value":       value,
		})
	}
	return nil
}

// MinValue fails with code "min_value" when the value is below the limit.
// The boundary is inclusive: a value equal to the limit passes.
type MinValue[T cmp.Ordered] struct {
	limit   Limit[T]
	message string
	code    string
}

// NewMinValue builds a minimum-value validator with a fixed limit.
// Honored options: WithMessage, WithCode.
func NewMinValue[T cmp.Ordered](limit T, opts ...Option) *MinValue[T] {
	return newMinValue(Fixed(limit), opts)
}

// NewMinValueFunc builds a minimum-value validator whose limit is resolved on
// every validation.
func NewMinValueFunc[T cmp.Ordered](fn func() T, opts ...Option) *MinValue[T] {
	return newMinValue(Deferred(fn), opts)
}

func newMinValue[T cmp.Ordered](limit Limit[T], opts []Option) *MinValue[T] {
	o := newOptions(opts)
	return &MinValue[T]{
		limit:   limit,
		message: o.messageOr("Ensure this value is greater than or equal to %{limit_value}."),
		code:    o.codeOr(CodeMinValue),
	}
}

func (v *MinValue[T]) Validate(value T) error {
	limit := v.limit.Resolve()
	if value < limit {
		return newError(v.code, v.message, map[string]any{
			"limit_value": limit,
			"value":       value,
		})
	}
	return nil
}

// MaxLength fails with code "max_length" when the value's character count
// exceeds the limit. Length is measured in runes, not bytes.
type MaxLength struct {
	limit   Limit[int]
	message string
	code    string
}

// NewMaxLength builds a maximum-length validator with a fixed limit.
// Honored options: WithMessage, WithCode.
func NewMaxLength(limit int, opts ...Option) *MaxLength {
	return newMaxLength(Fixed(limit), opts)
}

// NewMaxLengthFunc builds a maximum-length validator whose limit is resolved
// on every validation.
func NewMaxLengthFunc(fn func() int, opts ...Option) *MaxLength {
	return newMaxLength(Deferred(fn), opts)
}

func newMaxLength(limit Limit[int], opts []Option) *MaxLength {
	o := newOptions(opts)
	return &MaxLength{
		limit:   limit,
		message: o.messageOr("Ensure this value has at most %{limit_value} characters (it has %{show_value})."),
		code:    o.codeOr(CodeMaxLength),
	}
}

func (v *MaxLength) Validate(value string) error {
	limit := v.limit.Resolve()
	length := utf8.RuneCountInString(value)
	if length > limit {
		return newError(v.code, v.message, map[string]any{
			"limit_value": limit,
			"show_value":  length,
			"value":       value,
		})
	}
	return nil
}

// MinLength fails with code "min_length" when the value's character count is
// below the limit. Length is measured in runes, not bytes.
type MinLength struct {
	limit   Limit[int]
	message string
	code    string
}

// NewMinLength builds a minimum-length validator with a fixed limit.
// Honored options: WithMessage, WithCode.
func NewMinLength(limit int, opts ...Option) *MinLength {
	return newMinLength(Fixed(limit), opts)
}

// NewMinLengthFunc builds a minimum-length validator whose limit is resolved
// on every validation.
func NewMinLengthFunc(fn func() int, opts ...Option) *MinLength {
	return newMinLength(Deferred(fn), opts)
}

func newMinLength(limit Limit[int], opts []Option) *MinLength {
	o := newOptions(opts)
	return &MinLength{
		limit:   limit,
		message: o.messageOr("Ensure this value has at least %{limit_value} characters (it has %{show_value})."),
		code:    o.codeOr(CodeMinLength),
	}
}

func (v *MinLength) Validate(value string) error {
	limit := v.limit.Resolve()
	length := utf8.RuneCountInString(value)
	if length < limit {
		return newError(v.code, v.message, map[string]any{
			"limit_value": limit,
			"show_value":  length,
			"value":       value,
		})
	}
	return nil
}
