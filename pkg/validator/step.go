package validator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StepValue fails with code "step_size" unless (value - offset) is an exact
// multiple of the step size. The arithmetic is decimal, not floating-point:
// a step of 3 with offset 1.4 accepts exactly 1.4, 4.4, 7.4 and so on.
type StepValue struct {
	step    Limit[decimal.Decimal]
	offset  *Limit[decimal.Decimal]
	message string
	code    string
}

// NewStepValue builds a step validator with a fixed step size. A zero step is
// a configuration error.
// Honored options: WithOffset, WithOffsetFunc, WithMessage, WithCode.
func NewStepValue(step decimal.Decimal, opts ...Option) (*StepValue, error) {
	if step.IsZero() {
		return nil, fmt.Errorf("validator: step size must not be zero")
	}
	return newStepValue(Fixed(step), opts), nil
}

// NewStepValueFunc builds a step validator whose step size is resolved on
// every validation.
func NewStepValueFunc(fn func() decimal.Decimal, opts ...Option) *StepValue {
	return newStepValue(Deferred(fn), opts)
}

// MustStepValue is NewStepValue that panics on configuration errors.
func MustStepValue(step decimal.Decimal, opts ...Option) *StepValue {
	v, err := NewStepValue(step, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func newStepValue(step Limit[decimal.Decimal], opts []Option) *StepValue {
	o := newOptions(opts)

	message := "Ensure this value is a multiple of step size %{limit_value}."
	if o.offset != nil {
		message = "Ensure this value is a multiple of step size %{limit_value}, starting from %{offset}."
	}

	return &StepValue{
		step:    step,
		offset:  o.offset,
		message: o.messageOr(message),
		code:    o.codeOr(CodeStepSize),
	}
}

// Validate checks that value lands on the configured step grid.
func (v *StepValue) Validate(value decimal.Decimal) error {
	step := v.step.Resolve()

	params := map[string]any{
		"limit_value": step,
		"value":       value,
	}

	shifted := value
	if v.offset != nil {
		offset := v.offset.Resolve()
		shifted = value.Sub(offset)
		params["offset"] = offset
	}

	if !shifted.Mod(step).IsZero() {
		return newError(v.code, v.message, params)
	}
	return nil
}
