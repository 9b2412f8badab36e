package validator

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal validates that a decimal value fits within a fixed precision:
// max digits in total, decimal places, and digits before the decimal point
// (max digits minus decimal places). The three checks are independent and
// every violated one is reported, so a single invocation may carry up to
// three failures.
type Decimal struct {
	maxDigits     int
	decimalPlaces int

	maxDigitsMessage     string
	decimalPlacesMessage string
	wholeDigitsMessage   string
}

// NewDecimal builds a decimal precision validator. decimalPlaces must not
// exceed maxDigits; violating that is a configuration error.
func NewDecimal(maxDigits, decimalPlaces int) (*Decimal, error) {
	if maxDigits < 0 || decimalPlaces < 0 {
		return nil, fmt.Errorf("validator: negative decimal bounds (max digits %d, decimal places %d)", maxDigits, decimalPlaces)
	}
	if decimalPlaces > maxDigits {
		return nil, fmt.Errorf("validator: decimal places %d exceed max digits %d", decimalPlaces, maxDigits)
	}

	return &Decimal{
		maxDigits:            maxDigits,
		decimalPlaces:        decimalPlaces,
		maxDigitsMessage:     "Ensure that there are no more than %{max} digits in total.",
		decimalPlacesMessage: "Ensure that there are no more than %{max} decimal places.",
		wholeDigitsMessage:   "Ensure that there are no more than %{max} digits before the decimal point.",
	}, nil
}

// MustDecimal is NewDecimal that panics on configuration errors.
func MustDecimal(maxDigits, decimalPlaces int) *Decimal {
	v, err := NewDecimal(maxDigits, decimalPlaces)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks value against the configured precision. All violated
// checks are reported together as Errors.
func (v *Decimal) Validate(value decimal.Decimal) error {
	digits, decimals := digitCounts(value)
	wholeDigits := digits - decimals

	var errs Errors
	if decimals > v.decimalPlaces {
		errs = append(errs, newError(CodeMaxDecimalPlaces, v.decimalPlacesMessage, map[string]any{
			"max":   v.decimalPlaces,
			"value": value,
		}))
	}
	if digits > v.maxDigits {
		errs = append(errs, newError(CodeMaxDigits, v.maxDigitsMessage, map[string]any{
			"max":   v.maxDigits,
			"value": value,
		}))
	}
	if wholeDigits > v.maxDigits-v.decimalPlaces {
		errs = append(errs, newError(CodeMaxWholeDigits, v.wholeDigitsMessage, map[string]any{
			"max":   v.maxDigits - v.decimalPlaces,
			"value": value,
		}))
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// digitCounts derives the significant digit count and the decimal place
// count from the coefficient/exponent form of the value. A negative exponent
// larger than the coefficient width means leading fractional zeros, which
// count as decimal places: 0.001 has three decimal places and three digits.
func digitCounts(value decimal.Decimal) (digits, decimals int) {
	coefficient := new(big.Int).Abs(value.Coefficient())
	width := len(coefficient.String())
	exponent := int(value.Exponent())

	if exponent >= 0 {
		// An integer: trailing zeros implied by the exponent count as digits.
		return width + exponent, 0
	}

	decimals = -exponent
	digits = width
	if decimals > width {
		digits = decimals
	}
	return digits, decimals
}
