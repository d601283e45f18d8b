package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the label printed in front of every amount.
const Currency = "AED"

// ErrNotANumber is returned when user input cannot be read as an amount.
var ErrNotANumber = errors.New("amount is not a number")

// Bounds for typed amounts. Decimal arithmetic allocates on the order of 10^|exponent| digits.
const (
	maxExponent = 8
	minExponent = -8
	maxDigits   = 18
)

// ErrNegative is returned for amounts below zero.
var ErrNegative = errors.New("amount is negative")

// Format renders an amount with two decimals and the currency label, e.g. "AED 1.50".
func Format(amount decimal.Decimal) string {
	return Currency + " " + amount.StringFixed(2)
}

// MustParse is used for literals such as catalog prices.
func MustParse(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Parse reads a non-negative decimal amount typed by a customer.
func Parse(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, ErrNotANumber
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, trimmed)
	}
	if exp := amount.Exponent(); exp > maxExponent || exp < minExponent || amount.NumDigits() > maxDigits {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrNotANumber, trimmed)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegative, amount.String())
	}
	return amount, nil
}
