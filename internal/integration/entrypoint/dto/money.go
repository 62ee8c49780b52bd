// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimal places carried by stored
// amounts. Amounts are persisted as int64 minor units (cents) and cross
// the API as decimal strings like "30.00".
const minorUnitExponent = 2

// ParseAmount converts a decimal amount string to minor units. Fractions
// finer than the minor unit are rejected rather than silently rounded.
func ParseAmount(value string) (int64, error) {
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}

	minor := dec.Shift(minorUnitExponent)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than %d decimal places", value, minorUnitExponent)
	}
	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q out of range", value)
	}
	return minor.IntPart(), nil
}

// FormatAmount converts minor units to the decimal string representation
// used in responses.
func FormatAmount(minor int64) string {
	return decimal.NewFromInt(minor).Shift(-minorUnitExponent).StringFixed(minorUnitExponent)
}
