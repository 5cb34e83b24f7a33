package domain

import (
	"github.com/shopspring/decimal"
)

// maxMoney is 10^14: amounts carry at most 14 integer digits, matching the
// numeric(16,2) columns.
var maxMoney = decimal.New(1, 14)

// ParseMoney parses a monetary amount from its decimal string form and
// applies the monetary guard.
func ParseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, ErrValidation("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrValidation("amount is not a valid decimal: " + s)
	}
	if err := ValidateMoney(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// ValidateMoney checks the shared constraints on every monetary amount:
// non-negative, at most 2 fractional digits, at most 14 integer digits.
func ValidateMoney(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrValidation("amount must not be negative")
	}
	if !d.Equal(d.Round(2)) {
		return ErrValidation("amount has more than 2 fractional digits")
	}
	if d.Abs().GreaterThanOrEqual(maxMoney) {
		return ErrValidation("amount exceeds 14 integer digits")
	}
	return nil
}
