// Package pricing converts catalog prices into the display currency.
//
// The multiplier is a static configuration value; there is no exchange-rate
// source behind it.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidMultiplier = errors.New("display multiplier must be positive")

type Display struct {
	Multiplier decimal.Decimal
	Symbol     string
}

func NewDisplay(multiplier, symbol string) (Display, error) {
	m, err := decimal.NewFromString(multiplier)
	if err != nil {
		return Display{}, fmt.Errorf("parse multiplier %q: %w", multiplier, err)
	}
	if !m.IsPositive() {
		return Display{}, ErrInvalidMultiplier
	}
	return Display{Multiplier: m, Symbol: symbol}, nil
}

// Convert returns the amount in display currency.
func (d Display) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(d.Multiplier)
}

// Format renders the converted amount with the currency symbol. Whole amounts
// are printed without a fractional part.
func (d Display) Format(amount decimal.Decimal) string {
	converted := d.Convert(amount)
	if converted.Equal(converted.Truncate(0)) {
		return d.Symbol + converted.StringFixed(0)
	}
	return d.Symbol + converted.StringFixed(2)
}
