package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"gotest.tools/v3/assert"
)

func TestNewDisplay_Valid(t *testing.T) {
	d, err := NewDisplay("83", "₹")
	assert.NilError(t, err)
	assert.Assert(t, d.Multiplier.Equal(decimal.NewFromInt(83)))
	assert.Equal(t, "₹", d.Symbol)
}

func TestNewDisplay_Invalid(t *testing.T) {
	_, err := NewDisplay("abc", "₹")
	assert.Assert(t, err != nil)

	_, err = NewDisplay("0", "₹")
	assert.ErrorIs(t, err, ErrInvalidMultiplier)

	_, err = NewDisplay("-2", "₹")
	assert.ErrorIs(t, err, ErrInvalidMultiplier)
}

func TestFormat(t *testing.T) {
	d, err := NewDisplay("83", "₹")
	assert.NilError(t, err)

	assert.Equal(t, "₹3735", d.Format(decimal.NewFromInt(45)))
	assert.Equal(t, "₹0", d.Format(decimal.Zero))
	assert.Equal(t, "₹41.50", d.Format(decimal.RequireFromString("0.5")))
}

func TestFormat_IdentityMultiplier(t *testing.T) {
	d, err := NewDisplay("1", "$")
	assert.NilError(t, err)
	assert.Equal(t, "$12.99", d.Format(decimal.RequireFromString("12.99")))
}
