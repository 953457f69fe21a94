package handoff

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

var ErrPayeeNotConfigured = errors.New("payee address is required")

// Payee is the receiving side of a UPI payment URI. The storefront only
// renders the URI; it never learns whether the payment happened.
type Payee struct {
	Address  string
	Name     string
	Currency string
}

// URI returns upi://pay with the amount rounded to two places.
func (p Payee) URI(amount decimal.Decimal) (string, error) {
	if p.Address == "" {
		return "", ErrPayeeNotConfigured
	}
	q := url.Values{}
	q.Set("pa", p.Address)
	q.Set("pn", p.Name)
	q.Set("am", amount.StringFixed(2))
	q.Set("cu", p.Currency)
	return "upi://pay?" + q.Encode(), nil
}

// QRCode encodes content as a square PNG of the given pixel size.
func QRCode(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
