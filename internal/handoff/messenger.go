// Package handoff builds the links that pass an order to systems outside the
// storefront: a messaging app deep link and a payment QR code. Nothing is read
// back from either side.
package handoff

import (
	"errors"
	"net/url"
	"strings"
)

var ErrMessengerNotConfigured = errors.New("messaging domain and recipient are required")

// Messenger targets one recipient on a messaging service, e.g. wa.me.
type Messenger struct {
	Domain    string
	Recipient string
}

func NewMessenger(domain, recipient string) (Messenger, error) {
	domain = strings.Trim(strings.TrimPrefix(strings.TrimPrefix(domain, "https://"), "http://"), "/")
	recipient = strings.Trim(recipient, "/ ")
	if domain == "" || recipient == "" {
		return Messenger{}, ErrMessengerNotConfigured
	}
	return Messenger{Domain: domain, Recipient: recipient}, nil
}

// MessageLink returns https://<domain>/<recipient>?text=<message>.
func (m Messenger) MessageLink(text string) string {
	return "https://" + m.Domain + "/" + url.PathEscape(m.Recipient) + "?text=" + encodeText(text)
}

func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
