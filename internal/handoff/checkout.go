package handoff

import (
	"fmt"
	"strings"

	"github.com/gauravsoni97/preservespecialmoments/internal/cart"
	"github.com/gauravsoni97/preservespecialmoments/internal/pricing"
)

const PaymentCompletedNotice = "Payment completed for order."

// CheckoutMessage is the text sent after the visitor paid by QR code.
func CheckoutMessage(c *cart.Cart, display pricing.Display) string {
	var b strings.Builder
	b.WriteString("Hello! I have placed an order.\n\n")
	for _, l := range c.Lines {
		fmt.Fprintf(&b, "- %s x %d = %s\n", l.Name, l.Quantity, display.Format(l.Subtotal()))
	}
	fmt.Fprintf(&b, "\nItems: %d\n", c.TotalItems())
	fmt.Fprintf(&b, "Order Total: %s\n\n", display.Format(c.TotalPrice()))
	b.WriteString(PaymentCompletedNotice)
	return b.String()
}
