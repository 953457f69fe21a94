// Package cart manages a visitor's cart lines.
//
// A Cart is plain data so that it can travel inside a session through any
// session store. Store wraps it with the catalog lookups needed to insert
// lines by product id.
package cart

import (
	"errors"
	"math"
	"slices"

	"github.com/gauravsoni97/preservespecialmoments/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrProductNotFound  = errors.New("product not found")
	ErrQuantityOverflow = errors.New("quantity too large")
)

// Line is one product in the cart. Name, price and image are copied from the
// catalog when the line is inserted.
type Line struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Quantity  int             `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds at most one line per product id, in insertion order.
type Cart struct {
	Lines []Line `json:"lines"`
}

func (c *Cart) index(productID int64) int {
	return slices.IndexFunc(c.Lines, func(l Line) bool { return l.ProductID == productID })
}

func (c *Cart) Contains(productID int64) bool {
	return c.index(productID) >= 0
}

// Quantity returns the quantity of the product's line, or 0.
func (c *Cart) Quantity(productID int64) int {
	if i := c.index(productID); i >= 0 {
		return c.Lines[i].Quantity
	}
	return 0
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// TotalItems sums the line quantities, saturating at math.MaxInt for carts
// decoded from a store that were never built through Store.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		if l.Quantity > math.MaxInt-total {
			return math.MaxInt
		}
		total += l.Quantity
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) Clone() Cart {
	return Cart{Lines: slices.Clone(c.Lines)}
}

// fits reports whether the product's line can hold quantity without the
// cart's item total overflowing.
func (c *Cart) fits(productID int64, quantity int) bool {
	others := c.TotalItems() - c.Quantity(productID)
	return quantity <= math.MaxInt-others
}

func (c *Cart) add(p domain.Product, n int) error {
	current := c.Quantity(p.ID)
	if n > math.MaxInt-current || !c.fits(p.ID, current+n) {
		return ErrQuantityOverflow
	}
	if i := c.index(p.ID); i >= 0 {
		c.Lines[i].Quantity += n
		return nil
	}
	c.Lines = append(c.Lines, lineFor(p, n))
	return nil
}

func (c *Cart) remove(productID int64) {
	c.Lines = slices.DeleteFunc(c.Lines, func(l Line) bool { return l.ProductID == productID })
	if len(c.Lines) == 0 {
		c.Lines = nil
	}
}

func lineFor(p domain.Product, quantity int) Line {
	return Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  quantity,
	}
}
