package cart

import "github.com/gauravsoni97/preservespecialmoments/internal/domain"

// ProductLookup resolves product data at insertion time.
type ProductLookup interface {
	Product(id int64) (domain.Product, bool)
}

// Writer is the mutation surface views depend on.
type Writer interface {
	Add(p domain.Product) error
	AddQuantity(p domain.Product, n int) error
	SetQuantity(productID int64, quantity int) error
	Remove(productID int64)
}

// Store applies cart operations to a Cart it does not own.
type Store struct {
	products ProductLookup
	cart     *Cart
}

// NewStore creates a store that mutates c, resolving products through products.
func NewStore(products ProductLookup, c *Cart) *Store {
	return &Store{products: products, cart: c}
}

func (s *Store) Cart() *Cart {
	return s.cart
}

// Add increments the product's line by one, inserting it when absent.
func (s *Store) Add(p domain.Product) error {
	return s.cart.add(p, 1)
}

// AddQuantity adds n units at once, as the detail page stepper does.
func (s *Store) AddQuantity(p domain.Product, n int) error {
	if n < 1 {
		return ErrInvalidQuantity
	}
	return s.cart.add(p, n)
}

// SetQuantity sets the line to exactly quantity. Zero removes the line and is
// a no-op when the line is absent.
func (s *Store) SetQuantity(productID int64, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if quantity == 0 {
		s.cart.remove(productID)
		return nil
	}
	if !s.cart.fits(productID, quantity) {
		return ErrQuantityOverflow
	}

	if i := s.cart.index(productID); i >= 0 {
		s.cart.Lines[i].Quantity = quantity
		return nil
	}

	p, ok := s.products.Product(productID)
	if !ok {
		return ErrProductNotFound
	}
	s.cart.Lines = append(s.cart.Lines, lineFor(p, quantity))
	return nil
}

func (s *Store) Remove(productID int64) {
	s.cart.remove(productID)
}
