// Package session owns all per-visitor state: cart, navigation, the custom
// order draft and the product detail view.
package session

import (
	"errors"
	"math"
	"time"

	"github.com/gauravsoni97/preservespecialmoments/internal/cart"
	"github.com/gauravsoni97/preservespecialmoments/internal/customorder"
	"github.com/gauravsoni97/preservespecialmoments/internal/domain"
	"github.com/gauravsoni97/preservespecialmoments/internal/gallery"
	"github.com/gauravsoni97/preservespecialmoments/internal/nav"
)

var ErrNoDetailView = errors.New("no product detail view is open")

// Policy decides which detail-view flags survive closing the image modal.
type Policy struct {
	ResetZoomOnClose     bool
	ResetWishlistOnClose bool
	DoubleTapWindow      time.Duration
}

// Detail is the state of an open product detail view.
type Detail struct {
	ProductID  int64            `json:"product_id"`
	Gallery    *gallery.Gallery `json:"gallery"`
	Wishlisted bool             `json:"wishlisted"`
	Quantity   int              `json:"quantity"` // stepper, always >= 1
}

type Session struct {
	ID        string            `json:"id"`
	Cart      cart.Cart         `json:"cart"`
	Nav       nav.State         `json:"nav"`
	Draft     customorder.Draft `json:"draft"`
	Detail    *Detail           `json:"detail,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func New(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Nav:       nav.State{View: nav.ViewHome},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ShowProduct switches to the product's detail view. The custom order draft
// belongs to the home view and is discarded.
func (s *Session) ShowProduct(p domain.Product) error {
	s.Nav.ShowProduct(p.ID)
	s.Draft.Reset()

	if s.Detail != nil && s.Detail.ProductID == p.ID {
		return nil
	}
	g, err := gallery.New(p.Gallery())
	if err != nil {
		return err
	}
	s.Detail = &Detail{ProductID: p.ID, Gallery: g, Quantity: 1}
	return nil
}

// ShowMissingProduct moves to the detail route of an id the catalog does not
// know. The view renders as not found with no detail state.
func (s *Session) ShowMissingProduct(id int64) {
	s.Nav.ShowProduct(id)
	s.Draft.Reset()
	s.Detail = nil
}

// Back leaves the detail view for the home view.
func (s *Session) Back(section string) {
	s.Nav.Back(section)
	s.Detail = nil
}

func (s *Session) CurrentDetail() (*Detail, error) {
	if s.Detail == nil || s.Nav.IsHome() {
		return nil, ErrNoDetailView
	}
	return s.Detail, nil
}

func (s *Session) CloseModal(policy Policy) error {
	d, err := s.CurrentDetail()
	if err != nil {
		return err
	}
	d.Gallery.Close(policy.ResetZoomOnClose)
	if policy.ResetWishlistOnClose {
		d.Wishlisted = false
	}
	return nil
}

func (s *Session) ToggleWishlist() (bool, error) {
	d, err := s.CurrentDetail()
	if err != nil {
		return false, err
	}
	d.Wishlisted = !d.Wishlisted
	return d.Wishlisted, nil
}

// StepQuantity moves the stepper by delta, refusing to go below one.
func (s *Session) StepQuantity(delta int) (int, error) {
	d, err := s.CurrentDetail()
	if err != nil {
		return 0, err
	}
	if delta > 0 && d.Quantity > math.MaxInt-delta {
		return d.Quantity, cart.ErrQuantityOverflow
	}
	if d.Quantity+delta > 0 {
		d.Quantity += delta
	}
	return d.Quantity, nil
}

func (s *Session) Clone() *Session {
	c := *s
	c.Cart = s.Cart.Clone()
	if s.Detail != nil {
		d := *s.Detail
		d.Gallery = s.Detail.Gallery.Clone()
		c.Detail = &d
	}
	return &c
}
