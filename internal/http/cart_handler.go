package http

import (
	"net/http"

	"github.com/gauravsoni97/preservespecialmoments/internal/cart"
	"github.com/gauravsoni97/preservespecialmoments/internal/session"
	"github.com/shopspring/decimal"
)

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartItemDTO struct {
	ProductID       int64           `json:"product_id"`
	Name            string          `json:"name"`
	ImageURL        string          `json:"image_url"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DisplayPrice    string          `json:"display_price"`
	DisplaySubtotal string          `json:"display_subtotal"`
}

type CartDTO struct {
	Items        []CartItemDTO   `json:"items"`
	TotalItems   int             `json:"total_items"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	DisplayTotal string          `json:"display_total"`
}

func (h *Handler) cartDTO(c *cart.Cart) CartDTO {
	dto := CartDTO{
		Items:        make([]CartItemDTO, len(c.Lines)),
		TotalItems:   c.TotalItems(),
		TotalPrice:   c.TotalPrice(),
		DisplayTotal: h.display.Format(c.TotalPrice()),
	}
	for i, l := range c.Lines {
		dto.Items[i] = CartItemDTO{
			ProductID:       l.ProductID,
			Name:            l.Name,
			ImageURL:        l.ImageURL,
			Quantity:        l.Quantity,
			Price:           l.Price,
			Subtotal:        l.Subtotal(),
			DisplayPrice:    h.display.Format(l.Price),
			DisplaySubtotal: h.display.Format(l.Subtotal()),
		}
	}
	return dto
}

func (h *Handler) cartStore(s *session.Session) *cart.Store {
	return cart.NewStore(h.catalog, &s.Cart)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h.cartDTO(&s.Cart))
}

// AddItem adds quantity units of a product, one when quantity is omitted.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := h.product(req.ProductID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		return h.cartStore(s).AddQuantity(p, req.Quantity)
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, h.cartDTO(&s.Cart))
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := idParam(r, "product_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		return h.cartStore(s).SetQuantity(productID, req.Quantity)
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h.cartDTO(&s.Cart))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := idParam(r, "product_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		h.cartStore(s).Remove(productID)
		return nil
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h.cartDTO(&s.Cart))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		s.Cart.Clear()
		return nil
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h.cartDTO(&s.Cart))
}
