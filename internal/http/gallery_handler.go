package http

import (
	"net/http"
	"strconv"

	"github.com/gauravsoni97/preservespecialmoments/internal/session"
	"github.com/go-chi/chi/v5"
)

type DetailDTO struct {
	ProductID     int64    `json:"product_id"`
	Images        []string `json:"images"`
	Selected      int      `json:"selected"`
	SelectedImage string   `json:"selected_image"`
	Index         int      `json:"index"`
	Current       string   `json:"current"`
	ModalOpen     bool     `json:"modal_open"`
	Zoomed        bool     `json:"zoomed"`
	Wishlisted    bool     `json:"wishlisted"`
	Quantity      int      `json:"quantity"`
	InCart        bool     `json:"in_cart"`
}

type StepRequestDTO struct {
	Delta int `json:"delta"`
}

func detailDTO(s *session.Session, d *session.Detail) DetailDTO {
	g := d.Gallery
	return DetailDTO{
		ProductID:     d.ProductID,
		Images:        g.Images,
		Selected:      g.Selected,
		SelectedImage: g.SelectedImage(),
		Index:         g.Index,
		Current:       g.Current(),
		ModalOpen:     g.ModalOpen,
		Zoomed:        g.Zoomed,
		Wishlisted:    d.Wishlisted,
		Quantity:      d.Quantity,
		InCart:        s.Cart.Contains(d.ProductID),
	}
}

// detailAction applies fn to the open detail view and responds with the
// resulting state.
func (h *Handler) detailAction(w http.ResponseWriter, r *http.Request, fn func(*session.Session, *session.Detail) error) {
	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		d, err := s.CurrentDetail()
		if err != nil {
			return err
		}
		return fn(s, d)
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detailDTO(s, s.Detail))
}

func indexParam(r *http.Request) (int, error) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, errInvalidID
	}
	return i, nil
}

func (h *Handler) GetDetail(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	d, err := s.CurrentDetail()
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detailDTO(s, d))
}

func (h *Handler) SelectImage(w http.ResponseWriter, r *http.Request) {
	i, err := indexParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	h.detailAction(w, r, func(_ *session.Session, d *session.Detail) error {
		return d.Gallery.Select(i)
	})
}

// OpenModal opens the modal at the inline selection, or at ?index= when given.
func (h *Handler) OpenModal(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("index")
	if raw == "" {
		h.detailAction(w, r, func(_ *session.Session, d *session.Detail) error {
			d.Gallery.Open()
			return nil
		})
		return
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		handleError(w, r, errInvalidID)
		return
	}
	h.detailAction(w, r, func(_ *session.Session, d *session.Detail) error {
		return d.Gallery.OpenAt(i)
	})
}

func (h *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	h.detailAction(w, r, func(s *session.Session, _ *session.Detail) error {
		return s.CloseModal(h.policy)
	})
}

func (h *Handler) NextImage(w http.ResponseWriter, r *http.Request) {
	h.detailAction(w, r, func(_ *session.Session, d *session.Detail) error {
		d.Gallery.Next()
		return nil
	})
}

func (h *Handler) PrevImage(w http.ResponseWriter, r *http.Request) {
	h.detailAction(w, r, func(_ *session.Session, d *session.Detail) error {
		d.Gallery.Prev()
		return nil
	})
}

// TapImage registers a tap on the modal image; a second tap within the
// double-tap window toggles zoom.
func (h *Handler) TapImage(w http.ResponseWriter, r *http.Request) {
	at := h.now()
	h.detailAction(w, r, func(_ *session.Session, d *session.Detail) error {
		d.Gallery.Tap(at, h.policy.DoubleTapWindow)
		return nil
	})
}

func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	h.detailAction(w, r, func(s *session.Session, _ *session.Detail) error {
		_, err := s.ToggleWishlist()
		return err
	})
}

func (h *Handler) StepQuantity(w http.ResponseWriter, r *http.Request) {
	var req StepRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	h.detailAction(w, r, func(s *session.Session, _ *session.Detail) error {
		_, err := s.StepQuantity(req.Delta)
		return err
	})
}

// AddDetailToCart adds the stepper quantity of the shown product.
func (h *Handler) AddDetailToCart(w http.ResponseWriter, r *http.Request) {
	h.detailAction(w, r, func(s *session.Session, d *session.Detail) error {
		p, err := h.product(d.ProductID)
		if err != nil {
			return err
		}
		return h.cartStore(s).AddQuantity(p, d.Quantity)
	})
}
