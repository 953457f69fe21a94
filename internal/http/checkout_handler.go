package http

import (
	"net/http"

	"github.com/gauravsoni97/preservespecialmoments/internal/events"
	"github.com/gauravsoni97/preservespecialmoments/internal/handoff"
	"github.com/gauravsoni97/preservespecialmoments/internal/session"
)

type CheckoutDTO struct {
	Cart       CartDTO `json:"cart"`
	PaymentURI string  `json:"payment_uri"`
	Message    string  `json:"message"`
	Link       string  `json:"link"`
}

type handedOffPayload struct {
	Cart       CartDTO `json:"cart"`
	PaymentURI string  `json:"payment_uri"`
}

// checkout builds the payment URI and the post-payment message for the
// session's cart. The cart is left as is.
func (h *Handler) checkout(s *session.Session) (CheckoutDTO, error) {
	if s.Cart.IsEmpty() {
		return CheckoutDTO{}, errEmptyCart
	}
	uri, err := h.payee.URI(h.display.Convert(s.Cart.TotalPrice()))
	if err != nil {
		return CheckoutDTO{}, err
	}
	msg := handoff.CheckoutMessage(&s.Cart, h.display)
	return CheckoutDTO{
		Cart:       h.cartDTO(&s.Cart),
		PaymentURI: uri,
		Message:    msg,
		Link:       h.messenger.MessageLink(msg),
	}, nil
}

func (h *Handler) CheckoutSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	dto, err := h.checkout(s)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// HandOff records that the visitor left for the messaging app after paying.
func (h *Handler) HandOff(w http.ResponseWriter, r *http.Request) {
	dto, err := h.handOff(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

func (h *Handler) handOff(r *http.Request) (CheckoutDTO, error) {
	s, err := h.loadSession(r.Context())
	if err != nil {
		return CheckoutDTO{}, err
	}
	dto, err := h.checkout(s)
	if err != nil {
		return CheckoutDTO{}, err
	}

	h.publish(r.Context(), events.TypeCheckoutHandedOff, s.ID, handedOffPayload{Cart: dto.Cart, PaymentURI: dto.PaymentURI})
	return dto, nil
}

func (h *Handler) PaymentQR(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	dto, err := h.checkout(s)
	if err != nil {
		handleError(w, r, err)
		return
	}

	png, err := handoff.QRCode(dto.PaymentURI, h.qrSize)
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
