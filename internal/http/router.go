package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRouter wires pages, the JSON API and the health check.
func NewRouter(h *Handler, requestTimeout time.Duration, maxBodySize int64) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware(h.log))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	if maxBodySize > 0 {
		r.Use(middleware.RequestSize(maxBodySize))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware)

		r.Get("/", h.Home)
		r.Get("/back", h.BackForm)
		r.Get("/products/{id}", h.ProductPage)
		r.Post("/products/{id}/cart", h.AddToCartForm)
		r.Get("/cart", h.CartPage)
		r.Post("/cart/items/{id}", h.SetQuantityForm)
		r.Get("/checkout", h.CheckoutPage)
		r.Get("/checkout/qr.png", h.PaymentQR)
		r.Post("/checkout/handoff", h.HandOffForm)
		r.Post("/custom-orders", h.CustomOrderForm)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/categories", h.ListCategories)
			r.Get("/reviews", h.ListReviews)
			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.ListProducts)
				r.Get("/{id}", h.GetProduct)
			})
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.GetCart)
				r.Delete("/", h.ClearCart)
				r.Post("/items", h.AddItem)
				r.Put("/items/{product_id}", h.UpdateQuantity)
				r.Delete("/items/{product_id}", h.RemoveItem)
			})
			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", h.CheckoutSummary)
				r.Post("/handoff", h.HandOff)
			})
			r.Route("/custom-order", func(r chi.Router) {
				r.Get("/", h.GetDraft)
				r.Put("/fields/{field}", h.SetDraftField)
				r.Post("/submit", h.SubmitDraft)
			})
			r.Route("/view", func(r chi.Router) {
				r.Get("/", h.GetView)
				r.Post("/products/{id}", h.ShowProduct)
				r.Post("/back", h.Back)
				r.Put("/section", h.SetSection)
				r.Post("/scroll", h.TakeScroll)
			})
			r.Route("/gallery", func(r chi.Router) {
				r.Get("/", h.GetDetail)
				r.Post("/select/{index}", h.SelectImage)
				r.Post("/open", h.OpenModal)
				r.Post("/close", h.CloseModal)
				r.Post("/next", h.NextImage)
				r.Post("/prev", h.PrevImage)
				r.Post("/tap", h.TapImage)
				r.Post("/wishlist", h.ToggleWishlist)
				r.Post("/quantity", h.StepQuantity)
				r.Post("/cart", h.AddDetailToCart)
			})
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
