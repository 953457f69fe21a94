package http

import (
	"net/http"

	"github.com/gauravsoni97/preservespecialmoments/internal/catalog"
	"github.com/gauravsoni97/preservespecialmoments/internal/domain"
)

type ProductDTO struct {
	domain.Product
	DisplayPrice string `json:"display_price"`
}

type ProductListDTO struct {
	Category string       `json:"category"`
	Products []ProductDTO `json:"products"`
}

func (h *Handler) productDTO(p domain.Product) ProductDTO {
	return ProductDTO{Product: p, DisplayPrice: h.display.Format(p.Price)}
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.All
	}

	products := h.catalog.Filter(category)
	resp := ProductListDTO{Category: category, Products: make([]ProductDTO, len(products))}
	for i, p := range products {
		resp.Products[i] = h.productDTO(p)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	p, err := h.product(id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h.productDTO(p))
}

func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Reviews())
}
