package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gauravsoni97/preservespecialmoments/internal/catalog"
	"github.com/gauravsoni97/preservespecialmoments/internal/customorder"
	"github.com/gauravsoni97/preservespecialmoments/internal/domain"
	"github.com/gauravsoni97/preservespecialmoments/internal/nav"
	"github.com/gauravsoni97/preservespecialmoments/internal/session"
)

type layoutData struct {
	Title         string
	CartCount     int
	ActiveSection nav.Section
}

type homePage struct {
	layoutData
	Categories   []string
	Category     string
	Products     []domain.Product
	Reviews      []domain.Review
	Draft        customorder.Draft
	Fields       []customorder.Field
	ProjectTypes []string
	Missing      []customorder.Field
	ScrollTo     nav.Section
}

type productPage struct {
	layoutData
	Product domain.Product
	Detail  DetailDTO
}

type cartPage struct {
	layoutData
	Cart CartDTO
}

type checkoutPage struct {
	layoutData
	Checkout CheckoutDTO
}

type notFoundPage struct {
	layoutData
	ProductID int64
}

func layout(title string, s *session.Session) layoutData {
	return layoutData{Title: title, CartCount: s.Cart.TotalItems(), ActiveSection: s.Nav.ActiveSection}
}

func (h *Handler) homePage(s *session.Session, category string, scroll nav.Section) homePage {
	if category == "" {
		category = catalog.All
	}
	return homePage{
		layoutData:   layout("Preserve Special Moments", s),
		Categories:   h.catalog.Categories(),
		Category:     category,
		Products:     h.catalog.Filter(category),
		Reviews:      h.catalog.Reviews(),
		Draft:        s.Draft,
		Fields:       customorder.Fields,
		ProjectTypes: customorder.ProjectTypes,
		ScrollTo:     scroll,
	}
}

// Home renders the home view. Arriving here from a detail route counts as
// navigating back, and any pending scroll request is consumed.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	var scroll nav.Section
	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		if !s.Nav.IsHome() {
			s.Back("")
		}
		scroll, _ = s.Nav.TakeScroll(homeSections)
		return nil
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "home", h.homePage(s, r.URL.Query().Get("category"), scroll))
}

func (h *Handler) ProductPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r, nil, 0)
		return
	}

	s, err := h.showProduct(r, id)
	if errors.Is(err, errProductNotFound) {
		h.renderNotFound(w, r, s, id)
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if raw := r.URL.Query().Get("img"); raw != "" {
		if i, convErr := strconv.Atoi(raw); convErr == nil {
			if updated, selErr := h.updateSession(r.Context(), func(s *session.Session) error {
				d, err := s.CurrentDetail()
				if err != nil {
					return err
				}
				return d.Gallery.Select(i)
			}); selErr == nil {
				s = updated
			}
		}
	}

	p, _ := h.catalog.Product(id)
	h.render(w, r, http.StatusOK, "product", productPage{
		layoutData: layout(p.Name, s),
		Product:    p,
		Detail:     detailDTO(s, s.Detail),
	})
}

func formQuantity(r *http.Request, fallback int) (int, error) {
	raw := r.PostFormValue("quantity")
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// AddToCartForm adds the posted quantity, one by default, and returns to the
// product page.
func (h *Handler) AddToCartForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r, nil, 0)
		return
	}
	p, err := h.product(id)
	if err != nil {
		h.renderNotFound(w, r, nil, id)
		return
	}
	qty, err := formQuantity(r, 1)
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	_, err = h.updateSession(r.Context(), func(s *session.Session) error {
		return h.cartStore(s).AddQuantity(p, qty)
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/products/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

func (h *Handler) CartPage(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "cart", cartPage{layoutData: layout("Your Cart", s), Cart: h.cartDTO(&s.Cart)})
}

// SetQuantityForm sets a cart line from the cart page; zero removes it.
func (h *Handler) SetQuantityForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	qty, err := formQuantity(r, 0)
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	_, err = h.updateSession(r.Context(), func(s *session.Session) error {
		return h.cartStore(s).SetQuantity(id, qty)
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *Handler) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	dto, err := h.checkout(s)
	if errors.Is(err, errEmptyCart) {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "checkout", checkoutPage{layoutData: layout("Checkout", s), Checkout: dto})
}

// HandOffForm sends the visitor to the messaging app with the order summary.
func (h *Handler) HandOffForm(w http.ResponseWriter, r *http.Request) {
	dto, err := h.handOff(r)
	if errors.Is(err, errEmptyCart) {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, dto.Link, http.StatusSeeOther)
}

// CustomOrderForm submits the posted form. Missing required fields re-render
// the home page with the values kept and nothing sent.
func (h *Handler) CustomOrderForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	values := make(map[string]string, len(customorder.Fields))
	for _, f := range customorder.Fields {
		values[string(f)] = r.PostForm.Get(string(f))
	}

	sub, err := h.submitDraft(r, values)
	var missing *customorder.MissingFieldsError
	if errors.As(err, &missing) {
		s, loadErr := h.loadSession(r.Context())
		if loadErr != nil {
			h.renderError(w, r, loadErr)
			return
		}
		page := h.homePage(s, "", nav.SectionContact)
		for name, value := range values {
			_ = page.Draft.SetField(name, value)
		}
		page.Missing = missing.Fields
		h.render(w, r, http.StatusUnprocessableEntity, "home", page)
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, sub.Link, http.StatusSeeOther)
}

// BackForm returns to the home view, scrolling to ?section= when known.
func (h *Handler) BackForm(w http.ResponseWriter, r *http.Request) {
	if _, err := h.back(r); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request, s *session.Session, id int64) {
	if s == nil {
		s = session.New("", h.now())
	}
	h.render(w, r, http.StatusNotFound, "notfound", notFoundPage{layoutData: layout("Not Found", s), ProductID: id})
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, _, _ := errorStatus(err)
	if status == http.StatusInternalServerError {
		handleError(w, r, err)
		return
	}
	http.Error(w, err.Error(), status)
}
