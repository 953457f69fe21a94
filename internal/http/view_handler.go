package http

import (
	"net/http"

	"github.com/gauravsoni97/preservespecialmoments/internal/nav"
	"github.com/gauravsoni97/preservespecialmoments/internal/session"
)

type ViewDTO struct {
	nav.State
	Route string `json:"path"`
}

type SetSectionRequestDTO struct {
	Section string `json:"section"`
}

type ScrollDTO struct {
	Section nav.Section `json:"section,omitempty"`
	Scroll  bool        `json:"scroll"`
}

func viewDTO(s *session.Session) ViewDTO {
	return ViewDTO{State: s.Nav, Route: s.Nav.Path()}
}

// homeSections reports whether the home view renders the section. Every
// known section is part of the home page.
func homeSections(sec nav.Section) bool {
	_, ok := nav.ParseSection(string(sec))
	return ok
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, viewDTO(s))
}

// showProduct moves the session to the product's detail view. An unknown id
// still changes the view and is reported as errProductNotFound.
func (h *Handler) showProduct(r *http.Request, id int64) (*session.Session, error) {
	p, lookupErr := h.product(id)
	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		if lookupErr != nil {
			s.ShowMissingProduct(id)
			return nil
		}
		return s.ShowProduct(p)
	})
	if err != nil {
		return nil, err
	}
	return s, lookupErr
}

func (h *Handler) ShowProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	s, err := h.showProduct(r, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, viewDTO(s))
}

func (h *Handler) back(r *http.Request) (*session.Session, error) {
	section := r.URL.Query().Get("section")
	return h.updateSession(r.Context(), func(s *session.Session) error {
		s.Back(section)
		return nil
	})
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	s, err := h.back(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, viewDTO(s))
}

// SetSection records scroll tracking. Unknown sections are accepted and
// ignored.
func (h *Handler) SetSection(w http.ResponseWriter, r *http.Request) {
	var req SetSectionRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		s.Nav.SetActiveSection(req.Section)
		return nil
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, viewDTO(s))
}

// TakeScroll consumes the pending scroll request once the home view has
// rendered.
func (h *Handler) TakeScroll(w http.ResponseWriter, r *http.Request) {
	var resp ScrollDTO
	_, err := h.updateSession(r.Context(), func(s *session.Session) error {
		resp.Section, resp.Scroll = s.Nav.TakeScroll(homeSections)
		return nil
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
