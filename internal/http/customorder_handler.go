package http

import (
	"net/http"

	"github.com/gauravsoni97/preservespecialmoments/internal/customorder"
	"github.com/gauravsoni97/preservespecialmoments/internal/events"
	"github.com/gauravsoni97/preservespecialmoments/internal/session"
	"github.com/go-chi/chi/v5"
)

type SetFieldRequestDTO struct {
	Value string `json:"value"`
}

type DraftDTO struct {
	Draft        customorder.Draft   `json:"draft"`
	Missing      []customorder.Field `json:"missing"`
	ProjectTypes []string            `json:"project_types"`
}

func draftDTO(d *customorder.Draft) DraftDTO {
	missing := d.Missing()
	if missing == nil {
		missing = []customorder.Field{}
	}
	return DraftDTO{Draft: *d, Missing: missing, ProjectTypes: customorder.ProjectTypes}
}

func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, draftDTO(&s.Draft))
}

func (h *Handler) SetDraftField(w http.ResponseWriter, r *http.Request) {
	var req SetFieldRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	field := chi.URLParam(r, "field")

	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		return s.Draft.SetField(field, req.Value)
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, draftDTO(&s.Draft))
}

// SubmitDraft serializes the draft into a messaging link and resets it.
func (h *Handler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	sub, err := h.submitDraft(r, nil)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sub)
}

// submitDraft applies the given field values, if any, and submits the draft.
func (h *Handler) submitDraft(r *http.Request, values map[string]string) (customorder.Submission, error) {
	var sub customorder.Submission
	s, err := h.updateSession(r.Context(), func(s *session.Session) error {
		for name, value := range values {
			if err := s.Draft.SetField(name, value); err != nil {
				return err
			}
		}
		var err error
		sub, err = s.Draft.Submit(h.messenger)
		return err
	})
	if err != nil {
		return customorder.Submission{}, err
	}

	h.publish(r.Context(), events.TypeCustomOrderSubmitted, s.ID, sub)
	return sub, nil
}
