package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gauravsoni97/preservespecialmoments/internal/cart"
	"github.com/gauravsoni97/preservespecialmoments/internal/customorder"
	"github.com/gauravsoni97/preservespecialmoments/internal/gallery"
	"github.com/gauravsoni97/preservespecialmoments/internal/session"
	"github.com/gauravsoni97/preservespecialmoments/pkg/logger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	errProductNotFound = errors.New("product not found")
	errInvalidID       = errors.New("id must be a positive integer")
	errEmptyCart       = errors.New("cart is empty")
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// errorStatus maps domain errors to an HTTP status and error code.
func errorStatus(err error) (int, string, string) {
	var missing *customorder.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		names := make([]string, len(missing.Fields))
		for i, f := range missing.Fields {
			names[i] = string(f)
		}
		return http.StatusUnprocessableEntity, "missing_fields", strings.Join(names, ",")
	case errors.Is(err, errProductNotFound), errors.Is(err, cart.ErrProductNotFound):
		return http.StatusNotFound, "not_found", ""
	case errors.Is(err, errEmptyCart):
		return http.StatusConflict, "empty_cart", ""
	case errors.Is(err, session.ErrNoDetailView):
		return http.StatusConflict, "no_detail_view", ""
	case errors.Is(err, errInvalidID),
		errors.Is(err, cart.ErrNegativeQuantity),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrQuantityOverflow),
		errors.Is(err, customorder.ErrUnknownField),
		errors.Is(err, gallery.ErrIndexOutOfRange),
		errors.Is(err, gallery.ErrEmptyGallery):
		return http.StatusBadRequest, "invalid_argument", ""
	}
	return http.StatusInternalServerError, "internal_error", ""
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, details := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", zap.Error(err))
		message = "internal server error"
	}
	respondJSON(w, status, ErrorResponse{Error: message, Code: code, Details: details})
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return false
	}
	return true
}
