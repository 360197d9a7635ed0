package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foodify/backend/internal/repositories"
	"github.com/foodify/backend/internal/services"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError translates the closed sentinel error set into HTTP
// statuses. Anything outside the set is a storage or internal failure and
// maps to 500 without leaking driver detail to the client.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, repositories.ErrInvalidID):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "forbidden access")
	case errors.Is(err, repositories.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "not found")
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
