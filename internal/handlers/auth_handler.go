package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/foodify/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for session token issuance.
type AuthService interface {
	// Method IssueToken signs a session token for a registered user.
	//
	// The claims come from the stored user record; if no user matches the
	// email, repositories.ErrNotFound is returned.
	IssueToken(ctx context.Context, email string) (string, error)
}

// tokenRequest carries the identity the caller wants a session for
type tokenRequest struct {
	Email string `json:"email"`
}

// AuthHandler handles token issuance HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/jwt", h.IssueToken)
}

// IssueToken handles POST /jwt
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		h.respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := h.authService.IssueToken(r.Context(), req.Email)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.TokenResponse{Token: token})
}
