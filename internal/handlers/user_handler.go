package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/foodify/backend/internal/middleware"
	"github.com/foodify/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for user management business logic.
type UserService interface {
	// Method Register inserts a new user.
	//
	// If the email is already registered, the sentinel result with a null
	// inserted id is returned instead of an error.
	Register(ctx context.Context, user *models.User) (*models.InsertResult, error)
	// Method GetUsers retrieves every user record.
	GetUsers(ctx context.Context) ([]models.User, error)
	// Method DeleteUser deletes a user by identifier.
	DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error)
	// Method PromoteUser grants the admin role to a user by identifier.
	PromoteUser(ctx context.Context, id string) (*models.UpdateResult, error)
	// Method IsAdmin reports whether the given email belongs to an admin.
	//
	// Callers may only ask about their own email; a mismatch returns
	// services.ErrForbidden regardless of actual role.
	IsAdmin(ctx context.Context, requesterEmail, email string) (bool, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	BaseHandler
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{logger: logger},
		userService: userService,
	}
}

// RegisterRoutes registers all user handler routes. Registration is public;
// the management surface sits behind the auth and admin gates.
func (h *UserHandler) RegisterRoutes(r chi.Router, authGate, adminGate func(http.Handler) http.Handler) {
	r.Post("/users", h.Register)
	r.With(authGate, adminGate).Get("/users", h.List)
	r.With(authGate, adminGate).Delete("/users/{id}", h.Delete)
	r.With(authGate, adminGate).Patch("/users/admin/{id}", h.Promote)
	// Same pattern as the promote route, so the parameter shares its name;
	// here it carries the target email, not an ObjectID.
	r.With(authGate).Get("/users/admin/{id}", h.CheckAdmin)
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.userService.Register(r.Context(), &user)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// List handles GET /users (admin only)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetUsers(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, users)
}

// Delete handles DELETE /users/{id} (admin only)
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Promote handles PATCH /users/admin/{id} (admin only)
func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.PromoteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// CheckAdmin handles GET /users/admin/{email}. The caller asks about their
// own email only and gets back a bare boolean, never the record.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	requesterEmail, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	email := chi.URLParam(r, "id")
	admin, err := h.userService.IsAdmin(r.Context(), requesterEmail, email)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, admin)
}
