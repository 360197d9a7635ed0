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

// CartService is the interface that wraps methods for cart business logic.
type CartService interface {
	// Method AddItem inserts a cart item owned by the verified caller.
	AddItem(ctx context.Context, ownerEmail string, item *models.CartItem) (*models.InsertResult, error)
	// Method GetItems retrieves the verified caller's cart items.
	//
	// A requested email differing from the owner's returns services.ErrForbidden.
	GetItems(ctx context.Context, ownerEmail, requestedEmail string) ([]models.CartItem, error)
	// Method DeleteItem deletes one cart item owned by the verified caller.
	//
	// An unknown identifier yields a zero deleted count, not an error.
	DeleteItem(ctx context.Context, ownerEmail, id string) (*models.DeleteResult, error)
}

// CartHandler handles cart HTTP requests. Every route requires a verified
// identity; ownership is enforced in the service.
type CartHandler struct {
	BaseHandler
	cartService CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		BaseHandler: BaseHandler{logger: logger},
		cartService: cartService,
	}
}

// RegisterRoutes registers all cart handler routes behind the auth gate
func (h *CartHandler) RegisterRoutes(r chi.Router, authGate func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authGate)
		r.Post("/carts", h.Add)
		r.Get("/carts", h.List)
		r.Delete("/carts/{id}", h.Delete)
	})
}

// Add handles POST /carts
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ownerEmail, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.cartService.AddItem(r.Context(), ownerEmail, &item)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// List handles GET /carts?email=
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerEmail, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	items, err := h.cartService.GetItems(r.Context(), ownerEmail, r.URL.Query().Get("email"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// Delete handles DELETE /carts/{id}
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerEmail, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	result, err := h.cartService.DeleteItem(r.Context(), ownerEmail, chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}
