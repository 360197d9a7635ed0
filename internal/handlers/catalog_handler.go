package handlers

import (
	"context"
	"net/http"

	"github.com/foodify/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps methods for the read-only catalog.
type CatalogService interface {
	// Method GetMenu retrieves the full menu catalog.
	GetMenu(ctx context.Context) ([]models.MenuItem, error)
	// Method GetReviews retrieves every customer review.
	GetReviews(ctx context.Context) ([]models.Review, error)
}

// CatalogHandler handles menu and review HTTP requests
type CatalogHandler struct {
	BaseHandler
	catalogService CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    BaseHandler{logger: logger},
		catalogService: catalogService,
	}
}

// RegisterRoutes registers all catalog handler routes. Both routes are
// public and unfiltered.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.Menu)
	r.Get("/reviews", h.Reviews)
}

// Menu handles GET /menu
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.GetMenu(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// Reviews handles GET /reviews
func (h *CatalogHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.catalogService.GetReviews(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, reviews)
}
