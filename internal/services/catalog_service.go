package services

import (
	"context"

	"github.com/foodify/backend/internal/models"
	"go.uber.org/zap"
)

// MenuRepository is the interface that wraps methods for menu collection data access.
type MenuRepository interface {
	// Method GetAll retrieves every menu item.
	GetAll(ctx context.Context) ([]models.MenuItem, error)
}

// ReviewRepository is the interface that wraps methods for reviews collection data access.
type ReviewRepository interface {
	// Method GetAll retrieves every review.
	GetAll(ctx context.Context) ([]models.Review, error)
}

// catalogService serves the read-only menu and review catalog
type catalogService struct {
	menuRepo   MenuRepository
	reviewRepo ReviewRepository
	logger     *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(menuRepo MenuRepository, reviewRepo ReviewRepository, logger *zap.Logger) *catalogService {
	return &catalogService{
		menuRepo:   menuRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// GetMenu retrieves the full menu catalog
func (s *catalogService) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	return s.menuRepo.GetAll(ctx)
}

// GetReviews retrieves every customer review
func (s *catalogService) GetReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviewRepo.GetAll(ctx)
}
