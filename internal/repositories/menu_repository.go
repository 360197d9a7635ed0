package repositories

import (
	"context"
	"fmt"

	"github.com/foodify/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// menuRepository provides read access to the menu collection. The catalog
// is seeded outside this API.
type menuRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *mongo.Database, logger *zap.Logger) *menuRepository {
	return &menuRepository{
		collection: db.Collection("menu"),
		logger:     logger,
	}
}

// GetAll retrieves every menu item. No filtering, ordering, or pagination.
func (r *menuRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error("failed to list menu items", zap.Error(err))
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		r.logger.Error("failed to decode menu items", zap.Error(err))
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}
