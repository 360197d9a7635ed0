package repositories

import (
	"context"
	"fmt"

	"github.com/foodify/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// reviewRepository provides read access to the reviews collection
type reviewRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *mongo.Database, logger *zap.Logger) *reviewRepository {
	return &reviewRepository{
		collection: db.Collection("reviews"),
		logger:     logger,
	}
}

// GetAll retrieves every review
func (r *reviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error("failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		r.logger.Error("failed to decode reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}
