package repositories

import (
	"context"
	"fmt"

	"github.com/foodify/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// cartRepository provides access to the carts collection
type cartRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *mongo.Database, logger *zap.Logger) *cartRepository {
	return &cartRepository{
		collection: db.Collection("carts"),
		logger:     logger,
	}
}

// Insert inserts a cart item and returns the generated identifier.
// Duplicate additions are allowed; every insert creates a separate record.
func (r *cartRepository) Insert(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		r.logger.Error("failed to insert cart item", zap.Error(err))
		return primitive.NilObjectID, fmt.Errorf("failed to insert cart item: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

// GetByEmail retrieves the cart items owned by the given email
func (r *cartRepository) GetByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		r.logger.Error("failed to list cart items", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		r.logger.Error("failed to decode cart items", zap.Error(err))
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single cart item by identifier
func (r *cartRepository) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	item := &models.CartItem{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get cart item", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return item, nil
}

// DeleteByID deletes a cart item by identifier and returns the deleted count
func (r *cartRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		r.logger.Error("failed to delete cart item", zap.Error(err), zap.String("id", id))
		return 0, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return result.DeletedCount, nil
}
