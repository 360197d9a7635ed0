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

// userRepository provides access to the users collection
type userRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database, logger *zap.Logger) *userRepository {
	return &userRepository{
		collection: db.Collection("users"),
		logger:     logger,
	}
}

// Insert inserts a new user and returns the generated identifier.
// A unique index on email turns a concurrent duplicate registration into
// ErrDuplicateEmail instead of a second record.
func (r *userRepository) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateEmail
		}
		r.logger.Error("failed to insert user", zap.Error(err))
		return primitive.NilObjectID, fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetAll retrieves every user record. No filtering or pagination.
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		r.logger.Error("failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// DeleteByID deletes a user by identifier and returns the deleted count
func (r *userRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		r.logger.Error("failed to delete user", zap.Error(err), zap.String("id", id))
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}

	return result.DeletedCount, nil
}

// PromoteByID sets the admin role on a user by identifier and returns the
// matched/modified counts
func (r *userRepository) PromoteByID(ctx context.Context, id string) (*models.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		r.logger.Error("failed to promote user", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}

	return &models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
