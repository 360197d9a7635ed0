package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodify/backend/internal/models"
	"github.com/foodify/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CartRepository is the interface that wraps methods for carts collection data access.
type CartRepository interface {
	// Method Insert inserts a cart item and returns the generated identifier.
	Insert(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error)
	// Method GetByEmail retrieves the cart items owned by the given email.
	GetByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	// Method GetByID retrieves a single cart item by identifier.
	//
	// If no item matches, repositories.ErrNotFound is returned together with nil.
	GetByID(ctx context.Context, id string) (*models.CartItem, error)
	// Method DeleteByID deletes a cart item by identifier and returns the deleted count.
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// cartService implements cart business logic. Every operation is scoped to
// the verified owner's email.
type cartService struct {
	cartRepo CartRepository
	logger   *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(cartRepo CartRepository, logger *zap.Logger) *cartService {
	return &cartService{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// AddItem inserts a cart item for the verified owner. The owner email on
// the stored record always comes from the token, not the request body, so
// a caller cannot file items into someone else's cart.
func (s *cartService) AddItem(ctx context.Context, ownerEmail string, item *models.CartItem) (*models.InsertResult, error) {
	if item.MenuItemID == "" {
		return nil, fmt.Errorf("%w: menuItemId is required", ErrInvalidInput)
	}

	item.Email = ownerEmail
	id, err := s.cartRepo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}

	return &models.InsertResult{InsertedID: &id}, nil
}

// GetItems retrieves the cart items of the verified owner. A requested
// email that differs from the owner's is forbidden; an empty requested
// email defaults to the owner and never matches all records.
func (s *cartService) GetItems(ctx context.Context, ownerEmail, requestedEmail string) ([]models.CartItem, error) {
	if requestedEmail != "" && requestedEmail != ownerEmail {
		return nil, fmt.Errorf("%w: email does not match token", ErrForbidden)
	}

	return s.cartRepo.GetByEmail(ctx, ownerEmail)
}

// DeleteItem deletes one cart item owned by the verified caller. Deleting
// an identifier that no longer exists yields a zero count, not an error.
func (s *cartService) DeleteItem(ctx context.Context, ownerEmail, id string) (*models.DeleteResult, error) {
	item, err := s.cartRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.DeleteResult{DeletedCount: 0}, nil
	}
	if err != nil {
		return nil, err
	}

	if item.Email != ownerEmail {
		return nil, fmt.Errorf("%w: cart item belongs to another user", ErrForbidden)
	}

	count, err := s.cartRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.DeleteResult{DeletedCount: count}, nil
}
