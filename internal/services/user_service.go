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

// UserRepository is the interface that wraps methods for users collection data access.
type UserRepository interface {
	// Method Insert inserts a new user and returns the generated identifier.
	//
	// If a user with the same email already exists, repositories.ErrDuplicateEmail is returned.
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	// Method GetByEmail retrieves a user by email.
	//
	// If no user matches, repositories.ErrNotFound is returned together with nil.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetAll retrieves every user record.
	GetAll(ctx context.Context) ([]models.User, error)
	// Method DeleteByID deletes a user by identifier and returns the deleted count.
	//
	// If the identifier is not valid ObjectID hex, repositories.ErrInvalidID is returned.
	DeleteByID(ctx context.Context, id string) (int64, error)
	// Method PromoteByID sets the admin role on a user and returns the matched/modified counts.
	//
	// If the identifier is not valid ObjectID hex, repositories.ErrInvalidID is returned.
	PromoteByID(ctx context.Context, id string) (*models.UpdateResult, error)
}

// userService implements user management business logic
type userService struct {
	userRepo UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, logger *zap.Logger) *userService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register inserts a new user. Registering an email that already exists is
// not an error: the unique index violation is converted into the sentinel
// result with a null inserted id.
func (s *userService) Register(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	id, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			s.logger.Info("duplicate registration", zap.String("email", user.Email))
			return &models.InsertResult{Message: "User Already Exist", InsertedID: nil}, nil
		}
		return nil, err
	}

	return &models.InsertResult{InsertedID: &id}, nil
}

// GetUsers retrieves every user record
func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// DeleteUser deletes a user by identifier
func (s *userService) DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error) {
	count, err := s.userRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{DeletedCount: count}, nil
}

// PromoteUser grants the admin role to the user with the given identifier.
// There is no demotion operation.
func (s *userService) PromoteUser(ctx context.Context, id string) (*models.UpdateResult, error) {
	return s.userRepo.PromoteByID(ctx, id)
}

// IsAdmin reports whether the given email belongs to an admin. Callers may
// only ask about themselves: requesterEmail must equal email or the check
// is forbidden regardless of actual role. A missing user is not an error,
// just not an admin.
func (s *userService) IsAdmin(ctx context.Context, requesterEmail, email string) (bool, error) {
	if requesterEmail != email {
		return false, fmt.Errorf("%w: email does not match token", ErrForbidden)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.IsAdmin(), nil
}
