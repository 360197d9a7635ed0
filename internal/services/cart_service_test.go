package services

import (
	"context"
	"errors"
	"testing"

	"github.com/foodify/backend/internal/models"
	"github.com/foodify/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"
)

// mockCartRepository is a mock implementation of CartRepository
type mockCartRepository struct {
	insertID    primitive.ObjectID
	insertErr   error
	items       []models.CartItem
	listErr     error
	item        *models.CartItem
	getErr      error
	deleteCount int64
	deleteErr   error

	lastInserted  *models.CartItem
	lastListEmail string
	deleteCalled  bool
}

func (m *mockCartRepository) Insert(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	m.lastInserted = item
	if m.insertErr != nil {
		return primitive.NilObjectID, m.insertErr
	}
	return m.insertID, nil
}

func (m *mockCartRepository) GetByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	m.lastListEmail = email
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockCartRepository) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.item, nil
}

func (m *mockCartRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	m.deleteCalled = true
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	return m.deleteCount, nil
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("owner email always comes from the token", func(t *testing.T) {
		newID := primitive.NewObjectID()
		repo := &mockCartRepository{insertID: newID}
		svc := NewCartService(repo, zaptest.NewLogger(t))

		item := &models.CartItem{MenuItemID: "642c155b2c4774f05c36eeaa", Email: "mallory@example.com", Name: "Caesar Salad", Price: 8.5}
		result, err := svc.AddItem(context.Background(), "alice@example.com", item)

		require.NoError(t, err)
		require.NotNil(t, result.InsertedID)
		assert.Equal(t, newID, *result.InsertedID)
		assert.Equal(t, "alice@example.com", repo.lastInserted.Email)
	})

	t.Run("missing menu item reference is invalid input", func(t *testing.T) {
		svc := NewCartService(&mockCartRepository{}, zaptest.NewLogger(t))

		result, err := svc.AddItem(context.Background(), "alice@example.com", &models.CartItem{Name: "Caesar Salad"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate additions create separate records", func(t *testing.T) {
		repo := &mockCartRepository{insertID: primitive.NewObjectID()}
		svc := NewCartService(repo, zaptest.NewLogger(t))
		item := models.CartItem{MenuItemID: "642c155b2c4774f05c36eeaa", Name: "Caesar Salad"}

		first := item
		second := item
		_, err := svc.AddItem(context.Background(), "alice@example.com", &first)
		require.NoError(t, err)
		_, err = svc.AddItem(context.Background(), "alice@example.com", &second)
		require.NoError(t, err)
	})
}

func TestCartService_GetItems(t *testing.T) {
	aliceItems := []models.CartItem{
		{Email: "alice@example.com", Name: "Caesar Salad"},
		{Email: "alice@example.com", Name: "Margherita"},
	}

	tests := []struct {
		name           string
		ownerEmail     string
		requestedEmail string
		expectedErr    error
		expectedScope  string
	}{
		{
			name:           "explicit matching email is allowed",
			ownerEmail:     "alice@example.com",
			requestedEmail: "alice@example.com",
			expectedScope:  "alice@example.com",
		},
		{
			name:           "omitted email defaults to the owner, never match-all",
			ownerEmail:     "alice@example.com",
			requestedEmail: "",
			expectedScope:  "alice@example.com",
		},
		{
			name:           "another user's email is forbidden",
			ownerEmail:     "bob@example.com",
			requestedEmail: "alice@example.com",
			expectedErr:    ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCartRepository{items: aliceItems}
			svc := NewCartService(repo, zaptest.NewLogger(t))

			items, err := svc.GetItems(context.Background(), tt.ownerEmail, tt.requestedEmail)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, items)
				assert.Empty(t, repo.lastListEmail)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, aliceItems, items)
			assert.Equal(t, tt.expectedScope, repo.lastListEmail)
		})
	}
}

func TestCartService_DeleteItem(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	t.Run("owner deletes their own item", func(t *testing.T) {
		repo := &mockCartRepository{
			item:        &models.CartItem{Email: "alice@example.com"},
			deleteCount: 1,
		}
		svc := NewCartService(repo, zaptest.NewLogger(t))

		result, err := svc.DeleteItem(context.Background(), "alice@example.com", id)

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.DeletedCount)
	})

	t.Run("someone else's item is forbidden and not deleted", func(t *testing.T) {
		repo := &mockCartRepository{
			item: &models.CartItem{Email: "alice@example.com"},
		}
		svc := NewCartService(repo, zaptest.NewLogger(t))

		result, err := svc.DeleteItem(context.Background(), "bob@example.com", id)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.False(t, repo.deleteCalled)
	})

	t.Run("unknown identifier yields a zero count, not an error", func(t *testing.T) {
		repo := &mockCartRepository{getErr: repositories.ErrNotFound}
		svc := NewCartService(repo, zaptest.NewLogger(t))

		result, err := svc.DeleteItem(context.Background(), "alice@example.com", id)

		require.NoError(t, err)
		assert.Equal(t, int64(0), result.DeletedCount)
		assert.False(t, repo.deleteCalled)
	})

	t.Run("malformed identifier propagates the typed error", func(t *testing.T) {
		repo := &mockCartRepository{getErr: repositories.ErrInvalidID}
		svc := NewCartService(repo, zaptest.NewLogger(t))

		result, err := svc.DeleteItem(context.Background(), "alice@example.com", "not-hex")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, repositories.ErrInvalidID)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		repo := &mockCartRepository{
			item:      &models.CartItem{Email: "alice@example.com"},
			deleteErr: errors.New("connection reset"),
		}
		svc := NewCartService(repo, zaptest.NewLogger(t))

		result, err := svc.DeleteItem(context.Background(), "alice@example.com", id)

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}
