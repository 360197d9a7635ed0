package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foodify/backend/internal/auth"
	"github.com/foodify/backend/internal/middleware"
	"github.com/foodify/backend/internal/models"
	"github.com/foodify/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"
)

// mockCartService is a mock implementation of CartService
type mockCartService struct {
	addResult    *models.InsertResult
	addErr       error
	items        []models.CartItem
	listErr      error
	deleteResult *models.DeleteResult
	deleteErr    error

	lastOwner     string
	lastRequested string
}

func (m *mockCartService) AddItem(ctx context.Context, ownerEmail string, item *models.CartItem) (*models.InsertResult, error) {
	m.lastOwner = ownerEmail
	if m.addErr != nil {
		return nil, m.addErr
	}
	return m.addResult, nil
}

func (m *mockCartService) GetItems(ctx context.Context, ownerEmail, requestedEmail string) ([]models.CartItem, error) {
	m.lastOwner = ownerEmail
	m.lastRequested = requestedEmail
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockCartService) DeleteItem(ctx context.Context, ownerEmail, id string) (*models.DeleteResult, error) {
	m.lastOwner = ownerEmail
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	return m.deleteResult, nil
}

func setupCartRouter(t *testing.T, svc CartService) (chi.Router, *auth.TokenGenerator) {
	t.Helper()
	tg := auth.NewTokenGenerator(testSecret, time.Hour)
	r := chi.NewRouter()
	NewCartHandler(svc, zaptest.NewLogger(t)).RegisterRoutes(r, middleware.Auth(tg))
	return r, tg
}

func TestCartHandler_Add(t *testing.T) {
	t.Run("verified caller adds an item", func(t *testing.T) {
		newID := primitive.NewObjectID()
		svc := &mockCartService{addResult: &models.InsertResult{InsertedID: &newID}}
		r, tg := setupCartRouter(t, svc)

		body := `{"menuItemId":"642c155b2c4774f05c36eeaa","name":"Caesar Salad","price":8.5}`
		req := httptest.NewRequest(http.MethodPost, "/carts", strings.NewReader(body))
		req.Header.Set("Authorization", bearer(t, tg, "alice@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), newID.Hex())
		assert.Equal(t, "alice@example.com", svc.lastOwner)
	})

	t.Run("without a token it is unauthorized", func(t *testing.T) {
		r, _ := setupCartRouter(t, &mockCartService{})

		req := httptest.NewRequest(http.MethodPost, "/carts", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid body is a bad request", func(t *testing.T) {
		r, tg := setupCartRouter(t, &mockCartService{})

		req := httptest.NewRequest(http.MethodPost, "/carts", strings.NewReader(`{not json`))
		req.Header.Set("Authorization", bearer(t, tg, "alice@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartHandler_List(t *testing.T) {
	t.Run("returns the caller's items only", func(t *testing.T) {
		svc := &mockCartService{items: []models.CartItem{
			{Email: "alice@example.com", Name: "Caesar Salad"},
		}}
		r, tg := setupCartRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/carts?email=alice@example.com", nil)
		req.Header.Set("Authorization", bearer(t, tg, "alice@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice@example.com", svc.lastOwner)
		assert.Equal(t, "alice@example.com", svc.lastRequested)
		assert.Contains(t, rec.Body.String(), "Caesar Salad")
	})

	t.Run("another user's email is forbidden", func(t *testing.T) {
		svc := &mockCartService{listErr: fmt.Errorf("%w: email does not match token", services.ErrForbidden)}
		r, tg := setupCartRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/carts?email=alice@example.com", nil)
		req.Header.Set("Authorization", bearer(t, tg, "bob@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("omitted email parameter reaches the service empty", func(t *testing.T) {
		svc := &mockCartService{items: []models.CartItem{}}
		r, tg := setupCartRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/carts", nil)
		req.Header.Set("Authorization", bearer(t, tg, "alice@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, svc.lastRequested)
		assert.Equal(t, "alice@example.com", svc.lastOwner)
	})
}

func TestCartHandler_Delete(t *testing.T) {
	t.Run("own item returns the deleted count", func(t *testing.T) {
		svc := &mockCartService{deleteResult: &models.DeleteResult{DeletedCount: 1}}
		r, tg := setupCartRouter(t, svc)

		req := httptest.NewRequest(http.MethodDelete, "/carts/"+primitive.NewObjectID().Hex(), nil)
		req.Header.Set("Authorization", bearer(t, tg, "alice@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deletedCount":1}`, rec.Body.String())
	})

	t.Run("unknown identifier is a zero count, not an error", func(t *testing.T) {
		svc := &mockCartService{deleteResult: &models.DeleteResult{DeletedCount: 0}}
		r, tg := setupCartRouter(t, svc)

		req := httptest.NewRequest(http.MethodDelete, "/carts/"+primitive.NewObjectID().Hex(), nil)
		req.Header.Set("Authorization", bearer(t, tg, "alice@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deletedCount":0}`, rec.Body.String())
	})

	t.Run("someone else's item is forbidden", func(t *testing.T) {
		svc := &mockCartService{deleteErr: fmt.Errorf("%w: cart item belongs to another user", services.ErrForbidden)}
		r, tg := setupCartRouter(t, svc)

		req := httptest.NewRequest(http.MethodDelete, "/carts/"+primitive.NewObjectID().Hex(), nil)
		req.Header.Set("Authorization", bearer(t, tg, "bob@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
