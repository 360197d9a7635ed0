package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/foodify/backend/internal/models"
	"github.com/foodify/backend/internal/repositories"
)

// UserFinder is the interface that wraps the user lookup needed by the role gate.
type UserFinder interface {
	// Method GetByEmail retrieves a user by email.
	//
	// If no user matches, repositories.ErrNotFound is returned together with nil.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAdmin gates a route on the admin role. It runs after Auth and
// re-reads the user record on every request; the token never carries a
// role claim, so the database is the only authority. A missing user and a
// non-admin role yield the same 403 body.
func RequireAdmin(users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := GetUserEmail(r.Context())
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized access"}`))
				return
			}

			user, err := users.GetByEmail(r.Context(), email)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"internal server error"}`))
				return
			}

			if user == nil || !user.IsAdmin() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"forbidden access"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
