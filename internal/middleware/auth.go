package middleware

import (
	"context"
	"net/http"
	"strings"
)

const userEmailKey contextKey = "userEmail"

// TokenValidator is the interface that wraps the session token validation method.
type TokenValidator interface {
	// Method ValidateToken verifies signature and expiry and returns the caller's email.
	ValidateToken(token string) (string, error)
}

// Auth validates the Bearer token and puts the verified email into the
// request context. Every failure mode (missing header, malformed token,
// bad signature, expired) yields the same 401 body.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string

			// Expected format: "Bearer <token>"
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
					token = parts[1]
				}
			}

			if token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized access"}`))
				return
			}

			email, err := validator.ValidateToken(token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized access"}`))
				return
			}

			ctx := context.WithValue(r.Context(), userEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserEmail retrieves the verified email from context
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}
