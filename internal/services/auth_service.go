package services

import (
	"context"

	"go.uber.org/zap"
)

// TokenIssuer is the interface that wraps the token signing method.
type TokenIssuer interface {
	// Method GenerateToken signs a session token carrying the given identity claims.
	GenerateToken(email, name string) (string, error)
}

// authService issues session tokens
type authService struct {
	userRepo UserRepository
	issuer   TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, issuer TokenIssuer, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// IssueToken signs a session token for a registered user. The claims come
// from the stored record, never from the caller's payload, so a token can
// only assert an identity that exists. Roles are never embedded; gated
// routes re-read them from the database.
func (s *authService) IssueToken(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := s.issuer.GenerateToken(user.Email, user.Name)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err), zap.String("email", email))
		return "", err
	}

	return token, nil
}
