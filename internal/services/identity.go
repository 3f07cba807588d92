package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/places-api/internal/logger"
	"github.com/sbilibin2017/places-api/internal/models"
)

//go:generate mockgen -source=identity.go -destination=mock_identity.go -package=services

// TokenValidator validates access tokens and returns their subject.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// IdentityService maps bearer tokens to stored users.
type IdentityService struct {
	tokens TokenValidator
	users  UserReader
}

// NewIdentityService creates a new IdentityService instance.
func NewIdentityService(tokens TokenValidator, users UserReader) *IdentityService {
	return &IdentityService{tokens: tokens, users: users}
}

// Resolve returns the user the token was issued to.
func (svc *IdentityService) Resolve(ctx context.Context, token string) (*models.UserDB, error) {
	username, err := svc.tokens.Validate(ctx, token)
	if err != nil {
		logger.Log.Warnw("token rejected", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("token subject does not exist", "username", username)
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ResolveOptional is Resolve for endpoints that also serve anonymous callers:
// it returns nil instead of failing.
func (svc *IdentityService) ResolveOptional(ctx context.Context, token string) *models.UserDB {
	if token == "" {
		return nil
	}
	user, err := svc.Resolve(ctx, token)
	if err != nil {
		return nil
	}
	return user
}
