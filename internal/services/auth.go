package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/places-api/internal/logger"
	"github.com/sbilibin2017/places-api/internal/models"
	"github.com/sbilibin2017/places-api/internal/password"
	"github.com/sbilibin2017/places-api/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string, avatar *string) (int64, error)
}

// TokenIssuer issues access tokens for a subject.
type TokenIssuer interface {
	Issue(ctx context.Context, subject string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new user. The email column is filled with the username.
func (svc *AuthService) Register(ctx context.Context, username, pass string, avatar *string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return ErrUsernameTaken
	}

	hashed, err := password.Hash(pass)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, username, username, hashed, avatar); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Warnw("user created concurrently", "username", username)
			return ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns an access token.
// Unknown users and wrong passwords both yield ErrUnauthorized.
func (svc *AuthService) Login(ctx context.Context, username, pass string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || !password.Verify(pass, user.PasswordHash) {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", ErrUnauthorized
	}

	token, err := svc.tokens.Issue(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to issue token", "err", err)
		return "", err
	}

	return token, nil
}
