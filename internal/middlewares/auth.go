package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/places-api/internal/logger"
	"github.com/sbilibin2017/places-api/internal/models"
	"github.com/sbilibin2017/places-api/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener extracts the bearer token from a request
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Resolver maps a bearer token to a stored user
type Resolver interface {
	Resolve(ctx context.Context, token string) (*models.UserDB, error)
	ResolveOptional(ctx context.Context, token string) *models.UserDB
}

type userContextKey struct{}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the user stored by AuthMiddleware or OptionalAuthMiddleware.
func UserFromContext(ctx context.Context) (*models.UserDB, bool) {
	user, ok := ctx.Value(userContextKey{}).(*models.UserDB)
	return user, ok && user != nil
}

// AuthMiddleware rejects requests without a token that resolves to a stored user.
// Invalid or missing tokens get 401, tokens of deleted users get 404.
func AuthMiddleware(tokener Tokener, resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := RequestIDFromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "request_id", reqID, "err", err)
				unauthorized(w)
				return
			}

			user, err := resolver.Resolve(ctx, tokenString)
			switch {
			case err == nil:
			case errors.Is(err, services.ErrInvalidToken):
				logger.Log.Errorw("authorization failed", "request_id", reqID, "err", err)
				unauthorized(w)
				return
			case errors.Is(err, services.ErrUserNotFound):
				logger.Log.Errorw("authorization failed", "request_id", reqID, "err", err)
				writeError(w, http.StatusNotFound, "User not found")
				return
			default:
				logger.Log.Errorw("failed to resolve user", "request_id", reqID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// OptionalAuthMiddleware attaches the user when the request carries a usable token
// and lets every request through.
func OptionalAuthMiddleware(tokener Tokener, resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if user := resolver.ResolveOptional(ctx, tokenString); user != nil {
				ctx = WithUser(ctx, user)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "Invalid token")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg}); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}
