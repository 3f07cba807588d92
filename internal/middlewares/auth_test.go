package middlewares

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/places-api/internal/logger"
	"github.com/sbilibin2017/places-api/internal/models"
	"github.com/sbilibin2017/places-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{UserID: 1, Username: "alice"}

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, res *MockResolver)
		expectedStatus   int
		expectedError    string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, res *MockResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, res *MockResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				res.EXPECT().Resolve(gomock.Any(), "sometoken").
					Return(nil, fmt.Errorf("%w: signature is invalid", services.ErrInvalidToken))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name: "UserNotFound",
			mockSetup: func(tok *MockTokener, res *MockResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("orphan", nil)
				res.EXPECT().Resolve(gomock.Any(), "orphan").
					Return(nil, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "User not found",
		},
		{
			name: "ResolverFailure",
			mockSetup: func(tok *MockTokener, res *MockResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				res.EXPECT().Resolve(gomock.Any(), "validtoken").
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, res *MockResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				res.EXPECT().Resolve(gomock.Any(), "validtoken").
					Return(alice, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockResolver := NewMockResolver(ctrl)
			tt.mockSetup(mockTokener, mockResolver)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				user, ok := UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, alice, user)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockResolver)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedError != "" {
				var resp models.ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{UserID: 1, Username: "alice"}

	tests := []struct {
		name      string
		mockSetup func(tok *MockTokener, res *MockResolver)
		wantUser  *models.UserDB
	}{
		{
			name: "anonymous",
			mockSetup: func(tok *MockTokener, res *MockResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
		},
		{
			name: "unresolvable token",
			mockSetup: func(tok *MockTokener, res *MockResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("expired", nil)
				res.EXPECT().ResolveOptional(gomock.Any(), "expired").Return(nil)
			},
		},
		{
			name: "resolved user",
			mockSetup: func(tok *MockTokener, res *MockResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				res.EXPECT().ResolveOptional(gomock.Any(), "validtoken").Return(alice)
			},
			wantUser: alice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockResolver := NewMockResolver(ctrl)
			tt.mockSetup(mockTokener, mockResolver)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				user, ok := UserFromContext(r.Context())
				assert.Equal(t, tt.wantUser != nil, ok)
				assert.Equal(t, tt.wantUser, user)
				w.WriteHeader(http.StatusOK)
			})

			handler := OptionalAuthMiddleware(mockTokener, mockResolver)(nextHandler)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/places", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.True(t, nextCalled)
		})
	}
}

func TestAuthMiddleware_LogsRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core, logs := observer.New(zap.ErrorLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = prev }()

	tok := NewMockTokener(ctrl)
	res := NewMockResolver(ctrl)
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})
	h := LoggingMiddleware(zap.NewNop().Sugar())(AuthMiddleware(tok, res)(next))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	entries := logs.FilterMessage("authorization failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, rr.Header().Get("X-Request-ID"), entries[0].ContextMap()["request_id"])
}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWriteError_LogsEncodeFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = prev }()

	w := &failingWriter{ResponseRecorder: httptest.NewRecorder()}
	writeError(w, http.StatusNotFound, "User not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("failed to encode response").Len())
}
