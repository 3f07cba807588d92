package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/places-api/internal/models"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate with the OAuth2 password form and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} models.LoginResponse "Bearer token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid form"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form models.LoginForm

		if err := readForm(r, &form); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form")
			return
		}
		if err := validate.Struct(form); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		token, err := svc.Login(r.Context(), form.Username, form.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
