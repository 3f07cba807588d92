package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/places-api/internal/models"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string, avatar *string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The username must be unique; the password is hashed before storing.
// @Tags auth
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param avatar formData string false "Avatar reference"
// @Success 200 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Username already exists / invalid form"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form models.RegisterForm

		if err := readForm(r, &form); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form")
			return
		}
		if err := validate.Struct(form); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		var avatar *string
		if form.Avatar != nil && *form.Avatar != "" {
			avatar = form.Avatar
		}

		if err := svc.Register(r.Context(), form.Username, form.Password, avatar); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.RegisterResponse{
			Msg: "User registered successfully",
		})
	}
}
