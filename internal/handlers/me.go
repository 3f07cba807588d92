package handlers

import (
	"net/http"

	"github.com/sbilibin2017/places-api/internal/models"
)

// NewMeHandler returns an HTTP handler describing the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.MeResponse
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, models.MeResponse{
			Username: user.Username,
			Email:    user.Email,
			Avatar:   user.Avatar,
		})
	}
}
