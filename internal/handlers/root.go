package handlers

import "net/http"

// NewRootHandler returns a liveness banner.
// @Summary Liveness banner
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Places API is running"})
	}
}
