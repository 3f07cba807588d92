package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/places-api/internal/models"
)

//go:generate mockgen -source=place_write.go -destination=mock_place_write.go -package=handlers

// PlaceCreator creates places on behalf of a user.
type PlaceCreator interface {
	Create(ctx context.Context, user *models.UserDB, req models.PlaceCreate) (*models.PlaceResponse, error)
}

// PlaceUpdater applies partial updates to places owned by a user.
type PlaceUpdater interface {
	Update(ctx context.Context, user *models.UserDB, placeID int64, req models.PlaceUpdate) (*models.PlaceResponse, error)
}

// PlaceDeleter soft-deletes places owned by a user.
type PlaceDeleter interface {
	Delete(ctx context.Context, user *models.UserDB, placeID int64) error
}

// NewCreatePlaceHandler returns an HTTP handler creating a place.
// @Summary Create place
// @Description Rejects places whose name matches an active place within about 100m
// @Tags places
// @Accept json
// @Produce json
// @Param place body models.PlaceCreate true "Place"
// @Success 201 {object} models.PlaceResponse
// @Failure 400 {object} models.ErrorResponse "Similar place exists / invalid body"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /places [post]
// @Security BearerAuth
func NewCreatePlaceHandler(svc PlaceCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.PlaceCreate
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		place, err := svc.Create(r.Context(), user, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, place)
	}
}

// NewUpdatePlaceHandler returns an HTTP handler updating a place.
// @Summary Update place
// @Description Only supplied fields change. Only the creator may update a place.
// @Tags places
// @Accept json
// @Produce json
// @Param id path int true "Place ID"
// @Param place body models.PlaceUpdate true "Fields to change"
// @Success 200 {object} models.PlaceResponse
// @Failure 400 {object} models.ErrorResponse "Invalid body"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Failure 403 {object} models.ErrorResponse "Not the creator"
// @Failure 404 {object} models.ErrorResponse "Place not found"
// @Router /places/{id} [put]
// @Security BearerAuth
func NewUpdatePlaceHandler(svc PlaceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		placeID, err := placeIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid place id")
			return
		}

		var req models.PlaceUpdate
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		place, err := svc.Update(r.Context(), user, placeID, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, place)
	}
}

// NewDeletePlaceHandler returns an HTTP handler soft-deleting a place.
// @Summary Delete place
// @Description Marks the place inactive. Only the creator may delete a place.
// @Tags places
// @Param id path int true "Place ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Failure 403 {object} models.ErrorResponse "Not the creator"
// @Failure 404 {object} models.ErrorResponse "Place not found"
// @Router /places/{id} [delete]
// @Security BearerAuth
func NewDeletePlaceHandler(svc PlaceDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		placeID, err := placeIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid place id")
			return
		}

		if err := svc.Delete(r.Context(), user, placeID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
