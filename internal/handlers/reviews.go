package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/places-api/internal/models"
)

//go:generate mockgen -source=reviews.go -destination=mock_reviews.go -package=handlers

const defaultReviewsLimit = 20

// ReviewCreator creates reviews on behalf of a user.
type ReviewCreator interface {
	Create(ctx context.Context, user *models.UserDB, placeID int64, req models.ReviewCreate) (*models.ReviewResponse, error)
}

// ReviewLister lists the reviews of a place.
type ReviewLister interface {
	List(ctx context.Context, placeID int64, filter models.ReviewFilter) ([]models.ReviewResponse, error)
}

// NewCreateReviewHandler returns an HTTP handler reviewing a place.
// @Summary Review place
// @Description One review per user and place
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Place ID"
// @Param review body models.ReviewCreate true "Review"
// @Success 201 {object} models.ReviewResponse
// @Failure 400 {object} models.ErrorResponse "Already reviewed / invalid body"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Failure 404 {object} models.ErrorResponse "Place not found"
// @Router /places/{id}/reviews [post]
// @Security BearerAuth
func NewCreateReviewHandler(svc ReviewCreator) http.HandlerFunc {
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

		var req models.ReviewCreate
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		review, err := svc.Create(r.Context(), user, placeID, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}

// NewListReviewsHandler returns an HTTP handler listing reviews of a place, newest first.
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param id path int true "Place ID"
// @Param limit query int false "Page size" default(20) maximum(50)
// @Param offset query int false "Page offset" default(0) minimum(0)
// @Success 200 {array} models.ReviewResponse
// @Failure 400 {object} models.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} models.ErrorResponse "Place not found"
// @Router /places/{id}/reviews [get]
func NewListReviewsHandler(svc ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID, err := placeIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid place id")
			return
		}

		filter := models.ReviewFilter{Limit: defaultReviewsLimit}
		if err := decoder.Decode(&filter, r.URL.Query()); err != nil {
			writeError(w, http.StatusBadRequest, "invalid query parameters")
			return
		}
		if err := validate.Struct(filter); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		reviews, err := svc.List(r.Context(), placeID, filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, reviews)
	}
}
