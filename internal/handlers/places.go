package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/places-api/internal/models"
)

//go:generate mockgen -source=places.go -destination=mock_places.go -package=handlers

const (
	defaultPlacesLimit = 50
	defaultRadiusKm    = 10
)

// PlaceLister lists active places.
type PlaceLister interface {
	List(ctx context.Context, filter models.PlaceFilter) ([]models.PlaceResponse, error)
}

// PlaceGetter returns a single active place.
type PlaceGetter interface {
	Get(ctx context.Context, placeID int64) (*models.PlaceResponse, error)
}

// CategoryLister returns the categories in use.
type CategoryLister interface {
	Categories(ctx context.Context) ([]string, error)
}

// NewListPlacesHandler returns an HTTP handler listing active places.
// @Summary List places
// @Description Lists active places. lat, lng and radius are accepted but do not filter results.
// @Tags places
// @Produce json
// @Param category query string false "Category substring (case-insensitive)"
// @Param search query string false "Matches name, description or specialties (case-insensitive)"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param radius query number false "Radius in km" default(10)
// @Param limit query int false "Page size" default(50) maximum(100)
// @Param offset query int false "Page offset" default(0) minimum(0)
// @Success 200 {array} models.PlaceResponse
// @Failure 400 {object} models.ErrorResponse "Invalid query parameters"
// @Router /places [get]
func NewListPlacesHandler(svc PlaceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.PlaceFilter{
			Radius: defaultRadiusKm,
			Limit:  defaultPlacesLimit,
		}

		if err := decoder.Decode(&filter, r.URL.Query()); err != nil {
			writeError(w, http.StatusBadRequest, "invalid query parameters")
			return
		}
		if err := validate.Struct(filter); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		places, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, places)
	}
}

// NewGetPlaceHandler returns an HTTP handler for a single place.
// @Summary Get place
// @Tags places
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} models.PlaceResponse
// @Failure 404 {object} models.ErrorResponse "Place not found"
// @Router /places/{id} [get]
func NewGetPlaceHandler(svc PlaceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID, err := placeIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid place id")
			return
		}

		place, err := svc.Get(r.Context(), placeID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, place)
	}
}

// NewCategoriesHandler returns an HTTP handler listing distinct categories.
// @Summary List categories
// @Description Distinct non-empty categories of active places
// @Tags places
// @Produce json
// @Success 200 {array} string
// @Router /places/categories [get]
func NewCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if categories == nil {
			categories = []string{}
		}

		writeJSON(w, http.StatusOK, categories)
	}
}
