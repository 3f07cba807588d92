package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/places-api/internal/logger"
	"github.com/sbilibin2017/places-api/internal/models"
)

//go:generate mockgen -source=place.go -destination=mock_place.go -package=services

// PlaceReader defines read operations over active places.
type PlaceReader interface {
	GetActiveByID(ctx context.Context, placeID int64) (*models.PlaceDB, error)
	FindSimilar(ctx context.Context, name string, lat, lon float64) (*models.PlaceDB, error)
	List(ctx context.Context, filter models.PlaceFilter) ([]models.PlaceDB, error)
	Categories(ctx context.Context) ([]string, error)
}

// PlaceWriter defines write operations for places.
type PlaceWriter interface {
	Save(ctx context.Context, place *models.PlaceDB) (int64, error)
	Update(ctx context.Context, placeID int64, upd models.PlaceUpdate, specialties *string) error
	Deactivate(ctx context.Context, placeID int64) error
}

// RatingAggregator derives the rating of a place from its reviews.
type RatingAggregator interface {
	Aggregate(ctx context.Context, placeID int64) (avg *float64, count int, err error)
}

// PlaceService enforces ownership and duplicate rules on places.
type PlaceService struct {
	reader  PlaceReader
	writer  PlaceWriter
	ratings RatingAggregator
	events  EventPublisher
}

// NewPlaceService creates a new PlaceService instance.
func NewPlaceService(reader PlaceReader, writer PlaceWriter, ratings RatingAggregator, events EventPublisher) *PlaceService {
	return &PlaceService{
		reader:  reader,
		writer:  writer,
		ratings: ratings,
		events:  events,
	}
}

// Get returns an active place with its rating.
func (svc *PlaceService) Get(ctx context.Context, placeID int64) (*models.PlaceResponse, error) {
	place, err := svc.reader.GetActiveByID(ctx, placeID)
	if err != nil {
		logger.Log.Errorw("failed to get place", "placeID", placeID, "err", err)
		return nil, err
	}
	if place == nil {
		return nil, ErrNotFound
	}
	return svc.toResponse(ctx, place)
}

// List returns a page of active places, each with its rating.
// The rating is aggregated with one query per place.
func (svc *PlaceService) List(ctx context.Context, filter models.PlaceFilter) ([]models.PlaceResponse, error) {
	if filter.Category != nil && *filter.Category == "" {
		filter.Category = nil
	}
	if filter.Search != nil && *filter.Search == "" {
		filter.Search = nil
	}

	places, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list places", "err", err)
		return nil, err
	}

	resp := make([]models.PlaceResponse, 0, len(places))
	for i := range places {
		p, err := svc.toResponse(ctx, &places[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *p)
	}
	return resp, nil
}

// Categories returns the distinct categories of active places.
func (svc *PlaceService) Categories(ctx context.Context) ([]string, error) {
	categories, err := svc.reader.Categories(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get categories", "err", err)
		return nil, err
	}
	return categories, nil
}

// Create stores a new place attributed to user, unless a similar active place
// (name contains the requested name, within about 100m) already exists.
func (svc *PlaceService) Create(ctx context.Context, user *models.UserDB, req models.PlaceCreate) (*models.PlaceResponse, error) {
	lat, lon := *req.Latitude, *req.Longitude
	existing, err := svc.reader.FindSimilar(ctx, req.Name, lat, lon)
	if err != nil {
		logger.Log.Errorw("failed to check similar places", "name", req.Name, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("similar place exists", "name", req.Name, "existingID", existing.PlaceID)
		return nil, ErrSimilarPlace
	}

	place := &models.PlaceDB{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    lat,
		Longitude:   lon,
		Address:     nullString(req.Address),
		Phone:       nullString(req.Phone),
		Website:     nullString(req.Website),
		ImageURL:    nullString(req.ImageURL),
		CreatorID:   sql.NullInt64{Int64: user.UserID, Valid: true},
	}
	if len(req.Specialties) > 0 {
		encoded, err := encodeSpecialties(req.Specialties)
		if err != nil {
			return nil, err
		}
		place.Specialties = sql.NullString{String: encoded, Valid: true}
	}

	placeID, err := svc.writer.Save(ctx, place)
	if err != nil {
		logger.Log.Errorw("failed to save place", "name", req.Name, "err", err)
		return nil, err
	}

	svc.publish(ctx, models.EventPlaceCreated, placeID, user.UserID)
	return svc.Get(ctx, placeID)
}

// Update applies the supplied fields of req to a place owned by user.
func (svc *PlaceService) Update(ctx context.Context, user *models.UserDB, placeID int64, req models.PlaceUpdate) (*models.PlaceResponse, error) {
	if err := svc.authorize(ctx, user, placeID); err != nil {
		return nil, err
	}

	var specialties *string
	if req.Specialties != nil {
		encoded, err := encodeSpecialties(req.Specialties)
		if err != nil {
			return nil, err
		}
		specialties = &encoded
	}

	if err := svc.writer.Update(ctx, placeID, req, specialties); err != nil {
		logger.Log.Errorw("failed to update place", "placeID", placeID, "err", err)
		return nil, err
	}

	svc.publish(ctx, models.EventPlaceUpdated, placeID, user.UserID)
	return svc.Get(ctx, placeID)
}

// Delete soft-deletes a place owned by user.
func (svc *PlaceService) Delete(ctx context.Context, user *models.UserDB, placeID int64) error {
	if err := svc.authorize(ctx, user, placeID); err != nil {
		return err
	}

	if err := svc.writer.Deactivate(ctx, placeID); err != nil {
		logger.Log.Errorw("failed to deactivate place", "placeID", placeID, "err", err)
		return err
	}

	svc.publish(ctx, models.EventPlaceDeleted, placeID, user.UserID)
	return nil
}

// authorize checks that the place is active and was created by user.
func (svc *PlaceService) authorize(ctx context.Context, user *models.UserDB, placeID int64) error {
	place, err := svc.reader.GetActiveByID(ctx, placeID)
	if err != nil {
		logger.Log.Errorw("failed to get place", "placeID", placeID, "err", err)
		return err
	}
	if place == nil {
		return ErrNotFound
	}
	if !place.CreatorID.Valid || place.CreatorID.Int64 != user.UserID {
		logger.Log.Warnw("place ownership violation", "placeID", placeID, "userID", user.UserID)
		return ErrForbidden
	}
	return nil
}

func (svc *PlaceService) toResponse(ctx context.Context, place *models.PlaceDB) (*models.PlaceResponse, error) {
	avg, count, err := svc.ratings.Aggregate(ctx, place.PlaceID)
	if err != nil {
		logger.Log.Errorw("failed to aggregate rating", "placeID", place.PlaceID, "err", err)
		return nil, err
	}

	resp := &models.PlaceResponse{
		ID:            place.PlaceID,
		Name:          place.Name,
		Description:   place.Description,
		Category:      place.Category,
		Latitude:      place.Latitude,
		Longitude:     place.Longitude,
		Address:       stringPtr(place.Address),
		Phone:         stringPtr(place.Phone),
		Website:       stringPtr(place.Website),
		Specialties:   decodeSpecialties(place.Specialties),
		ImageURL:      stringPtr(place.ImageURL),
		CreatedAt:     place.CreatedAt,
		AverageRating: avg,
		ReviewCount:   count,
	}
	if place.CreatorID.Valid {
		creatorID := place.CreatorID.Int64
		resp.CreatorID = &creatorID
	}
	return resp, nil
}

func (svc *PlaceService) publish(ctx context.Context, eventType string, placeID, userID int64) {
	svc.events.Publish(ctx, models.PlaceEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		PlaceID:   placeID,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
	})
}

func encodeSpecialties(specialties []string) (string, error) {
	data, err := json.Marshal(specialties)
	if err != nil {
		logger.Log.Errorw("failed to encode specialties", "err", err)
		return "", err
	}
	return string(data), nil
}

// decodeSpecialties parses the stored list. Unreadable values degrade to an empty list.
func decodeSpecialties(stored sql.NullString) []string {
	if !stored.Valid || stored.String == "" {
		return nil
	}
	var specialties []string
	if err := json.Unmarshal([]byte(stored.String), &specialties); err != nil {
		logger.Log.Warnw("unreadable specialties, returning empty list", "value", stored.String, "err", err)
		return []string{}
	}
	return specialties
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
