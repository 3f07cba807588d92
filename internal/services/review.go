package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/places-api/internal/logger"
	"github.com/sbilibin2017/places-api/internal/models"
	"github.com/sbilibin2017/places-api/internal/repositories"
)

//go:generate mockgen -source=review.go -destination=mock_review.go -package=services

// ActivePlaceGetter looks up active places.
type ActivePlaceGetter interface {
	GetActiveByID(ctx context.Context, placeID int64) (*models.PlaceDB, error)
}

// ReviewReader defines read operations for reviews.
type ReviewReader interface {
	HasReview(ctx context.Context, userID, placeID int64) (bool, error)
	GetByID(ctx context.Context, reviewID int64) (*models.ReviewDB, error)
	ListByPlace(ctx context.Context, placeID int64, limit, offset int) ([]models.ReviewDB, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, userID, placeID int64, rating int, comment *string) (int64, error)
}

// ReviewService enforces the one-review-per-user-per-place rule.
type ReviewService struct {
	places ActivePlaceGetter
	reader ReviewReader
	writer ReviewWriter
	events EventPublisher
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(places ActivePlaceGetter, reader ReviewReader, writer ReviewWriter, events EventPublisher) *ReviewService {
	return &ReviewService{
		places: places,
		reader: reader,
		writer: writer,
		events: events,
	}
}

// Create stores the user's review of an active place.
func (svc *ReviewService) Create(ctx context.Context, user *models.UserDB, placeID int64, req models.ReviewCreate) (*models.ReviewResponse, error) {
	if err := svc.ensurePlace(ctx, placeID); err != nil {
		return nil, err
	}

	exists, err := svc.reader.HasReview(ctx, user.UserID, placeID)
	if err != nil {
		logger.Log.Errorw("failed to check existing review", "placeID", placeID, "userID", user.UserID, "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Warnw("place already reviewed", "placeID", placeID, "userID", user.UserID)
		return nil, ErrAlreadyReviewed
	}

	reviewID, err := svc.writer.Save(ctx, user.UserID, placeID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Warnw("review created concurrently", "placeID", placeID, "userID", user.UserID)
			return nil, ErrAlreadyReviewed
		}
		logger.Log.Errorw("failed to save review", "placeID", placeID, "userID", user.UserID, "err", err)
		return nil, err
	}

	review, err := svc.reader.GetByID(ctx, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to read back review", "reviewID", reviewID, "err", err)
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}

	rating := review.Rating
	svc.events.Publish(ctx, models.PlaceEvent{
		EventID:   uuid.NewString(),
		Type:      models.EventReviewCreated,
		PlaceID:   placeID,
		UserID:    user.UserID,
		ReviewID:  &reviewID,
		Rating:    &rating,
		Timestamp: time.Now().Unix(),
	})

	resp := toReviewResponse(*review)
	return &resp, nil
}

// List returns a page of reviews of an active place, newest first.
func (svc *ReviewService) List(ctx context.Context, placeID int64, filter models.ReviewFilter) ([]models.ReviewResponse, error) {
	if err := svc.ensurePlace(ctx, placeID); err != nil {
		return nil, err
	}

	reviews, err := svc.reader.ListByPlace(ctx, placeID, filter.Limit, filter.Offset)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "placeID", placeID, "err", err)
		return nil, err
	}

	resp := make([]models.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, toReviewResponse(r))
	}
	return resp, nil
}

func (svc *ReviewService) ensurePlace(ctx context.Context, placeID int64) error {
	place, err := svc.places.GetActiveByID(ctx, placeID)
	if err != nil {
		logger.Log.Errorw("failed to get place", "placeID", placeID, "err", err)
		return err
	}
	if place == nil {
		return ErrNotFound
	}
	return nil
}

func toReviewResponse(r models.ReviewDB) models.ReviewResponse {
	return models.ReviewResponse{
		ID:        r.ReviewID,
		Rating:    r.Rating,
		Comment:   stringPtr(r.Comment),
		CreatedAt: r.CreatedAt,
		UserID:    r.UserID,
		Username:  r.Username,
		PlaceID:   r.PlaceID,
	}
}
