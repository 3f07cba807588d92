package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/places-api/internal/models"
)

// ReviewReadRepository handles review read operations
type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// HasReview returns true if a review by this user on this place already exists.
func (r *ReviewReadRepository) HasReview(ctx context.Context, userID, placeID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reviews
			WHERE user_id = $1 AND place_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, placeID)
	logQuery(query, []any{userID, placeID}, exists, err)

	return exists, err
}

// GetByID returns the review joined with its author's username, or nil.
func (r *ReviewReadRepository) GetByID(ctx context.Context, reviewID int64) (*models.ReviewDB, error) {
	const query = `
		SELECT r.id, r.rating, r.comment, r.created_at, r.updated_at, r.user_id, r.place_id, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, reviewID)
	logQuery(query, []any{reviewID}, review.ReviewID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByPlace returns a page of the place's reviews, newest first.
func (r *ReviewReadRepository) ListByPlace(ctx context.Context, placeID int64, limit, offset int) ([]models.ReviewDB, error) {
	const query = `
		SELECT r.id, r.rating, r.comment, r.created_at, r.updated_at, r.user_id, r.place_id, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.place_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`
	args := []any{placeID, limit, offset}

	reviews := []models.ReviewDB{}
	err := r.db.SelectContext(ctx, &reviews, query, args...)
	logQuery(query, args, len(reviews), err)

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Aggregate returns the mean rating and the number of reviews of a place.
// The average is nil when the place has no reviews.
func (r *ReviewReadRepository) Aggregate(ctx context.Context, placeID int64) (*float64, int, error) {
	const query = `
		SELECT AVG(rating)::FLOAT8 AS avg_rating, COUNT(id) AS review_count
		FROM reviews
		WHERE place_id = $1
	`

	var agg models.RatingAggregate
	err := r.db.GetContext(ctx, &agg, query, placeID)
	logQuery(query, []any{placeID}, agg, err)

	if err != nil {
		return nil, 0, err
	}
	if agg.Count == 0 {
		return nil, 0, nil
	}
	return agg.Average, agg.Count, nil
}

// ReviewWriteRepository handles review write operations
type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Save inserts a review and returns its id.
// ErrUniqueViolation is returned when the user already reviewed the place.
func (r *ReviewWriteRepository) Save(ctx context.Context, userID, placeID int64, rating int, comment *string) (int64, error) {
	const query = `
		INSERT INTO reviews (rating, comment, created_at, updated_at, user_id, place_id)
		VALUES ($1, $2, NOW(), NOW(), $3, $4)
		RETURNING id
	`
	args := []any{rating, comment, userID, placeID}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)
	logQuery(query, args, id, err)

	if err != nil {
		return 0, mapWriteError(err)
	}
	return id, nil
}
