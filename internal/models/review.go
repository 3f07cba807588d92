package models

import (
	"database/sql"
	"time"
)

// ReviewDB represents a review row joined with its author's username
type ReviewDB struct {
	ReviewID  int64          `db:"id"`
	Rating    int            `db:"rating"`
	Comment   sql.NullString `db:"comment"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	UserID    int64          `db:"user_id"`
	PlaceID   int64          `db:"place_id"`
	Username  string         `db:"username"` // joined from users
}

// RatingAggregate is the derived rating of a place. Average is nil when Count is zero.
type RatingAggregate struct {
	Average *float64 `db:"avg_rating"`
	Count   int      `db:"review_count"`
}

// ReviewCreate is the JSON body for POST /places/{id}/reviews
// swagger:model ReviewCreate
type ReviewCreate struct {
	// required: true
	// minimum: 1
	// maximum: 5
	Rating int `json:"rating" validate:"required,min=1,max=5"`

	// example: Great coffee
	Comment *string `json:"comment,omitempty"`
}

// ReviewFilter holds the pagination parameters of GET /places/{id}/reviews
type ReviewFilter struct {
	Limit  int `schema:"limit" validate:"gte=0,lte=50"`
	Offset int `schema:"offset" validate:"gte=0"`
}

// ReviewResponse is the public view of a review
// swagger:model ReviewResponse
type ReviewResponse struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	PlaceID   int64     `json:"place_id"`
}
