package models

import (
	"database/sql"
	"time"
)

// PlaceDB represents a place row in the database
type PlaceDB struct {
	PlaceID     int64          `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	Latitude    float64        `db:"latitude"`
	Longitude   float64        `db:"longitude"`
	Address     sql.NullString `db:"address"`
	Phone       sql.NullString `db:"phone"`
	Website     sql.NullString `db:"website"`
	Specialties sql.NullString `db:"specialties"` // JSON encoded list of strings
	ImageURL    sql.NullString `db:"image_url"`
	IsActive    bool           `db:"is_active"` // false once soft-deleted
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	CreatorID   sql.NullInt64  `db:"creator_id"` // weak reference to users.id
}

// PlaceCreate is the JSON body for POST /places
// swagger:model PlaceCreate
type PlaceCreate struct {
	// required: true
	// example: Cafe Roma
	Name string `json:"name" validate:"required"`

	// required: true
	// example: Espresso bar with a terrace
	Description string `json:"description" validate:"required"`

	// required: true
	// example: cafe
	Category string `json:"category" validate:"required"`

	// required: true
	// example: 41.9028
	Latitude *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`

	// required: true
	// example: 12.4964
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`

	Address     *string  `json:"address,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// PlaceUpdate is the JSON body for PUT /places/{id}. Nil fields are left untouched.
// swagger:model PlaceUpdate
type PlaceUpdate struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Address     *string  `json:"address,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// PlaceFilter holds the query parameters of GET /places.
// Lat, Lng and Radius are accepted for compatibility; proximity search is not implemented.
type PlaceFilter struct {
	Category *string  `schema:"category"`
	Search   *string  `schema:"search"`
	Lat      *float64 `schema:"lat"`
	Lng      *float64 `schema:"lng"`
	Radius   float64  `schema:"radius" validate:"gte=0"`
	Limit    int      `schema:"limit" validate:"gte=0,lte=100"`
	Offset   int      `schema:"offset" validate:"gte=0"`
}

// PlaceResponse is the public view of a place, including its derived rating
// swagger:model PlaceResponse
type PlaceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     *string   `json:"address"`
	Phone       *string   `json:"phone"`
	Website     *string   `json:"website"`
	Specialties []string  `json:"specialties"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	CreatorID   *int64    `json:"creator_id"`

	// Mean rating; null when the place has no reviews
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
}
