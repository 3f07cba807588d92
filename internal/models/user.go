package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                   // Primary key
	Username     string    `json:"username" db:"username"`       // Unique username
	Email        string    `json:"email" db:"email"`             // Unique email, populated from the username at registration
	PasswordHash string    `json:"-" db:"hashed_password"`       // bcrypt digest
	Avatar       *string   `json:"avatar,omitempty" db:"avatar"` // Optional avatar reference
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// MeResponse is the public view of the authenticated user
// swagger:model MeResponse
type MeResponse struct {
	// example: alice
	Username string `json:"username"`

	// example: alice
	Email string `json:"email"`

	Avatar *string `json:"avatar"`
}
