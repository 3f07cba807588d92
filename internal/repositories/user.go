package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/places-api/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, hashed_password, avatar, created_at
		FROM users
		WHERE username = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logQuery(query, []any{username}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its id.
// ErrUniqueViolation is returned when the username or email is taken.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string, avatar *string) (int64, error) {
	const query = `
		INSERT INTO users (username, email, hashed_password, avatar, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	// password hash is never logged
	logArgs := []any{username, email, avatar}

	var id int64
	err := r.db.GetContext(ctx, &id, query, username, email, passwordHash, avatar)

	logQuery(query, logArgs, id, err)

	if err != nil {
		return 0, mapWriteError(err)
	}
	return id, nil
}
