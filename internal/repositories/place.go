package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/places-api/internal/models"
)

// placeColumns is the column list shared by every place SELECT.
const placeColumns = `id, name, description, category, latitude, longitude, address, phone,
	website, specialties, image_url, is_active, created_at, updated_at, creator_id`

// duplicateDistance is the coordinate tolerance, in degrees (about 100m), of the duplicate check.
const duplicateDistance = 0.001

// PlaceReadRepository handles place read operations. Inactive places are never returned.
type PlaceReadRepository struct {
	db *sqlx.DB
}

func NewPlaceReadRepository(db *sqlx.DB) *PlaceReadRepository {
	return &PlaceReadRepository{db: db}
}

// GetActiveByID returns the active place with the given id, or nil.
func (r *PlaceReadRepository) GetActiveByID(ctx context.Context, placeID int64) (*models.PlaceDB, error) {
	const query = `SELECT ` + placeColumns + `
		FROM places
		WHERE id = $1 AND is_active = TRUE
	`

	var place models.PlaceDB
	err := r.db.GetContext(ctx, &place, query, placeID)
	logQuery(query, []any{placeID}, place.PlaceID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// FindSimilar returns an active place whose name contains name (case-insensitive)
// and whose coordinates are within duplicateDistance of (lat, lon), or nil.
func (r *PlaceReadRepository) FindSimilar(ctx context.Context, name string, lat, lon float64) (*models.PlaceDB, error) {
	const query = `SELECT ` + placeColumns + `
		FROM places
		WHERE name ILIKE '%' || $1::TEXT || '%'
		  AND is_active = TRUE
		  AND ABS(latitude - $2) < $4
		  AND ABS(longitude - $3) < $4
		LIMIT 1
	`
	args := []any{name, lat, lon, duplicateDistance}

	var place models.PlaceDB
	err := r.db.GetContext(ctx, &place, query, args...)
	logQuery(query, args, place.PlaceID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// List returns a page of active places matching the filter.
// Lat, Lng and Radius of the filter are ignored.
func (r *PlaceReadRepository) List(ctx context.Context, filter models.PlaceFilter) ([]models.PlaceDB, error) {
	const query = `SELECT ` + placeColumns + `
		FROM places
		WHERE is_active = TRUE
		  AND ($1::TEXT IS NULL OR category ILIKE '%' || $1::TEXT || '%')
		  AND ($2::TEXT IS NULL
		       OR name ILIKE '%' || $2::TEXT || '%'
		       OR description ILIKE '%' || $2::TEXT || '%'
		       OR specialties ILIKE '%' || $2::TEXT || '%')
		ORDER BY id
		LIMIT $3 OFFSET $4
	`
	args := []any{filter.Category, filter.Search, filter.Limit, filter.Offset}

	places := []models.PlaceDB{}
	err := r.db.SelectContext(ctx, &places, query, args...)
	logQuery(query, args, len(places), err)

	if err != nil {
		return nil, err
	}
	return places, nil
}

// Categories returns the distinct non-empty categories of active places.
func (r *PlaceReadRepository) Categories(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT category
		FROM places
		WHERE is_active = TRUE AND category <> ''
		ORDER BY category
	`

	categories := []string{}
	err := r.db.SelectContext(ctx, &categories, query)
	logQuery(query, nil, categories, err)

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// PlaceWriteRepository handles place write operations
type PlaceWriteRepository struct {
	db *sqlx.DB
}

func NewPlaceWriteRepository(db *sqlx.DB) *PlaceWriteRepository {
	return &PlaceWriteRepository{db: db}
}

// Save inserts an active place and returns its id.
func (r *PlaceWriteRepository) Save(ctx context.Context, place *models.PlaceDB) (int64, error) {
	const query = `
		INSERT INTO places (name, description, category, latitude, longitude, address, phone,
			website, specialties, image_url, is_active, created_at, updated_at, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, NOW(), NOW(), $11)
		RETURNING id
	`
	args := []any{
		place.Name, place.Description, place.Category, place.Latitude, place.Longitude,
		place.Address, place.Phone, place.Website, place.Specialties, place.ImageURL,
		place.CreatorID,
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)
	logQuery(query, args, id, err)

	if err != nil {
		return 0, mapWriteError(err)
	}
	return id, nil
}

// Update overwrites the non-nil fields of upd and stamps updated_at.
// specialties is the already encoded list; nil keeps the stored value.
func (r *PlaceWriteRepository) Update(ctx context.Context, placeID int64, upd models.PlaceUpdate, specialties *string) error {
	const query = `
		UPDATE places SET
			name        = COALESCE($2, name),
			description = COALESCE($3, description),
			category    = COALESCE($4, category),
			latitude    = COALESCE($5, latitude),
			longitude   = COALESCE($6, longitude),
			address     = COALESCE($7, address),
			phone       = COALESCE($8, phone),
			website     = COALESCE($9, website),
			specialties = COALESCE($10, specialties),
			image_url   = COALESCE($11, image_url),
			updated_at  = NOW()
		WHERE id = $1
	`
	args := []any{
		placeID, upd.Name, upd.Description, upd.Category, upd.Latitude, upd.Longitude,
		upd.Address, upd.Phone, upd.Website, specialties, upd.ImageURL,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}

// Deactivate soft-deletes a place.
func (r *PlaceWriteRepository) Deactivate(ctx context.Context, placeID int64) error {
	const query = `
		UPDATE places
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, placeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{placeID}, rowsAffected, err)

	return err
}
