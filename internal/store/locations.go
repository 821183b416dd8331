package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
)

// CreateLocation creates a new location with a fresh id. Address and
// locType are optional.
func CreateLocation(ctx context.Context, db *sql.DB, name, address, locType string) (*model.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalid)
	}

	loc := &model.Location{
		ID:      uuid.NewString(),
		Name:    name,
		Address: address,
		Type:    locType,
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO locations (id, name, address, type) VALUES (?, ?, ?, ?)`,
		loc.ID, loc.Name, loc.Address, loc.Type,
	)
	if err != nil {
		return nil, fmt.Errorf("creating location: %w", err)
	}

	return loc, nil
}

// GetLocation returns a location by id.
func GetLocation(ctx context.Context, db *sql.DB, id string) (*model.Location, error) {
	loc := &model.Location{}
	var address, locType sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, address, type FROM locations WHERE id = ?`, id,
	).Scan(&loc.ID, &loc.Name, &address, &locType)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting location: %w", err)
	}
	loc.Address = address.String
	loc.Type = locType.String
	return loc, nil
}

// ListLocations returns all locations in creation order.
func ListLocations(ctx context.Context, db *sql.DB) ([]model.Location, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, address, type FROM locations ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		var loc model.Location
		var address, locType sql.NullString
		if err := rows.Scan(&loc.ID, &loc.Name, &address, &locType); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		loc.Address = address.String
		loc.Type = locType.String
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// DeleteLocation deletes a location. Fails with ErrLocationInUse while any
// item still references it, so items can never be orphaned.
func DeleteLocation(ctx context.Context, db *sql.DB, id string) error {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE location_id = ?`, id,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking location inventory: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d items", ErrLocationInUse, count)
	}

	result, err := db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
