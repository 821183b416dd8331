package store

import (
	"context"
	"database/sql"
	"fmt"
)

// defaultLocationNames are seeded on first start: a primary hub and a
// mobile unit.
var defaultLocationNames = []string{
	"Main Distribution Hub",
	"Mobile Unit A",
}

// Seed inserts the default locations into an empty database. It never runs
// against a populated locations table, so persisted data is never
// overwritten with defaults. Items start empty and are not seeded.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking locations: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range defaultLocationNames {
		if _, err := CreateLocation(ctx, db, name, "", ""); err != nil {
			return fmt.Errorf("seeding location %q: %w", name, err)
		}
	}
	return nil
}
