package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The seq columns preserve insertion
// order: locations list oldest-first, items list newest-first.
const schema = `
CREATE TABLE IF NOT EXISTS locations (
    seq     INTEGER PRIMARY KEY,
    id      TEXT NOT NULL UNIQUE,
    name    TEXT NOT NULL,
    address TEXT,
    type    TEXT
);

CREATE TABLE IF NOT EXISTS items (
    seq                INTEGER PRIMARY KEY,
    id                 TEXT NOT NULL UNIQUE,
    location_id        TEXT NOT NULL,
    name               TEXT NOT NULL,
    category           TEXT NOT NULL CHECK (category IN ('Food', 'Clothing', 'Hygiene', 'Household', 'Medical', 'Other')),
    quantity           REAL NOT NULL CHECK (quantity >= 0),
    target_quantity    REAL NOT NULL CHECK (target_quantity >= 0),
    unit               TEXT NOT NULL CHECK (unit IN ('items', 'lbs', 'kg', 'boxes', 'cans', 'liters')),
    expiration_date    TEXT,
    last_delivery_date TEXT,
    added_date         DATETIME NOT NULL,
    notes              TEXT
);

CREATE INDEX IF NOT EXISTS idx_items_location ON items(location_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
