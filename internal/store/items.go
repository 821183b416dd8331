package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
)

const itemColumns = `id, location_id, name, category, quantity, target_quantity, unit,
	expiration_date, last_delivery_date, added_date, notes`

// validateItemFields checks caller-supplied item fields before any write.
func validateItemFields(f model.ItemFields) error {
	if f.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalid)
	}
	if f.LocationID == "" {
		return fmt.Errorf("%w: locationId required", ErrInvalid)
	}
	if !f.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, f.Category)
	}
	if !f.Unit.Valid() {
		return fmt.Errorf("%w: unknown unit %q", ErrInvalid, f.Unit)
	}
	if f.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalid)
	}
	if f.TargetQuantity < 0 {
		return fmt.Errorf("%w: target quantity must not be negative", ErrInvalid)
	}
	return nil
}

// CreateItem creates a new inventory item with a fresh id and the current
// time as its added date. The newest item is listed first.
func CreateItem(ctx context.Context, db *sql.DB, fields model.ItemFields) (*model.Item, error) {
	if err := validateItemFields(fields); err != nil {
		return nil, err
	}

	item := &model.Item{
		ID:               uuid.NewString(),
		LocationID:       fields.LocationID,
		Name:             fields.Name,
		Category:         fields.Category,
		Quantity:         fields.Quantity,
		TargetQuantity:   fields.TargetQuantity,
		Unit:             fields.Unit,
		ExpirationDate:   fields.ExpirationDate,
		LastDeliveryDate: fields.LastDeliveryDate,
		AddedDate:        time.Now().UTC().Truncate(time.Second),
		Notes:            fields.Notes,
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.LocationID, item.Name, string(item.Category),
		item.Quantity, item.TargetQuantity, string(item.Unit),
		item.ExpirationDate, item.LastDeliveryDate, item.AddedDate, item.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return item, nil
}

// GetItem returns an item by id.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns the full item collection, most recently added first.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateItem replaces all mutable fields of an item. The id and added date
// never change. Unknown ids return ErrNotFound.
func UpdateItem(ctx context.Context, db *sql.DB, id string, fields model.ItemFields) (*model.Item, error) {
	if err := validateItemFields(fields); err != nil {
		return nil, err
	}

	result, err := db.ExecContext(ctx,
		`UPDATE items SET location_id = ?, name = ?, category = ?, quantity = ?,
		        target_quantity = ?, unit = ?, expiration_date = ?,
		        last_delivery_date = ?, notes = ?
		 WHERE id = ?`,
		fields.LocationID, fields.Name, string(fields.Category),
		fields.Quantity, fields.TargetQuantity, string(fields.Unit),
		fields.ExpirationDate, fields.LastDeliveryDate, fields.Notes, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return GetItem(ctx, db, id)
}

// DeleteItem deletes exactly the item with the given id. Unknown ids return
// ErrNotFound.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*model.Item, error) {
	item := &model.Item{}
	var category, unit string
	var expiration, lastDelivery, notes sql.NullString
	err := s.Scan(
		&item.ID, &item.LocationID, &item.Name, &category,
		&item.Quantity, &item.TargetQuantity, &unit,
		&expiration, &lastDelivery, &item.AddedDate, &notes,
	)
	if err != nil {
		return nil, err
	}
	item.Category = model.Category(category)
	item.Unit = model.Unit(unit)
	item.ExpirationDate = expiration.String
	item.LastDeliveryDate = lastDelivery.String
	item.Notes = notes.String
	return item, nil
}
