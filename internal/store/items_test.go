package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/db"
	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
)

func testFields(locationID, name string) model.ItemFields {
	return model.ItemFields{
		LocationID:     locationID,
		Name:           name,
		Category:       model.CategoryFood,
		Quantity:       5,
		TargetQuantity: 10,
		Unit:           model.UnitCans,
	}
}

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	fields := testFields("loc1", "Canned Tuna")
	fields.ExpirationDate = "2027-03-01"
	fields.Notes = "donated"

	item, err := CreateItem(ctx, database, fields)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a generated id")
	}
	if item.AddedDate.IsZero() {
		t.Error("expected added date to be set")
	}

	got, err := GetItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Name != "Canned Tuna" || got.Category != model.CategoryFood || got.Unit != model.UnitCans {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Quantity != 5 || got.TargetQuantity != 10 {
		t.Errorf("quantity round-trip mismatch: %+v", got)
	}
	if got.ExpirationDate != "2027-03-01" || got.Notes != "donated" {
		t.Errorf("optional field round-trip mismatch: %+v", got)
	}
	if !got.AddedDate.Equal(item.AddedDate) {
		t.Errorf("added date changed on round-trip: %v vs %v", got.AddedDate, item.AddedDate)
	}
}

func TestCreateItemUniqueIDs(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		item, err := CreateItem(ctx, database, testFields("loc1", "Rice"))
		if err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		if seen[item.ID] {
			t.Fatalf("duplicate id %q", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestListItemsNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, _ := CreateItem(ctx, database, testFields("loc1", "First"))
	second, _ := CreateItem(ctx, database, testFields("loc1", "Second"))
	third, _ := CreateItem(ctx, database, testFields("loc1", "Third"))

	items, err := ListItems(ctx, database)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := []string{third.ID, second.ID, first.ID}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, items[i].ID)
		}
	}
}

func TestCreateItemValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.ItemFields)
	}{
		{"empty name", func(f *model.ItemFields) { f.Name = "" }},
		{"empty location", func(f *model.ItemFields) { f.LocationID = "" }},
		{"unknown category", func(f *model.ItemFields) { f.Category = "Snacks" }},
		{"unknown unit", func(f *model.ItemFields) { f.Unit = "pallets" }},
		{"negative quantity", func(f *model.ItemFields) { f.Quantity = -1 }},
		{"negative target", func(f *model.ItemFields) { f.TargetQuantity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := testFields("loc1", "Valid Name")
			tt.mutate(&fields)
			_, err := CreateItem(ctx, database, fields)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestUpdateItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, testFields("loc1", "Old Name"))

	fields := testFields("loc2", "New Name")
	fields.Quantity = 8
	updated, err := UpdateItem(ctx, database, item.ID, fields)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Name != "New Name" || updated.LocationID != "loc2" || updated.Quantity != 8 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.ID != item.ID {
		t.Error("id must never change")
	}
	if !updated.AddedDate.Equal(item.AddedDate) {
		t.Error("added date must never change")
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := UpdateItem(ctx, database, "no-such-id", testFields("loc1", "Name"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteItemRemovesExactlyOne(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	keep1, _ := CreateItem(ctx, database, testFields("loc1", "Keep One"))
	victim, _ := CreateItem(ctx, database, testFields("loc1", "Delete Me"))
	keep2, _ := CreateItem(ctx, database, testFields("loc2", "Keep Two"))

	if err := DeleteItem(ctx, database, victim.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	items, _ := ListItems(ctx, database)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != keep2.ID || items[1].ID != keep1.ID {
		t.Errorf("remaining items disturbed: %v, %v", items[0].ID, items[1].ID)
	}
	if items[1].Name != "Keep One" || items[0].Name != "Keep Two" {
		t.Errorf("remaining fields changed: %+v", items)
	}

	if err := DeleteItem(ctx, database, victim.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestGetItemNotFound(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := GetItem(context.Background(), database, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
