package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/db"
)

func TestCreateAndGetLocation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	loc, err := CreateLocation(ctx, database, "Community Center", "12 Main St", "warehouse")
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}
	if loc.ID == "" {
		t.Error("expected a generated id")
	}

	got, err := GetLocation(ctx, database, loc.ID)
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if got.Name != "Community Center" || got.Address != "12 Main St" || got.Type != "warehouse" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestCreateLocationRequiresName(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := CreateLocation(context.Background(), database, "", "", "")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestListLocationsCreationOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	a, _ := CreateLocation(ctx, database, "Hub A", "", "")
	b, _ := CreateLocation(ctx, database, "Hub B", "", "")
	c, _ := CreateLocation(ctx, database, "Hub C", "", "")

	locations, err := ListLocations(ctx, database)
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(locations) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(locations))
	}
	for i, want := range []string{a.ID, b.ID, c.ID} {
		if locations[i].ID != want {
			t.Errorf("position %d: expected %q, got %q", i, want, locations[i].ID)
		}
	}
}

func TestDeleteLocationWithItemsFails(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	loc, _ := CreateLocation(ctx, database, "Stocked Hub", "", "")
	if _, err := CreateItem(ctx, database, testFields(loc.ID, "Rice")); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	err := DeleteLocation(ctx, database, loc.ID)
	if !errors.Is(err, ErrLocationInUse) {
		t.Errorf("expected ErrLocationInUse, got %v", err)
	}

	// Still listed.
	locations, _ := ListLocations(ctx, database)
	if len(locations) != 1 {
		t.Errorf("location must survive a refused delete, got %d locations", len(locations))
	}
}

func TestDeleteEmptyLocation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	loc, _ := CreateLocation(ctx, database, "Empty Hub", "", "")
	if err := DeleteLocation(ctx, database, loc.ID); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := DeleteLocation(ctx, database, loc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSeedDefaults(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := Seed(ctx, database); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	locations, _ := ListLocations(ctx, database)
	if len(locations) != 2 {
		t.Fatalf("expected 2 default locations, got %d", len(locations))
	}
	if locations[0].Name != "Main Distribution Hub" || locations[1].Name != "Mobile Unit A" {
		t.Errorf("unexpected defaults: %+v", locations)
	}

	// Items seed empty.
	items, _ := ListItems(ctx, database)
	if len(items) != 0 {
		t.Errorf("expected no seeded items, got %d", len(items))
	}
}

func TestSeedIsNoOpOnPopulatedDatabase(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	loc, _ := CreateLocation(ctx, database, "Existing Hub", "", "")

	if err := Seed(ctx, database); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	locations, _ := ListLocations(ctx, database)
	if len(locations) != 1 || locations[0].ID != loc.ID {
		t.Errorf("seed must never touch a populated database: %+v", locations)
	}
}
