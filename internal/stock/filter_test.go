package stock

import (
	"testing"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
)

func testItems() []model.Item {
	return []model.Item{
		{ID: "i1", LocationID: "loc1", Name: "Canned Tuna", Category: model.CategoryFood},
		{ID: "i2", LocationID: "loc2", Name: "Winter Coats", Category: model.CategoryClothing},
		{ID: "i3", LocationID: "loc2", Name: "Canned Beans", Category: model.CategoryFood},
		{ID: "i4", LocationID: "loc1", Name: "Soap Bars", Category: model.CategoryHygiene},
	}
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByLocation(t *testing.T) {
	got := Filter(testItems(), "loc2", model.CategoryAll, "")
	if !equalIDs(ids(got), []string{"i2", "i3"}) {
		t.Errorf("expected [i2 i3] in original order, got %v", ids(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(testItems(), model.LocationAll, string(model.CategoryFood), "")
	if !equalIDs(ids(got), []string{"i1", "i3"}) {
		t.Errorf("expected [i1 i3], got %v", ids(got))
	}
}

func TestFilterBySearch(t *testing.T) {
	// Case-insensitive substring of the name only.
	got := Filter(testItems(), model.LocationAll, model.CategoryAll, "CANNED")
	if !equalIDs(ids(got), []string{"i1", "i3"}) {
		t.Errorf("expected [i1 i3], got %v", ids(got))
	}

	// Empty term matches everything.
	got = Filter(testItems(), model.LocationAll, model.CategoryAll, "")
	if len(got) != 4 {
		t.Errorf("empty search: expected 4 items, got %d", len(got))
	}

	// Category text is not searched.
	got = Filter(testItems(), model.LocationAll, model.CategoryAll, "Hygiene")
	if len(got) != 0 {
		t.Errorf("search must only match names, got %v", ids(got))
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	got := Filter(testItems(), "loc2", string(model.CategoryFood), "beans")
	if !equalIDs(ids(got), []string{"i3"}) {
		t.Errorf("expected [i3], got %v", ids(got))
	}
}

func TestFilterOrderIndependent(t *testing.T) {
	// Applying the three predicates in any order yields the same sequence.
	items := testItems()
	combined := Filter(items, "loc2", string(model.CategoryFood), "can")

	locFirst := Filter(Filter(Filter(items, "loc2", model.CategoryAll, ""), model.LocationAll, string(model.CategoryFood), ""), model.LocationAll, model.CategoryAll, "can")
	searchFirst := Filter(Filter(Filter(items, model.LocationAll, model.CategoryAll, "can"), model.LocationAll, string(model.CategoryFood), ""), "loc2", model.CategoryAll, "")

	if !equalIDs(ids(combined), ids(locFirst)) {
		t.Errorf("location-first order differs: %v vs %v", ids(combined), ids(locFirst))
	}
	if !equalIDs(ids(combined), ids(searchFirst)) {
		t.Errorf("search-first order differs: %v vs %v", ids(combined), ids(searchFirst))
	}
}

func TestAvailable(t *testing.T) {
	items := []model.Item{
		{ID: "a", Quantity: 0},
		{ID: "b", Quantity: 2.5},
		{ID: "c", Quantity: 0},
		{ID: "d", Quantity: 1},
	}
	got := Available(items)
	if !equalIDs(ids(got), []string{"b", "d"}) {
		t.Errorf("expected [b d], got %v", ids(got))
	}
}
