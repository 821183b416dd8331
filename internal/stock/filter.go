package stock

import (
	"strings"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
)

// Filter returns the items matching all three selectors, preserving input
// order. locationID is either model.LocationAll or a location id (exact
// match); category is either model.CategoryAll or one category value;
// search is a case-insensitive substring match on the item name only.
// Empty selectors match everything.
func Filter(items []model.Item, locationID, category, search string) []model.Item {
	search = strings.ToLower(search)

	var out []model.Item
	for _, item := range items {
		if locationID != model.LocationAll && locationID != "" && item.LocationID != locationID {
			continue
		}
		if category != model.CategoryAll && category != "" && string(item.Category) != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Available returns the items with strictly positive quantity, the
// candidate set for utilization plans.
func Available(items []model.Item) []model.Item {
	var out []model.Item
	for _, item := range items {
		if item.Quantity > 0 {
			out = append(out, item)
		}
	}
	return out
}
