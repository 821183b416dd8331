package stock

import "github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"

// Summary holds the counts shown on the dashboard tiles.
type Summary struct {
	Total       int `json:"total"`
	NeedsRefill int `json:"needsRefill"`
}

// Summarize computes summary counts over an already-filtered item sequence.
// NeedsRefill counts items strictly below their target, a simpler binary
// signal than the Classify bands.
func Summarize(items []model.Item) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		if item.Quantity < item.TargetQuantity {
			s.NeedsRefill++
		}
	}
	return s
}
