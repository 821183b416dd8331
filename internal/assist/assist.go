// Package assist talks to an external text-generation service for the two
// AI-assisted features: turning free text into a structured item draft
// ("smart fill") and generating a utilization plan from current stock.
// The service is an opaque collaborator behind a fixed contract; calls are
// single-shot with no retry and no streaming.
package assist

import (
	"context"
	"time"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
)

// PlanMode selects the kind of utilization plan to generate.
type PlanMode string

const (
	// PlanModeRecipe asks for meal suggestions from surplus inventory.
	PlanModeRecipe PlanMode = "recipe"
	// PlanModeAudit asks for a shortage audit and donor ask-list.
	PlanModeAudit PlanMode = "audit"
)

// Valid reports whether m is a known plan mode.
func (m PlanMode) Valid() bool {
	return m == PlanModeRecipe || m == PlanModeAudit
}

// ItemAnalysis is the structured result of analyzing free-text item input.
// Field names are load-bearing for wire compatibility. Category and unit
// values are trusted to come from the closed sets.
type ItemAnalysis struct {
	Name                   string         `json:"name"`
	Category               model.Category `json:"category"`
	SuggestedUnit          model.Unit     `json:"suggestedUnit"`
	EstimatedShelfLifeDays *int           `json:"estimatedShelfLifeDays,omitempty"`
}

// Shelf-life estimates at or beyond ten years mean "effectively
// non-perishable" and produce no expiration date.
const maxShelfLifeDays = 3650

// ExpirationFromShelfLife converts an estimated shelf life into a calendar
// expiration date (YYYY-MM-DD) relative to now. Absent, non-positive, or
// capped estimates yield an empty string, leaving the date unset.
func ExpirationFromShelfLife(days *int, now time.Time) string {
	if days == nil || *days <= 0 || *days >= maxShelfLifeDays {
		return ""
	}
	return now.AddDate(0, 0, *days).Format("2006-01-02")
}

// Client is the contract the rest of the system depends on. The API layer
// takes this interface so tests can substitute a fake.
type Client interface {
	// AnalyzeItemInput parses free text like "case of 24 cans of tuna"
	// into a structured item draft.
	AnalyzeItemInput(ctx context.Context, freeText string) (*ItemAnalysis, error)

	// GenerateUtilizationPlan produces display-ready content for the given
	// mode. Only items with positive quantity are sent; the response is
	// opaque and not parsed further.
	GenerateUtilizationPlan(ctx context.Context, items []model.Item, mode PlanMode) (string, error)
}
