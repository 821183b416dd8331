package assist

import (
	"fmt"
	"strings"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
)

const analyzeSystemPrompt = `You are an inventory intake assistant for a relief distribution pantry.
Given a free-text description of donated or purchased stock, respond with a JSON object with exactly these keys:
  "name": a short display name for the item,
  "category": one of "Food", "Clothing", "Hygiene", "Household", "Medical", "Other",
  "suggestedUnit": one of "items", "lbs", "kg", "boxes", "cans", "liters",
  "estimatedShelfLifeDays": the estimated shelf life in days as a number, omitted if the item does not expire.
Respond with the JSON object only.`

// planPrompt builds the utilization-plan request for the given mode over an
// already-filtered (positive-quantity) item list.
func planPrompt(items []model.Item, mode PlanMode) string {
	var b strings.Builder

	switch mode {
	case PlanModeRecipe:
		b.WriteString("You are a community kitchen coordinator. Suggest simple meals that clients ")
		b.WriteString("could prepare from the surplus inventory below. Prefer items well above ")
		b.WriteString("their target quantity.\n\n")
	case PlanModeAudit:
		b.WriteString("You are auditing a relief pantry. Identify the biggest gaps between on-hand ")
		b.WriteString("and target quantities in the inventory below, and list what to ask donors ")
		b.WriteString("for, most urgent first.\n\n")
	}

	b.WriteString("Current inventory:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s): %g of %g %s on hand\n",
			item.Name, item.Category, item.Quantity, item.TargetQuantity, item.Unit)
	}

	return b.String()
}
