// Package stock derives views over the inventory collection: stock-status
// classification, location/category/text filtering, and summary statistics.
// Everything here is pure and side-effect free.
package stock

// Severity indicates how urgently an item needs replenishment.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityAlert
)

// Status labels.
const (
	LabelNoTarget = "No Target"
	LabelFilled   = "Filled"
	LabelLow      = "Low"
	LabelCritical = "Critical"
)

// Status is the derived stock level of an item.
type Status struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// Classify maps an on-hand quantity and its target to a stock status.
// Bands by quantity/target ratio, lower bounds inclusive: >= 1 is Filled,
// [0.5, 1) is Low, < 0.5 is Critical. A zero target means no agreement
// exists and nothing can be said about the stock level.
func Classify(quantity, target float64) Status {
	if target == 0 {
		return Status{Label: LabelNoTarget, Severity: SeverityNone}
	}
	ratio := quantity / target
	switch {
	case ratio >= 1:
		return Status{Label: LabelFilled, Severity: SeverityNone}
	case ratio >= 0.5:
		return Status{Label: LabelLow, Severity: SeverityWarning}
	default:
		return Status{Label: LabelCritical, Severity: SeverityAlert}
	}
}
