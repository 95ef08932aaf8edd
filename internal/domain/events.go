package domain

import "time"

// Change event types consumed from the component-changes topic.
const (
	ChangePriceUpdated = "price_updated"
	ChangeLinesEdited  = "lines_edited"
	ChangeYieldUpdated = "yield_updated"
)

// ChangeEvent is emitted by the CRUD layer whenever something that feeds a
// computed cost is mutated: an inventory price, a line set, a yield.
type ChangeEvent struct {
	Type      string        `json:"type"`
	Kind      ComponentKind `json:"kind"`
	ID        int           `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
}

// CostUpdate is published after a recompute so downstream consumers
// (reports, dashboards) can refresh without re-deriving anything.
type CostUpdate struct {
	Kind        ComponentKind `json:"kind"`
	ID          int           `json:"id"`
	TotalCost   float64       `json:"total_cost"`
	UnitCost    float64       `json:"unit_cost,omitempty"`
	FoodCostPct float64       `json:"food_cost_pct,omitempty"`
	Flagged     bool          `json:"flagged"`
	Timestamp   time.Time     `json:"timestamp"`
}
