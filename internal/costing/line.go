package costing

import (
	"fmt"

	"platecost/internal/domain"
)

// LineResult is the costed outcome of one composition line.
type LineResult struct {
	LineID int
	Cost   float64
	// PriceMissing flags a line whose inventory component has no price
	// set; the cost is zero but the line needs review.
	PriceMissing bool
	// ComponentMissing flags a line whose component no longer exists in
	// the snapshot. Only the aggregators set it; LineCost itself fails.
	ComponentMissing bool
}

// LineCost computes the monetary cost of a single line: resolve the
// component's unit cost, pad the quantity for wastage, convert into the
// unit the cost is expressed in, multiply. There is no fallback when the
// conversion is impossible — the line is rejected.
func (c *Calculator) LineCost(line domain.Line) (LineResult, error) {
	if line.Quantity <= 0 {
		return LineResult{}, fmt.Errorf("line %d: %w (got %g)", line.ID, ErrNonPositiveQuantity, line.Quantity)
	}
	if line.WastagePercent < 0 || line.WastagePercent >= 100 {
		return LineResult{}, fmt.Errorf("line %d: %w (got %g)", line.ID, ErrWastageOutOfRange, line.WastagePercent)
	}

	unitCost, err := c.ResolveUnitCost(line.Component)
	if err != nil {
		return LineResult{}, err
	}

	// Order enough that the net requirement survives trim/spoilage loss.
	effectiveQty := line.Quantity * (1 + line.WastagePercent/100)

	// A component menu item is consumed in whole servings regardless of
	// whatever unit the line stored.
	fromUnitID := line.UnitID
	if line.Component.Kind == domain.KindMenuItem {
		fromUnitID = c.snap.EachUnitID
	}

	convertedQty, err := c.Convert(effectiveQty, fromUnitID, unitCost.NativeUnitID)
	if err != nil {
		return LineResult{}, err
	}

	return LineResult{
		LineID:       line.ID,
		Cost:         convertedQty * unitCost.Cost,
		PriceMissing: unitCost.PriceMissing,
	}, nil
}
