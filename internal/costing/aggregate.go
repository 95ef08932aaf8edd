package costing

import (
	"errors"

	"platecost/internal/domain"
)

// SubRecipeCost is a full batch costing: the line breakdown, the batch
// total and the per-yield-unit cost downstream components consume.
type SubRecipeCost struct {
	SubRecipeID int
	TotalCost   float64
	UnitCost    float64
	YieldQty    float64
	Lines       []LineResult
}

// MenuItemCost is a served-unit costing plus the food-cost profitability
// ratio against the retail price.
type MenuItemCost struct {
	MenuItemID  int
	TotalCost   float64
	FoodCostPct float64
	Lines       []LineResult
}

// Flagged reports whether any line needs human review.
func (sc SubRecipeCost) Flagged() bool { return anyFlagged(sc.Lines) }

func (mc MenuItemCost) Flagged() bool { return anyFlagged(mc.Lines) }

func anyFlagged(lines []LineResult) bool {
	for _, l := range lines {
		if l.PriceMissing || l.ComponentMissing {
			return true
		}
	}
	return false
}

// SubRecipeCost sums the sub-recipe's line costs and derives the unit cost
// from the batch yield. A line whose component has been deleted degrades to
// a flagged zero-cost line instead of failing the whole batch; every other
// line error aborts.
func (c *Calculator) SubRecipeCost(id int) (SubRecipeCost, error) {
	sub, ok := c.snap.SubRecipes[id]
	if !ok {
		return SubRecipeCost{}, &UnknownComponentError{Ref: domain.ComponentRef{Kind: domain.KindSubRecipe, ID: id}}
	}
	if sub.YieldQty <= 0 {
		return SubRecipeCost{}, &InvalidYieldError{SubRecipeID: sub.ID, YieldQty: sub.YieldQty}
	}

	result := SubRecipeCost{SubRecipeID: sub.ID, YieldQty: sub.YieldQty}
	for _, line := range sub.Lines {
		if line.Component.Kind == domain.KindMenuItem {
			return SubRecipeCost{}, ErrMenuItemInSubRecipe
		}
		lr, err := c.lineOrMissing(line)
		if err != nil {
			return SubRecipeCost{}, err
		}
		result.Lines = append(result.Lines, lr)
		result.TotalCost += lr.Cost
	}

	result.UnitCost = result.TotalCost / sub.YieldQty
	return result, nil
}

// MenuItemCost sums the menu item's line costs. A menu item represents one
// served unit, so there is no yield divisor; the food-cost ratio is zero
// while the retail price is unset (a valid transient editing state, not an
// error).
func (c *Calculator) MenuItemCost(id int) (MenuItemCost, error) {
	mi, ok := c.snap.MenuItems[id]
	if !ok {
		return MenuItemCost{}, &UnknownComponentError{Ref: domain.ComponentRef{Kind: domain.KindMenuItem, ID: id}}
	}

	result := MenuItemCost{MenuItemID: mi.ID}
	for _, line := range mi.Lines {
		lr, err := c.lineOrMissing(line)
		if err != nil {
			return MenuItemCost{}, err
		}
		result.Lines = append(result.Lines, lr)
		result.TotalCost += lr.Cost
	}

	if mi.RetailPriceExclTax > 0 {
		result.FoodCostPct = result.TotalCost / mi.RetailPriceExclTax
	}
	return result, nil
}

func (c *Calculator) lineOrMissing(line domain.Line) (LineResult, error) {
	lr, err := c.LineCost(line)
	var unknown *UnknownComponentError
	if errors.As(err, &unknown) {
		// The component may have been legitimately deleted after the
		// line was created. Cost is unknown; surface the line rather
		// than zeroing it silently.
		return LineResult{LineID: line.ID, ComponentMissing: true}, nil
	}
	return lr, err
}
