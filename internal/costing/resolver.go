package costing

import "platecost/internal/domain"

// UnitCost is the resolved cost of one native unit of a component: one
// inventory unit for an item, one yield unit for a sub-recipe, one serving
// for a menu item.
type UnitCost struct {
	Cost         float64
	NativeUnitID int
	// PriceMissing is set when an inventory item has no price at all.
	// The cost resolves to zero, but reporting needs to tell "unpriced"
	// apart from "priced at zero".
	PriceMissing bool
}

// ResolveUnitCost looks up the current per-unit cost of a component.
func (c *Calculator) ResolveUnitCost(ref domain.ComponentRef) (UnitCost, error) {
	switch ref.Kind {
	case domain.KindInventoryItem:
		item, ok := c.snap.InventoryItems[ref.ID]
		if !ok {
			return UnitCost{}, &UnknownComponentError{Ref: ref}
		}
		if item.CurrentPrice == nil {
			return UnitCost{NativeUnitID: item.InventoryUomID, PriceMissing: true}, nil
		}
		return UnitCost{Cost: *item.CurrentPrice, NativeUnitID: item.InventoryUomID}, nil

	case domain.KindSubRecipe:
		sub, ok := c.snap.SubRecipes[ref.ID]
		if !ok {
			return UnitCost{}, &UnknownComponentError{Ref: ref}
		}
		if sub.YieldQty <= 0 {
			return UnitCost{}, &InvalidYieldError{SubRecipeID: sub.ID, YieldQty: sub.YieldQty}
		}
		return UnitCost{Cost: sub.Cost / sub.YieldQty, NativeUnitID: sub.UomID}, nil

	case domain.KindMenuItem:
		// A menu item consumed by another menu item is always a whole
		// serving, so its cost is per "each" and never converted.
		mi, ok := c.snap.MenuItems[ref.ID]
		if !ok {
			return UnitCost{}, &UnknownComponentError{Ref: ref}
		}
		return UnitCost{Cost: mi.Cost, NativeUnitID: c.snap.EachUnitID}, nil
	}

	return UnitCost{}, &UnknownComponentError{Ref: ref}
}
