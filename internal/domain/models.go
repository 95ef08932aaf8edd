package domain

import "fmt"

// ComponentKind tags the one entity type a composition line points at.
type ComponentKind string

const (
	KindInventoryItem ComponentKind = "inventory_item"
	KindSubRecipe     ComponentKind = "sub_recipe"
	KindMenuItem      ComponentKind = "menu_item"
)

// ComponentRef identifies an inventory item, a sub-recipe or a menu item
// used as a component. Exactly one kind, one id — the old three-nullable-
// columns shape is mapped into this at the storage boundary.
type ComponentRef struct {
	Kind ComponentKind `json:"kind"`
	ID   int           `json:"id"`
}

func (r ComponentRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

type UnitOfMeasure struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	CategoryID   int    `json:"category_id"`
	// Factor relative to the category base unit (gram=1, kilogram=1000).
	ConversionFactor float64 `json:"conversion_factor"`
}

type InventoryItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// nil means no price has been set yet, which is different from a
	// price of zero.
	CurrentPrice   *float64 `json:"current_price"`
	InventoryUomID int      `json:"inventory_uom_id"`
}

// Line is one composition row on a sub-recipe or a menu item: consume
// Quantity of Component, measured in Unit, padded by WastagePercent.
type Line struct {
	ID             int          `json:"id"`
	Component      ComponentRef `json:"component"`
	Quantity       float64      `json:"quantity"`
	WastagePercent float64      `json:"wastage_percent"`
	UnitID         int          `json:"unit_id"`
	LineCost       float64      `json:"line_cost"`
}

type SubRecipe struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	UomID    int     `json:"uom_id"`
	YieldQty float64 `json:"yield_qty"`
	// Cost is the total cost of one full batch; cost per UomID unit is
	// Cost / YieldQty.
	Cost  float64 `json:"cost"`
	Lines []Line  `json:"lines"`
}

type MenuItem struct {
	ID                    int     `json:"id"`
	Name                  string  `json:"name"`
	RetailPriceExclTax    float64 `json:"retail_price_excl_tax"`
	MaxAllowedFoodCostPct float64 `json:"max_allowed_food_cost_pct"`
	Cost                  float64 `json:"cost"`
	FoodCostPercentage    float64 `json:"food_cost_percentage"`
	Lines                 []Line  `json:"lines"`
}

// Snapshot is a read-only view of every entity the costing engine needs,
// taken in one piece. The engine never mutates it and never goes back to
// storage mid-computation.
type Snapshot struct {
	Units          map[int]UnitOfMeasure
	InventoryItems map[int]InventoryItem
	SubRecipes     map[int]SubRecipe
	MenuItems      map[int]MenuItem
	// EachUnitID is the well-known count unit used whenever a menu item
	// appears as a component of another menu item.
	EachUnitID int
}
