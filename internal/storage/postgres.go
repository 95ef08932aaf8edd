package storage

import (
	"database/sql"
	"fmt"

	"platecost/internal/costing"
	"platecost/internal/domain"
)

// PostgresRepository loads entity snapshots for the costing engine and
// writes computed cost figures back. It owns no business logic.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// LoadSnapshot reads the whole unit catalog and every inventory item,
// sub-recipe and menu item (with lines) in one pass. The result is the
// internally-consistent, read-only view one computation runs against.
func (r *PostgresRepository) LoadSnapshot() (*domain.Snapshot, error) {
	snap := &domain.Snapshot{
		Units:          make(map[int]domain.UnitOfMeasure),
		InventoryItems: make(map[int]domain.InventoryItem),
		SubRecipes:     make(map[int]domain.SubRecipe),
		MenuItems:      make(map[int]domain.MenuItem),
	}

	if err := r.loadUnits(snap); err != nil {
		return nil, err
	}
	if err := r.loadInventoryItems(snap); err != nil {
		return nil, err
	}
	if err := r.loadSubRecipes(snap); err != nil {
		return nil, err
	}
	if err := r.loadMenuItems(snap); err != nil {
		return nil, err
	}

	return snap, nil
}

func (r *PostgresRepository) loadUnits(snap *domain.Snapshot) error {
	rows, err := r.DB.Query(`
		SELECT id, name, abbreviation, category_id, conversion_factor, is_each
		FROM units_of_measure
	`)
	if err != nil {
		return fmt.Errorf("failed to load units of measure: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u domain.UnitOfMeasure
		var isEach bool
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.CategoryID, &u.ConversionFactor, &isEach); err != nil {
			return fmt.Errorf("failed to scan unit of measure: %w", err)
		}
		snap.Units[u.ID] = u
		if isEach {
			snap.EachUnitID = u.ID
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// The "each" unit is resolved once here and referenced by id from then
	// on; nothing downstream matches on unit names.
	if snap.EachUnitID == 0 {
		return fmt.Errorf("unit catalog has no designated \"each\" unit")
	}
	return nil
}

func (r *PostgresRepository) loadInventoryItems(snap *domain.Snapshot) error {
	rows, err := r.DB.Query(`
		SELECT id, name, current_price, inventory_uom_id
		FROM inventory_items
	`)
	if err != nil {
		return fmt.Errorf("failed to load inventory items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.InventoryItem
		var currentPrice sql.NullFloat64
		if err := rows.Scan(&item.ID, &item.Name, &currentPrice, &item.InventoryUomID); err != nil {
			return fmt.Errorf("failed to scan inventory item: %w", err)
		}
		if currentPrice.Valid {
			item.CurrentPrice = &currentPrice.Float64
		}
		snap.InventoryItems[item.ID] = item
	}
	return rows.Err()
}

func (r *PostgresRepository) loadSubRecipes(snap *domain.Snapshot) error {
	rows, err := r.DB.Query(`
		SELECT id, name, uom_id, yield_qty, cost
		FROM sub_recipes
	`)
	if err != nil {
		return fmt.Errorf("failed to load sub-recipes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sub domain.SubRecipe
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.UomID, &sub.YieldQty, &sub.Cost); err != nil {
			return fmt.Errorf("failed to scan sub-recipe: %w", err)
		}
		snap.SubRecipes[sub.ID] = sub
	}
	if err := rows.Err(); err != nil {
		return err
	}

	lineRows, err := r.DB.Query(`
		SELECT id, sub_recipe_id, inventory_item_id, child_sub_recipe_id,
		       quantity, wastage_percent, unit_id, line_cost
		FROM sub_recipe_lines
		ORDER BY sub_recipe_id, id
	`)
	if err != nil {
		return fmt.Errorf("failed to load sub-recipe lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line domain.Line
		var parentID int
		var itemID, childSubID sql.NullInt64
		if err := lineRows.Scan(&line.ID, &parentID, &itemID, &childSubID,
			&line.Quantity, &line.WastagePercent, &line.UnitID, &line.LineCost); err != nil {
			return fmt.Errorf("failed to scan sub-recipe line: %w", err)
		}

		ref, err := componentRefFromColumns(itemID, childSubID, sql.NullInt64{})
		if err != nil {
			return fmt.Errorf("sub-recipe line %d: %w", line.ID, err)
		}
		line.Component = ref

		sub, ok := snap.SubRecipes[parentID]
		if !ok {
			continue
		}
		sub.Lines = append(sub.Lines, line)
		snap.SubRecipes[parentID] = sub
	}
	return lineRows.Err()
}

func (r *PostgresRepository) loadMenuItems(snap *domain.Snapshot) error {
	rows, err := r.DB.Query(`
		SELECT id, name, retail_price_excl_tax, max_allowed_food_cost_pct, cost, food_cost_pct
		FROM menu_items
	`)
	if err != nil {
		return fmt.Errorf("failed to load menu items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mi domain.MenuItem
		if err := rows.Scan(&mi.ID, &mi.Name, &mi.RetailPriceExclTax,
			&mi.MaxAllowedFoodCostPct, &mi.Cost, &mi.FoodCostPercentage); err != nil {
			return fmt.Errorf("failed to scan menu item: %w", err)
		}
		snap.MenuItems[mi.ID] = mi
	}
	if err := rows.Err(); err != nil {
		return err
	}

	lineRows, err := r.DB.Query(`
		SELECT id, menu_item_id, inventory_item_id, sub_recipe_id, child_menu_item_id,
		       quantity, wastage_percent, unit_id, line_cost
		FROM menu_item_lines
		ORDER BY menu_item_id, id
	`)
	if err != nil {
		return fmt.Errorf("failed to load menu item lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line domain.Line
		var parentID int
		var itemID, subID, childMenuID sql.NullInt64
		if err := lineRows.Scan(&line.ID, &parentID, &itemID, &subID, &childMenuID,
			&line.Quantity, &line.WastagePercent, &line.UnitID, &line.LineCost); err != nil {
			return fmt.Errorf("failed to scan menu item line: %w", err)
		}

		ref, err := componentRefFromColumns(itemID, subID, childMenuID)
		if err != nil {
			return fmt.Errorf("menu item line %d: %w", line.ID, err)
		}
		line.Component = ref

		mi, ok := snap.MenuItems[parentID]
		if !ok {
			continue
		}
		mi.Lines = append(mi.Lines, line)
		snap.MenuItems[parentID] = mi
	}
	return lineRows.Err()
}

// SaveSubRecipeCost persists a recomputed batch cost and its line costs.
// A recompute is idempotent, so a partially applied write is repaired by
// the next run.
func (r *PostgresRepository) SaveSubRecipeCost(sc costing.SubRecipeCost) error {
	if _, err := r.DB.Exec(`
		UPDATE sub_recipes SET cost = $1 WHERE id = $2
	`, sc.TotalCost, sc.SubRecipeID); err != nil {
		return fmt.Errorf("failed to update sub-recipe %d cost: %w", sc.SubRecipeID, err)
	}

	for _, line := range sc.Lines {
		if _, err := r.DB.Exec(`
			UPDATE sub_recipe_lines SET line_cost = $1 WHERE id = $2
		`, line.Cost, line.LineID); err != nil {
			return fmt.Errorf("failed to update sub-recipe line %d cost: %w", line.LineID, err)
		}
	}
	return nil
}

func (r *PostgresRepository) SaveMenuItemCost(mc costing.MenuItemCost) error {
	if _, err := r.DB.Exec(`
		UPDATE menu_items SET cost = $1, food_cost_pct = $2 WHERE id = $3
	`, mc.TotalCost, mc.FoodCostPct, mc.MenuItemID); err != nil {
		return fmt.Errorf("failed to update menu item %d cost: %w", mc.MenuItemID, err)
	}

	for _, line := range mc.Lines {
		if _, err := r.DB.Exec(`
			UPDATE menu_item_lines SET line_cost = $1 WHERE id = $2
		`, line.Cost, line.LineID); err != nil {
			return fmt.Errorf("failed to update menu item line %d cost: %w", line.LineID, err)
		}
	}
	return nil
}

// componentRefFromColumns maps the three mutually exclusive foreign-key
// columns of a line row onto the tagged ComponentRef. Exactly one must be
// set; anything else is corrupt data and the snapshot load fails loudly.
func componentRefFromColumns(itemID, subID, menuID sql.NullInt64) (domain.ComponentRef, error) {
	var ref domain.ComponentRef
	set := 0
	if itemID.Valid {
		ref = domain.ComponentRef{Kind: domain.KindInventoryItem, ID: int(itemID.Int64)}
		set++
	}
	if subID.Valid {
		ref = domain.ComponentRef{Kind: domain.KindSubRecipe, ID: int(subID.Int64)}
		set++
	}
	if menuID.Valid {
		ref = domain.ComponentRef{Kind: domain.KindMenuItem, ID: int(menuID.Int64)}
		set++
	}
	if set != 1 {
		return domain.ComponentRef{}, fmt.Errorf("line has %d component references, want exactly 1", set)
	}
	return ref, nil
}
