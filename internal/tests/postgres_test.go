package tests

import (
	"testing"

	"platecost/internal/costing"
	"platecost/internal/domain"
	"platecost/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func expectUnitRows(sqlMock sqlmock.Sqlmock) {
	rows := sqlmock.NewRows([]string{"id", "name", "abbreviation", "category_id", "conversion_factor", "is_each"}).
		AddRow(1, "gram", "g", 1, 1.0, false).
		AddRow(2, "kilogram", "kg", 1, 1000.0, false).
		AddRow(99, "each", "ea", 3, 1.0, true)
	sqlMock.ExpectQuery("SELECT id, name, abbreviation, category_id, conversion_factor, is_each").
		WillReturnRows(rows)
}

func TestPostgresRepository_LoadSnapshot(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()

	expectUnitRows(sqlMock)

	itemRows := sqlmock.NewRows([]string{"id", "name", "current_price", "inventory_uom_id"}).
		AddRow(1, "flour", 10.0, 2).
		AddRow(2, "olive oil", nil, 2)
	sqlMock.ExpectQuery("SELECT id, name, current_price, inventory_uom_id").
		WillReturnRows(itemRows)

	subRows := sqlmock.NewRows([]string{"id", "name", "uom_id", "yield_qty", "cost"}).
		AddRow(10, "dough", 2, 4.0, 20.0)
	sqlMock.ExpectQuery("SELECT id, name, uom_id, yield_qty, cost").
		WillReturnRows(subRows)

	subLineRows := sqlmock.NewRows([]string{"id", "sub_recipe_id", "inventory_item_id", "child_sub_recipe_id",
		"quantity", "wastage_percent", "unit_id", "line_cost"}).
		AddRow(101, 10, 1, nil, 2.0, 0.0, 2, 20.0)
	sqlMock.ExpectQuery("SELECT id, sub_recipe_id, inventory_item_id, child_sub_recipe_id").
		WillReturnRows(subLineRows)

	menuRows := sqlmock.NewRows([]string{"id", "name", "retail_price_excl_tax", "max_allowed_food_cost_pct", "cost", "food_cost_pct"}).
		AddRow(20, "pizza", 25.0, 0.35, 10.0, 0.4)
	sqlMock.ExpectQuery("SELECT id, name, retail_price_excl_tax, max_allowed_food_cost_pct, cost, food_cost_pct").
		WillReturnRows(menuRows)

	menuLineRows := sqlmock.NewRows([]string{"id", "menu_item_id", "inventory_item_id", "sub_recipe_id", "child_menu_item_id",
		"quantity", "wastage_percent", "unit_id", "line_cost"}).
		AddRow(201, 20, nil, 10, nil, 2.0, 0.0, 2, 10.0)
	sqlMock.ExpectQuery("SELECT id, menu_item_id, inventory_item_id, sub_recipe_id, child_menu_item_id").
		WillReturnRows(menuLineRows)

	repository := storage.NewPostgresRepository(mockDB)
	snap, err := repository.LoadSnapshot()
	assert.NoError(t, err)

	assert.Equal(t, 99, snap.EachUnitID)
	assert.Len(t, snap.Units, 3)

	flour := snap.InventoryItems[1]
	if assert.NotNil(t, flour.CurrentPrice) {
		assert.Equal(t, 10.0, *flour.CurrentPrice)
	}
	assert.Nil(t, snap.InventoryItems[2].CurrentPrice)

	dough := snap.SubRecipes[10]
	assert.Len(t, dough.Lines, 1)
	assert.Equal(t, domain.ComponentRef{Kind: domain.KindInventoryItem, ID: 1}, dough.Lines[0].Component)

	pizza := snap.MenuItems[20]
	assert.Len(t, pizza.Lines, 1)
	assert.Equal(t, domain.ComponentRef{Kind: domain.KindSubRecipe, ID: 10}, pizza.Lines[0].Component)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

// A unit catalog without a designated "each" unit cannot support menu-item
// components and must fail the load.
func TestPostgresRepository_LoadSnapshot_NoEachUnit(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "abbreviation", "category_id", "conversion_factor", "is_each"}).
		AddRow(1, "gram", "g", 1, 1.0, false)
	sqlMock.ExpectQuery("SELECT id, name, abbreviation, category_id, conversion_factor, is_each").
		WillReturnRows(rows)

	repository := storage.NewPostgresRepository(mockDB)
	_, err = repository.LoadSnapshot()
	assert.Error(t, err)
}

// Two component columns set on one line row is corrupt data, not a value
// to guess about.
func TestPostgresRepository_LoadSnapshot_AmbiguousLineRejected(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()

	expectUnitRows(sqlMock)

	sqlMock.ExpectQuery("SELECT id, name, current_price, inventory_uom_id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "current_price", "inventory_uom_id"}))

	subRows := sqlmock.NewRows([]string{"id", "name", "uom_id", "yield_qty", "cost"}).
		AddRow(10, "dough", 2, 4.0, 20.0)
	sqlMock.ExpectQuery("SELECT id, name, uom_id, yield_qty, cost").
		WillReturnRows(subRows)

	subLineRows := sqlmock.NewRows([]string{"id", "sub_recipe_id", "inventory_item_id", "child_sub_recipe_id",
		"quantity", "wastage_percent", "unit_id", "line_cost"}).
		AddRow(101, 10, 1, 11, 2.0, 0.0, 2, 20.0)
	sqlMock.ExpectQuery("SELECT id, sub_recipe_id, inventory_item_id, child_sub_recipe_id").
		WillReturnRows(subLineRows)

	repository := storage.NewPostgresRepository(mockDB)
	_, err = repository.LoadSnapshot()
	assert.Error(t, err)
}

func TestPostgresRepository_SaveSubRecipeCost(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()

	sqlMock.ExpectExec("UPDATE sub_recipes SET cost").
		WithArgs(24.0, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec("UPDATE sub_recipe_lines SET line_cost").
		WithArgs(24.0, 101).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repository := storage.NewPostgresRepository(mockDB)
	err = repository.SaveSubRecipeCost(costing.SubRecipeCost{
		SubRecipeID: 10,
		TotalCost:   24.0,
		UnitCost:    6.0,
		YieldQty:    4,
		Lines:       []costing.LineResult{{LineID: 101, Cost: 24.0}},
	})
	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresRepository_SaveMenuItemCost(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()

	sqlMock.ExpectExec("UPDATE menu_items SET cost").
		WithArgs(12.0, 0.48, 20).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec("UPDATE menu_item_lines SET line_cost").
		WithArgs(12.0, 201).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repository := storage.NewPostgresRepository(mockDB)
	err = repository.SaveMenuItemCost(costing.MenuItemCost{
		MenuItemID:  20,
		TotalCost:   12.0,
		FoodCostPct: 0.48,
		Lines:       []costing.LineResult{{LineID: 201, Cost: 12.0}},
	})
	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
