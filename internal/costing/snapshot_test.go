package costing

import "platecost/internal/domain"

const (
	unitGram       = 1
	unitKilogram   = 2
	unitMilliliter = 3
	unitLiter      = 4
	unitEach       = 99

	catMass   = 1
	catVolume = 2
	catCount  = 3
)

func price(v float64) *float64 { return &v }

// testSnapshot builds the fixture shared across the engine tests:
//
//	flour (10.00/kg) ─┐
//	                  ├─ dough (yield 4 kg, cost 20.00) ─ pizza (retail 25.00)
//	olive oil (?/l) ──┘
func testSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Units: map[int]domain.UnitOfMeasure{
			unitGram:       {ID: unitGram, Name: "gram", Abbreviation: "g", CategoryID: catMass, ConversionFactor: 1},
			unitKilogram:   {ID: unitKilogram, Name: "kilogram", Abbreviation: "kg", CategoryID: catMass, ConversionFactor: 1000},
			unitMilliliter: {ID: unitMilliliter, Name: "milliliter", Abbreviation: "ml", CategoryID: catVolume, ConversionFactor: 1},
			unitLiter:      {ID: unitLiter, Name: "liter", Abbreviation: "l", CategoryID: catVolume, ConversionFactor: 1000},
			unitEach:       {ID: unitEach, Name: "each", Abbreviation: "ea", CategoryID: catCount, ConversionFactor: 1},
		},
		InventoryItems: map[int]domain.InventoryItem{
			1: {ID: 1, Name: "flour", CurrentPrice: price(10.00), InventoryUomID: unitKilogram},
			2: {ID: 2, Name: "olive oil", CurrentPrice: nil, InventoryUomID: unitLiter},
			3: {ID: 3, Name: "salt", CurrentPrice: price(0), InventoryUomID: unitKilogram},
		},
		SubRecipes: map[int]domain.SubRecipe{
			10: {
				ID: 10, Name: "dough", UomID: unitKilogram, YieldQty: 4, Cost: 20.00,
				Lines: []domain.Line{
					{ID: 101, Component: domain.ComponentRef{Kind: domain.KindInventoryItem, ID: 1}, Quantity: 2, UnitID: unitKilogram},
				},
			},
		},
		MenuItems: map[int]domain.MenuItem{
			20: {
				ID: 20, Name: "pizza", RetailPriceExclTax: 25.00, Cost: 7.50,
				Lines: []domain.Line{
					{ID: 201, Component: domain.ComponentRef{Kind: domain.KindSubRecipe, ID: 10}, Quantity: 2, UnitID: unitKilogram},
				},
			},
		},
		EachUnitID: unitEach,
	}
}
