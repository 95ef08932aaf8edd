package costing

import (
	"errors"
	"testing"

	"platecost/internal/domain"

	"github.com/stretchr/testify/assert"
)

func subRef(id int) domain.ComponentRef {
	return domain.ComponentRef{Kind: domain.KindSubRecipe, ID: id}
}

func itemRef(id int) domain.ComponentRef {
	return domain.ComponentRef{Kind: domain.KindInventoryItem, ID: id}
}

func menuRef(id int) domain.ComponentRef {
	return domain.ComponentRef{Kind: domain.KindMenuItem, ID: id}
}

func TestCalculator_CheckAcyclic_CleanGraph(t *testing.T) {
	calc := NewCalculator(testSnapshot())
	assert.NoError(t, calc.CheckAcyclic(menuRef(20)))
	assert.NoError(t, calc.CheckAcyclic(subRef(10)))
}

// A diamond (two paths to the same leaf) is shared use, not a cycle.
func TestCalculator_CheckAcyclic_DiamondIsFine(t *testing.T) {
	snap := testSnapshot()
	mi := snap.MenuItems[20]
	mi.Lines = append(mi.Lines, domain.Line{
		ID: 204, Component: itemRef(1), Quantity: 100, UnitID: unitGram,
	})
	snap.MenuItems[20] = mi

	assert.NoError(t, NewCalculator(snap).CheckAcyclic(menuRef(20)))
}

func TestCalculator_CheckAcyclic_ReportsPath(t *testing.T) {
	snap := testSnapshot()
	snap.SubRecipes[11] = domain.SubRecipe{
		ID: 11, Name: "sauce", UomID: unitLiter, YieldQty: 1,
		Lines: []domain.Line{
			{ID: 111, Component: subRef(10), Quantity: 1, UnitID: unitKilogram},
		},
	}
	// Close the loop: dough now references sauce.
	dough := snap.SubRecipes[10]
	dough.Lines = append(dough.Lines, domain.Line{
		ID: 103, Component: subRef(11), Quantity: 1, UnitID: unitLiter,
	})
	snap.SubRecipes[10] = dough

	err := NewCalculator(snap).CheckAcyclic(subRef(10))
	var cycle *CycleError
	if assert.True(t, errors.As(err, &cycle), "expected *CycleError, got %v", err) {
		assert.Equal(t, subRef(10), cycle.Path[0])
		assert.Equal(t, subRef(10), cycle.Path[len(cycle.Path)-1])
	}
}

// Sub-recipe A references B; a new line on B referencing A must be refused
// before anything is persisted.
func TestCalculator_CanAddReference_RejectsCycle(t *testing.T) {
	snap := testSnapshot()
	snap.SubRecipes[11] = domain.SubRecipe{
		ID: 11, Name: "sauce", UomID: unitLiter, YieldQty: 1,
		Lines: []domain.Line{
			{ID: 111, Component: subRef(10), Quantity: 1, UnitID: unitKilogram},
		},
	}
	calc := NewCalculator(snap)

	// B -> A is the edge that already exists (11 -> 10); adding 10 -> 11
	// closes the loop.
	err := calc.CanAddReference(subRef(10), subRef(11))
	var cycle *CycleError
	assert.True(t, errors.As(err, &cycle), "expected *CycleError, got %v", err)

	// The reverse direction on a fresh pair is fine.
	assert.NoError(t, calc.CanAddReference(menuRef(20), subRef(11)))
}

func TestCalculator_CanAddReference_SelfReference(t *testing.T) {
	calc := NewCalculator(testSnapshot())
	err := calc.CanAddReference(subRef(10), subRef(10))
	var cycle *CycleError
	assert.True(t, errors.As(err, &cycle), "expected *CycleError, got %v", err)
}

func TestCalculator_ValidateNewLine(t *testing.T) {
	calc := NewCalculator(testSnapshot())

	tests := []struct {
		name    string
		parent  domain.ComponentRef
		line    domain.Line
		wantErr bool
	}{
		{
			name:   "valid_inventory_line",
			parent: subRef(10),
			line:   domain.Line{Component: itemRef(1), Quantity: 500, WastagePercent: 10, UnitID: unitGram},
		},
		{
			name:    "menu_item_under_sub_recipe",
			parent:  subRef(10),
			line:    domain.Line{Component: menuRef(20), Quantity: 1, UnitID: unitEach},
			wantErr: true,
		},
		{
			name:    "incompatible_unit_category",
			parent:  subRef(10),
			line:    domain.Line{Component: itemRef(1), Quantity: 1, UnitID: unitMilliliter},
			wantErr: true,
		},
		{
			name:    "self_reference",
			parent:  subRef(10),
			line:    domain.Line{Component: subRef(10), Quantity: 1, UnitID: unitKilogram},
			wantErr: true,
		},
		{
			name:    "wastage_at_bound",
			parent:  subRef(10),
			line:    domain.Line{Component: itemRef(1), Quantity: 1, WastagePercent: 100, UnitID: unitGram},
			wantErr: true,
		},
		{
			name:    "lines_on_inventory_item",
			parent:  itemRef(1),
			line:    domain.Line{Component: itemRef(3), Quantity: 1, UnitID: unitGram},
			wantErr: true,
		},
		{
			name:   "menu_item_component_ignores_stored_unit",
			parent: menuRef(20),
			line:   domain.Line{Component: menuRef(21), Quantity: 1, UnitID: unitGram},
			// Unknown child menu item: resolving must fail.
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := calc.ValidateNewLine(testCase.parent, testCase.line)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculator_Validate_CollectsAllViolations(t *testing.T) {
	snap := testSnapshot()
	mi := snap.MenuItems[20]
	mi.Lines = append(mi.Lines,
		domain.Line{ID: 205, Component: itemRef(1), Quantity: 1, UnitID: unitLiter},   // wrong category
		domain.Line{ID: 206, Component: itemRef(404), Quantity: 1, UnitID: unitGram}, // deleted item
	)
	snap.MenuItems[20] = mi

	report := NewCalculator(snap).Validate(menuRef(20))
	assert.False(t, report.OK())
	assert.Nil(t, report.Cycle)
	assert.Len(t, report.UnitViolations, 1)
	assert.Equal(t, []domain.ComponentRef{itemRef(404)}, report.MissingComponents)
}

func TestCalculator_Validate_CleanGraphIsOK(t *testing.T) {
	report := NewCalculator(testSnapshot()).Validate(menuRef(20))
	assert.True(t, report.OK())
}

func TestCalculator_Validate_CycleShortCircuits(t *testing.T) {
	snap := testSnapshot()
	dough := snap.SubRecipes[10]
	dough.Lines = append(dough.Lines, domain.Line{
		ID: 104, Component: subRef(10), Quantity: 1, UnitID: unitKilogram,
	})
	snap.SubRecipes[10] = dough

	report := NewCalculator(snap).Validate(subRef(10))
	assert.False(t, report.OK())
	assert.NotNil(t, report.Cycle)
}
