package costing

import (
	"errors"
	"fmt"
	"strings"

	"platecost/internal/domain"
)

var (
	ErrWastageOutOfRange   = errors.New("wastage percent must be in [0, 100)")
	ErrNonPositiveQuantity = errors.New("line quantity must be positive")
	// Sub-recipes may only be built from inventory items and other
	// sub-recipes; menu items can never sit below a sub-recipe.
	ErrMenuItemInSubRecipe = errors.New("sub-recipe line cannot reference a menu item")
)

// IncompatibleUnitsError reports a conversion between units that belong to
// different conversion categories. This is a data-entry problem (wrong unit
// picked, or a new unit missing its category) and is never worked around.
type IncompatibleUnitsError struct {
	FromUnitID     int
	ToUnitID       int
	FromCategoryID int
	ToCategoryID   int
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("incompatible units: unit %d (category %d) cannot be converted to unit %d (category %d)",
		e.FromUnitID, e.FromCategoryID, e.ToUnitID, e.ToCategoryID)
}

// InvalidYieldError marks a sub-recipe whose yield makes a per-unit cost
// undefined. The sub-recipe is unusable as a component until fixed.
type InvalidYieldError struct {
	SubRecipeID int
	YieldQty    float64
}

func (e *InvalidYieldError) Error() string {
	return fmt.Sprintf("sub-recipe %d has invalid yield quantity %g", e.SubRecipeID, e.YieldQty)
}

// UnknownComponentError reports a line pointing at an entity that is absent
// from the snapshot, typically because it was deleted after the line was
// created.
type UnknownComponentError struct {
	Ref domain.ComponentRef
}

func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component %s", e.Ref)
}

// UnknownUnitError reports a unit id absent from the unit catalog.
type UnknownUnitError struct {
	UnitID int
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit of measure %d", e.UnitID)
}

// CycleError carries the offending reference path, first entity to the one
// that closes the loop back on it.
type CycleError struct {
	Path []domain.ComponentRef
}

func (e *CycleError) Error() string {
	parts := make([]string, 0, len(e.Path))
	for _, ref := range e.Path {
		parts = append(parts, ref.String())
	}
	return "composition cycle: " + strings.Join(parts, " -> ")
}
