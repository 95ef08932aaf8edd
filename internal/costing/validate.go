package costing

import (
	"errors"
	"fmt"

	"platecost/internal/domain"
)

// Report collects every problem found in one traversal of a composition
// graph, so a whole recipe tree can be reviewed at once instead of failing
// line by line.
type Report struct {
	Cycle             *CycleError
	UnitViolations    []error
	MissingComponents []domain.ComponentRef
}

func (r *Report) OK() bool {
	return r.Cycle == nil && len(r.UnitViolations) == 0 && len(r.MissingComponents) == 0
}

// CheckAcyclic walks the reference graph below root and fails with the
// offending path as soon as a component already on the current path is
// reached again. It must pass before any new reference edge is persisted,
// otherwise aggregation is not guaranteed to terminate.
func (c *Calculator) CheckAcyclic(root domain.ComponentRef) error {
	onPath := make(map[domain.ComponentRef]bool)
	done := make(map[domain.ComponentRef]bool)
	var path []domain.ComponentRef

	var walk func(ref domain.ComponentRef) error
	walk = func(ref domain.ComponentRef) error {
		if onPath[ref] {
			return &CycleError{Path: append(append([]domain.ComponentRef{}, path...), ref)}
		}
		if done[ref] {
			return nil
		}

		onPath[ref] = true
		path = append(path, ref)
		for _, line := range c.linesOf(ref) {
			if err := walk(line.Component); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		onPath[ref] = false
		done[ref] = true
		return nil
	}

	return walk(root)
}

// CanAddReference reports whether a line on parent referencing child would
// keep the graph acyclic. Called at write time, before the edge exists.
func (c *Calculator) CanAddReference(parent, child domain.ComponentRef) error {
	if parent == child {
		return &CycleError{Path: []domain.ComponentRef{parent, child}}
	}
	path := c.findPath(child, parent, map[domain.ComponentRef]bool{})
	if path != nil {
		return &CycleError{Path: append([]domain.ComponentRef{parent}, path...)}
	}
	return nil
}

// ValidateNewLine is the single mutation-time gate: reference kind, bounds,
// acyclicity and unit-category compatibility are all rejected here, before
// the line is ever persisted.
func (c *Calculator) ValidateNewLine(parent domain.ComponentRef, line domain.Line) error {
	if parent.Kind == domain.KindInventoryItem {
		return fmt.Errorf("inventory item %d cannot own composition lines", parent.ID)
	}
	if parent.Kind == domain.KindSubRecipe && line.Component.Kind == domain.KindMenuItem {
		return ErrMenuItemInSubRecipe
	}
	if line.Quantity <= 0 {
		return fmt.Errorf("%w (got %g)", ErrNonPositiveQuantity, line.Quantity)
	}
	if line.WastagePercent < 0 || line.WastagePercent >= 100 {
		return fmt.Errorf("%w (got %g)", ErrWastageOutOfRange, line.WastagePercent)
	}
	if err := c.CanAddReference(parent, line.Component); err != nil {
		return err
	}
	return c.checkLineUnits(line)
}

// Validate traverses the whole graph below root once and surfaces every
// cycle, unit mismatch and dangling reference in a single report.
func (c *Calculator) Validate(root domain.ComponentRef) *Report {
	report := &Report{}

	var cycleErr *CycleError
	if err := c.CheckAcyclic(root); errors.As(err, &cycleErr) {
		report.Cycle = cycleErr
		// A cyclic graph cannot be swept safely.
		return report
	}

	done := make(map[domain.ComponentRef]bool)
	var walk func(ref domain.ComponentRef)
	walk = func(ref domain.ComponentRef) {
		if done[ref] {
			return
		}
		done[ref] = true

		if !c.exists(ref) {
			report.MissingComponents = append(report.MissingComponents, ref)
			return
		}
		for _, line := range c.linesOf(ref) {
			if ref.Kind == domain.KindSubRecipe && line.Component.Kind == domain.KindMenuItem {
				report.UnitViolations = append(report.UnitViolations,
					fmt.Errorf("sub-recipe %d line %d: %w", ref.ID, line.ID, ErrMenuItemInSubRecipe))
			} else if c.exists(line.Component) {
				if err := c.checkLineUnits(line); err != nil {
					report.UnitViolations = append(report.UnitViolations,
						fmt.Errorf("line %d: %w", line.ID, err))
				}
			}
			walk(line.Component)
		}
	}
	walk(root)

	return report
}

// checkLineUnits verifies the line's chosen unit shares a conversion
// category with its component's native unit. The price itself is not
// needed, only the unit the cost is expressed in.
func (c *Calculator) checkLineUnits(line domain.Line) error {
	unitCost, err := c.ResolveUnitCost(line.Component)
	if err != nil {
		return err
	}
	fromUnitID := line.UnitID
	if line.Component.Kind == domain.KindMenuItem {
		fromUnitID = c.snap.EachUnitID
	}
	_, err = c.Convert(1, fromUnitID, unitCost.NativeUnitID)
	return err
}

func (c *Calculator) exists(ref domain.ComponentRef) bool {
	switch ref.Kind {
	case domain.KindInventoryItem:
		_, ok := c.snap.InventoryItems[ref.ID]
		return ok
	case domain.KindSubRecipe:
		_, ok := c.snap.SubRecipes[ref.ID]
		return ok
	case domain.KindMenuItem:
		_, ok := c.snap.MenuItems[ref.ID]
		return ok
	}
	return false
}

func (c *Calculator) linesOf(ref domain.ComponentRef) []domain.Line {
	switch ref.Kind {
	case domain.KindSubRecipe:
		return c.snap.SubRecipes[ref.ID].Lines
	case domain.KindMenuItem:
		return c.snap.MenuItems[ref.ID].Lines
	}
	return nil
}

// findPath returns the reference path from start to target, or nil when
// target is unreachable.
func (c *Calculator) findPath(start, target domain.ComponentRef, seen map[domain.ComponentRef]bool) []domain.ComponentRef {
	if start == target {
		return []domain.ComponentRef{start}
	}
	if seen[start] {
		return nil
	}
	seen[start] = true
	for _, line := range c.linesOf(start) {
		if rest := c.findPath(line.Component, target, seen); rest != nil {
			return append([]domain.ComponentRef{start}, rest...)
		}
	}
	return nil
}
