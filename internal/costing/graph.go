package costing

import (
	"sort"

	"platecost/internal/domain"
)

// RecomputeOrder returns every composite entity whose stored cost depends,
// directly or transitively, on the changed component, ordered children
// before parents so a bottom-up recompute always reads fresh child costs.
// When the changed component is itself a composite it leads the order.
func (c *Calculator) RecomputeOrder(changed domain.ComponentRef) []domain.ComponentRef {
	parents := c.parentIndex()

	affected := make(map[domain.ComponentRef]bool)
	if changed.Kind != domain.KindInventoryItem {
		affected[changed] = true
	}
	queue := []domain.ComponentRef{changed}
	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		for _, parent := range parents[ref] {
			if !affected[parent] {
				affected[parent] = true
				queue = append(queue, parent)
			}
		}
	}

	// Deterministic roots keep the recompute (and its tests) stable.
	roots := make([]domain.ComponentRef, 0, len(affected))
	for ref := range affected {
		roots = append(roots, ref)
	}
	sort.Slice(roots, func(i, j int) bool {
		if roots[i].Kind != roots[j].Kind {
			return roots[i].Kind < roots[j].Kind
		}
		return roots[i].ID < roots[j].ID
	})

	// Post-order over forward edges, restricted to the affected set.
	var order []domain.ComponentRef
	visited := make(map[domain.ComponentRef]bool)
	var visit func(ref domain.ComponentRef)
	visit = func(ref domain.ComponentRef) {
		if visited[ref] || !affected[ref] {
			return
		}
		visited[ref] = true
		for _, line := range c.linesOf(ref) {
			visit(line.Component)
		}
		order = append(order, ref)
	}
	for _, ref := range roots {
		visit(ref)
	}

	return order
}

func (c *Calculator) parentIndex() map[domain.ComponentRef][]domain.ComponentRef {
	parents := make(map[domain.ComponentRef][]domain.ComponentRef)
	for id, sub := range c.snap.SubRecipes {
		parent := domain.ComponentRef{Kind: domain.KindSubRecipe, ID: id}
		for _, line := range sub.Lines {
			parents[line.Component] = append(parents[line.Component], parent)
		}
	}
	for id, mi := range c.snap.MenuItems {
		parent := domain.ComponentRef{Kind: domain.KindMenuItem, ID: id}
		for _, line := range mi.Lines {
			parents[line.Component] = append(parents[line.Component], parent)
		}
	}
	return parents
}
