package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"platecost/internal/costing"
	"platecost/internal/domain"
)

// CostService is the single recompute path for every stored cost figure.
// All UI and CRUD surfaces route through it instead of re-deriving costs.
type CostService struct {
	source    SnapshotSource
	writer    CostWriter
	cache     CostCache
	publisher CostPublisher
}

func NewCostService(source SnapshotSource, writer CostWriter, cache CostCache, publisher CostPublisher) *CostService {
	return &CostService{
		source:    source,
		writer:    writer,
		cache:     cache,
		publisher: publisher,
	}
}

// RecomputeClosure refreshes every stored cost that depends on the changed
// component: one snapshot, children-before-parents, each recomputed entity
// folded back into the snapshot so its parents read the fresh cost. This is
// the eager policy — stored costs never go stale after an upstream change.
func (s *CostService) RecomputeClosure(ctx context.Context, changed domain.ComponentRef) error {
	snap, err := s.source.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	calc := costing.NewCalculator(snap)
	for _, ref := range calc.RecomputeOrder(changed) {
		switch ref.Kind {
		case domain.KindSubRecipe:
			sc, err := calc.SubRecipeCost(ref.ID)
			if err != nil {
				return fmt.Errorf("failed to recompute sub-recipe %d: %w", ref.ID, err)
			}
			applySubRecipeCost(snap, sc)
			if err := s.persistSubRecipe(ctx, sc); err != nil {
				return err
			}

		case domain.KindMenuItem:
			mc, err := calc.MenuItemCost(ref.ID)
			if err != nil {
				return fmt.Errorf("failed to recompute menu item %d: %w", ref.ID, err)
			}
			applyMenuItemCost(snap, mc)
			if err := s.persistMenuItem(ctx, mc); err != nil {
				return err
			}
		}
	}

	return nil
}

// RecomputeSubRecipe recomputes and persists a single sub-recipe batch
// cost. Parents are not touched; use RecomputeClosure for that.
func (s *CostService) RecomputeSubRecipe(ctx context.Context, id int) (costing.SubRecipeCost, error) {
	snap, err := s.source.LoadSnapshot()
	if err != nil {
		return costing.SubRecipeCost{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	sc, err := costing.NewCalculator(snap).SubRecipeCost(id)
	if err != nil {
		return costing.SubRecipeCost{}, err
	}
	if err := s.persistSubRecipe(ctx, sc); err != nil {
		return costing.SubRecipeCost{}, err
	}
	return sc, nil
}

func (s *CostService) RecomputeMenuItem(ctx context.Context, id int) (costing.MenuItemCost, error) {
	snap, err := s.source.LoadSnapshot()
	if err != nil {
		return costing.MenuItemCost{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	mc, err := costing.NewCalculator(snap).MenuItemCost(id)
	if err != nil {
		return costing.MenuItemCost{}, err
	}
	if err := s.persistMenuItem(ctx, mc); err != nil {
		return costing.MenuItemCost{}, err
	}
	return mc, nil
}

// ValidateNewLine is the write-time gate the CRUD layer calls before
// persisting a new composition line: cycles and unit mismatches are blocked
// here, never discovered later during aggregation.
func (s *CostService) ValidateNewLine(parent domain.ComponentRef, line domain.Line) error {
	snap, err := s.source.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	return costing.NewCalculator(snap).ValidateNewLine(parent, line)
}

// ValidateTree sweeps the whole composition graph below root and returns
// every violation in one report.
func (s *CostService) ValidateTree(root domain.ComponentRef) (*costing.Report, error) {
	snap, err := s.source.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return costing.NewCalculator(snap).Validate(root), nil
}

func (s *CostService) persistSubRecipe(ctx context.Context, sc costing.SubRecipeCost) error {
	if err := s.writer.SaveSubRecipeCost(sc); err != nil {
		return fmt.Errorf("failed to save sub-recipe %d cost: %w", sc.SubRecipeID, err)
	}

	if err := s.cache.StoreSubRecipeCost(ctx, sc); err != nil {
		log.Printf("Warning: failed to cache sub-recipe %d cost: %v", sc.SubRecipeID, err)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishCostUpdate(ctx, domain.CostUpdate{
			Kind:      domain.KindSubRecipe,
			ID:        sc.SubRecipeID,
			TotalCost: sc.TotalCost,
			UnitCost:  sc.UnitCost,
			Flagged:   sc.Flagged(),
			Timestamp: time.Now(),
		})
	}
	return nil
}

func (s *CostService) persistMenuItem(ctx context.Context, mc costing.MenuItemCost) error {
	if err := s.writer.SaveMenuItemCost(mc); err != nil {
		return fmt.Errorf("failed to save menu item %d cost: %w", mc.MenuItemID, err)
	}

	if err := s.cache.StoreMenuItemCost(ctx, mc); err != nil {
		log.Printf("Warning: failed to cache menu item %d cost: %v", mc.MenuItemID, err)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishCostUpdate(ctx, domain.CostUpdate{
			Kind:        domain.KindMenuItem,
			ID:          mc.MenuItemID,
			TotalCost:   mc.TotalCost,
			FoodCostPct: mc.FoodCostPct,
			Flagged:     mc.Flagged(),
			Timestamp:   time.Now(),
		})
	}
	return nil
}

// applySubRecipeCost folds a recomputed batch cost back into the working
// snapshot so parents recomputed later in the same pass see it.
func applySubRecipeCost(snap *domain.Snapshot, sc costing.SubRecipeCost) {
	sub, ok := snap.SubRecipes[sc.SubRecipeID]
	if !ok {
		return
	}
	sub.Cost = sc.TotalCost
	for i := range sub.Lines {
		if i < len(sc.Lines) {
			sub.Lines[i].LineCost = sc.Lines[i].Cost
		}
	}
	snap.SubRecipes[sc.SubRecipeID] = sub
}

func applyMenuItemCost(snap *domain.Snapshot, mc costing.MenuItemCost) {
	mi, ok := snap.MenuItems[mc.MenuItemID]
	if !ok {
		return
	}
	mi.Cost = mc.TotalCost
	mi.FoodCostPercentage = mc.FoodCostPct
	for i := range mi.Lines {
		if i < len(mc.Lines) {
			mi.Lines[i].LineCost = mc.Lines[i].Cost
		}
	}
	snap.MenuItems[mc.MenuItemID] = mi
}
