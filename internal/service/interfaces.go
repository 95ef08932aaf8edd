package service

import (
	"context"

	"platecost/internal/costing"
	"platecost/internal/domain"
)

type CostServiceInterface interface {
	RecomputeClosure(ctx context.Context, changed domain.ComponentRef) error
	RecomputeSubRecipe(ctx context.Context, id int) (costing.SubRecipeCost, error)
	RecomputeMenuItem(ctx context.Context, id int) (costing.MenuItemCost, error)
	ValidateNewLine(parent domain.ComponentRef, line domain.Line) error
	ValidateTree(root domain.ComponentRef) (*costing.Report, error)
}

type SnapshotSource interface {
	LoadSnapshot() (*domain.Snapshot, error)
}

type CostWriter interface {
	SaveSubRecipeCost(sc costing.SubRecipeCost) error
	SaveMenuItemCost(mc costing.MenuItemCost) error
}

type CostCache interface {
	CostKey(ref domain.ComponentRef) string
	StoreSubRecipeCost(ctx context.Context, sc costing.SubRecipeCost) error
	StoreMenuItemCost(ctx context.Context, mc costing.MenuItemCost) error
}

type CostPublisher interface {
	PublishCostUpdate(ctx context.Context, update domain.CostUpdate) error
}

var _ CostServiceInterface = (*CostService)(nil)
