package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"platecost/internal/costing"
	"platecost/internal/domain"
)

// RedisCostCache mirrors recomputed cost figures into Redis hashes so
// dashboards and pickers read them without touching Postgres. Every
// recompute overwrites the hash, so a stale mirror never outlives its TTL.
type RedisCostCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCostCache(client *redis.Client, ttl time.Duration) *RedisCostCache {
	return &RedisCostCache{Client: client, TTL: ttl}
}

func (c *RedisCostCache) CostKey(ref domain.ComponentRef) string {
	return "cost:" + ref.String()
}

func (c *RedisCostCache) StoreSubRecipeCost(ctx context.Context, sc costing.SubRecipeCost) error {
	key := c.CostKey(domain.ComponentRef{Kind: domain.KindSubRecipe, ID: sc.SubRecipeID})
	if err := c.Client.HSet(ctx, key, map[string]interface{}{
		"total_cost":   sc.TotalCost,
		"unit_cost":    sc.UnitCost,
		"yield_qty":    sc.YieldQty,
		"flagged":      sc.Flagged(),
		"last_updated": time.Now().Unix(),
	}).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, c.TTL).Err()
}

func (c *RedisCostCache) StoreMenuItemCost(ctx context.Context, mc costing.MenuItemCost) error {
	key := c.CostKey(domain.ComponentRef{Kind: domain.KindMenuItem, ID: mc.MenuItemID})
	if err := c.Client.HSet(ctx, key, map[string]interface{}{
		"total_cost":    mc.TotalCost,
		"food_cost_pct": mc.FoodCostPct,
		"flagged":       mc.Flagged(),
		"last_updated":  time.Now().Unix(),
	}).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, c.TTL).Err()
}
