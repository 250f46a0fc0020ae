package game

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "game:"
	cacheTTL       = 5 * time.Minute
)

// Cache is a best-effort read-through cache in front of the games table.
// A miss or a redis failure always falls back to the database, so a stale
// or unavailable cache never breaks reads. Mutations invalidate by key.
type Cache interface {
	Get(ctx context.Context, id uuid.UUID) (Game, bool)
	Set(ctx context.Context, g Game)
	Del(ctx context.Context, id uuid.UUID)
}

type cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) Cache {
	return &cache{rdb: rdb}
}

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}

func (c *cache) Get(ctx context.Context, id uuid.UUID) (Game, bool) {
	if c.rdb == nil {
		return Game{}, false
	}
	raw, err := c.rdb.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		return Game{}, false
	}
	var g Game
	if err := json.Unmarshal(raw, &g); err != nil {
		return Game{}, false
	}
	return g, true
}

func (c *cache) Set(ctx context.Context, g Game) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, cacheKey(g.ID), raw, cacheTTL)
}

func (c *cache) Del(ctx context.Context, id uuid.UUID) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, cacheKey(id))
}

// NopCache dipakai kalau redis tidak dikonfigurasi.
func NopCache() Cache {
	return &cache{rdb: nil}
}
