package cache

import (
	"context"

	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/domain"

	lru "github.com/hashicorp/golang-lru/v2"
)

//go:generate mockgen -source internal/cache/cache.go -destination=internal/cache/cache_mock_test.go -package=cache

type repo interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	RecentOrderIDs(ctx context.Context, limit int) ([]string, error)
}

// Cache is the LRU read cache in front of the orders table. Distinct from
// the dedup cache: this one serves lookups and may evict at any time.
type Cache struct {
	size int
	lru  *lru.Cache[string, domain.Order]
}

func New(size int) (*Cache, error) {
	c, err := lru.New[string, domain.Order](size)
	if err != nil {
		return nil, err
	}
	return &Cache{
		size: size,
		lru:  c,
	}, nil
}

// Warm preloads the most recently created orders so the first lookups
// after a restart don't all hit the database.
func (c *Cache) Warm(ctx context.Context, repo repo) {
	if ids, err := repo.RecentOrderIDs(ctx, c.size); err == nil {
		for _, id := range ids {
			if o, err := repo.GetByID(ctx, id); err == nil {
				c.Set(o)
			}
		}
	}
}

func (c *Cache) Get(id string) (*domain.Order, bool) {
	order, ok := c.lru.Get(id)
	if !ok {
		return nil, false
	}
	return &order, true
}

func (c *Cache) Set(order *domain.Order) {
	c.lru.Add(order.ID, *order)
}
