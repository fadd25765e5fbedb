package item

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/metrics"
)

// catalogCache provides an in-memory LRU cache for catalog lookups with
// time-based expiration. Catalog rows are immutable after creation, so a
// TTL is enough to bound staleness for newly seeded items.
type catalogCache struct {
	lru *expirable.LRU[string, *domain.Item]
}

func newCatalogCache(size int, ttl time.Duration) *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[string, *domain.Item](size, nil, ttl),
	}
}

func codeKey(code int) string    { return "code:" + strconv.Itoa(code) }
func nameKey(name string) string { return "name:" + name }

// GetByCode retrieves an item by catalog code. Returns (nil, false) when
// not cached or expired.
func (c *catalogCache) GetByCode(code int) (*domain.Item, bool) {
	item, found := c.lru.Get(codeKey(code))
	if found {
		metrics.CatalogCacheHits.Inc()
		return item, true
	}
	metrics.CatalogCacheMisses.Inc()
	return nil, false
}

// GetByName retrieves an item by catalog name.
func (c *catalogCache) GetByName(name string) (*domain.Item, bool) {
	item, found := c.lru.Get(nameKey(name))
	if found {
		metrics.CatalogCacheHits.Inc()
		return item, true
	}
	metrics.CatalogCacheMisses.Inc()
	return nil, false
}

// Set stores an item under both its code and name keys.
func (c *catalogCache) Set(item *domain.Item) {
	c.lru.Add(codeKey(item.Code), item)
	c.lru.Add(nameKey(item.Name), item)
}

// Clear removes all entries from the cache.
func (c *catalogCache) Clear() {
	c.lru.Purge()
}
