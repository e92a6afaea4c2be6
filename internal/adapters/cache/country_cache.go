package cache

import (
	"fmt"
	"strings"

	"countryfx/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoCountryCache caches by-name lookups between refreshes. Keys are
// lower-cased so every spelling of a name hits the same slot.
type RistrettoCountryCache struct {
	cache *ristretto.Cache
}

func NewCountryCache(maxItems int64) (*RistrettoCountryCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create country cache failed: %w", err)
	}
	return &RistrettoCountryCache{cache: c}, nil
}

func (c *RistrettoCountryCache) Get(name string) (*domain.Country, bool) {
	if v, ok := c.cache.Get(toKey(name)); ok {
		country, ok := v.(*domain.Country)
		return country, ok
	}
	return nil, false
}

func (c *RistrettoCountryCache) Set(name string, country *domain.Country) {
	c.cache.Set(toKey(name), country, 1)
}

func (c *RistrettoCountryCache) CleanBatch(names []string) {
	for _, name := range names {
		c.cache.Del(toKey(name))
	}
}

func (c *RistrettoCountryCache) Close() { c.cache.Close() }

func toKey(name string) string { return strings.ToLower(name) }
