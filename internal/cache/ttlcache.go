package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type ttlcacheCache struct {
	c *ttlcache.Cache[int, string]
}

// NewTTLCache creates a TTL-based cache.
func NewTTLCache(capacity int) Cache {
	c := ttlcache.New[int, string](
		ttlcache.WithCapacity[int, string](uint64(capacity)), //nolint:gosec // capacity always positive
		ttlcache.WithTTL[int, string](time.Hour),             // Long TTL since we're testing capacity, not expiration
	)
	go c.Start()
	return &ttlcacheCache{c: c}
}

func (c *ttlcacheCache) Get(key int) (string, bool) {
	item := c.c.Get(key)
	if item == nil {
		return "", false
	}
	return item.Value(), true
}

func (c *ttlcacheCache) Set(key int, value string) {
	c.c.Set(key, value, ttlcache.DefaultTTL)
}

func (*ttlcacheCache) Name() string {
	return "ttlcache"
}

func (c *ttlcacheCache) Close() {
	c.c.Stop()
}
