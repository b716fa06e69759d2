package cache

import "github.com/codeGROOVE-dev/sfcache"

type sfcacheCache struct {
	c *sfcache.MemoryCache[int, string]
}

func NewSFCache(capacity int) Cache {
	return &sfcacheCache{c: sfcache.New[int, string](sfcache.Size(capacity))}
}

func (c *sfcacheCache) Get(key int) (string, bool) {
	return c.c.Get(key)
}

func (c *sfcacheCache) Set(key int, value string) {
	c.c.Set(key, value)
}

func (c *sfcacheCache) Name() string {
	return "sfcache"
}

func (c *sfcacheCache) Close() {
	c.c.Close()
}
