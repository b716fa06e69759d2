package cache

import "github.com/maypok86/otter/v2"

type otterCache struct {
	c *otter.Cache[int, string]
}

// NewOtter creates an Otter cache. Otter is internally sharded and needs no
// external locking.
func NewOtter(capacity int) Cache {
	c := otter.Must(&otter.Options[int, string]{MaximumSize: capacity})
	return &otterCache{c: c}
}

func (c *otterCache) Get(key int) (string, bool) {
	return c.c.GetIfPresent(key)
}

func (c *otterCache) Set(key int, value string) {
	c.c.Set(key, value)
}

func (*otterCache) Name() string {
	return "otter"
}

func (*otterCache) Close() {}
