package cache

import (
	"sync"

	"github.com/Code-Hex/go-generics-cache/policy/clock"
)

type clockCache struct {
	c  *clock.Cache[int, string]
	mu sync.Mutex
}

// NewClock creates a clock-replacement cache behind an external exclusive
// lock, same discipline as lru but with a different eviction policy.
func NewClock(capacity int) Cache {
	return &clockCache{
		c: clock.NewCache[int, string](clock.WithCapacity(capacity)),
	}
}

func (c *clockCache) Get(key int) (string, bool) {
	c.mu.Lock()
	v, ok := c.c.Get(key)
	c.mu.Unlock()
	return v, ok
}

func (c *clockCache) Set(key int, value string) {
	c.mu.Lock()
	c.c.Set(key, value)
	c.mu.Unlock()
}

func (*clockCache) Name() string {
	return "clock"
}

func (*clockCache) Close() {}
