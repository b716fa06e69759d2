package cache

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

type lruCache struct {
	c  *simplelru.LRU[int, string]
	mu sync.Mutex
}

// NewLRU creates an exact LRU with no internal synchronization; one
// exclusive lock guards the whole structure and every Get/Set acquires it.
// The lock cost is deliberately part of what gets measured.
func NewLRU(capacity int) Cache {
	c, _ := simplelru.NewLRU[int, string](capacity, nil)
	return &lruCache{c: c}
}

func (c *lruCache) Get(key int) (string, bool) {
	c.mu.Lock()
	v, ok := c.c.Get(key)
	c.mu.Unlock()
	return v, ok
}

func (c *lruCache) Set(key int, value string) {
	c.mu.Lock()
	c.c.Add(key, value)
	c.mu.Unlock()
}

func (*lruCache) Name() string {
	return "lru"
}

func (*lruCache) Close() {}
