package cache

import (
	"strconv"

	tinylfu "github.com/vmihailenco/go-tinylfu"
)

type tinyLFUCache struct {
	c *tinylfu.SyncT
}

// NewTinyLFU creates a TinyLFU cache. The library is string-keyed, so int
// keys are formatted on the way in.
func NewTinyLFU(capacity int) Cache {
	return &tinyLFUCache{c: tinylfu.NewSync(capacity, capacity*10)}
}

func (c *tinyLFUCache) Get(key int) (string, bool) {
	v, ok := c.c.Get(strconv.Itoa(key))
	if !ok {
		return "", false
	}
	return v.(string), true //nolint:errcheck,revive // type is known from Set
}

func (c *tinyLFUCache) Set(key int, value string) {
	c.c.Set(&tinylfu.Item{Key: strconv.Itoa(key), Value: value})
}

func (*tinyLFUCache) Name() string {
	return "tinylfu"
}

func (*tinyLFUCache) Close() {}
