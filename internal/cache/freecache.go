package cache

import (
	"strconv"

	"github.com/coocood/freecache"
)

// freecacheEntrySize is key + value + internal overhead for the int-keyed
// workload (key ~8 bytes, "value_N" payload, ~32 bytes bookkeeping).
const freecacheEntrySize = 64

type freecacheCache struct {
	c *freecache.Cache
}

// NewFreecache creates a freecache sized in bytes to hold roughly capacity
// entries of this workload.
func NewFreecache(capacity int) Cache {
	cacheBytes := max(capacity*freecacheEntrySize,
		// minimum 512KB
		512*1024)
	return &freecacheCache{c: freecache.NewCache(cacheBytes)}
}

func (c *freecacheCache) Get(key int) (string, bool) {
	v, err := c.c.Get(keyBytes(key))
	if err != nil {
		return "", false
	}
	return string(v), true
}

func (c *freecacheCache) Set(key int, value string) {
	c.c.Set(keyBytes(key), []byte(value), 0) //nolint:errcheck,gosec // best-effort set
}

func (*freecacheCache) Name() string {
	return "freecache"
}

func (*freecacheCache) Close() {}

func keyBytes(key int) []byte {
	return strconv.AppendInt(nil, int64(key), 10)
}
