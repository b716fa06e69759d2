package cache

import (
	"encoding/binary"

	lru "github.com/elastic/go-freelru"
	"github.com/zeebo/xxh3"
)

func hashKey(i int) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(i)) //nolint:gosec // keys are non-negative
	return uint32(xxh3.Hash(b[:]))
}

type freeLRUSyncedCache struct {
	c *lru.SyncedLRU[int, string]
}

func NewFreeLRUSynced(capacity int) Cache {
	c, _ := lru.NewSynced[int, string](uint32(capacity), hashKey) //nolint:gosec // capacity always positive
	return &freeLRUSyncedCache{c: c}
}

func (c *freeLRUSyncedCache) Get(key int) (string, bool) {
	return c.c.Get(key)
}

func (c *freeLRUSyncedCache) Set(key int, value string) {
	c.c.Add(key, value)
}

func (c *freeLRUSyncedCache) Name() string {
	return "freelru-sync"
}

func (c *freeLRUSyncedCache) Close() {}

type freeLRUShardedCache struct {
	c *lru.ShardedLRU[int, string]
}

func NewFreeLRUSharded(capacity int) Cache {
	c, _ := lru.NewSharded[int, string](uint32(capacity), hashKey) //nolint:gosec // capacity always positive
	return &freeLRUShardedCache{c: c}
}

func (c *freeLRUShardedCache) Get(key int) (string, bool) {
	return c.c.Get(key)
}

func (c *freeLRUShardedCache) Set(key int, value string) {
	c.c.Add(key, value)
}

func (c *freeLRUShardedCache) Name() string {
	return "freelru-shard"
}

func (c *freeLRUShardedCache) Close() {}
