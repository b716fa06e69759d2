package cache

// registry maps cache names to their factory functions.
var registry = map[string]Factory{
	"otter":         NewOtter,
	"theine":        NewTheine,
	"ristretto":     NewRistretto,
	"sfcache":       NewSFCache,
	"ttlcache":      NewTTLCache,
	"tinylfu":       NewTinyLFU,
	"sieve":         NewSieve,
	"s3-fifo":       NewS3FIFO,
	"freelru-shard": NewFreeLRUSharded,
	"freelru-sync":  NewFreeLRUSynced,
	"freecache":     NewFreecache,
	"2q":            NewTwoQueue,
	"s4lru":         NewS4LRU,
	"clock":         NewClock,
	"lru":           NewLRU,
}

// defaultOrder defines the display order for caches. Concurrent backends
// first, then the externally-locked ones.
var defaultOrder = []string{
	"otter", "theine", "ristretto", "sfcache", "ttlcache", "tinylfu",
	"sieve", "s3-fifo", "freelru-shard", "freelru-sync", "freecache", "2q",
	"s4lru", "clock", "lru",
}

// Filter holds the current cache filter (nil = all caches).
var Filter map[string]bool

// SetFilter sets which caches to include in benchmarks.
func SetFilter(names []string) {
	if len(names) == 0 {
		Filter = nil
		return
	}
	Filter = make(map[string]bool)
	for _, name := range names {
		Filter[name] = true
	}
}

// All returns factories for all (or filtered) cache implementations.
func All() []Factory {
	var factories []Factory
	for _, name := range defaultOrder {
		if Filter != nil && !Filter[name] {
			continue
		}
		if f, ok := registry[name]; ok {
			factories = append(factories, f)
		}
	}
	return factories
}

// AllNames returns the names of all (or filtered) cache implementations.
func AllNames() []string {
	if Filter == nil {
		return defaultOrder
	}
	var names []string
	for _, name := range defaultOrder {
		if Filter[name] {
			names = append(names, name)
		}
	}
	return names
}

// AvailableNames returns all available cache names (ignoring filter).
func AvailableNames() []string {
	return defaultOrder
}
