// Package cache provides a unified adapter interface over cache implementations
// with very different internal concurrency disciplines.
package cache

// Cache is the minimal interface the benchmark drives. Keys are the bounded
// non-negative integers produced by the workload generator; values are
// whatever the value function derives from the key.
//
// Get returns the stored value and true on a hit. Set inserts or overwrites;
// capacity-bound backends may evict, including the entry just written. Any
// locking a backend needs is the backend's own business and is part of the
// cost being measured.
type Cache interface {
	Get(key int) (string, bool)
	Set(key int, value string)
	Name() string
	Close()
}

// Factory creates a new cache instance with the given capacity bound.
type Factory func(capacity int) Cache
