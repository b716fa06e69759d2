// Package workload generates deterministic cache access patterns.
package workload

// Key maps a (worker, operation) pair to a cache key.
//
// Each worker owns a disjoint operation-index range, which is then folded
// into a key space exactly twice the capacity bound. Twice the capacity
// guarantees a mix of hits and misses and forces capacity-bound backends
// through their eviction path. The function is pure: identical arguments
// always produce the identical key.
func Key(worker, op, opsPerWorker, capacity int) int {
	return (op + worker*opsPerWorker) % (2 * capacity)
}

// KeyspaceSize returns the number of distinct keys the workload can touch
// for a given capacity bound.
func KeyspaceSize(capacity int) int {
	return 2 * capacity
}
