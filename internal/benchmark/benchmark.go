// Package benchmark drives cache backends through an identical concurrent
// workload and aggregates per-worker counters into comparable metrics.
package benchmark

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/tstromberg/contendmark/internal/cache"
	"github.com/tstromberg/contendmark/internal/memstat"
	"github.com/tstromberg/contendmark/internal/workload"
)

// Defaults for the standard contention run.
const (
	DefaultCapacity     = 10_000
	DefaultThreads      = 8
	DefaultOpsPerThread = 100_000
)

// Config describes one benchmark run. Capacity, Threads and OpsPerThread
// must all be positive; anything else is a setup error and no work starts.
type Config struct {
	Capacity     int
	Threads      int
	OpsPerThread int

	// TrackEntries records every touched key per worker and reports the
	// cardinality of the union across workers.
	TrackEntries bool

	// KeyFn maps (worker, op) to a key. Nil selects the sequential
	// workload.Key pattern over [0, 2*Capacity).
	KeyFn func(worker, op int) int

	// Sample reads current resident memory. Nil selects memstat.Resident.
	Sample memstat.Sampler
}

func (cfg Config) validate() error {
	if cfg.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", cfg.Capacity)
	}
	if cfg.Threads <= 0 {
		return fmt.Errorf("threads must be positive, got %d", cfg.Threads)
	}
	if cfg.OpsPerThread <= 0 {
		return fmt.Errorf("ops per thread must be positive, got %d", cfg.OpsPerThread)
	}
	return nil
}

// DefaultValue derives the stored payload from a key.
func DefaultValue(key int) string {
	return "value_" + strconv.Itoa(key)
}

// Run executes one benchmark against one cache handle and produces exactly
// one Result.
//
// Each worker runs its share of operations with fully unsynchronized local
// counters and folds them into shared state exactly once at completion;
// per-operation synchronization would skew the very throughput being
// measured. The cache handle is the only state shared during the hot loop,
// and its concurrency discipline is the backend's own.
func Run(name string, c cache.Cache, valueFn func(int) string, cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}
	if valueFn == nil {
		valueFn = DefaultValue
	}
	keyFn := cfg.KeyFn
	if keyFn == nil {
		keyFn = func(worker, op int) int {
			return workload.Key(worker, op, cfg.OpsPerThread, cfg.Capacity)
		}
	}
	sample := cfg.Sample
	if sample == nil {
		sample = memstat.Resident
	}

	totalOps := int64(cfg.Threads) * int64(cfg.OpsPerThread)

	var (
		mu         sync.Mutex
		totalHits  int64
		uniqueKeys map[int]struct{}
	)
	if cfg.TrackEntries {
		uniqueKeys = make(map[int]struct{}, workload.KeyspaceSize(cfg.Capacity))
	}

	memstat.Settle()
	baseline := sample()
	start := time.Now()

	var wg sync.WaitGroup
	for worker := range cfg.Threads {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var localHits int64
			var localKeys map[int]struct{}
			if cfg.TrackEntries {
				localKeys = make(map[int]struct{}, cfg.OpsPerThread)
			}

			for op := range cfg.OpsPerThread {
				key := keyFn(worker, op)
				if _, ok := c.Get(key); ok {
					localHits++
				} else {
					c.Set(key, valueFn(key))
				}
				if localKeys != nil {
					localKeys[key] = struct{}{}
				}
			}

			// Single merge point: shared state is touched once per
			// worker, never per operation.
			mu.Lock()
			totalHits += localHits
			for k := range localKeys {
				uniqueKeys[k] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	result, err := newResult(name, totalOps, totalHits, elapsed)
	if err != nil {
		return Result{}, err
	}

	if cfg.TrackEntries {
		// Union cardinality, not the per-worker sum: worker key ranges
		// can overlap.
		result.TotalEntries = len(uniqueKeys)
		result.EntriesTracked = true
	}

	// Release run bookkeeping before the second sample so the delta is
	// attributable to the cache backend, not the harness.
	uniqueKeys = nil //nolint:ineffassign,wastedassign // drop before sampling
	memstat.Settle()
	if after := sample(); after > baseline {
		result.MemoryMB = float64(after-baseline) / 1024 / 1024
	}

	return result, nil
}
