package benchmark

import (
	"errors"
	"fmt"
	"time"
)

// ErrElapsedZero is reported when a run finishes with no measurable elapsed
// time, which would make the throughput undefined.
var ErrElapsedZero = errors.New("elapsed time is zero")

// Result is the immutable outcome of one benchmark run for one backend.
type Result struct {
	Name           string  `json:"name"`
	TotalTimeMS    int64   `json:"totalTimeMs"`
	OpsPerSec      float64 `json:"opsPerSec"`
	HitRate        float64 `json:"hitRate"` // 0.0 - 1.0
	TotalEntries   int     `json:"totalEntries,omitempty"`
	EntriesTracked bool    `json:"entriesTracked"`
	MemoryMB       float64 `json:"memoryMb"`
}

// newResult derives the arithmetic fields from raw counters. A zero elapsed
// duration is an error, never a silent division by zero.
func newResult(name string, totalOps, hits int64, elapsed time.Duration) (Result, error) {
	if elapsed <= 0 {
		return Result{}, fmt.Errorf("%s: %w", name, ErrElapsedZero)
	}
	return Result{
		Name:        name,
		TotalTimeMS: elapsed.Milliseconds(),
		OpsPerSec:   float64(totalOps) / elapsed.Seconds(),
		HitRate:     float64(hits) / float64(totalOps),
	}, nil
}
