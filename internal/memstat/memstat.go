// Package memstat samples process resident memory for before/after
// comparisons. Readings only need to be comparable with each other, not
// absolutely accurate.
package memstat

import (
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Sampler returns the current process resident memory in bytes.
type Sampler func() uint64

// Resident reads the process RSS. If the platform call fails the Go heap
// footprint is used instead; callers treat a pair of equal readings as a
// zero delta, so the fallback only needs to be self-consistent.
func Resident() uint64 {
	p, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec // pid fits
	if err == nil {
		if info, err := p.MemoryInfo(); err == nil && info != nil {
			return info.RSS
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return mem.Sys
}

// Settle coaxes the runtime into releasing dead memory so a following
// Resident call reflects live data rather than GC slack.
func Settle() {
	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	runtime.GC()
	debug.FreeOSMemory()
}
