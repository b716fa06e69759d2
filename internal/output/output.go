// Package output renders benchmark results for terminals and files.
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/tstromberg/contendmark/internal/benchmark"
)

// MachineInfo describes the environment a benchmark ran on.
type MachineInfo struct {
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	NumCPU      int    `json:"numCpu"`
	GoVersion   string `json:"goVersion"`
	CommandLine string `json:"commandLine"`
}

// RunConfig echoes the workload parameters a result set was produced with.
type RunConfig struct {
	Capacity     int    `json:"capacity"`
	Threads      int    `json:"threads"`
	OpsPerThread int    `json:"opsPerThread"`
	Dist         string `json:"dist"`
}

// Results is the full output of one invocation.
type Results struct {
	Timestamp   string             `json:"timestamp"`
	MachineInfo MachineInfo        `json:"machineInfo"`
	Config      RunConfig          `json:"config"`
	Runs        []benchmark.Result `json:"runs"`
}

// SortByThroughput returns the runs ordered fastest first.
func SortByThroughput(runs []benchmark.Result) []benchmark.Result {
	sorted := make([]benchmark.Result, len(runs))
	copy(sorted, runs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OpsPerSec > sorted[j].OpsPerSec
	})
	return sorted
}

// PrintTable writes a human-readable results table, fastest backend first,
// with a winner line when there is a meaningful runner-up.
func PrintTable(w io.Writer, runs []benchmark.Result) {
	if len(runs) == 0 {
		return
	}
	sorted := SortByThroughput(runs)

	fmt.Fprintln(w, "  | Cache         | Hit Rate | Ops/sec       | Entries | Time (ms) | Mem (MB) |")
	fmt.Fprintln(w, "  |---------------|----------|---------------|---------|-----------|----------|")

	for _, r := range sorted {
		entries := "-"
		if r.EntriesTracked {
			entries = fmt.Sprintf("%d", r.TotalEntries)
		}
		fmt.Fprintf(w, "  | %-13s | %7.2f%% | %13.3f | %7s | %9d | %8.2f |\n",
			r.Name, r.HitRate*100, r.OpsPerSec, entries, r.TotalTimeMS, r.MemoryMB)
	}

	if len(sorted) >= 2 {
		best := sorted[0]
		second := sorted[1]
		if second.OpsPerSec > 0 {
			pct := (best.OpsPerSec - second.OpsPerSec) / second.OpsPerSec * 100
			fmt.Fprintf(w, "\n  winner: %s (%.0f ops/sec, +%.1f%% vs %s)\n", best.Name, best.OpsPerSec, pct, second.Name)
		}
	}
	fmt.Fprintln(w)
}
