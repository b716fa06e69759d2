package output

import (
	"fmt"
	"os"
)

// WriteMarkdown writes benchmark results to a Markdown file.
func WriteMarkdown(filename string, results Results, commandLine string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := func(format string, args ...any) {
		fmt.Fprintf(f, format, args...)
	}

	w("# contendmark Results\n\n")
	w("```\n")
	w("Command: %s\n", commandLine)
	w("Environment: %s/%s, %d CPUs, %s\n", results.MachineInfo.OS, results.MachineInfo.Arch, results.MachineInfo.NumCPU, results.MachineInfo.GoVersion)
	w("Workload: capacity=%d threads=%d ops/thread=%d dist=%s\n",
		results.Config.Capacity, results.Config.Threads, results.Config.OpsPerThread, results.Config.Dist)
	w("```\n\n")

	w("## Concurrent Contention Benchmark\n\n")
	w("| Cache         | Hit Rate | Ops/sec       | Entries | Time (ms) | Mem (MB) |\n")
	w("|---------------|----------|---------------|---------|-----------|----------|\n")
	for _, r := range SortByThroughput(results.Runs) {
		entries := "-"
		if r.EntriesTracked {
			entries = fmt.Sprintf("%d", r.TotalEntries)
		}
		w("| %-13s | %7.2f%% | %13.3f | %7s | %9d | %8.2f |\n",
			r.Name, r.HitRate*100, r.OpsPerSec, entries, r.TotalTimeMS, r.MemoryMB)
	}
	w("\n")

	return nil
}
