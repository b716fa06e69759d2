// contendmark compares cache implementations under an identical concurrent
// workload: one reproducible access pattern, many backends, one table.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tstromberg/contendmark/internal/benchmark"
	"github.com/tstromberg/contendmark/internal/cache"
	"github.com/tstromberg/contendmark/internal/output"
	"github.com/tstromberg/contendmark/internal/workload"
)

// validDists lists the supported key distributions.
var validDists = []string{"seq", "zipf"}

// zipfSeedBase offsets per-worker Zipf seeds so sequences stay reproducible
// and distinct across workers.
const zipfSeedBase = 42

func main() {
	showHelp := flag.Bool("help", false, "Show help message")
	capacity := flag.Int("capacity", benchmark.DefaultCapacity, "Max live entries target per cache")
	threads := flag.Int("threads", benchmark.DefaultThreads, "Parallel worker count")
	ops := flag.Int("ops", benchmark.DefaultOpsPerThread, "Operations per worker")
	caches := flag.String("caches", "", "Comma-separated list of caches to benchmark (default: all)")
	dist := flag.String("dist", "seq", "Key distribution: seq or zipf")
	theta := flag.Float64("theta", 0.8, "Zipf skew (only with -dist zipf)")
	entries := flag.Bool("entries", true, "Track distinct entries touched per run")
	outDir := flag.String("outdir", "", "Output directory for results (writes contendmark_results.md and .json)")
	flag.Parse()

	if *showHelp {
		printUsage()
		os.Exit(0)
	}

	if *dist != "seq" && *dist != "zipf" {
		fmt.Fprintf(os.Stderr, "error: unknown distribution %q (valid: %s)\n", *dist, strings.Join(validDists, ", "))
		os.Exit(1)
	}

	if *caches != "" {
		var names []string
		for name := range strings.SplitSeq(*caches, ",") {
			names = append(names, strings.TrimSpace(name))
		}
		cache.SetFilter(names)
	}

	cfg := benchmark.Config{
		Capacity:     *capacity,
		Threads:      *threads,
		OpsPerThread: *ops,
		TrackEntries: *entries,
	}
	if *dist == "zipf" {
		cfg.KeyFn = zipfKeyFn(*threads, *ops, *capacity, *theta)
	}

	printHeader(cfg, *dist)

	var runs []benchmark.Result
	for _, factory := range cache.All() {
		c := factory(cfg.Capacity)
		result, err := benchmark.Run(c.Name(), c, benchmark.DefaultValue, cfg)
		c.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %s done\n", result.Name)
		runs = append(runs, result)
	}
	fmt.Println()

	output.PrintTable(os.Stdout, runs)

	commandLine := "contendmark " + strings.Join(os.Args[1:], " ")
	results := output.Results{
		MachineInfo: output.MachineInfo{
			OS:          runtime.GOOS,
			Arch:        runtime.GOARCH,
			NumCPU:      runtime.NumCPU(),
			GoVersion:   runtime.Version(),
			CommandLine: commandLine,
		},
		Config: output.RunConfig{
			Capacity:     cfg.Capacity,
			Threads:      cfg.Threads,
			OpsPerThread: cfg.OpsPerThread,
			Dist:         *dist,
		},
		Runs: runs,
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil { //nolint:gosec // G301: 0755 is standard dir permission
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		mdPath := filepath.Join(*outDir, "contendmark_results.md")
		jsonPath := filepath.Join(*outDir, "contendmark_results.json")

		if err := output.WriteMarkdown(mdPath, results, commandLine); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing Markdown: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Results: %s\n", mdPath)

		if err := output.WriteJSON(jsonPath, results, commandLine); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("         %s\n", jsonPath)
	}
}

// zipfKeyFn precomputes one deterministic Zipf key sequence per worker over
// the workload key space. The same flags always produce the same sequences.
func zipfKeyFn(threads, opsPerThread, capacity int, theta float64) func(worker, op int) int {
	seqs := make([][]int, threads)
	for worker := range threads {
		seqs[worker] = workload.GenerateZipf(opsPerThread, workload.KeyspaceSize(capacity), theta, uint64(zipfSeedBase+worker)) //nolint:gosec // worker is small
	}
	return func(worker, op int) int {
		return seqs[worker][op]
	}
}

func printUsage() {
	fmt.Println("contendmark - Compare cache implementations under concurrent load")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  contendmark                      Run all caches with default workload")
	fmt.Println("  contendmark -caches otter,lru    Run selected caches only")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -capacity <n>    Max live entries target per cache (default: 10000)")
	fmt.Println("  -threads <n>     Parallel worker count (default: 8)")
	fmt.Println("  -ops <n>         Operations per worker (default: 100000)")
	fmt.Println("  -caches <list>   Comma-separated caches to benchmark (default: all)")
	fmt.Println("  -dist <name>     Key distribution: seq or zipf (default: seq)")
	fmt.Println("  -theta <f>       Zipf skew, only with -dist zipf (default: 0.8)")
	fmt.Println("  -entries=false   Skip tracking distinct entries touched")
	fmt.Println("  -outdir <dir>    Output directory for contendmark_results.{md,json}")
	fmt.Println()
	fmt.Println("Available caches:")
	for _, name := range cache.AvailableNames() {
		fmt.Printf("  - %s\n", name)
	}
}

func printHeader(cfg benchmark.Config, dist string) {
	fmt.Println("contendmark")
	fmt.Println()
	fmt.Printf("  caches:     %d\n", len(cache.AllNames()))
	fmt.Printf("  capacity:   %d (keyspace %d)\n", cfg.Capacity, workload.KeyspaceSize(cfg.Capacity))
	fmt.Printf("  threads:    %d\n", cfg.Threads)
	fmt.Printf("  ops/thread: %d\n", cfg.OpsPerThread)
	fmt.Printf("  dist:       %s\n", dist)
	fmt.Println()
}
