package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tstromberg/contendmark/internal/benchmark"
)

func sampleRuns() []benchmark.Result {
	return []benchmark.Result{
		{Name: "lru", TotalTimeMS: 210, OpsPerSec: 3_800_000.5, HitRate: 0.42, TotalEntries: 20000, EntriesTracked: true, MemoryMB: 3.25},
		{Name: "otter", TotalTimeMS: 120, OpsPerSec: 6_600_000.25, HitRate: 0.44, TotalEntries: 20000, EntriesTracked: true, MemoryMB: 4.75},
		{Name: "clock", TotalTimeMS: 300, OpsPerSec: 2_700_000, HitRate: 0.40},
	}
}

func TestSortByThroughput(t *testing.T) {
	sorted := SortByThroughput(sampleRuns())
	want := []string{"otter", "lru", "clock"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].Name, name)
		}
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sampleRuns())
	out := buf.String()

	for _, name := range []string{"otter", "lru", "clock"} {
		if !strings.Contains(out, name) {
			t.Errorf("table missing cache %q:\n%s", name, out)
		}
	}

	// Fastest backend wins.
	if !strings.Contains(out, "winner: otter") {
		t.Errorf("expected otter as winner:\n%s", out)
	}

	// Untracked entries render as a dash.
	clockLine := ""
	for line := range strings.SplitSeq(out, "\n") {
		if strings.Contains(line, "clock") {
			clockLine = line
		}
	}
	if !strings.Contains(clockLine, "-") {
		t.Errorf("clock row should show '-' for untracked entries: %q", clockLine)
	}
}

func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("empty runs produced output: %q", buf.String())
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	results := Results{
		MachineInfo: MachineInfo{OS: "linux", Arch: "amd64", NumCPU: 8, GoVersion: "go1.25.4"},
		Config:      RunConfig{Capacity: 10000, Threads: 8, OpsPerThread: 100000, Dist: "seq"},
		Runs:        sampleRuns(),
	}

	if err := WriteJSON(path, results, "contendmark"); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var decoded Results
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Runs) != 3 {
		t.Fatalf("decoded %d runs, want 3", len(decoded.Runs))
	}
	if decoded.Runs[0].Name != "lru" || decoded.Runs[0].HitRate != 0.42 {
		t.Errorf("decoded run mismatch: %+v", decoded.Runs[0])
	}
	if decoded.Timestamp == "" {
		t.Error("timestamp not set")
	}
	if decoded.MachineInfo.CommandLine != "contendmark" {
		t.Errorf("command line = %q", decoded.MachineInfo.CommandLine)
	}
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.md")
	results := Results{
		MachineInfo: MachineInfo{OS: "linux", Arch: "amd64", NumCPU: 8, GoVersion: "go1.25.4"},
		Config:      RunConfig{Capacity: 10000, Threads: 8, OpsPerThread: 100000, Dist: "zipf"},
		Runs:        sampleRuns(),
	}

	if err := WriteMarkdown(path, results, "contendmark -dist zipf"); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"# contendmark Results",
		"contendmark -dist zipf",
		"dist=zipf",
		"| otter",
		"| lru",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}
