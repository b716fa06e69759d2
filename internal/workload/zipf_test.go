package workload

import "testing"

func TestGenerateZipfBounds(t *testing.T) {
	keys := GenerateZipf(10_000, 200, 0.8, 42)
	if len(keys) != 10_000 {
		t.Fatalf("expected 10000 keys, got %d", len(keys))
	}
	for i, k := range keys {
		if k < 0 || k >= 200 {
			t.Fatalf("keys[%d] = %d, want in [0, 200)", i, k)
		}
	}
}

func TestGenerateZipfDeterminism(t *testing.T) {
	a := GenerateZipf(5000, 100, 0.8, 42)
	b := GenerateZipf(5000, 100, 0.8, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequences diverge at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestGenerateZipfSeedsDiffer(t *testing.T) {
	a := GenerateZipf(5000, 100, 0.8, 1)
	b := GenerateZipf(5000, 100, 0.8, 2)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestGenerateZipfSkew(t *testing.T) {
	keys := GenerateZipf(100_000, 1000, 0.99, 42)
	counts := make(map[int]int)
	for _, k := range keys {
		counts[k]++
	}
	// The head of the distribution should dominate the tail.
	if counts[0] <= counts[999] {
		t.Errorf("expected key 0 (%d hits) to dominate key 999 (%d hits)", counts[0], counts[999])
	}
}
