package workload

import "testing"

func TestKeyBounds(t *testing.T) {
	configs := []struct {
		threads, ops, capacity int
	}{
		{1, 1, 1},
		{2, 4, 4},
		{8, 1000, 100},
		{3, 7, 1}, // capacity=1 still yields keys in {0,1}
	}

	for _, tc := range configs {
		for worker := range tc.threads {
			for op := range tc.ops {
				key := Key(worker, op, tc.ops, tc.capacity)
				if key < 0 || key >= 2*tc.capacity {
					t.Fatalf("Key(%d, %d, %d, %d) = %d, want in [0, %d)",
						worker, op, tc.ops, tc.capacity, key, 2*tc.capacity)
				}
			}
		}
	}
}

func TestKeyDeterminism(t *testing.T) {
	for worker := range 4 {
		for op := range 100 {
			a := Key(worker, op, 100, 50)
			b := Key(worker, op, 100, 50)
			if a != b {
				t.Fatalf("Key(%d, %d, 100, 50) not deterministic: %d vs %d", worker, op, a, b)
			}
		}
	}
}

func TestKeyDisjointWorkerRanges(t *testing.T) {
	// capacity=4, 2 workers, 4 ops each: worker 0 walks {0,1,2,3} and
	// worker 1 walks {4,5,6,7}, with no overlap.
	want := [][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
	}
	for worker := range 2 {
		for op := range 4 {
			got := Key(worker, op, 4, 4)
			if got != want[worker][op] {
				t.Errorf("Key(%d, %d, 4, 4) = %d, want %d", worker, op, got, want[worker][op])
			}
		}
	}
}

func TestKeyWrapsPastKeyspace(t *testing.T) {
	// A single worker running 16 ops against capacity=4 covers the 8-key
	// space exactly twice.
	seen := make(map[int]int)
	for op := range 16 {
		seen[Key(0, op, 16, 4)]++
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct keys, got %d", len(seen))
	}
	for key, count := range seen {
		if count != 2 {
			t.Errorf("key %d touched %d times, want 2", key, count)
		}
	}
}

func TestKeyspaceSize(t *testing.T) {
	if got := KeyspaceSize(10_000); got != 20_000 {
		t.Errorf("KeyspaceSize(10000) = %d, want 20000", got)
	}
	if got := KeyspaceSize(1); got != 2 {
		t.Errorf("KeyspaceSize(1) = %d, want 2", got)
	}
}
