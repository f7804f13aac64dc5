package model

import (
	"slices"
	"testing"
)

func TestCompactExactForAnyWorkerCount(t *testing.T) {
	const n = 97
	match := func(i int) bool { return i%7 == 0 || i == n-1 }

	var want []int
	for i := range n {
		if match(i) {
			want = append(want, i)
		}
	}

	for workers := 1; workers <= n; workers++ {
		c := NewCompactor(n, workers)
		got := slices.Clone(c.Compact(n, match))
		if len(got) != len(want) {
			t.Fatalf("workers=%d: counted %d matches, expected %d", workers, len(got), len(want))
		}
		slices.Sort(got)
		if !slices.Equal(got, want) {
			t.Fatalf("workers=%d: compacted %v, expected %v", workers, got, want)
		}
	}
}

func TestCompactReusesOutput(t *testing.T) {
	c := NewCompactor(10, 3)

	if got := c.Compact(10, func(int) bool { return true }); len(got) != 10 {
		t.Fatalf("all-match pass returned %d items", len(got))
	}
	if got := c.Compact(10, func(int) bool { return false }); len(got) != 0 {
		t.Fatalf("counter not reset between passes, got %v", got)
	}
	if got := c.Compact(0, func(int) bool { return true }); len(got) != 0 {
		t.Fatalf("empty pass returned %v", got)
	}
	if c.Capacity() != 10 {
		t.Fatalf("capacity changed to %d", c.Capacity())
	}

	got := c.Compact(25, func(i int) bool { return i >= 20 })
	if len(got) != 5 || c.Capacity() != 25 {
		t.Fatalf("oversized pass returned %d items with capacity %d", len(got), c.Capacity())
	}
}
