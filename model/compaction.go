package model

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Compactor packs the indices of [0,n) that satisfy a predicate into a dense
// output slice. Workers claim output slots from a shared atomic counter, so
// results come back in no particular order.
//
// The output slice is allocated once for the largest n seen and reused; a
// Compactor is not safe for concurrent Compact calls.
type Compactor struct {
	counter atomic.Int64
	out     []int
	workers int
}

// NewCompactor returns a compactor preallocated for capacity items.
func NewCompactor(capacity, workers int) *Compactor {
	return &Compactor{
		out:     make([]int, max(capacity, 0)),
		workers: defaultWorkers(workers),
	}
}

// Capacity returns the number of preallocated output slots.
func (c *Compactor) Capacity() int { return len(c.out) }

// Resize reallocates the output slice when capacity differs from the current one.
func (c *Compactor) Resize(capacity int) {
	capacity = max(capacity, 0)
	if capacity != len(c.out) {
		c.out = make([]int, capacity)
	}
	c.counter.Store(0)
}

// Compact evaluates match for every index in [0,n) and returns the matching
// indices. The returned slice aliases internal storage and is only valid until
// the next call.
func (c *Compactor) Compact(n int, match func(i int) bool) []int {
	if n > len(c.out) {
		c.Resize(n)
	}
	c.counter.Store(0)
	if n <= 0 {
		return c.out[:0]
	}

	var (
		eg             errgroup.Group
		numWorkers     = min(c.workers, n)
		itemsPerWorker = (n + numWorkers - 1) / numWorkers // Ceiling division
	)
	eg.SetLimit(numWorkers)

	for w := range numWorkers {
		var (
			start = w * itemsPerWorker
			end   = min(start+itemsPerWorker, n)
		)
		if start >= n {
			break
		}

		eg.Go(func() error {
			for i := start; i < end; i++ {
				if match(i) {
					slot := c.counter.Add(1) - 1
					c.out[slot] = i
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	return c.out[:c.counter.Load()]
}
