package model

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DenseEngine evaluates every cell of the board each generation in parallel
// row bands. It double-buffers the board: workers read only current and write
// only their own indices of next, then the two are swapped.
//
// A third board, snapshot, holds the state a slower consumer last observed so
// that only the cells that differ have to be handed over.
type DenseEngine struct {
	current  *Board
	next     *Board
	snapshot *Board

	workers   int
	compactor *Compactor
	pool      *BoardPool

	// readback state for RequestChanges / PollChanges
	frozen   *Board
	readback *Compactor
	inflight *ChangeRequest
}

// NewDenseEngine returns a dense engine holding an all-dead board. workers <= 0
// uses one worker per CPU.
func NewDenseEngine(width, height, workers int, pool *BoardPool) *DenseEngine {
	e := &DenseEngine{
		workers: defaultWorkers(workers),
		pool:    pool,
	}
	e.Initialize(width, height)
	return e
}

// Initialize releases the current buffers and allocates all-dead ones of the
// new size. An outstanding change request is waited for and discarded.
func (e *DenseEngine) Initialize(width, height int) {
	e.discardInflight()

	for _, b := range []*Board{e.current, e.next, e.snapshot, e.frozen} {
		BoardToPool(b, e.pool)
	}
	e.current = e.pool.Get(width, height)
	e.next = e.pool.Get(width, height)
	e.snapshot = e.pool.Get(width, height)
	e.frozen = e.pool.Get(width, height)

	total := e.current.Size().Cells()
	if e.compactor == nil {
		e.compactor = NewCompactor(total, e.workers)
		e.readback = NewCompactor(total, e.workers)
		return
	}
	e.compactor.Resize(total)
	e.readback.Resize(total)
}

// Size returns the board dimensions.
func (e *DenseEngine) Size() Size { return e.current.Size() }

// SetCell births or kills c. Out-of-bounds coordinates are ignored.
func (e *DenseEngine) SetCell(c Coordinate, alive bool) {
	e.current.Set(c, alive)
}

// LoadCells clears the board and births every in-bounds coordinate in cells.
// The snapshot is left alone so the next sync reports the load as changes.
func (e *DenseEngine) LoadCells(cells []Coordinate) error {
	if err := checkCapacity(len(cells), e.Size()); err != nil {
		return err
	}
	e.current.Clear()
	for _, c := range cells {
		e.current.Set(c, true)
	}
	return nil
}

// Step computes the next generation of every cell into next and swaps it in.
func (e *DenseEngine) Step() {
	var (
		cur, nxt      = e.current, e.next
		width, height = cur.width, cur.height
	)
	if width == 0 || height == 0 {
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, height)
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)
	eg.SetLimit(numWorkers)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				row := nxt.cells[y*width : (y+1)*width]
				for x := range width {
					row[x] = cur.NextCellState(x, y)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	e.current, e.next = e.next, e.current
}

// LivingCellsInRegion compacts the living cells of the clipped region.
func (e *DenseEngine) LivingCellsInRegion(r Region) []Coordinate {
	r, ok := r.Clip(e.Size())
	if !ok {
		return []Coordinate{}
	}

	var (
		cells  = e.current.cells
		width  = e.current.width
		rw     = r.Width()
		origin = r.Min
	)
	at := func(k int) Coordinate {
		return Coordinate{X: origin.X + k%rw, Y: origin.Y + k/rw}
	}

	matches := e.compactor.Compact(r.Area(), func(k int) bool {
		c := at(k)
		return cells[c.Y*width+c.X]
	})

	out := make([]Coordinate, len(matches))
	for i, k := range matches {
		out[i] = at(k)
	}
	return out
}

// ChangedCellsSinceLastSync returns every cell whose state differs from the
// snapshot and then advances the snapshot to the current board. Any pending
// change request is discarded first.
func (e *DenseEngine) ChangedCellsSinceLastSync() []Change {
	e.discardInflight()
	changes := diffBoards(e.compactor, e.current, e.snapshot)
	e.snapshot.CopyFrom(e.current)
	return changes
}

// diffBoards compacts the indices where cur and prev disagree into change records.
func diffBoards(c *Compactor, cur, prev *Board) []Change {
	var (
		now    = cur.cells
		before = prev.cells
	)
	matches := c.Compact(len(now), func(i int) bool {
		return now[i] != before[i]
	})

	changes := make([]Change, len(matches))
	for i, idx := range matches {
		changes[i] = Change{Coordinate: cur.CoordinateOf(idx), Alive: now[idx]}
	}
	return changes
}
