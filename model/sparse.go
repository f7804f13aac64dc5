package model

import "github.com/sheikhrachel/gol-engine/rules"

// SparseEngine advances the board by visiting only living cells and the dead
// cells next to them. It suits boards where most cells are dead.
type SparseEngine struct {
	board  *Board
	living map[Coordinate]struct{}

	// deadNeighbors counts, per in-bounds dead cell, how many living cells
	// touched it during the current step.
	deadNeighbors map[Coordinate]int
	marks         []Change
	lastStep      []Change

	pool *BoardPool
}

// NewSparseEngine returns a sparse engine holding an all-dead board.
func NewSparseEngine(width, height int, pool *BoardPool) *SparseEngine {
	e := &SparseEngine{
		living:        make(map[Coordinate]struct{}),
		deadNeighbors: make(map[Coordinate]int),
		pool:          pool,
	}
	e.Initialize(width, height)
	return e
}

// Initialize replaces the board with an all-dead one of the given size.
func (e *SparseEngine) Initialize(width, height int) {
	BoardToPool(e.board, e.pool)
	e.board = e.pool.Get(width, height)
	clear(e.living)
	clear(e.deadNeighbors)
	e.marks = e.marks[:0]
	e.lastStep = nil
}

// Size returns the board dimensions.
func (e *SparseEngine) Size() Size { return e.board.Size() }

// Population returns the number of living cells.
func (e *SparseEngine) Population() int { return len(e.living) }

// SetCell births or kills c. Out-of-bounds coordinates are ignored.
func (e *SparseEngine) SetCell(c Coordinate, alive bool) {
	if !e.board.Set(c, alive) {
		return
	}
	if alive {
		e.living[c] = struct{}{}
	} else {
		delete(e.living, c)
	}
}

// LoadCells clears the board and births every in-bounds coordinate in cells.
func (e *SparseEngine) LoadCells(cells []Coordinate) error {
	if err := checkCapacity(len(cells), e.Size()); err != nil {
		return err
	}
	for c := range e.living {
		e.board.Set(c, false)
	}
	clear(e.living)
	for _, c := range cells {
		e.SetCell(c, true)
	}
	e.lastStep = nil
	return nil
}

// Step advances one generation. Every birth and death is decided against the
// unmodified board before any of them is applied.
func (e *SparseEngine) Step() {
	e.considerLivingCells()
	e.considerDeadCells()
	e.applyMarks()
}

func (e *SparseEngine) considerLivingCells() {
	for c := range e.living {
		livingNeighbors := 0
		for _, d := range neighborOffsets {
			n := Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
			if !e.board.InBounds(n) {
				continue
			}
			if e.board.cells[e.board.Index(n)] {
				livingNeighbors++
				continue
			}
			e.deadNeighbors[n]++
		}
		if !rules.NextState(true, livingNeighbors) {
			e.marks = append(e.marks, Change{Coordinate: c, Alive: false})
		}
	}
}

func (e *SparseEngine) considerDeadCells() {
	for c, livingNeighbors := range e.deadNeighbors {
		if rules.NextState(false, livingNeighbors) {
			e.marks = append(e.marks, Change{Coordinate: c, Alive: true})
		}
	}
	clear(e.deadNeighbors)
}

func (e *SparseEngine) applyMarks() {
	for _, m := range e.marks {
		e.SetCell(m.Coordinate, m.Alive)
	}
	e.lastStep = append(e.lastStep[:0], e.marks...)
	e.marks = e.marks[:0]
}

// LastStepChanges returns a copy of the births and deaths applied by the most
// recent Step. It is empty after Initialize or LoadCells.
func (e *SparseEngine) LastStepChanges() []Change {
	return append([]Change(nil), e.lastStep...)
}

// LivingCellsInRegion returns the living cells inside r. It walks either the
// living set or the clipped region, whichever is smaller.
func (e *SparseEngine) LivingCellsInRegion(r Region) []Coordinate {
	r, ok := r.Clip(e.Size())
	if !ok {
		return []Coordinate{}
	}

	if r.Area() < len(e.living) {
		out := make([]Coordinate, 0)
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				if e.board.cells[y*e.board.width+x] {
					out = append(out, Coordinate{X: x, Y: y})
				}
			}
		}
		return out
	}

	out := make([]Coordinate, 0, min(len(e.living), r.Area()))
	for c := range e.living {
		if r.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
