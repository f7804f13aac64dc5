package model

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/utils"
)

// ErrCapacityExceeded is returned by LoadCells when more cells are supplied
// than the board can hold. The board is left untouched.
var ErrCapacityExceeded = errors.New("cell list exceeds board capacity")

// Engine advances a bounded Game of Life board and answers region queries.
// Implementations are not safe for concurrent use; callers serialize calls.
type Engine interface {
	// Initialize replaces the board with an all-dead one of the given size.
	Initialize(width, height int)
	Size() Size
	// SetCell changes one cell. Out-of-bounds coordinates are ignored.
	SetCell(c Coordinate, alive bool)
	// LoadCells replaces the living set with the in-bounds entries of cells.
	LoadCells(cells []Coordinate) error
	// Step advances exactly one generation.
	Step()
	// LivingCellsInRegion returns an owned copy of the living cells inside r,
	// in no particular order.
	LivingCellsInRegion(r Region) []Coordinate
}

// ChangeTracker is implemented by engines that can report the cells that
// changed since the last time a consumer synced.
type ChangeTracker interface {
	ChangedCellsSinceLastSync() []Change
}

// Engine kinds accepted by NewEngine.
const (
	EngineSparse = utils.EngineSparse
	EngineDense  = utils.EngineDense
)

// EngineOptions tune engine construction.
type EngineOptions struct {
	// Workers bounds the parallelism of the dense engine. Zero means runtime.NumCPU().
	Workers int
	// Pool, when set, recycles board storage across Initialize calls.
	Pool *BoardPool
}

// NewEngine constructs the engine named by kind with an all-dead board.
func NewEngine(kind string, width, height int, opts EngineOptions) (Engine, error) {
	switch kind {
	case EngineSparse:
		return NewSparseEngine(width, height, opts.Pool), nil
	case EngineDense:
		return NewDenseEngine(width, height, opts.Workers, opts.Pool), nil
	default:
		return nil, errors.Errorf("[NewEngine] unknown engine kind: %+v", kind)
	}
}

func checkCapacity(n int, s Size) error {
	if n > s.Cells() {
		return errors.Wrapf(ErrCapacityExceeded, "[LoadCells] %d cells for a %dx%d board", n, s.W, s.H)
	}
	return nil
}

func defaultWorkers(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}
