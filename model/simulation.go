package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/utils"
)

// historySize is the number of recent state hashes kept for cycle detection.
const historySize = 5

// Simulation owns an Engine and everything that outlives a single generation:
// the generation counter, recent state hashes and the random source used for
// seeding.
type Simulation struct {
	engine     Engine
	config     utils.Config
	rng        *rand.Rand
	generation int
	history    []string // Store recent board states for cycle detection
}

// NewSimulation builds the configured engine with an all-dead board.
func NewSimulation(config utils.Config, pool *BoardPool) (*Simulation, error) {
	engine, err := NewEngine(config.Engine, config.Width, config.Height, EngineOptions{
		Workers: config.Workers,
		Pool:    pool,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "[NewSimulation] failed to build engine for config: %+v", config.Engine)
	}
	return &Simulation{
		engine: engine,
		config: config,
		rng:    NewRNG(config.Seed),
	}, nil
}

// Engine exposes the underlying engine.
func (s *Simulation) Engine() Engine { return s.engine }

// Generation returns the number of steps taken since the last restart.
func (s *Simulation) Generation() int { return s.generation }

// Size returns the board dimensions.
func (s *Simulation) Size() Size { return s.engine.Size() }

// LivingCells returns every living cell on the board.
func (s *Simulation) LivingCells() []Coordinate {
	return s.engine.LivingCellsInRegion(s.engine.Size().Bounds())
}

// Population returns the number of living cells.
func (s *Simulation) Population() int {
	if p, ok := s.engine.(interface{ Population() int }); ok {
		return p.Population()
	}
	return len(s.LivingCells())
}

// Load replaces the board contents with cells.
func (s *Simulation) Load(cells []Coordinate) error {
	if err := s.engine.LoadCells(cells); err != nil {
		return errors.Wrapf(err, "[Load] failed to load %d cells", len(cells))
	}
	s.history = nil
	return nil
}

// Step advances the simulation by one generation.
func (s *Simulation) Step() {
	s.engine.Step()
	s.generation++
}

// Restart clears the board to the configured size and seeds it with fresh patterns.
func (s *Simulation) Restart() error {
	s.engine.Initialize(s.config.Width, s.config.Height)
	s.generation = 0
	return s.Load(InterestingPatterns(s.config, s.rng))
}

// InjectRandomLife births count random cells to break stagnation
func (s *Simulation) InjectRandomLife(count int) {
	size := s.engine.Size()
	if size.Cells() == 0 {
		return
	}
	for range count {
		s.engine.SetCell(Coordinate{X: s.rng.IntN(size.W), Y: s.rng.IntN(size.H)}, true)
	}
}

// Hash returns an MD5 digest of the set of living cells.
func (s *Simulation) Hash() string {
	cells := SortCoordinates(s.LivingCells())

	h := md5.New()
	buf := make([]byte, 0, 2*binary.MaxVarintLen64)
	for _, c := range cells {
		buf = binary.AppendVarint(buf[:0], int64(c.X))
		buf = binary.AppendVarint(buf, int64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (s *Simulation) UpdateHistory() {
	s.history = append(s.history, s.Hash())

	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant checks if the board is static or cycling with period 1 to 3.
// It compares the current state against the previously recorded ones, so it
// must be called before UpdateHistory for the current generation.
func (s *Simulation) IsStagnant() bool {
	if len(s.history) < 3 {
		return false
	}

	currentHash := s.Hash()
	for _, past := range s.history[len(s.history)-3:] {
		if past == currentHash {
			return true
		}
	}
	return false
}
