package model

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/utils"
)

func testConfig(engine string) utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Engine = engine
	cfg.Workers = 2
	cfg.Seed = 99
	return cfg
}

func newTestSimulation(t *testing.T, engine string) *Simulation {
	t.Helper()
	sim, err := NewSimulation(testConfig(engine), NewBoardPool())
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	return sim
}

func TestNewSimulationRejectsUnknownEngine(t *testing.T) {
	if _, err := NewSimulation(testConfig("quantum"), nil); err == nil {
		t.Fatal("expected an error for an unknown engine")
	}
}

func TestRestartDeterministic(t *testing.T) {
	for _, kind := range []string{EngineSparse, EngineDense} {
		a := newTestSimulation(t, kind)
		b := newTestSimulation(t, kind)
		if err := a.Restart(); err != nil {
			t.Fatal(err)
		}
		if err := b.Restart(); err != nil {
			t.Fatal(err)
		}
		if a.Population() == 0 {
			t.Fatalf("%s: restart seeded an empty board", kind)
		}
		if a.Hash() != b.Hash() {
			t.Fatalf("%s: same seed produced different boards", kind)
		}

		a.Step()
		if a.Generation() != 1 {
			t.Fatalf("%s: generation = %d after one step", kind, a.Generation())
		}
		if err := a.Restart(); err != nil {
			t.Fatal(err)
		}
		if a.Generation() != 0 {
			t.Fatalf("%s: restart must reset the generation counter", kind)
		}
	}
}

func TestSparseAndDenseSimulationsAgree(t *testing.T) {
	sparse := newTestSimulation(t, EngineSparse)
	dense := newTestSimulation(t, EngineDense)
	if err := sparse.Restart(); err != nil {
		t.Fatal(err)
	}
	if err := dense.Restart(); err != nil {
		t.Fatal(err)
	}

	for gen := range 50 {
		sparse.Step()
		dense.Step()
		if sparse.Hash() != dense.Hash() {
			t.Fatalf("gen %d: engines diverged", gen+1)
		}
	}
}

func TestStagnationDetection(t *testing.T) {
	tests := []struct {
		name     string
		cells    []Coordinate
		stagnant bool
	}{
		{name: "block", cells: Block(3, 3), stagnant: true},
		{name: "blinker", cells: Blinker(3, 3), stagnant: true},
		{name: "glider", cells: Glider(3, 3), stagnant: false},
	}

	for _, tt := range tests {
		sim := newTestSimulation(t, EngineSparse)
		if err := sim.Load(tt.cells); err != nil {
			t.Fatal(err)
		}
		if sim.IsStagnant() {
			t.Fatalf("%s: stagnant without history", tt.name)
		}
		for range 3 {
			sim.UpdateHistory()
			sim.Step()
		}
		if got := sim.IsStagnant(); got != tt.stagnant {
			t.Fatalf("%s: IsStagnant() = %v, expected %v", tt.name, got, tt.stagnant)
		}
	}
}

func TestHistoryBounded(t *testing.T) {
	sim := newTestSimulation(t, EngineDense)
	for range 3 * historySize {
		sim.UpdateHistory()
	}
	if len(sim.history) != historySize {
		t.Fatalf("history holds %d entries, expected %d", len(sim.history), historySize)
	}
}

func TestInjectRandomLife(t *testing.T) {
	sim := newTestSimulation(t, EngineSparse)
	sim.InjectRandomLife(10)
	if p := sim.Population(); p == 0 || p > 10 {
		t.Fatalf("population after injecting 10 cells = %d", p)
	}
}

func TestSimulationLoadCapacity(t *testing.T) {
	sim := newTestSimulation(t, EngineDense)
	cells := RandomCells(NewRNG(1), 40, 40, 1)
	err := sim.Load(cells)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Load error = %v, expected ErrCapacityExceeded", err)
	}
}
