package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/gol-engine/utils"
)

// NewRNG creates a deterministic generator for the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Glider returns a glider whose bounding box starts at (startX, startY)
func Glider(startX, startY int) []Coordinate {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	var cells []Coordinate
	for y, row := range pattern {
		for x, cell := range row {
			if cell {
				cells = append(cells, Coordinate{X: startX + x, Y: startY + y})
			}
		}
	}
	return cells
}

// Blinker returns a horizontal blinker oscillator pattern
func Blinker(startX, startY int) []Coordinate {
	return []Coordinate{
		{X: startX, Y: startY},
		{X: startX + 1, Y: startY},
		{X: startX + 2, Y: startY},
	}
}

// Block returns the 2x2 still life.
func Block(startX, startY int) []Coordinate {
	return []Coordinate{
		{X: startX, Y: startY},
		{X: startX + 1, Y: startY},
		{X: startX, Y: startY + 1},
		{X: startX + 1, Y: startY + 1},
	}
}

// RandomCells picks each cell of a width x height board with the given probability
func RandomCells(rng *rand.Rand, width, height int, density float64) []Coordinate {
	var cells []Coordinate
	for y := range height {
		for x := range width {
			if rng.Float64() < density {
				cells = append(cells, Coordinate{X: x, Y: y})
			}
		}
	}
	return cells
}

// InterestingPatterns builds a starting board of gliders and blinkers layered
// over random life. Duplicates are removed so the result fits LoadCells.
func InterestingPatterns(config utils.Config, rng *rand.Rand) []Coordinate {
	var (
		width  = config.Width
		height = config.Height
		cells  []Coordinate
	)

	// Add some simple patterns
	if width >= 10 && height >= 10 {
		cells = append(cells, Glider(5, 5)...)
		if width >= 20 && height >= 15 {
			cells = append(cells, Glider(width-8, 5)...)
		}

		cells = append(cells, Blinker(width/4, height/4)...)
		if width >= 30 {
			cells = append(cells, Blinker(3*width/4, 3*height/4)...)
		}
	}

	cells = append(cells, RandomCells(rng, width, height, config.RandomDensity)...)
	return dedupe(cells)
}

func dedupe(cells []Coordinate) []Coordinate {
	seen := make(map[Coordinate]struct{}, len(cells))
	out := cells[:0]
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
