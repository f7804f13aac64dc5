package model

import (
	"cmp"
	"slices"
)

// Coordinate identifies one board cell.
type Coordinate struct {
	X, Y int
}

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Cells returns the total number of cells on a board of this size.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether c lies inside [0,W) x [0,H).
func (s Size) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < s.W && c.Y >= 0 && c.Y < s.H
}

// Bounds returns the region covering the whole board.
func (s Size) Bounds() Region {
	return Region{Max: Coordinate{X: s.W - 1, Y: s.H - 1}}
}

// Change records the new state of a single cell.
type Change struct {
	Coordinate
	Alive bool
}

// Region is an axis-aligned box with inclusive bounds.
type Region struct {
	Min, Max Coordinate
}

// NewRegion builds a normalized region from two corners.
func NewRegion(a, b Coordinate) Region {
	return Region{Min: a, Max: b}.Normalize()
}

// Normalize returns the region with Min <= Max on both axes.
func (r Region) Normalize() Region {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Contains reports whether c lies inside the region. The region must be normalized.
func (r Region) Contains(c Coordinate) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// Width returns the number of columns covered by a normalized region.
func (r Region) Width() int { return r.Max.X - r.Min.X + 1 }

// Height returns the number of rows covered by a normalized region.
func (r Region) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Area returns the number of cells covered by a normalized region.
func (r Region) Area() int { return r.Width() * r.Height() }

// Clip normalizes r and intersects it with the board. ok is false when nothing
// of the region lies on the board.
func (r Region) Clip(s Size) (clipped Region, ok bool) {
	r = r.Normalize()
	r.Min.X = max(r.Min.X, 0)
	r.Min.Y = max(r.Min.Y, 0)
	r.Max.X = min(r.Max.X, s.W-1)
	r.Max.Y = min(r.Max.Y, s.H-1)
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return Region{}, false
	}
	return r, true
}

// neighborOffsets lists the relative positions of the 8 surrounding cells.
var neighborOffsets = [8]Coordinate{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// compareCoordinates orders coordinates row-major.
func compareCoordinates(a, b Coordinate) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// SortCoordinates sorts cells row-major in place and returns them.
func SortCoordinates(cells []Coordinate) []Coordinate {
	slices.SortFunc(cells, compareCoordinates)
	return cells
}

// SortChanges sorts change records row-major in place and returns them.
func SortChanges(changes []Change) []Change {
	slices.SortFunc(changes, func(a, b Change) int {
		return compareCoordinates(a.Coordinate, b.Coordinate)
	})
	return changes
}
