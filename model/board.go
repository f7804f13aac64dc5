package model

import "github.com/sheikhrachel/gol-engine/rules"

// Board is a bounded width x height plane of binary cells stored row-major.
// Cells outside the board are always dead; there is no wraparound.
type Board struct {
	width  int
	height int
	cells  []bool
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(width, height int) *Board {
	b := &Board{}
	b.Reset(width, height)
	return b
}

// Size returns the board dimensions.
func (b *Board) Size() Size { return Size{W: b.width, H: b.height} }

// Cells exposes the backing slice, indexed by y*width+x.
func (b *Board) Cells() []bool { return b.cells }

// Reset resizes the board and kills every cell. The backing slice is reused
// when it is large enough.
func (b *Board) Reset(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	b.width = width
	b.height = height

	total := width * height
	if cap(b.cells) < total {
		b.cells = make([]bool, total)
		return
	}
	b.cells = b.cells[:total]
	b.Clear()
}

// Clear kills all cells
func (b *Board) Clear() {
	clear(b.cells)
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// Index returns the linear slice index for c. c must be in bounds.
func (b *Board) Index(c Coordinate) int { return c.Y*b.width + c.X }

// CoordinateOf is the inverse of Index.
func (b *Board) CoordinateOf(i int) Coordinate {
	return Coordinate{X: i % b.width, Y: i / b.width}
}

// CellState returns the state of c, treating out-of-bounds cells as dead.
func (b *Board) CellState(c Coordinate) bool {
	if !b.InBounds(c) {
		return false
	}
	return b.cells[b.Index(c)]
}

// Set sets a cell to alive (true) or dead (false). Out-of-bounds coordinates are
// ignored and reported with ok=false.
func (b *Board) Set(c Coordinate, alive bool) (ok bool) {
	if !b.InBounds(c) {
		return false
	}
	b.cells[b.Index(c)] = alive
	return true
}

// CountNeighbors counts living neighbors, clamping the 3x3 window to the board.
func (b *Board) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(b.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(b.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := b.cells[ny*b.width : (ny+1)*b.width]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if row[nx] {
				count++
			}
		}
	}

	return count
}

// NextCellState evaluates the rule for the cell at (x, y) using this board as
// the previous generation.
func (b *Board) NextCellState(x, y int) bool {
	return rules.NextState(b.cells[y*b.width+x], b.CountNeighbors(x, y))
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, alive := range b.cells {
		if alive {
			count++
		}
	}
	return
}

// CopyFrom makes b an exact copy of src, reusing b's storage when possible.
func (b *Board) CopyFrom(src *Board) {
	b.Reset(src.width, src.height)
	copy(b.cells, src.cells)
}
