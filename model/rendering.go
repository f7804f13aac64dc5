package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer keeps its own copy of the board and repaints it as text.
// It catches up with an engine either through change records, when the engine
// tracks them, or by re-reading every living cell.
type TerminalRenderer struct {
	frame *Board
}

// NewTerminalRenderer returns a renderer with an empty frame.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{frame: NewBoard(0, 0)}
}

// Sync brings the frame up to date with engine and returns the births and
// deaths it observed.
func (r *TerminalRenderer) Sync(engine Engine) (births, deaths int) {
	size := engine.Size()
	if r.frame.Size() != size {
		r.frame.Reset(size.W, size.H)
	}

	if tracker, ok := engine.(ChangeTracker); ok {
		return r.Apply(tracker.ChangedCellsSinceLastSync())
	}

	var (
		before = r.frame.CountLivingCells()
		living = engine.LivingCellsInRegion(size.Bounds())
	)
	for _, c := range living {
		if !r.frame.CellState(c) {
			births++
		}
	}
	deaths = before - (len(living) - births)

	r.frame.Clear()
	for _, c := range living {
		r.frame.Set(c, true)
	}
	return births, deaths
}

// Reset blanks the frame. Call it whenever the engine's board is replaced so
// the frame and the engine's snapshot agree again.
func (r *TerminalRenderer) Reset() {
	r.frame.Clear()
}

// Apply paints change records onto the frame.
func (r *TerminalRenderer) Apply(changes []Change) (births, deaths int) {
	for _, ch := range changes {
		if !r.frame.Set(ch.Coordinate, ch.Alive) {
			continue
		}
		if ch.Alive {
			births++
		} else {
			deaths++
		}
	}
	return births, deaths
}

// Frame exposes the renderer's view of the board.
func (r *TerminalRenderer) Frame() *Board { return r.frame }

// Display renders the frame to w
func (r *TerminalRenderer) Display(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := range r.frame.height {
		for x := range r.frame.width {
			if r.frame.cells[y*r.frame.width+x] {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
