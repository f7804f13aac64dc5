package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestRendererSyncCountsChanges(t *testing.T) {
	for kind, e := range newEngines(t, 5, 5) {
		r := NewTerminalRenderer()
		loadOrFail(t, e, Blinker(1, 1))

		births, deaths := r.Sync(e)
		if births != 3 || deaths != 0 {
			t.Fatalf("%s: initial sync births=%d deaths=%d", kind, births, deaths)
		}

		e.Step()
		births, deaths = r.Sync(e)
		if births != 2 || deaths != 2 {
			t.Fatalf("%s: step sync births=%d deaths=%d", kind, births, deaths)
		}

		var frame []Coordinate
		for i, alive := range r.Frame().Cells() {
			if alive {
				frame = append(frame, r.Frame().CoordinateOf(i))
			}
		}
		expectCells(t, kind, SortCoordinates(frame), livingCells(e))
	}
}

func TestRendererDisplay(t *testing.T) {
	e := NewDenseEngine(4, 3, 1, nil)
	loadOrFail(t, e, []Coordinate{{X: 0, Y: 0}, {X: 3, Y: 2}})

	r := NewTerminalRenderer()
	r.Sync(e)

	var buf bytes.Buffer
	if err := r.Display(&buf); err != nil {
		t.Fatalf("Display failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], gridPosBlock) || !strings.HasSuffix(lines[2], gridPosBlock) {
		t.Fatalf("unexpected frame:\n%s", buf.String())
	}
	if strings.Count(buf.String(), gridPosBlock) != 2 {
		t.Fatalf("expected 2 living cells in:\n%s", buf.String())
	}
}

func TestRendererResetAfterRestart(t *testing.T) {
	e := NewDenseEngine(4, 4, 1, nil)
	r := NewTerminalRenderer()
	loadOrFail(t, e, Block(0, 0))
	r.Sync(e)

	e.Initialize(4, 4)
	r.Reset()
	r.Sync(e)
	if r.Frame().CountLivingCells() != 0 {
		t.Fatal("frame must be blank after the engine board is replaced")
	}
}
