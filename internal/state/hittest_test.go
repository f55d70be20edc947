package state

import (
	"testing"

	"VectorDraw/internal/geom"
)

func TestHitTest(t *testing.T) {
	triangle := []geom.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	tests := []struct {
		name      string
		shapes    [][]geom.Vector
		click     geom.Vector
		threshold float64
		want      int
	}{
		{
			"empty collection misses",
			nil,
			geom.Vector{}, 1, -1,
		},
		{
			"on a segment",
			[][]geom.Vector{triangle},
			geom.Vector{X: 0.5, Y: 0}, 0.1, 0,
		},
		{
			"within threshold of a segment",
			[][]geom.Vector{triangle},
			geom.Vector{X: 0.5, Y: 0.05}, 0.1, 0,
		},
		{
			"farther than threshold misses",
			[][]geom.Vector{triangle},
			geom.Vector{X: 5, Y: 5}, 0.1, -1,
		},
		{
			"closing segment is hit-testable",
			// Rendering never draws last->first, but hit-testing wraps.
			[][]geom.Vector{triangle},
			geom.Vector{X: 0.5, Y: 0.5}, 0.01, 0,
		},
		{
			"single point shape uses point distance",
			[][]geom.Vector{{{X: 2, Y: 2}}},
			geom.Vector{X: 2.05, Y: 2}, 0.1, 0,
		},
		{
			"empty shape never hit",
			[][]geom.Vector{nil, triangle},
			geom.Vector{X: 0.5, Y: 0}, 0.1, 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t, tt.shapes...)
			if got := e.HitTest(tt.click, tt.threshold); got != tt.want {
				t.Errorf("HitTest(%+v, %v) = %d, want %d", tt.click, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestHitTestTieBreakByScanOrder(t *testing.T) {
	// Both shapes are within threshold of the click; shape 1 is strictly
	// closer, but the scan-order policy returns the lowest index.
	e := newTestEditor(t,
		[]geom.Vector{{X: 0, Y: 0.2}, {X: 1, Y: 0.2}},
		[]geom.Vector{{X: 0, Y: 0.05}, {X: 1, Y: 0.05}},
	)
	if got := e.HitTest(geom.Vector{X: 0.5, Y: 0}, 0.5); got != 0 {
		t.Errorf("HitTest = %d, want first-by-index 0", got)
	}
}

func TestSelectShapeWithPointer(t *testing.T) {
	e := newTestEditor(t, []geom.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})

	if got := e.SelectShapeWithPointer(geom.Vector{X: 0.5, Y: 0}, 0.1); got != 0 {
		t.Fatalf("SelectShapeWithPointer hit = %d, want 0", got)
	}
	if got := e.SelectedShape(); got != 0 {
		t.Errorf("SelectedShape() = %d, want 0", got)
	}

	if got := e.SelectShapeWithPointer(geom.Vector{X: 9, Y: 9}, 0.1); got != -1 {
		t.Fatalf("SelectShapeWithPointer miss = %d, want -1", got)
	}
	if got := e.SelectedShape(); got != -1 {
		t.Errorf("miss should deselect; SelectedShape() = %d", got)
	}
}
