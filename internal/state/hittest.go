package state

import (
	"log"

	"VectorDraw/internal/geom"
)

// HitTest finds the shape whose boundary lies within threshold of the
// click point, in world units. Shapes are scanned in ascending index order
// and every shape is treated as a closed polyline: segment j runs from
// point j to point (j+1) mod n, even though rendering never draws the
// closing segment. The first shape with any segment within threshold wins;
// this is a scan-order policy, not a nearest-neighbor search. Returns -1
// when nothing is close enough.
//
// A shape with fewer than two points degenerates each segment to a single
// repeated point, so the check falls back to plain point distance.
func (e *EditorState) HitTest(click geom.Vector, threshold float64) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for index, shape := range e.shapes {
		for j := range shape {
			a := shape[j].Vector
			b := shape[(j+1)%len(shape)].Vector
			if geom.DistanceToSegment(click, a, b) <= threshold {
				return index
			}
		}
	}
	return -1
}

// SelectShapeWithPointer hit-tests the click point and updates the
// selection: the hit shape becomes selected, a miss deselects. The hit
// index (or -1) is returned either way.
func (e *EditorState) SelectShapeWithPointer(click geom.Vector, threshold float64) int {
	index := e.HitTest(click, threshold)
	if index < 0 {
		e.DeselectShape()
		return -1
	}
	if err := e.SelectShape(index); err != nil {
		// The store cannot shrink between HitTest and SelectShape under
		// normal single-event-path use.
		log.Printf("[STATE] Pointer selection failed: %v", err)
		return -1
	}
	return index
}
