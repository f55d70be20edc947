package state

import (
	"fmt"
	"math"

	"VectorDraw/internal/geom"
)

// Step sizes used by the toolbar for single transform invocations.
const (
	// ScaleStepUp and ScaleStepDown grow or shrink a shape by one step.
	ScaleStepUp   = 1.1
	ScaleStepDown = 0.9
	// RotateStep is the angle of one rotate invocation, in radians.
	// Positive is counter-clockwise in world space.
	RotateStep = math.Pi / 8
	// TranslateStep is the world-unit distance of one arrow-key move.
	TranslateStep = 0.5
)

// transformShape applies fn to every point of the shape at index. The
// centroid is passed so transforms can pivot on it; an empty shape has no
// centroid and fails fast. Point colors and opacity pass through untouched.
func (e *EditorState) transformShape(index int, fn func(p, centroid geom.Vector) geom.Vector) error {
	e.mu.Lock()
	if err := e.checkIndex(index); err != nil {
		e.mu.Unlock()
		return err
	}
	shape := e.shapes[index]
	centroid, ok := shape.Centroid()
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("%w: shape %d", ErrEmptyShape, index)
	}
	for i := range shape {
		shape[i].Vector = fn(shape[i].Vector, centroid)
	}
	e.mu.Unlock()

	e.notify()
	return nil
}

// ScaleShape scales the shape at index about its centroid. The factor is
// unconstrained: zero collapses the shape onto its centroid and a negative
// factor mirrors it, both permitted mechanically.
func (e *EditorState) ScaleShape(index int, factor float64) error {
	return e.transformShape(index, func(p, centroid geom.Vector) geom.Vector {
		return centroid.Add(p.Sub(centroid).Scale(factor))
	})
}

// TranslateShape moves every point of the shape at index by delta.
func (e *EditorState) TranslateShape(index int, delta geom.Vector) error {
	return e.transformShape(index, func(p, _ geom.Vector) geom.Vector {
		return p.Add(delta)
	})
}

// RotateShape rotates the shape at index about its centroid by angle
// radians, counter-clockwise in world space.
func (e *EditorState) RotateShape(index int, angle float64) error {
	return e.transformShape(index, func(p, centroid geom.Vector) geom.Vector {
		return p.Sub(centroid).Rotate(angle).Add(centroid)
	})
}
