package state

import "VectorDraw/internal/geom"

const (
	// DefaultColor is the stroke color for points added without an
	// explicit color.
	DefaultColor = "lightgray"
	// DefaultOpacity is the opacity for points added without an explicit
	// opacity.
	DefaultOpacity = 1.0
)

// PlottedVector is one point of a shape together with its rendering style.
type PlottedVector struct {
	Vector  geom.Vector
	Color   string
	Opacity float64
}

// Shape is an ordered sequence of styled points. Insertion order is draw
// order: point i connects to point i+1. Rendering draws the polyline open;
// hit-testing treats it as closed (last point wraps to first). A shape
// with zero points is valid and simply awaits its first point.
type Shape []PlottedVector

// Centroid returns the arithmetic mean of the shape's point positions.
// The second return value is false for an empty shape, whose centroid is
// undefined.
func (s Shape) Centroid() (geom.Vector, bool) {
	if len(s) == 0 {
		return geom.Vector{}, false
	}
	var sum geom.Vector
	for _, pv := range s {
		sum = sum.Add(pv.Vector)
	}
	return sum.Scale(1 / float64(len(s))), true
}

// clone deep-copies the shape so callers can hold it without aliasing the
// store's backing array.
func (s Shape) clone() Shape {
	points := make(Shape, len(s))
	copy(points, s)
	return points
}
