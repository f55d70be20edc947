package export

import (
	"strings"
	"testing"

	"VectorDraw/internal/geom"
	"VectorDraw/internal/state"
)

func shapeFrom(color string, points ...geom.Vector) state.Shape {
	s := make(state.Shape, len(points))
	for i, p := range points {
		s[i] = state.PlottedVector{Vector: p, Color: color, Opacity: 1}
	}
	return s
}

func TestSVGScenario(t *testing.T) {
	shapes := []state.Shape{
		shapeFrom("red", geom.Vector{X: 0, Y: 0}, geom.Vector{X: 1, Y: 0}, geom.Vector{X: 1, Y: 1}),
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" width="500" height="500" viewBox="0 0 500 500">
  <path d="M 250.00 250.00 L 500.00 250.00 L 500.00 0.00" stroke="red" fill="none" />
</svg>`
	if got := SVG(shapes, 500, 500); got != want {
		t.Errorf("SVG() =\n%s\nwant\n%s", got, want)
	}
}

func TestSVGDeterminism(t *testing.T) {
	shapes := []state.Shape{
		shapeFrom("blue", geom.Vector{X: -1.234, Y: 5.678}, geom.Vector{X: 0.001, Y: -9.87}),
		shapeFrom("lightgray", geom.Vector{X: 3, Y: 3}),
	}
	first := SVG(shapes, 300, 200)
	second := SVG(shapes, 300, 200)
	if first != second {
		t.Error("serializing the same collection twice produced different output")
	}
}

func TestSVGEmptyCollection(t *testing.T) {
	got := SVG(nil, 500, 500)
	if strings.Contains(got, "<path") {
		t.Errorf("empty collection emitted a path:\n%s", got)
	}
	if !strings.Contains(got, `viewBox="0 0 500 500"`) {
		t.Errorf("missing viewBox:\n%s", got)
	}
}

func TestSVGSkipsEmptyShapes(t *testing.T) {
	shapes := []state.Shape{
		{},
		shapeFrom("red", geom.Vector{X: 1, Y: 0}),
		{},
	}
	got := SVG(shapes, 500, 500)
	if n := strings.Count(got, "<path"); n != 1 {
		t.Errorf("got %d path elements, want 1:\n%s", n, got)
	}
}

func TestSVGZeroExtentCollection(t *testing.T) {
	// Every point at the origin: maxValue is 0 and coordinates must land
	// on the document center instead of dividing by zero.
	shapes := []state.Shape{
		shapeFrom("red", geom.Vector{}, geom.Vector{}),
	}
	got := SVG(shapes, 500, 500)
	if !strings.Contains(got, `d="M 250.00 250.00 L 250.00 250.00"`) {
		t.Errorf("zero-extent collection mapped off-center:\n%s", got)
	}
	if strings.Contains(got, "NaN") || strings.Contains(got, "Inf") {
		t.Errorf("non-finite coordinate in output:\n%s", got)
	}
}

func TestSVGNonSquareUsesSmallerDimension(t *testing.T) {
	// maxValue 1 maps onto half the smaller dimension (100), so x spans
	// 200..400 around the 300 center.
	shapes := []state.Shape{
		shapeFrom("red", geom.Vector{X: 1, Y: 0}),
	}
	got := SVG(shapes, 600, 200)
	if !strings.Contains(got, `d="M 400.00 100.00"`) {
		t.Errorf("unexpected scaling for 600x200 export:\n%s", got)
	}
}

func TestSVGStrokeFromFirstPoint(t *testing.T) {
	shape := state.Shape{
		{Vector: geom.Vector{X: 0, Y: 1}, Color: "green", Opacity: 1},
		{Vector: geom.Vector{X: 1, Y: 0}, Color: "red", Opacity: 1},
	}
	got := SVG([]state.Shape{shape}, 500, 500)
	if !strings.Contains(got, `stroke="green"`) {
		t.Errorf("stroke should come from the first point:\n%s", got)
	}
}

func TestSVGYAxisFlip(t *testing.T) {
	// World +y is up; SVG y grows downward, so a positive world y must end
	// up above the document center.
	shapes := []state.Shape{
		shapeFrom("red", geom.Vector{X: 0, Y: 1}),
	}
	got := SVG(shapes, 500, 500)
	if !strings.Contains(got, `d="M 250.00 0.00"`) {
		t.Errorf("positive world y should map above center:\n%s", got)
	}
}
