package export

import (
	"fmt"
	"math"
	"strings"

	"VectorDraw/internal/state"
)

// DefaultExportSize is the default width and height of an exported SVG
// document, in SVG user units.
const DefaultExportSize = 500

// SVG renders the shape collection as a standalone SVG document string.
//
// Coordinates are auto-scaled: the largest absolute x or y value across
// all points is mapped to half the smaller export dimension, so the
// drawing always fits the document regardless of zoom. Each non-empty
// shape becomes one open path stroked with its first point's color. The
// output is deterministic for a given collection and export size.
func SVG(shapes []state.Shape, width, height int) string {
	maxValue := 0.0
	for _, shape := range shapes {
		for _, pv := range shape {
			if v := math.Abs(pv.Vector.X); v > maxValue {
				maxValue = v
			}
			if v := math.Abs(pv.Vector.Y); v > maxValue {
				maxValue = v
			}
		}
	}

	half := math.Min(float64(width), float64(height)) * 0.5
	// A collection with no extent maps every coordinate onto the document
	// center instead of dividing by zero.
	scaleCoordinate := func(v float64) float64 {
		if maxValue == 0 {
			return 0
		}
		return v / maxValue * half
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	b.WriteString("\n")

	centerX := float64(width) / 2
	centerY := float64(height) / 2
	for _, shape := range shapes {
		if len(shape) == 0 {
			continue
		}
		var d strings.Builder
		for i, pv := range shape {
			x := scaleCoordinate(pv.Vector.X) + centerX
			y := centerY - scaleCoordinate(pv.Vector.Y)
			command := "L"
			if i == 0 {
				command = "M"
			} else {
				d.WriteString(" ")
			}
			fmt.Fprintf(&d, "%s %.2f %.2f", command, x, y)
		}
		fmt.Fprintf(&b, `  <path d="%s" stroke="%s" fill="none" />`, d.String(), shape[0].Color)
		b.WriteString("\n")
	}

	b.WriteString("</svg>")
	return b.String()
}
