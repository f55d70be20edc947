package export

import (
	"math"

	"github.com/jung-kurt/gofpdf"

	"VectorDraw/internal/state"
)

// pdfMargin keeps the normalized drawing off the page edges, in mm.
const pdfMargin = 15.0

// colorRGB maps the palette's SVG color names to draw colors. Unknown
// names fall back to black.
func colorRGB(name string) (int, int, int) {
	switch name {
	case "red":
		return 255, 0, 0
	case "green":
		return 0, 128, 0
	case "blue":
		return 0, 0, 255
	case "lightgray":
		return 211, 211, 211
	default:
		return 0, 0, 0
	}
}

// PDF writes the shape collection to an A4 PDF at path, one line per
// consecutive point pair. Coordinates are normalized with the same
// auto-scaling scheme as the SVG serializer, fitted to the page box.
func PDF(path string, shapes []state.Shape) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetLineWidth(0.5)

	pageW, pageH := pdf.GetPageSize()
	centerX := pageW / 2
	centerY := pageH / 2

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
	half := math.Min(pageW, pageH)/2 - pdfMargin
	scaleCoordinate := func(v float64) float64 {
		if maxValue == 0 {
			return 0
		}
		return v / maxValue * half
	}

	for _, shape := range shapes {
		if len(shape) < 2 {
			continue
		}
		r, g, b := colorRGB(shape[0].Color)
		pdf.SetDrawColor(r, g, b)
		for i := 1; i < len(shape); i++ {
			pdf.Line(
				centerX+scaleCoordinate(shape[i-1].Vector.X),
				centerY-scaleCoordinate(shape[i-1].Vector.Y),
				centerX+scaleCoordinate(shape[i].Vector.X),
				centerY-scaleCoordinate(shape[i].Vector.Y),
			)
		}
	}
	return pdf.OutputFileAndClose(path)
}
