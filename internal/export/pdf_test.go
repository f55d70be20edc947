package export

import (
	"os"
	"path/filepath"
	"testing"

	"VectorDraw/internal/geom"
	"VectorDraw/internal/state"
)

func TestPDFWritesFile(t *testing.T) {
	shapes := []state.Shape{
		shapeFrom("red", geom.Vector{X: 0, Y: 0}, geom.Vector{X: 1, Y: 0}, geom.Vector{X: 1, Y: 1}),
		shapeFrom("blue", geom.Vector{X: -2, Y: -2}, geom.Vector{X: 2, Y: 2}),
	}
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := PDF(path, shapes); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported PDF is empty")
	}
}

func TestPDFEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := PDF(path, nil); err != nil {
		t.Fatalf("PDF of empty collection: %v", err)
	}
}
