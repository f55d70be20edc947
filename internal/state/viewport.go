package state

import "VectorDraw/internal/geom"

const (
	// DefaultScale is the initial world-to-pixel zoom factor.
	DefaultScale = 50.0

	zoomStep = 5.0
	minScale = 5.0
	maxScale = 200.0
)

// Viewport maps between pixel space (y-down, origin at the canvas top-left)
// and world space (y-up, origin at the canvas center, scaled by the zoom
// factor).
type Viewport struct {
	Scale  float64
	Width  float64
	Height float64
}

// NewViewport returns a viewport at the default zoom with no canvas
// attached yet.
func NewViewport() *Viewport {
	return &Viewport{Scale: DefaultScale}
}

// SetCanvasSize records the rendering surface size in pixels.
func (vp *Viewport) SetCanvasSize(width, height float64) {
	vp.Width = width
	vp.Height = height
}

// PixelToVector converts a canvas-relative pixel position to world
// coordinates. Before the first layout no surface is attached; the zero
// vector is returned and callers must tolerate it silently.
func (vp *Viewport) PixelToVector(pixelX, pixelY float64) geom.Vector {
	if vp.Width == 0 || vp.Height == 0 || vp.Scale == 0 {
		return geom.Vector{}
	}
	centerX := vp.Width / 2
	centerY := vp.Height / 2
	return geom.Vector{
		X: (pixelX - centerX) / vp.Scale,
		Y: (centerY - pixelY) / vp.Scale,
	}
}

// VectorToPixel is the inverse mapping, used by the draw path.
func (vp *Viewport) VectorToPixel(v geom.Vector) (float64, float64) {
	centerX := vp.Width / 2
	centerY := vp.Height / 2
	return centerX + v.X*vp.Scale, centerY - v.Y*vp.Scale
}

// ZoomIn increases the zoom factor by one step.
func (vp *Viewport) ZoomIn() {
	vp.Scale += zoomStep
	if vp.Scale > maxScale {
		vp.Scale = maxScale
	}
}

// ZoomOut decreases the zoom factor by one step.
func (vp *Viewport) ZoomOut() {
	vp.Scale -= zoomStep
	if vp.Scale < minScale {
		vp.Scale = minScale
	}
}
