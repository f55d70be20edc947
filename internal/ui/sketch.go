package ui

import (
	"image/color"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"VectorDraw/internal/state"
)

// Tool selects how pointer events on the canvas are interpreted.
type Tool int

const (
	// ToolPen draws: a press starts a shape (or continues the selected
	// one) and dragging appends freehand points.
	ToolPen Tool = iota
	// ToolSelect picks the shape nearest the pointer.
	ToolSelect
)

const (
	// hitThresholdPixels is the pick distance for the select tool, in
	// screen pixels; it is divided by the zoom factor before hit-testing
	// in world units.
	hitThresholdPixels = 8.0

	// dragMinInterval rate-limits freehand point appends. Pointer-move
	// events arriving closer together than this are dropped; the core
	// tolerates dense sequences, this only bounds their rate.
	dragMinInterval = 25 * time.Millisecond

	markerRadius = 3.0
)

// SketchWidget is the drawing surface. It owns no geometry itself: every
// pointer event is converted to world coordinates through the editor's
// viewport and forwarded to the editor, and the renderer rebuilds its line
// segments from a fresh snapshot after each change.
type SketchWidget struct {
	widget.BaseWidget
	editor *state.EditorState

	tool       Tool
	penColor   string
	penOpacity float64

	drawing     bool
	activeShape int
	lastAppend  time.Time

	statusBar *widget.Label
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)

func NewSketchWidget(editor *state.EditorState) *SketchWidget {
	s := &SketchWidget{
		editor:      editor,
		tool:        ToolPen,
		penColor:    state.DefaultColor,
		penOpacity:  state.DefaultOpacity,
		activeShape: -1,
		statusBar:   widget.NewLabel("Ready"),
	}
	s.ExtendBaseWidget(s)
	editor.OnChange = s.Refresh
	return s
}

func (s *SketchWidget) SetTool(tool Tool) {
	s.tool = tool
	s.drawing = false
	s.activeShape = -1
}

func (s *SketchWidget) SetColor(name string) { s.penColor = name }

func (s *SketchWidget) SetOpacity(opacity float64) { s.penOpacity = opacity }

// SetStatus updates the status bar. Callers are on the UI event path.
func (s *SketchWidget) SetStatus(text string) {
	s.statusBar.SetText(text)
}

func (s *SketchWidget) StatusBar() *widget.Label { return s.statusBar }

func (s *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	world := s.editor.View.PixelToVector(float64(e.Position.X), float64(e.Position.Y))

	switch s.tool {
	case ToolPen:
		// Drawing continues the selected shape when there is one, so
		// point-by-point polylines work; otherwise each stroke is a new
		// shape.
		s.activeShape = s.editor.SelectedShape()
		if s.activeShape < 0 {
			s.activeShape = s.editor.AddShape()
		}
		if err := s.editor.AddStyledVector(s.activeShape, world, s.penColor, s.penOpacity); err != nil {
			log.Printf("[UI] Could not add point: %v", err)
			return
		}
		s.drawing = true
		s.lastAppend = time.Now()
	case ToolSelect:
		threshold := hitThresholdPixels / s.editor.View.Scale
		if index := s.editor.SelectShapeWithPointer(world, threshold); index >= 0 {
			s.SetStatus("Selected shape " + strconv.Itoa(index))
		} else {
			s.SetStatus("Nothing selected")
		}
	}
}

func (s *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		s.drawing = false
		s.activeShape = -1
	}
}

func (s *SketchWidget) Dragged(e *fyne.DragEvent) {
	if s.tool != ToolPen || !s.drawing || s.activeShape < 0 {
		return
	}
	if time.Since(s.lastAppend) < dragMinInterval {
		return
	}
	world := s.editor.View.PixelToVector(float64(e.Position.X), float64(e.Position.Y))
	if err := s.editor.AddStyledVector(s.activeShape, world, s.penColor, s.penOpacity); err != nil {
		log.Printf("[UI] Could not append drag point: %v", err)
		return
	}
	s.lastAppend = time.Now()
}

func (s *SketchWidget) DragEnd() {
	s.drawing = false
	s.activeShape = -1
}

func (s *SketchWidget) MouseIn(*desktop.MouseEvent) {}

func (s *SketchWidget) MouseOut() {}

func (s *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

func (s *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{sketch: s}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type sketchRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
}

// strokeColor resolves a palette color name and opacity to a draw color.
func strokeColor(name string, opacity float64) color.Color {
	var c color.NRGBA
	switch name {
	case "red":
		c = color.NRGBA{R: 255, A: 255}
	case "green":
		c = color.NRGBA{G: 128, A: 255}
	case "blue":
		c = color.NRGBA{B: 255, A: 255}
	case "black":
		c = color.NRGBA{A: 255}
	default: // lightgray
		c = color.NRGBA{R: 211, G: 211, B: 211, A: 255}
	}
	c.A = uint8(opacity * 255)
	return c
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}

	editor := r.sketch.editor
	selected := editor.SelectedShape()
	for index, shape := range editor.Shapes() {
		width := float32(2)
		if index == selected {
			width = 4
		}

		// One line per consecutive point pair; the closing segment is
		// never drawn even though hit-testing considers it.
		for i := 0; i < len(shape)-1; i++ {
			x1, y1 := editor.View.VectorToPixel(shape[i].Vector)
			x2, y2 := editor.View.VectorToPixel(shape[i+1].Vector)
			segment := canvas.NewLine(strokeColor(shape[i].Color, shape[i].Opacity))
			segment.StrokeWidth = width
			segment.Position1 = fyne.NewPos(float32(x1), float32(y1))
			segment.Position2 = fyne.NewPos(float32(x2), float32(y2))
			objects = append(objects, segment)
		}

		// Faint marker per vector.
		for _, pv := range shape {
			x, y := editor.View.VectorToPixel(pv.Vector)
			marker := canvas.NewCircle(strokeColor(pv.Color, pv.Opacity*0.5))
			marker.Resize(fyne.NewSize(markerRadius*2, markerRadius*2))
			marker.Move(fyne.NewPos(float32(x)-markerRadius, float32(y)-markerRadius))
			objects = append(objects, marker)
		}
	}
	return objects
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	// The viewport learns its surface size here; before the first layout
	// PixelToVector reports the origin.
	r.sketch.editor.View.SetCanvasSize(float64(size.Width), float64(size.Height))
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sketchRenderer) Refresh() {
	canvas.Refresh(r.sketch)
}

func (r *sketchRenderer) Destroy() {}
