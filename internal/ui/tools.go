package ui

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"VectorDraw/internal/export"
	"VectorDraw/internal/geom"
	"VectorDraw/internal/state"
)

// --- Custom widget for color swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Name     string
	Fill     color.Color
	OnTapped func(name string)
}

func newColorSwatch(name string, fill color.Color, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Name: name, Fill: fill, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Fill)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// --- The main toolbar ---

// NewToolbar builds the tool strip driving the sketch widget: tool
// switches, the color palette and opacity slider, the shape operations and
// the export actions.
func NewToolbar(sketch *SketchWidget) fyne.CanvasObject {
	editor := sketch.editor

	// Runs fn on the selected shape; the buttons stay enabled, so the
	// guard lives here instead of in the core.
	withSelection := func(fn func(index int) error) func() {
		return func() {
			index := editor.SelectedShape()
			if index < 0 {
				sketch.SetStatus("Select a shape first")
				return
			}
			if err := fn(index); err != nil {
				log.Printf("[UI] Shape operation failed: %v", err)
				sketch.SetStatus("Operation failed")
			}
		}
	}

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			sketch.SetTool(ToolPen)
			sketch.SetStatus("Pen")
		}),
		widget.NewToolbarAction(theme.SearchIcon(), func() {
			sketch.SetTool(ToolSelect)
			sketch.SetStatus("Select")
		}),
	)

	onColorTapped := func(name string) {
		sketch.SetColor(name)
	}
	colorBox := container.NewHBox(
		newColorSwatch("lightgray", color.NRGBA{R: 211, G: 211, B: 211, A: 255}, onColorTapped),
		newColorSwatch("black", color.NRGBA{A: 255}, onColorTapped),
		newColorSwatch("red", color.NRGBA{R: 255, A: 255}, onColorTapped),
		newColorSwatch("green", color.NRGBA{G: 128, A: 255}, onColorTapped),
		newColorSwatch("blue", color.NRGBA{B: 255, A: 255}, onColorTapped),
	)

	opacitySlider := widget.NewSlider(0, 1)
	opacitySlider.Step = 0.05
	opacitySlider.SetValue(state.DefaultOpacity)
	opacitySlider.OnChanged = func(val float64) {
		sketch.SetOpacity(val)
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), opacitySlider)

	shapeOps := container.NewHBox(
		widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
			index := editor.AddShape()
			if err := editor.SelectShape(index); err != nil {
				log.Printf("[UI] Could not select new shape: %v", err)
			}
			sketch.SetStatus(fmt.Sprintf("Added shape %d", index))
		}),
		widget.NewButtonWithIcon("", theme.ContentCopyIcon(), withSelection(func(index int) error {
			_, err := editor.DuplicateShape(index)
			return err
		})),
		widget.NewButtonWithIcon("", theme.DeleteIcon(), withSelection(editor.RemoveShape)),
		widget.NewButtonWithIcon("", theme.MediaReplayIcon(), withSelection(func(index int) error {
			return editor.RotateShape(index, state.RotateStep)
		})),
		widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), withSelection(func(index int) error {
			return editor.RotateShape(index, -state.RotateStep)
		})),
		widget.NewButtonWithIcon("", theme.ZoomInIcon(), withSelection(func(index int) error {
			return editor.ScaleShape(index, state.ScaleStepUp)
		})),
		widget.NewButtonWithIcon("", theme.ZoomOutIcon(), withSelection(func(index int) error {
			return editor.ScaleShape(index, state.ScaleStepDown)
		})),
		widget.NewButtonWithIcon("", theme.NavigateBackIcon(), withSelection(func(index int) error {
			return editor.TranslateShape(index, geom.Vector{X: -state.TranslateStep})
		})),
		widget.NewButtonWithIcon("", theme.NavigateNextIcon(), withSelection(func(index int) error {
			return editor.TranslateShape(index, geom.Vector{X: state.TranslateStep})
		})),
		widget.NewButtonWithIcon("", theme.MoveUpIcon(), withSelection(func(index int) error {
			return editor.TranslateShape(index, geom.Vector{Y: state.TranslateStep})
		})),
		widget.NewButtonWithIcon("", theme.MoveDownIcon(), withSelection(func(index int) error {
			return editor.TranslateShape(index, geom.Vector{Y: -state.TranslateStep})
		})),
	)

	viewOps := container.NewHBox(
		widget.NewButton("+", func() {
			editor.View.ZoomIn()
			sketch.Refresh()
		}),
		widget.NewButton("-", func() {
			editor.View.ZoomOut()
			sketch.Refresh()
		}),
		widget.NewButton("Clear", func() {
			editor.ClearVectors()
			sketch.SetStatus("Cleared")
		}),
	)

	exportOps := container.NewHBox(
		widget.NewButtonWithIcon("SVG", theme.DocumentSaveIcon(), func() {
			path := exportFileName("svg")
			doc := export.SVG(editor.Shapes(), export.DefaultExportSize, export.DefaultExportSize)
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				log.Printf("[UI] SVG export failed: %v", err)
				sketch.SetStatus("SVG export failed")
				return
			}
			sketch.SetStatus("Saved " + path)
		}),
		widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
			path := exportFileName("pdf")
			if err := export.PDF(path, editor.Shapes()); err != nil {
				log.Printf("[UI] PDF export failed: %v", err)
				sketch.SetStatus("PDF export failed")
				return
			}
			sketch.SetStatus("Saved " + path)
		}),
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		colorBox,
		widget.NewLabel("Opacity:"),
		sliderBox,
		widget.NewSeparator(),
		shapeOps,
		widget.NewSeparator(),
		viewOps,
		widget.NewSeparator(),
		exportOps,
		layout.NewSpacer(),
	)
}

// exportFileName derives a per-session file name so repeated exports from
// different sessions do not collide.
func exportFileName(ext string) string {
	return fmt.Sprintf("vectordraw-%s.%s", state.SessionID()[:8], ext)
}
