package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"VectorDraw/internal/state"
)

// RunApp opens the editor window and blocks until it closes.
func RunApp(editor *state.EditorState) {
	myApp := app.New()
	myWindow := myApp.NewWindow("VectorDraw")
	myWindow.Resize(fyne.NewSize(1024, 768))

	sketch := NewSketchWidget(editor)
	toolbar := NewToolbar(sketch)

	content := container.NewBorder(toolbar, sketch.StatusBar(), nil, nil, sketch)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
