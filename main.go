package main

import (
	"log"

	"VectorDraw/internal/state"
	"VectorDraw/internal/ui"
)

func main() {
	editor := state.NewEditorState()
	log.Printf("[MAIN] Starting editor session %s", state.SessionID())
	ui.RunApp(editor)
}
