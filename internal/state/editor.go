package state

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"VectorDraw/internal/geom"
)

// Offset applied to the copy made by DuplicateShape, in world units.
const (
	duplicateOffsetX = 0.5
	duplicateOffsetY = 0.5
)

var (
	// ErrShapeIndex reports an operation on a shape index that does not
	// reference an existing shape.
	ErrShapeIndex = errors.New("shape index out of range")
	// ErrEmptyShape reports a transform on a shape with no points, whose
	// centroid is undefined.
	ErrEmptyShape = errors.New("shape has no points")
)

// EditorState owns the full drawing: the ordered shape collection, the
// current selection and the viewport. A shape's index in the collection is
// its identity; removing a shape shifts all later indices down by one, so
// index handling stays behind this type's methods.
//
// All mutations happen synchronously in response to UI events. The mutex
// follows the teacher pattern of guarding the store anyway, since export
// actions may read it from outside the event path.
type EditorState struct {
	mu             sync.RWMutex
	shapes         []Shape
	selectedShape  int
	selectedVector int

	// View is the pixel/world coordinate mapping. It is only touched from
	// the UI event path.
	View *Viewport

	// OnChange, when set, is invoked after every mutation so the UI
	// collaborator can re-render from a fresh snapshot.
	OnChange func()
}

// NewEditorState returns an empty editor session: no shapes, nothing
// selected. The pen tool creates the first shape on demand.
func NewEditorState() *EditorState {
	return &EditorState{
		selectedShape:  -1,
		selectedVector: -1,
		View:           NewViewport(),
	}
}

func (e *EditorState) notify() {
	if e.OnChange != nil {
		e.OnChange()
	}
}

// checkIndex must be called with the lock held.
func (e *EditorState) checkIndex(index int) error {
	if index < 0 || index >= len(e.shapes) {
		return fmt.Errorf("%w: %d of %d", ErrShapeIndex, index, len(e.shapes))
	}
	return nil
}

// AddShape appends a new empty shape and returns its index.
func (e *EditorState) AddShape() int {
	e.mu.Lock()
	e.shapes = append(e.shapes, Shape{})
	index := len(e.shapes) - 1
	e.mu.Unlock()

	e.notify()
	return index
}

// RemoveShape removes the shape at index. All later indices shift down by
// one; the held selection is adjusted to keep referencing the same shape,
// or cleared if the selected shape is the one removed.
func (e *EditorState) RemoveShape(index int) error {
	e.mu.Lock()
	if err := e.checkIndex(index); err != nil {
		e.mu.Unlock()
		return err
	}
	e.shapes = append(e.shapes[:index], e.shapes[index+1:]...)

	switch {
	case e.selectedShape == index:
		e.selectedShape = -1
		e.selectedVector = -1
	case e.selectedShape > index:
		e.selectedShape--
	}
	e.mu.Unlock()

	e.notify()
	return nil
}

// AddVector appends a point with the default style to the given shape.
func (e *EditorState) AddVector(shapeIndex int, v geom.Vector) error {
	return e.AddStyledVector(shapeIndex, v, DefaultColor, DefaultOpacity)
}

// AddStyledVector appends a point to the given shape. An empty color
// selects the default; opacity is clamped to [0, 1].
func (e *EditorState) AddStyledVector(shapeIndex int, v geom.Vector, color string, opacity float64) error {
	if color == "" {
		color = DefaultColor
	}
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}

	e.mu.Lock()
	if err := e.checkIndex(shapeIndex); err != nil {
		e.mu.Unlock()
		return err
	}
	e.shapes[shapeIndex] = append(e.shapes[shapeIndex], PlottedVector{
		Vector:  v,
		Color:   color,
		Opacity: opacity,
	})
	e.mu.Unlock()

	e.notify()
	return nil
}

// DuplicateShape deep-copies the shape at index, translates the copy by
// (0.5, 0.5) in world units and appends it at the end of the collection.
// The original shape and the current selection are unaffected. The new
// shape's index is returned.
func (e *EditorState) DuplicateShape(index int) (int, error) {
	offset := geom.Vector{X: duplicateOffsetX, Y: duplicateOffsetY}

	e.mu.Lock()
	if err := e.checkIndex(index); err != nil {
		e.mu.Unlock()
		return -1, err
	}
	duplicate := e.shapes[index].clone()
	for i := range duplicate {
		duplicate[i].Vector = duplicate[i].Vector.Add(offset)
	}
	e.shapes = append(e.shapes, duplicate)
	newIndex := len(e.shapes) - 1
	e.mu.Unlock()

	log.Printf("[STATE] Duplicated shape %d as %d", index, newIndex)
	e.notify()
	return newIndex, nil
}

// ClearVectors resets the collection to its initial empty state and clears
// the selection.
func (e *EditorState) ClearVectors() {
	e.mu.Lock()
	e.shapes = nil
	e.selectedShape = -1
	e.selectedVector = -1
	e.mu.Unlock()

	log.Printf("[STATE] Cleared all shapes")
	e.notify()
}

// SelectShape marks the shape at index as selected.
func (e *EditorState) SelectShape(index int) error {
	e.mu.Lock()
	if err := e.checkIndex(index); err != nil {
		e.mu.Unlock()
		return err
	}
	e.selectedShape = index
	e.selectedVector = -1
	e.mu.Unlock()

	e.notify()
	return nil
}

// SelectVector marks a point of the currently selected shape as selected.
func (e *EditorState) SelectVector(vectorIndex int) error {
	e.mu.Lock()
	if e.selectedShape < 0 {
		e.mu.Unlock()
		return fmt.Errorf("%w: no shape selected", ErrShapeIndex)
	}
	if vectorIndex < 0 || vectorIndex >= len(e.shapes[e.selectedShape]) {
		e.mu.Unlock()
		return fmt.Errorf("%w: vector %d of %d", ErrShapeIndex, vectorIndex, len(e.shapes[e.selectedShape]))
	}
	e.selectedVector = vectorIndex
	e.mu.Unlock()

	e.notify()
	return nil
}

// DeselectShape clears the shape and point selection.
func (e *EditorState) DeselectShape() {
	e.mu.Lock()
	e.selectedShape = -1
	e.selectedVector = -1
	e.mu.Unlock()

	e.notify()
}

// SelectedShape returns the selected shape index, or -1 when nothing is
// selected.
func (e *EditorState) SelectedShape() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selectedShape
}

// SelectedVector returns the selected point index within the selected
// shape, or -1.
func (e *EditorState) SelectedVector() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selectedVector
}

// ShapeCount returns the number of shapes in the collection.
func (e *EditorState) ShapeCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.shapes)
}

// Shape returns a deep copy of the shape at index.
func (e *EditorState) Shape(index int) (Shape, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkIndex(index); err != nil {
		return nil, err
	}
	return e.shapes[index].clone(), nil
}

// Shapes returns a deep copy of the whole collection, safe to render or
// export without holding the lock.
func (e *EditorState) Shapes() []Shape {
	e.mu.RLock()
	defer e.mu.RUnlock()
	shapes := make([]Shape, len(e.shapes))
	for i, s := range e.shapes {
		shapes[i] = s.clone()
	}
	return shapes
}
