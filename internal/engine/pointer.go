package engine

// Mouse button numbers as reported by the host.
const (
	ButtonPrimary   = 0
	ButtonSecondary = 2
)

// PointerDown starts drawing (primary button) or panning (secondary
// button). Other buttons only move the cursor.
func (e *Engine) PointerDown(x, y float64, button int) {
	switch button {
	case ButtonPrimary:
		e.setGesture(GestureDrawing, SourcePointer)
	case ButtonSecondary:
		e.setGesture(GesturePanning, SourcePointer)
	}
	e.cursor = point{x, y}
}

// PointerMove extends the stroke or pans the view, depending on the active
// gesture.
func (e *Engine) PointerMove(x, y float64) {
	prev := e.cursor

	switch {
	case e.gesture.is(GestureDrawing, SourcePointer):
		e.drawStroke(prev.X, prev.Y, x, y)
	case e.gesture.is(GesturePanning, SourcePointer):
		e.view.Pan(x-prev.X, y-prev.Y)
		e.renderer.Redraw()
	}

	e.cursor = point{x, y}
}

// PointerUp ends a pointer gesture.
func (e *Engine) PointerUp() {
	if e.gesture.source == SourcePointer {
		e.setGesture(GestureIdle, SourceNone)
	}
}

// PointerLeave ends a pointer gesture when the pointer leaves the surface.
func (e *Engine) PointerLeave() {
	e.PointerUp()
}

// Wheel zooms around the cursor. A positive deltaY zooms out.
func (e *Engine) Wheel(x, y, deltaY float64) {
	scaleAmount := -deltaY / e.wheelDivisor
	e.view.ZoomAt(x, y, 1+scaleAmount)
	e.renderer.Redraw()
}
