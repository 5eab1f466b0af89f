package engine

import "math"

// Touch is one active contact point. ID is the host's stable touch
// identifier; slots in the host's touch list may be reused in any order.
type Touch struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// TouchStart begins single-touch drawing or two-finger pan/zoom, based on
// how many touches are active.
func (e *Engine) TouchStart(touches []Touch) {
	switch {
	case len(touches) == 1:
		e.setGesture(GestureDrawing, SourceTouch)
	case len(touches) >= 2:
		e.setGesture(GesturePinchZoom, SourceTouch)
	}
	e.rememberTouches(touches)
}

// TouchMove extends the stroke under the first touch, or pans and zooms
// using the first two touches.
func (e *Engine) TouchMove(touches []Touch) {
	if len(touches) == 0 {
		return
	}

	switch {
	case e.gesture.is(GestureDrawing, SourceTouch):
		t := touches[0]
		if prev, ok := e.touches[t.ID]; ok {
			e.drawStroke(prev.X, prev.Y, t.X, t.Y)
		}
	case e.gesture.kind == GesturePinchZoom && len(touches) >= 2:
		e.pinch(touches[0], touches[1])
	}

	e.rememberTouches(touches)
}

// TouchEnd returns to idle. Any lifted touch ends the whole gesture, even if
// another touch is still down; a new touchstart is needed to resume.
func (e *Engine) TouchEnd(touches []Touch) {
	if e.gesture.source == SourceTouch {
		e.setGesture(GestureIdle, SourceNone)
	}
	clear(e.touches)
}

// TouchCancel behaves like TouchEnd.
func (e *Engine) TouchCancel(touches []Touch) {
	e.TouchEnd(touches)
}

// pinch applies the zoom given by the change in distance between two
// touches, then pans by the movement of their midpoint. The zoom is anchored
// at the current midpoint.
func (e *Engine) pinch(t0, t1 Touch) {
	p0, ok := e.touches[t0.ID]
	if !ok {
		p0 = point{t0.X, t0.Y}
	}
	p1, ok := e.touches[t1.ID]
	if !ok {
		p1 = point{t1.X, t1.Y}
	}

	midX, midY := (t0.X+t1.X)/2, (t0.Y+t1.Y)/2
	prevMidX, prevMidY := (p0.X+p1.X)/2, (p0.Y+p1.Y)/2

	hypot := math.Hypot(t0.X-t1.X, t0.Y-t1.Y)
	prevHypot := math.Hypot(p0.X-p1.X, p0.Y-p1.Y)

	zoom := 1.0
	if hypot > 0 && prevHypot > 0 {
		zoom = hypot / prevHypot
	}

	e.view.ZoomAt(midX, midY, zoom)
	e.view.Pan(midX-prevMidX, midY-prevMidY)
	e.renderer.Redraw()
}

func (e *Engine) rememberTouches(touches []Touch) {
	clear(e.touches)
	for _, t := range touches {
		e.touches[t.ID] = point{t.X, t.Y}
	}
}
