// Package render paints the drawing model onto a 2D surface through the
// current viewport.
package render

import (
	"github.com/freehand/whiteboard/internal/drawing"
	"github.com/freehand/whiteboard/internal/viewport"
)

// Line cap and join names, as understood by a canvas 2D context.
const (
	LineCapRound  = "round"
	LineJoinRound = "round"
)

// DefaultBackground is the fill painted under every redraw.
const DefaultBackground = "#fff"

// Surface is a 2D drawing context supplied by the host. Its methods mirror
// the subset of the canvas 2D API the whiteboard needs.
type Surface interface {
	// ViewportSize reports the size the backing store should have, usually
	// the host window's inner size.
	ViewportSize() (width, height float64)
	// Resize sets the backing store size. Like a canvas, a resize may reset
	// line style state.
	Resize(width, height float64)

	SetLineCap(lineCap string)
	SetLineJoin(lineJoin string)
	SetFillStyle(color string)
	FillRect(x, y, width, height float64)
	ClearRect(x, y, width, height float64)

	SetStrokeStyle(color string)
	SetLineWidth(width float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Renderer replays a model onto a surface.
type Renderer struct {
	surface    Surface
	view       *viewport.Viewport
	model      *drawing.Model
	background string
}

// NewRenderer creates a renderer. An empty background uses DefaultBackground.
func NewRenderer(surface Surface, view *viewport.Viewport, model *drawing.Model, background string) *Renderer {
	if background == "" {
		background = DefaultBackground
	}
	return &Renderer{
		surface:    surface,
		view:       view,
		model:      model,
		background: background,
	}
}

// Redraw resizes the surface to the host viewport, paints the background and
// replays every segment through the current viewport.
func (r *Renderer) Redraw() {
	w, h := r.surface.ViewportSize()
	r.surface.Resize(w, h)
	r.view.SetClientSize(w, h)

	r.surface.SetLineJoin(LineJoinRound)
	r.surface.SetLineCap(LineCapRound)
	r.surface.SetFillStyle(r.background)
	r.surface.FillRect(0, 0, w, h)

	m := r.view.Matrix()
	r.model.ForEach(func(s drawing.Segment) {
		x0, y0 := m.TransformPoint(s.X0, s.Y0)
		x1, y1 := m.TransformPoint(s.X1, s.Y1)
		r.DrawSegment(x0, y0, x1, y1, s.Color, s.Width)
	})
}

// DrawSegment strokes one line in screen coordinates. It is used both for
// live drawing and for replay.
func (r *Renderer) DrawSegment(x0, y0, x1, y1 float64, color string, width float64) {
	r.surface.BeginPath()
	r.surface.SetStrokeStyle(color)
	r.surface.SetLineWidth(width)
	r.surface.MoveTo(x0, y0)
	r.surface.LineTo(x1, y1)
	r.surface.Stroke()
}

// Clear wipes the visible surface and repaints the background.
func (r *Renderer) Clear() {
	w, h := r.view.ClientSize()
	r.surface.ClearRect(0, 0, w, h)
	r.surface.SetFillStyle(r.background)
	r.surface.FillRect(0, 0, w, h)
}
