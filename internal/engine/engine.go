// Package engine turns host input events into viewport changes and new
// stroke segments, and keeps the rendered surface in sync with them.
package engine

import (
	"encoding/json"
	"log/slog"
	"math"

	"github.com/freehand/whiteboard/internal/drawing"
	"github.com/freehand/whiteboard/internal/render"
	"github.com/freehand/whiteboard/internal/viewport"
)

const (
	DefaultColor        = "#ac0000"
	DefaultWidth        = 2.0
	DefaultWheelDivisor = 500.0
)

// Options configures a new Engine. Zero fields take their defaults.
type Options struct {
	Color        string
	Width        float64
	Background   string
	WheelDivisor float64
	MinScale     float64
	MaxScale     float64
	Logger       *slog.Logger
}

// DefaultOptions returns the stock board settings.
func DefaultOptions() Options {
	return Options{
		Color:        DefaultColor,
		Width:        DefaultWidth,
		Background:   render.DefaultBackground,
		WheelDivisor: DefaultWheelDivisor,
		MinScale:     viewport.DefaultMinScale,
		MaxScale:     viewport.DefaultMaxScale,
	}
}

// Engine owns the whiteboard state: viewport, drawing model, renderer,
// gesture state and the current stroke style. All methods must be called
// from the host's single event thread.
type Engine struct {
	view     *viewport.Viewport
	model    *drawing.Model
	renderer *render.Renderer
	logger   *slog.Logger

	// Stroke style for new segments
	color string
	width float64

	wheelDivisor float64

	// Gesture state
	gesture gesture
	cursor  point
	touches map[int]point
}

// NewEngine creates an engine painting onto surface. Nothing is drawn until
// the host calls Resize.
func NewEngine(surface render.Surface, opts Options) *Engine {
	def := DefaultOptions()
	if opts.Color == "" {
		opts.Color = def.Color
	}
	if !(opts.Width > 0) {
		opts.Width = def.Width
	}
	if !(opts.WheelDivisor > 0) {
		opts.WheelDivisor = def.WheelDivisor
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	view := viewport.New()
	if opts.MinScale > 0 {
		view.MinScale = opts.MinScale
	}
	if opts.MaxScale > 0 {
		view.MaxScale = opts.MaxScale
	}
	model := drawing.NewModel()

	return &Engine{
		view:         view,
		model:        model,
		renderer:     render.NewRenderer(surface, view, model, opts.Background),
		logger:       opts.Logger,
		color:        opts.Color,
		width:        opts.Width,
		wheelDivisor: opts.WheelDivisor,
		touches:      make(map[int]point),
	}
}

// --- Commands (host → engine) ---

// Resize handles a window resize: the surface is resized and fully redrawn.
func (e *Engine) Resize() {
	e.renderer.Redraw()
}

// Clear removes every stroke and wipes the surface. The view is unchanged.
func (e *Engine) Clear() {
	e.model.Clear()
	e.renderer.Clear()
	e.logger.Debug("board cleared")
}

// SetColor sets the color of subsequent strokes. Empty values are ignored.
func (e *Engine) SetColor(color string) {
	if color == "" {
		return
	}
	e.color = color
}

// SetWidth sets the width of subsequent strokes. Non-positive values are
// ignored.
func (e *Engine) SetWidth(width float64) {
	if !(width > 0) || math.IsInf(width, 0) {
		return
	}
	e.width = width
}

// ResetView returns to the identity view and redraws.
func (e *Engine) ResetView() {
	e.view.Reset()
	e.renderer.Redraw()
}

// --- Queries (host ← engine) ---

// Color returns the current stroke color.
func (e *Engine) Color() string {
	return e.color
}

// Width returns the current stroke width.
func (e *Engine) Width() float64 {
	return e.width
}

// Gesture returns the active gesture kind.
func (e *Engine) Gesture() GestureKind {
	return e.gesture.kind
}

// Viewport returns the live viewport.
func (e *Engine) Viewport() *viewport.Viewport {
	return e.view
}

// Segments returns a copy of the stored segments.
func (e *Engine) Segments() []drawing.Segment {
	return e.model.Segments()
}

// Bounds returns the world-space box around all strokes.
func (e *Engine) Bounds() drawing.Rect {
	return e.model.Bounds()
}

// StateJSON returns the view, style and gesture state as JSON. "matrix" is
// the world-to-screen transform; "visible" and "bounds" are world-space
// rects.
func (e *Engine) StateJSON() string {
	data, _ := json.Marshal(map[string]interface{}{
		"offsetX":  e.view.OffsetX,
		"offsetY":  e.view.OffsetY,
		"scale":    e.view.Scale,
		"matrix":   e.view.Matrix().ToSlice(),
		"visible":  e.view.VisibleRect(),
		"bounds":   e.model.Bounds(),
		"segments": e.model.Len(),
		"gesture":  e.gesture.kind.String(),
		"color":    e.color,
		"width":    e.width,
	})
	return string(data)
}

// drawStroke appends the segment between two screen points and paints it
// directly, without a full redraw.
func (e *Engine) drawStroke(prevX, prevY, x, y float64) {
	inv := e.view.Matrix().Invert()
	x0, y0 := inv.TransformPoint(prevX, prevY)
	x1, y1 := inv.TransformPoint(x, y)
	e.model.Append(drawing.Segment{
		X0: x0, Y0: y0,
		X1: x1, Y1: y1,
		Color: e.color,
		Width: e.width,
	})
	e.renderer.DrawSegment(prevX, prevY, x, y, e.color, e.width)
}
