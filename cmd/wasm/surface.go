//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/freehand/whiteboard/internal/render"
)

// canvasSurface is a render.Surface over an HTML canvas 2D context.
type canvasSurface struct {
	window js.Value
	canvas js.Value
	ctx    js.Value
}

var _ render.Surface = (*canvasSurface)(nil)

func newCanvasSurface(window, canvas js.Value) *canvasSurface {
	return &canvasSurface{
		window: window,
		canvas: canvas,
		ctx:    canvas.Call("getContext", "2d"),
	}
}

func (s *canvasSurface) ViewportSize() (float64, float64) {
	return s.window.Get("innerWidth").Float(), s.window.Get("innerHeight").Float()
}

// Resize sets the backing store size, which also resets the context's line
// style state.
func (s *canvasSurface) Resize(width, height float64) {
	s.canvas.Set("width", width)
	s.canvas.Set("height", height)
}

func (s *canvasSurface) SetLineCap(lineCap string)   { s.ctx.Set("lineCap", lineCap) }
func (s *canvasSurface) SetLineJoin(lineJoin string) { s.ctx.Set("lineJoin", lineJoin) }
func (s *canvasSurface) SetFillStyle(color string)   { s.ctx.Set("fillStyle", color) }
func (s *canvasSurface) SetStrokeStyle(color string) { s.ctx.Set("strokeStyle", color) }
func (s *canvasSurface) SetLineWidth(width float64)  { s.ctx.Set("lineWidth", width) }

func (s *canvasSurface) FillRect(x, y, width, height float64) {
	s.ctx.Call("fillRect", x, y, width, height)
}

func (s *canvasSurface) ClearRect(x, y, width, height float64) {
	s.ctx.Call("clearRect", x, y, width, height)
}

func (s *canvasSurface) BeginPath()          { s.ctx.Call("beginPath") }
func (s *canvasSurface) MoveTo(x, y float64) { s.ctx.Call("moveTo", x, y) }
func (s *canvasSurface) LineTo(x, y float64) { s.ctx.Call("lineTo", x, y) }
func (s *canvasSurface) Stroke()             { s.ctx.Call("stroke") }
