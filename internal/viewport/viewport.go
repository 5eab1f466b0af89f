// Package viewport maps between world ("true") coordinates, where strokes are
// stored, and screen coordinates on the visible canvas.
package viewport

import "github.com/freehand/whiteboard/internal/drawing"

const (
	DefaultMinScale = 0.01
	DefaultMaxScale = 100
)

// Viewport is a world-to-screen mapping made of a world-space offset and a
// uniform scale:
//
//	screen = (world + offset) * scale
//
// Scale is kept within [MinScale, MaxScale] so it never reaches zero.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Scale   float64

	MinScale float64
	MaxScale float64

	// client size of the host surface in screen pixels
	clientWidth  float64
	clientHeight float64
}

// New returns an identity viewport with the default scale bounds.
func New() *Viewport {
	return &Viewport{
		Scale:    1,
		MinScale: DefaultMinScale,
		MaxScale: DefaultMaxScale,
	}
}

// ToScreen converts a world point to screen pixels.
func (v *Viewport) ToScreen(x, y float64) (float64, float64) {
	return (x + v.OffsetX) * v.Scale, (y + v.OffsetY) * v.Scale
}

// ToTrue converts a screen point to world coordinates.
func (v *Viewport) ToTrue(sx, sy float64) (float64, float64) {
	return sx/v.Scale - v.OffsetX, sy/v.Scale - v.OffsetY
}

// SetClientSize records the size of the host surface in screen pixels.
func (v *Viewport) SetClientSize(width, height float64) {
	v.clientWidth = width
	v.clientHeight = height
}

// ClientSize returns the last recorded host surface size.
func (v *Viewport) ClientSize() (float64, float64) {
	return v.clientWidth, v.clientHeight
}

// TrueWidth is the visible world-space width.
func (v *Viewport) TrueWidth() float64 {
	return v.clientWidth / v.Scale
}

// TrueHeight is the visible world-space height.
func (v *Viewport) TrueHeight() float64 {
	return v.clientHeight / v.Scale
}

// VisibleRect returns the world-space rectangle currently on screen.
func (v *Viewport) VisibleRect() drawing.Rect {
	x, y := v.ToTrue(0, 0)
	return drawing.Rect{X: x, Y: y, Width: v.TrueWidth(), Height: v.TrueHeight()}
}

// Pan moves the view by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx / v.Scale
	v.OffsetY += dy / v.Scale
}

// ZoomAt multiplies the scale by factor, keeping the world point under the
// screen point (ax, ay) fixed. The new scale is clamped to the viewport's
// bounds; the returned value is the factor actually applied.
func (v *Viewport) ZoomAt(ax, ay, factor float64) float64 {
	oldScale := v.Scale
	newScale := v.clamp(oldScale * factor)

	v.OffsetX += ax/newScale - ax/oldScale
	v.OffsetY += ay/newScale - ay/oldScale
	v.Scale = newScale

	return newScale / oldScale
}

// Reset restores the identity transform. The client size is kept.
func (v *Viewport) Reset() {
	v.OffsetX = 0
	v.OffsetY = 0
	v.Scale = 1
}

// Matrix returns the world-to-screen transform.
func (v *Viewport) Matrix() Matrix2D {
	return Scale(v.Scale, v.Scale).Multiply(Translate(v.OffsetX, v.OffsetY))
}

func (v *Viewport) clamp(scale float64) float64 {
	lo, hi := v.MinScale, v.MaxScale
	if lo <= 0 {
		lo = DefaultMinScale
	}
	if hi < lo {
		hi = lo
	}
	// NaN from a degenerate factor falls through to the lower bound.
	if !(scale >= lo) {
		return lo
	}
	if scale > hi {
		return hi
	}
	return scale
}
