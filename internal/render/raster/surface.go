// Package raster implements the render surface on a gogpu/gg software
// context, for headless rendering to images.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/freehand/whiteboard/internal/render"
)

// Surface paints into an in-memory gg context.
type Surface struct {
	dc     *gg.Context
	width  float64
	height float64
	logger *slog.Logger

	fill   color.Color
	stroke color.Color
}

var _ render.Surface = (*Surface)(nil)

// New creates a surface whose host viewport is width x height pixels.
func New(width, height int, logger *slog.Logger) *Surface {
	if logger == nil {
		logger = slog.Default()
	}
	return &Surface{
		dc:     gg.NewContext(width, height),
		width:  float64(width),
		height: float64(height),
		logger: logger,
		fill:   color.White,
		stroke: color.Black,
	}
}

// SetViewportSize changes the size reported to the renderer, the way a
// browser window resize would. The backing store follows on the next redraw.
func (s *Surface) SetViewportSize(width, height int) {
	s.width = float64(width)
	s.height = float64(height)
}

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the rendered pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Close releases the gg context.
func (s *Surface) Close() error {
	return s.dc.Close()
}

func (s *Surface) ViewportSize() (float64, float64) {
	return s.width, s.height
}

func (s *Surface) Resize(width, height float64) {
	w, h := int(math.Round(width)), int(math.Round(height))
	if err := s.dc.Resize(w, h); err != nil {
		s.logger.Warn("resize raster surface", "error", err, "width", w, "height", h)
	}
}

func (s *Surface) SetLineCap(lineCap string) {
	switch lineCap {
	case "round":
		s.dc.SetLineCap(gg.LineCapRound)
	case "square":
		s.dc.SetLineCap(gg.LineCapSquare)
	default:
		s.dc.SetLineCap(gg.LineCapButt)
	}
}

func (s *Surface) SetLineJoin(lineJoin string) {
	switch lineJoin {
	case "round":
		s.dc.SetLineJoin(gg.LineJoinRound)
	case "bevel":
		s.dc.SetLineJoin(gg.LineJoinBevel)
	default:
		s.dc.SetLineJoin(gg.LineJoinMiter)
	}
}

func (s *Surface) SetFillStyle(c string) {
	s.fill = ParseColor(c)
}

func (s *Surface) FillRect(x, y, width, height float64) {
	s.dc.SetColor(s.fill)
	s.dc.DrawRectangle(x, y, width, height)
	if err := s.dc.Fill(); err != nil {
		s.logger.Warn("fill rect", "error", err)
	}
}

// ClearRect only supports clearing the whole surface, which is the only way
// the renderer uses it.
func (s *Surface) ClearRect(x, y, width, height float64) {
	if x > 0 || y > 0 || x+width < float64(s.dc.Width()) || y+height < float64(s.dc.Height()) {
		s.logger.Debug("partial clear ignored", "x", x, "y", y, "width", width, "height", height)
		return
	}
	s.dc.Clear()
}

func (s *Surface) SetStrokeStyle(c string) {
	s.stroke = ParseColor(c)
}

func (s *Surface) SetLineWidth(width float64) {
	s.dc.SetLineWidth(width)
}

func (s *Surface) BeginPath() {
	s.dc.ClearPath()
}

func (s *Surface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
}

func (s *Surface) LineTo(x, y float64) {
	s.dc.LineTo(x, y)
}

func (s *Surface) Stroke() {
	s.dc.SetColor(s.stroke)
	if err := s.dc.Stroke(); err != nil {
		s.logger.Warn("stroke path", "error", err)
	}
}

// ParseColor understands "#rgb", "#rrggbb" (with optional alpha) and CSS
// color names. Anything else is black.
func ParseColor(c string) color.Color {
	c = strings.TrimSpace(strings.ToLower(c))
	if strings.HasPrefix(c, "#") {
		return gg.Hex(c).Color()
	}
	if named, ok := colornames.Map[c]; ok {
		return named
	}
	return color.Black
}
