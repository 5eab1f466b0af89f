package viewport

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestNewIsIdentity(t *testing.T) {
	v := New()
	for _, p := range [][2]float64{{0, 0}, {10, 10}, {-3.5, 42}} {
		sx, sy := v.ToScreen(p[0], p[1])
		if sx != p[0] || sy != p[1] {
			t.Errorf("ToScreen(%v) = (%v, %v), want identity", p, sx, sy)
		}
		wx, wy := v.ToTrue(p[0], p[1])
		if wx != p[0] || wy != p[1] {
			t.Errorf("ToTrue(%v) = (%v, %v), want identity", p, wx, wy)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		offsetX, offsetY float64
		scale            float64
	}{
		{"identity", 0, 0, 1},
		{"offset", 12.5, -40, 1},
		{"zoomed in", -7, 3, 4},
		{"zoomed out", 250, 100, 0.125},
		{"odd scale", 0.3, -0.7, 1.7},
	}

	points := [][2]float64{{0, 0}, {1, 1}, {-100, 250}, {1e4, -1e4}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.OffsetX, v.OffsetY, v.Scale = tt.offsetX, tt.offsetY, tt.scale

			for _, p := range points {
				wx, wy := v.ToTrue(v.ToScreen(p[0], p[1]))
				if !near(wx, p[0]) || !near(wy, p[1]) {
					t.Errorf("ToTrue(ToScreen(%v)) = (%v, %v)", p, wx, wy)
				}
				sx, sy := v.ToScreen(v.ToTrue(p[0], p[1]))
				if !near(sx, p[0]) || !near(sy, p[1]) {
					t.Errorf("ToScreen(ToTrue(%v)) = (%v, %v)", p, sx, sy)
				}
			}
		})
	}
}

func TestPanShiftsScreenPositions(t *testing.T) {
	tests := []struct {
		name   string
		scale  float64
		dx, dy float64
	}{
		{"unit scale", 1, 10, -5},
		{"zoomed in", 2, 10, -5},
		{"zoomed out", 0.5, -30, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Scale = tt.scale

			beforeX, beforeY := v.ToScreen(100, 200)
			v.Pan(tt.dx, tt.dy)
			afterX, afterY := v.ToScreen(100, 200)

			if !near(afterX-beforeX, tt.dx) || !near(afterY-beforeY, tt.dy) {
				t.Errorf("screen moved by (%v, %v), want (%v, %v)",
					afterX-beforeX, afterY-beforeY, tt.dx, tt.dy)
			}
			if v.Scale != tt.scale {
				t.Errorf("Pan changed scale to %v", v.Scale)
			}
		})
	}
}

func TestZoomAtKeepsAnchorFixed(t *testing.T) {
	tests := []struct {
		name   string
		ax, ay float64
		factor float64
	}{
		{"zoom in at origin", 0, 0, 1.24},
		{"zoom in at center", 400, 300, 1.24},
		{"zoom out at corner", 800, 600, 0.76},
		{"zoom in twice as far", 123.4, 56.7, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.OffsetX, v.OffsetY = 15, -25

			wx, wy := v.ToTrue(tt.ax, tt.ay)
			got := v.ZoomAt(tt.ax, tt.ay, tt.factor)

			if !near(got, tt.factor) {
				t.Errorf("applied factor = %v, want %v", got, tt.factor)
			}
			if !near(v.Scale, tt.factor) {
				t.Errorf("scale = %v, want %v", v.Scale, tt.factor)
			}
			sx, sy := v.ToScreen(wx, wy)
			if !near(sx, tt.ax) || !near(sy, tt.ay) {
				t.Errorf("anchor moved to (%v, %v), want (%v, %v)", sx, sy, tt.ax, tt.ay)
			}
		})
	}
}

func TestZoomAtClampsScale(t *testing.T) {
	tests := []struct {
		name      string
		factor    float64
		wantScale float64
	}{
		{"zero factor", 0, DefaultMinScale},
		{"negative factor", -3, DefaultMinScale},
		{"NaN factor", math.NaN(), DefaultMinScale},
		{"huge factor", 1e9, DefaultMaxScale},
		{"in range", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			wx, wy := v.ToTrue(200, 100)

			v.ZoomAt(200, 100, tt.factor)

			if !near(v.Scale, tt.wantScale) {
				t.Errorf("scale = %v, want %v", v.Scale, tt.wantScale)
			}
			if v.Scale <= 0 {
				t.Fatalf("scale must stay positive, got %v", v.Scale)
			}
			sx, sy := v.ToScreen(wx, wy)
			if !near(sx, 200) || !near(sy, 100) {
				t.Errorf("anchor moved to (%v, %v)", sx, sy)
			}
		})
	}
}

func TestZoomAtRespectsCustomBounds(t *testing.T) {
	v := New()
	v.MinScale, v.MaxScale = 0.5, 2

	v.ZoomAt(0, 0, 10)
	if v.Scale != 2 {
		t.Errorf("scale = %v, want 2", v.Scale)
	}
	v.ZoomAt(0, 0, 0.001)
	if v.Scale != 0.5 {
		t.Errorf("scale = %v, want 0.5", v.Scale)
	}
}

func TestReset(t *testing.T) {
	v := New()
	v.SetClientSize(800, 600)
	v.Pan(30, 40)
	v.ZoomAt(100, 100, 3)

	v.Reset()

	if v.OffsetX != 0 || v.OffsetY != 0 || v.Scale != 1 {
		t.Errorf("after Reset: offset=(%v, %v) scale=%v", v.OffsetX, v.OffsetY, v.Scale)
	}
	if w, h := v.ClientSize(); w != 800 || h != 600 {
		t.Errorf("Reset dropped client size: %vx%v", w, h)
	}
}

func TestVisibleRect(t *testing.T) {
	v := New()
	v.SetClientSize(800, 600)
	v.Scale = 2
	v.OffsetX, v.OffsetY = -50, -25

	r := v.VisibleRect()
	if r.X != 50 || r.Y != 25 || r.Width != 400 || r.Height != 300 {
		t.Errorf("VisibleRect = %+v", r)
	}
	if v.TrueWidth() != 400 || v.TrueHeight() != 300 {
		t.Errorf("true size = %vx%v", v.TrueWidth(), v.TrueHeight())
	}
}

func TestMatrixMatchesToScreen(t *testing.T) {
	v := New()
	v.Pan(37, -12)
	v.ZoomAt(250, 180, 1.8)
	v.Pan(-5, 9)

	m := v.Matrix()
	inv := m.Invert()
	for _, p := range [][2]float64{{0, 0}, {10, 10}, {-200, 75.5}} {
		wantX, wantY := v.ToScreen(p[0], p[1])
		gotX, gotY := m.TransformPoint(p[0], p[1])
		if !near(gotX, wantX) || !near(gotY, wantY) {
			t.Errorf("Matrix.TransformPoint(%v) = (%v, %v), want (%v, %v)", p, gotX, gotY, wantX, wantY)
		}

		trueX, trueY := v.ToTrue(wantX, wantY)
		backX, backY := inv.TransformPoint(wantX, wantY)
		if !near(backX, trueX) || !near(backY, trueY) {
			t.Errorf("Invert().TransformPoint = (%v, %v), want (%v, %v)", backX, backY, trueX, trueY)
		}
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := Scale(0, 0).Invert(); got != Identity() {
		t.Errorf("Invert of singular matrix = %v, want identity", got)
	}
}
