package render

import "encoding/json"

// DrawCommand is one recorded surface call.
type DrawCommand struct {
	Op    string    `json:"op"`              // "resize", "fillRect", "clearRect", "moveTo", "lineTo", "stroke", ...
	Args  []float64 `json:"args,omitempty"`  // numeric arguments in call order
	Style string    `json:"style,omitempty"` // color, cap or join name
}

// Recorder is a Surface that keeps every call as a DrawCommand. It never
// rasterizes anything.
type Recorder struct {
	Width    float64
	Height   float64
	Commands []DrawCommand
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates a recorder reporting the given viewport size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Reset drops the recorded commands.
func (r *Recorder) Reset() {
	r.Commands = nil
}

// Ops returns just the op names, in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		ops[i] = c.Op
	}
	return ops
}

// Strokes returns the line endpoints of every stroked path as
// [x0, y0, x1, y1] in screen coordinates.
func (r *Recorder) Strokes() [][4]float64 {
	var out [][4]float64
	var from, to []float64
	for _, c := range r.Commands {
		switch c.Op {
		case "beginPath":
			from, to = nil, nil
		case "moveTo":
			from = c.Args
		case "lineTo":
			to = c.Args
		case "stroke":
			if len(from) == 2 && len(to) == 2 {
				out = append(out, [4]float64{from[0], from[1], to[0], to[1]})
			}
		}
	}
	return out
}

// JSON serializes the recorded commands.
func (r *Recorder) JSON() (string, error) {
	data, err := json.Marshal(r.Commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

func (r *Recorder) record(op string, style string, args ...float64) {
	r.Commands = append(r.Commands, DrawCommand{Op: op, Args: args, Style: style})
}

func (r *Recorder) ViewportSize() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Resize(width, height float64) { r.record("resize", "", width, height) }

func (r *Recorder) SetLineCap(lineCap string) { r.record("lineCap", lineCap) }

func (r *Recorder) SetLineJoin(lineJoin string) { r.record("lineJoin", lineJoin) }

func (r *Recorder) SetFillStyle(color string) { r.record("fillStyle", color) }

func (r *Recorder) FillRect(x, y, width, height float64) {
	r.record("fillRect", "", x, y, width, height)
}

func (r *Recorder) ClearRect(x, y, width, height float64) {
	r.record("clearRect", "", x, y, width, height)
}

func (r *Recorder) SetStrokeStyle(color string) { r.record("strokeStyle", color) }

func (r *Recorder) SetLineWidth(width float64) { r.record("lineWidth", "", width) }

func (r *Recorder) BeginPath() { r.record("beginPath", "") }

func (r *Recorder) MoveTo(x, y float64) { r.record("moveTo", "", x, y) }

func (r *Recorder) LineTo(x, y float64) { r.record("lineTo", "", x, y) }

func (r *Recorder) Stroke() { r.record("stroke", "") }
