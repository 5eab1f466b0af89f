// Package drawing holds the world-space stroke model of the whiteboard.
package drawing

// Segment is one straight piece of a freehand stroke, in world coordinates.
// Segments are never modified after they are appended.
type Segment struct {
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Bounds returns the segment's bounding box, padded by half the stroke width.
func (s Segment) Bounds() Rect {
	half := s.Width / 2
	minX, maxX := min(s.X0, s.X1), max(s.X0, s.X1)
	minY, maxY := min(s.Y0, s.Y1), max(s.Y0, s.Y1)
	return Rect{
		X:      minX - half,
		Y:      minY - half,
		Width:  maxX - minX + s.Width,
		Height: maxY - minY + s.Width,
	}
}

// Model is the ordered list of segments. Paint order is insertion order.
type Model struct {
	segments []Segment
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{}
}

// Append adds a segment to the end of the model.
func (m *Model) Append(s Segment) {
	m.segments = append(m.segments, s)
}

// Clear removes every segment.
func (m *Model) Clear() {
	m.segments = nil
}

// Len returns the number of segments.
func (m *Model) Len() int {
	return len(m.segments)
}

// At returns the i-th segment in paint order.
func (m *Model) At(i int) Segment {
	return m.segments[i]
}

// ForEach calls fn for every segment in insertion order.
func (m *Model) ForEach(fn func(Segment)) {
	for _, s := range m.segments {
		fn(s)
	}
}

// Segments returns a copy of the segments in paint order.
func (m *Model) Segments() []Segment {
	out := make([]Segment, len(m.segments))
	copy(out, m.segments)
	return out
}

// Bounds returns the world-space box covering every segment, or an empty
// Rect when the model is empty.
func (m *Model) Bounds() Rect {
	var result Rect
	for _, s := range m.segments {
		result = result.Union(s.Bounds())
	}
	return result
}
