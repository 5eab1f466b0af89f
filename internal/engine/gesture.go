package engine

// GestureKind is the interaction currently in progress.
type GestureKind int

const (
	GestureIdle GestureKind = iota
	GestureDrawing
	GesturePanning
	GesturePinchZoom
)

func (k GestureKind) String() string {
	switch k {
	case GestureIdle:
		return "idle"
	case GestureDrawing:
		return "drawing"
	case GesturePanning:
		return "panning"
	case GesturePinchZoom:
		return "pinchZoom"
	default:
		return "unknown"
	}
}

// Source is the input device that started a gesture.
type Source int

const (
	SourceNone Source = iota
	SourcePointer
	SourceTouch
)

func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	default:
		return "none"
	}
}

type gesture struct {
	kind   GestureKind
	source Source
}

func (g gesture) is(kind GestureKind, source Source) bool {
	return g.kind == kind && g.source == source
}

type point struct {
	X, Y float64
}

func (e *Engine) setGesture(kind GestureKind, source Source) {
	next := gesture{kind: kind, source: source}
	if kind == GestureIdle {
		next.source = SourceNone
	}
	if next == e.gesture {
		return
	}
	e.logger.Debug("gesture changed",
		"from", e.gesture.kind.String(),
		"to", next.kind.String(),
		"source", next.source.String(),
	)
	e.gesture = next
}
