// Package replay feeds a recorded trace of host input events into an engine.
//
// A trace is JSON Lines, one event per line:
//
//	{"type":"resize"}
//	{"type":"pointerdown","x":10,"y":10,"button":0}
//	{"type":"pointermove","x":20,"y":20}
//	{"type":"pointerup"}
//	{"type":"wheel","x":400,"y":300,"deltaY":-120}
//	{"type":"touchstart","touches":[{"id":3,"x":100,"y":100},{"id":7,"x":200,"y":100}]}
//	{"type":"color","value":"#000"}
//	{"type":"width","value":4}
//
// Blank lines and lines starting with '#' are skipped.
package replay

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/freehand/whiteboard/internal/engine"
)

var (
	ErrUnknownEvent = errors.New("unknown event type")
	ErrMissingValue = errors.New("missing value")
)

// Event is one line of a trace.
type Event struct {
	Type    string          `json:"type"`
	X       float64         `json:"x,omitempty"`
	Y       float64         `json:"y,omitempty"`
	Button  int             `json:"button,omitempty"`
	DeltaY  float64         `json:"deltaY,omitempty"`
	Touches []engine.Touch  `json:"touches,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
}

// Target is the subset of the engine a trace drives.
type Target interface {
	Resize()
	PointerDown(x, y float64, button int)
	PointerMove(x, y float64)
	PointerUp()
	PointerLeave()
	Wheel(x, y, deltaY float64)
	TouchStart(touches []engine.Touch)
	TouchMove(touches []engine.Touch)
	TouchEnd(touches []engine.Touch)
	TouchCancel(touches []engine.Touch)
	SetColor(color string)
	SetWidth(width float64)
	Clear()
	ResetView()
}

var _ Target = (*engine.Engine)(nil)

// Run dispatches every event in r to t, in order. It stops at the first bad
// line and reports its line number. It returns the number of events applied.
func Run(ctx context.Context, r io.Reader, t Target) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	applied := 0
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return applied, err
		}

		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}

		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			return applied, fmt.Errorf("line %d: decode event: %w", line, err)
		}
		if err := Apply(t, ev); err != nil {
			return applied, fmt.Errorf("line %d: %w", line, err)
		}
		applied++
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("read trace: %w", err)
	}
	return applied, nil
}

// Apply dispatches one event.
func Apply(t Target, ev Event) error {
	switch ev.Type {
	case "resize":
		t.Resize()
	case "pointerdown":
		t.PointerDown(ev.X, ev.Y, ev.Button)
	case "pointermove":
		t.PointerMove(ev.X, ev.Y)
	case "pointerup":
		t.PointerUp()
	case "pointerleave":
		t.PointerLeave()
	case "wheel":
		t.Wheel(ev.X, ev.Y, ev.DeltaY)
	case "touchstart":
		t.TouchStart(ev.Touches)
	case "touchmove":
		t.TouchMove(ev.Touches)
	case "touchend":
		t.TouchEnd(ev.Touches)
	case "touchcancel":
		t.TouchCancel(ev.Touches)
	case "color":
		var color string
		if err := ev.decodeValue(&color); err != nil {
			return err
		}
		t.SetColor(color)
	case "width":
		var width float64
		if err := ev.decodeValue(&width); err != nil {
			return err
		}
		t.SetWidth(width)
	case "clear":
		t.Clear()
	case "resetview":
		t.ResetView()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return nil
}

func (ev Event) decodeValue(dst interface{}) error {
	if len(ev.Value) == 0 {
		return fmt.Errorf("%s: %w", ev.Type, ErrMissingValue)
	}
	if err := json.Unmarshal(ev.Value, dst); err != nil {
		return fmt.Errorf("%s: decode value: %w", ev.Type, err)
	}
	return nil
}
