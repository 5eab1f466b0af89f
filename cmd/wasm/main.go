//go:build js && wasm

package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/freehand/whiteboard/internal/config"
	"github.com/freehand/whiteboard/internal/engine"
)

var eng *engine.Engine

func main() {
	window := js.Global()
	canvas := window.Get("document").Call("getElementById", "canvas")

	board, configErr := loadBoardConfig(window)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: board.SlogLevel()}))
	if id := window.Get("whiteboardBoardID"); id.Type() == js.TypeString {
		logger = logger.With("board", id.String())
	}
	if configErr != nil {
		logger.Warn("invalid board config", "error", configErr)
	}

	eng = engine.NewEngine(newCanvasSurface(window, canvas), board.EngineOptions(logger))
	eng.Resize()

	// --- Input events (host → engine) ---
	canvas.Call("addEventListener", "mousedown", js.FuncOf(onMouseDown))
	canvas.Call("addEventListener", "mousemove", js.FuncOf(onMouseMove))
	canvas.Call("addEventListener", "mouseup", js.FuncOf(onMouseUp))
	canvas.Call("addEventListener", "mouseout", js.FuncOf(onMouseOut))
	canvas.Call("addEventListener", "wheel", js.FuncOf(onWheel), map[string]interface{}{"passive": false})
	canvas.Call("addEventListener", "contextmenu", js.FuncOf(preventDefault))

	touchOpts := map[string]interface{}{"passive": false}
	canvas.Call("addEventListener", "touchstart", js.FuncOf(onTouchStart), touchOpts)
	canvas.Call("addEventListener", "touchmove", js.FuncOf(onTouchMove), touchOpts)
	canvas.Call("addEventListener", "touchend", js.FuncOf(onTouchEnd), touchOpts)
	canvas.Call("addEventListener", "touchcancel", js.FuncOf(onTouchCancel), touchOpts)

	window.Call("addEventListener", "resize", js.FuncOf(onResize))

	// --- Public actions (toolbar → engine) ---
	api := js.Global().Get("Object").New()
	api.Set("clear", js.FuncOf(clearBoard))
	api.Set("setColor", js.FuncOf(setColor))
	api.Set("setWidth", js.FuncOf(setWidth))
	api.Set("resetView", js.FuncOf(resetView))
	api.Set("state", js.FuncOf(state))

	window.Set("whiteboard", api)
	window.Set("whiteboardReady", js.ValueOf(true))
	logger.Info("whiteboard ready", "color", eng.Color(), "width", eng.Width())

	// Keep Go runtime alive
	select {}
}

// loadBoardConfig reads window.whiteboardConfig, which the server renders
// into the page. Missing or invalid settings fall back to engine defaults and
// the info log level.
func loadBoardConfig(window js.Value) (config.Board, error) {
	var board config.Board
	raw := window.Get("whiteboardConfig")
	if raw.Type() != js.TypeObject {
		return board, nil
	}
	data := window.Get("JSON").Call("stringify", raw).String()
	if err := json.Unmarshal([]byte(data), &board); err != nil {
		return config.Board{}, err
	}
	return board, nil
}

// --- Event Handlers ---

func onMouseDown(this js.Value, args []js.Value) interface{} {
	e := args[0]
	eng.PointerDown(e.Get("pageX").Float(), e.Get("pageY").Float(), e.Get("button").Int())
	return nil
}

func onMouseMove(this js.Value, args []js.Value) interface{} {
	e := args[0]
	eng.PointerMove(e.Get("pageX").Float(), e.Get("pageY").Float())
	return nil
}

func onMouseUp(this js.Value, args []js.Value) interface{} {
	eng.PointerUp()
	return nil
}

func onMouseOut(this js.Value, args []js.Value) interface{} {
	eng.PointerLeave()
	return nil
}

func onWheel(this js.Value, args []js.Value) interface{} {
	e := args[0]
	e.Call("preventDefault")
	eng.Wheel(e.Get("pageX").Float(), e.Get("pageY").Float(), e.Get("deltaY").Float())
	return nil
}

func onTouchStart(this js.Value, args []js.Value) interface{} {
	e := args[0]
	e.Call("preventDefault")
	eng.TouchStart(touchList(e.Get("touches")))
	return nil
}

func onTouchMove(this js.Value, args []js.Value) interface{} {
	e := args[0]
	e.Call("preventDefault")
	eng.TouchMove(touchList(e.Get("touches")))
	return nil
}

func onTouchEnd(this js.Value, args []js.Value) interface{} {
	e := args[0]
	e.Call("preventDefault")
	eng.TouchEnd(touchList(e.Get("touches")))
	return nil
}

func onTouchCancel(this js.Value, args []js.Value) interface{} {
	eng.TouchCancel(touchList(args[0].Get("touches")))
	return nil
}

func onResize(this js.Value, args []js.Value) interface{} {
	eng.Resize()
	return nil
}

func preventDefault(this js.Value, args []js.Value) interface{} {
	args[0].Call("preventDefault")
	return nil
}

// touchList converts a DOM TouchList, keeping each touch's identifier.
func touchList(list js.Value) []engine.Touch {
	n := list.Length()
	touches := make([]engine.Touch, n)
	for i := 0; i < n; i++ {
		t := list.Index(i)
		touches[i] = engine.Touch{
			ID: t.Get("identifier").Int(),
			X:  t.Get("pageX").Float(),
			Y:  t.Get("pageY").Float(),
		}
	}
	return touches
}

// --- Action Handlers ---

func clearBoard(this js.Value, args []js.Value) interface{} {
	eng.Clear()
	return nil
}

func setColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeString {
		return js.ValueOf(map[string]interface{}{"error": "missing color"})
	}
	eng.SetColor(args[0].String())
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func setWidth(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeNumber {
		return js.ValueOf(map[string]interface{}{"error": "missing width"})
	}
	eng.SetWidth(args[0].Float())
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func resetView(this js.Value, args []js.Value) interface{} {
	eng.ResetView()
	return nil
}

// --- Query Handlers ---

func state(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.StateJSON())
}
