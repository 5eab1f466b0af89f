package main

import (
	"context"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/freehand/whiteboard/internal/config"
)

func TestRunWritesPNG(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "trace.jsonl")
	out := filepath.Join(dir, "board.png")
	trace := strings.Join([]string{
		`{"type":"color","value":"#000"}`,
		`{"type":"width","value":6}`,
		`{"type":"pointerdown","x":10,"y":30,"button":0}`,
		`{"type":"pointermove","x":90,"y":30}`,
		`{"type":"pointerup"}`,
	}, "\n")
	if err := os.WriteFile(in, []byte(trace), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{BoardWidth: 2, BoardBackground: "#fff", BoardWheelDivisor: 500, BoardMinScale: 0.01, BoardMaxScale: 100}
	logger := slog.New(slog.DiscardHandler)
	if err := run(context.Background(), cfg, in, out, 100, 60, logger); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 60 {
		t.Errorf("image size = %v", b)
	}
	if r, _, _, _ := img.At(50, 30).RGBA(); r>>8 > 64 {
		t.Errorf("stroke pixel red = %d, want dark", r>>8)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	logger := slog.New(slog.DiscardHandler)

	if err := run(context.Background(), cfg, "-", filepath.Join(dir, "x.png"), 0, 10, logger); err == nil {
		t.Error("expected error for zero width")
	}
	if err := run(context.Background(), cfg, filepath.Join(dir, "missing.jsonl"), filepath.Join(dir, "x.png"), 10, 10, logger); err == nil {
		t.Error("expected error for missing trace")
	}

	bad := filepath.Join(dir, "bad.jsonl")
	if err := os.WriteFile(bad, []byte(`{"type":"jump"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), cfg, bad, filepath.Join(dir, "x.png"), 10, 10, logger); err == nil {
		t.Error("expected error for unknown event")
	}
}
