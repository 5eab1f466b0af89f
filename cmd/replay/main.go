// Command replay renders a recorded whiteboard input trace to a PNG image.
//
//	replay -in trace.jsonl -out board.png -width 1280 -height 720
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gg"

	"github.com/freehand/whiteboard/internal/config"
	"github.com/freehand/whiteboard/internal/engine"
	"github.com/freehand/whiteboard/internal/render/raster"
	"github.com/freehand/whiteboard/internal/replay"
	"github.com/freehand/whiteboard/internal/typeid"
)

func main() {
	in := flag.String("in", "-", "trace file (JSON Lines), - for stdin")
	out := flag.String("out", "board.png", "output PNG path")
	width := flag.Int("width", 1280, "viewport width in pixels")
	height := flag.Int("height", 720, "viewport height in pixels")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With("run", typeid.NewReplayID())
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *in, *out, *width, *height, logger); err != nil {
		slog.Error("replay failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, in, out string, width, height int, logger *slog.Logger) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}

	var r io.Reader = os.Stdin
	if in != "-" {
		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer f.Close()
		r = f
	}

	surface := raster.New(width, height, logger)
	defer surface.Close()

	eng := engine.NewEngine(surface, cfg.Board().EngineOptions(logger))
	eng.Resize()

	n, err := replay.Run(ctx, r, eng)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := surface.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logger.Info("replay complete",
		"events", n,
		"segments", len(eng.Segments()),
		"state", eng.StateJSON(),
		"out", out,
	)
	return nil
}
