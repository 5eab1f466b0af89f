package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/freehand/whiteboard/internal/config"
	"github.com/freehand/whiteboard/internal/devreload"
	"github.com/freehand/whiteboard/internal/discovery"
	mw "github.com/freehand/whiteboard/internal/middleware"
	"github.com/freehand/whiteboard/internal/web"
)

func main() {
	browse := flag.Duration("browse", 0, "list boards advertised on the local network for this long, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(os.Stdout, cfg))

	if *browse > 0 {
		if err := browseBoards(*browse); err != nil {
			slog.Error("browse", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	webHandler, err := web.NewHandler(cfg.StaticDir, cfg.Board(), cfg.DevReload)
	if err != nil {
		slog.Error("load page", "error", err, "dir", cfg.StaticDir)
		os.Exit(1)
	}

	var reloadHub *devreload.Hub
	if cfg.DevReload {
		reloadHub = devreload.NewHub()
		go reloadHub.Run(ctx)
		go func() {
			if err := devreload.Watch(ctx, cfg.StaticDir, reloadHub); err != nil {
				slog.Error("dev reload watcher", "error", err)
			}
		}()
	}

	r := newRouter(webHandler, reloadHub)

	if cfg.Advertise {
		adv, err := discovery.Advertise(cfg.Port)
		if err != nil {
			slog.Warn("mdns advertise", "error", err)
		} else {
			defer adv.Shutdown()
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "static", cfg.StaticDir, "devReload", cfg.DevReload)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// browseBoards prints the address of every board found within timeout.
func browseBoards(timeout time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seen := make(map[string]bool)
	return discovery.Browse(ctx, timeout, func(addr string) {
		if seen[addr] {
			return
		}
		seen[addr] = true
		fmt.Printf("http://%s/\n", addr)
	})
}

// newRouter wires the page, static files, health check and, when hub is
// non-nil, the dev reload socket.
func newRouter(webHandler *web.Handler, hub *devreload.Hub) *mux.Router {
	r := mux.NewRouter()

	r.Use(mw.Recovery)
	r.Use(mw.Logger)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/", webHandler.Index).Methods("GET")
	r.PathPrefix("/static/").Handler(webHandler.Static()).Methods("GET", "HEAD")

	if hub != nil {
		r.HandleFunc("/ws/reload", devreload.Handler(hub, nil)).Methods("GET")
	}

	return r
}
