package devreload

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the watcher waits for a burst of writes (a wasm build
// rewrites its output several times) before asking pages to reload.
const settle = 150 * time.Millisecond

// Watch broadcasts a reload on hub whenever a file in dir changes. It blocks
// until ctx is done.
func Watch(ctx context.Context, dir string, hub *Hub) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	slog.Info("watching for changes", "dir", dir)

	timer := time.NewTimer(settle)
	timer.Stop()
	var changed string

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			changed = filepath.Base(ev.Name)
			timer.Reset(settle)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)

		case <-timer.C:
			slog.Info("static files changed, reloading pages", "file", changed, "clients", hub.Len())
			hub.Broadcast(&Message{Type: TypeReload, Path: changed})

		case <-ctx.Done():
			timer.Stop()
			return nil
		}
	}
}
