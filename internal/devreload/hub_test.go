package devreload

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func startHub(t *testing.T) (*Hub, *httptest.Server, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub()
	go hub.Run(ctx)

	srv := httptest.NewServer(Handler(hub, nil))
	t.Cleanup(srv.Close)
	return hub, srv, ctx
}

func dial(t *testing.T, ctx context.Context, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readMessage(t *testing.T, ctx context.Context, conn *websocket.Conn) Message {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(readCtx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return msg
}

func TestHubHelloAndBroadcast(t *testing.T) {
	hub, srv, ctx := startHub(t)

	a := dial(t, ctx, srv)
	b := dial(t, ctx, srv)

	for _, conn := range []*websocket.Conn{a, b} {
		if msg := readMessage(t, ctx, conn); msg.Type != TypeHello {
			t.Fatalf("first message = %+v, want hello", msg)
		}
	}
	if n := hub.Len(); n != 2 {
		t.Fatalf("clients = %d, want 2", n)
	}

	hub.Broadcast(&Message{Type: TypeReload, Path: "whiteboard.wasm"})

	for _, conn := range []*websocket.Conn{a, b} {
		msg := readMessage(t, ctx, conn)
		if msg.Type != TypeReload || msg.Path != "whiteboard.wasm" {
			t.Errorf("message = %+v", msg)
		}
	}
}

func TestHubUnregistersClosedClient(t *testing.T) {
	hub, srv, ctx := startHub(t)

	conn := dial(t, ctx, srv)
	readMessage(t, ctx, conn)
	conn.Close(websocket.StatusNormalClosure, "bye")

	deadline := time.Now().Add(5 * time.Second)
	for hub.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client still registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHubStopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	c := NewClient(hub, nil, "late")
	if hub.Register(c) {
		t.Error("Register succeeded on a stopped hub")
	}
	// Must not block.
	hub.Unregister(c)
}

func TestWatchBroadcastsReload(t *testing.T) {
	hub, srv, ctx := startHub(t)
	dir := t.TempDir()

	watchCtx, stop := context.WithCancel(ctx)
	watchErr := make(chan error, 1)
	go func() { watchErr <- Watch(watchCtx, dir, hub) }()

	conn := dial(t, ctx, srv)
	readMessage(t, ctx, conn)

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "whiteboard.wasm"), []byte("\x00asm"), 0o644); err != nil {
		t.Fatal(err)
	}

	msg := readMessage(t, ctx, conn)
	if msg.Type != TypeReload || msg.Path != "whiteboard.wasm" {
		t.Errorf("message = %+v", msg)
	}

	stop()
	if err := <-watchErr; err != nil {
		t.Errorf("Watch: %v", err)
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), NewHub())
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
