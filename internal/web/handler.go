package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/freehand/whiteboard/internal/config"
	"github.com/freehand/whiteboard/internal/typeid"
)

const indexFile = "index.html"

// pageData is what index.html is rendered with.
type pageData struct {
	BoardID   string
	Config    config.Board
	DevReload bool
}

// Handler serves the whiteboard page and its static files (wasm binary,
// wasm_exec.js, styles).
type Handler struct {
	dir       string
	board     config.Board
	devReload bool
	page      *template.Template
}

// NewHandler parses dir/index.html and returns a handler serving dir. With
// devReload set the page is parsed again on every request.
func NewHandler(dir string, board config.Board, devReload bool) (*Handler, error) {
	page, err := parsePage(dir)
	if err != nil {
		return nil, err
	}
	return &Handler{
		dir:       dir,
		board:     board,
		devReload: devReload,
		page:      page,
	}, nil
}

// Index handles GET / by rendering the page with the board settings and a
// fresh board id.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BoardID:   typeid.NewBoardID(),
		Config:    h.board,
		DevReload: h.devReload,
	}

	page := h.page
	if h.devReload {
		var err error
		if page, err = parsePage(h.dir); err != nil {
			slog.Error("reload page", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		slog.Error("render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Static returns an http.Handler for files under /static/. The page
// template is only reachable through Index, so neither it nor directory
// indexes (which would fall back to it) are served.
func (h *Handler) Static() http.Handler {
	fs := http.FileServer(http.Dir(h.dir))
	return http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") || path.Clean("/"+r.URL.Path) == "/"+indexFile {
			http.NotFound(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		// The wasm binary is rebuilt in place during development.
		w.Header().Set("Cache-Control", "no-cache")
		fs.ServeHTTP(w, r)
	}))
}

func parsePage(dir string) (*template.Template, error) {
	page, err := template.ParseFiles(filepath.Join(dir, indexFile))
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return page, nil
}
