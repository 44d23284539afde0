package http

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// SPAHandler serves the dashboard page and its static assets. Unknown paths
// and directories get index.html so client side routes resolve.
type SPAHandler struct {
	assets http.FileSystem
	index  []byte
}

// NewSPAHandler creates a new SPA handler. assets must contain /index.html.
func NewSPAHandler(assets http.FileSystem) (*SPAHandler, error) {
	f, err := assets.Open("/index.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open index.html for SPA handler")
	}
	defer f.Close()

	index, err := io.ReadAll(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read index.html content")
	}

	return &SPAHandler{
		assets: assets,
		index:  index,
	}, nil
}

// ServeHTTP implements http.Handler
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)

	f, err := h.assets.Open(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		h.serveIndex(w, r)
		return
	case err != nil:
		ctxlog.From(r.Context()).Error("Failed to open asset", "error", err, "path", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		h.serveIndex(w, r)
		return
	}

	if ct, ok := mimeTypes[path.Ext(name)]; ok {
		w.Header().Set("Content-Type", ct)
	}
	if _, err := io.Copy(w, f); err != nil {
		ctxlog.From(r.Context()).Warn("Failed to write asset", "error", err, "path", name)
	}
}

func (h *SPAHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.index); err != nil {
		ctxlog.From(r.Context()).Warn("Failed to write index.html", "error", err)
	}
}

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}
