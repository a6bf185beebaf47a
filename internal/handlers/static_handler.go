package handlers

import (
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/radiostream/server/internal/services"
)

// StaticHandler serves the two public image assets. Nothing else in the
// static directory is reachable, so a stray upload temp file or anything
// an admin drops there stays private.
type StaticHandler struct {
	assets *services.AssetService
}

// NewStaticHandler creates a new StaticHandler
func NewStaticHandler(assets *services.AssetService) *StaticHandler {
	return &StaticHandler{assets: assets}
}

// Serve handles GET /static/{filename} for the canonical asset names only.
func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	var kind services.AssetKind
	switch chi.URLParam(r, "filename") {
	case services.CoverFilename:
		kind = services.AssetCover
	case services.BackgroundFilename:
		kind = services.AssetBackground
	default:
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	path, err := h.assets.Path(kind)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	h.serveFile(w, path)
}

// serveFile serves a file with proper content type
func (h *StaticHandler) serveFile(w http.ResponseWriter, path string) {
	file, err := os.Open(path)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	// Detect content type
	buffer := make([]byte, 512)
	n, _ := file.Read(buffer)
	contentType := http.DetectContentType(buffer[:n])

	file.Seek(0, 0)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=60")
	io.Copy(w, file)
}
