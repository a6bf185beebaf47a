package handlers

import (
	"net/http"

	"github.com/radiostream/server/internal/config"
	"github.com/radiostream/server/internal/services"
	"github.com/radiostream/server/internal/views"
)

// PlayerHandler serves the public player page and the embeddable player.
type PlayerHandler struct {
	store  *config.Store
	assets *services.AssetService
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(store *config.Store, assets *services.AssetService) *PlayerHandler {
	return &PlayerHandler{store: store, assets: assets}
}

// Page serves the full player page.
func (h *PlayerHandler) Page(w http.ResponseWriter, r *http.Request) {
	cfg := h.store.Current()
	data := views.BuildPlayer(cfg,
		h.assets.Exists(services.AssetCover),
		h.assets.Exists(services.AssetBackground),
		baseURL(r))
	views.RenderPlayer(w, data)
}

// Embed serves the minimal player meant for iframes.
func (h *PlayerHandler) Embed(w http.ResponseWriter, r *http.Request) {
	cfg := h.store.Current()
	data := views.BuildEmbed(cfg, h.assets.Exists(services.AssetCover))
	views.RenderEmbed(w, data)
}

// baseURL reconstructs the externally visible origin from the request.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
