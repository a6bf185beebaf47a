package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/radiostream/server/internal/config"
	"github.com/radiostream/server/internal/logging"
	"github.com/radiostream/server/internal/middleware"
	"github.com/radiostream/server/internal/services"
	"github.com/radiostream/server/internal/views"
	"github.com/sirupsen/logrus"
)

// maxUploadBytes bounds a single admin form submission, uploads included.
const maxUploadBytes = 32 << 20

// AdminHandler serves the admin console and applies its edits.
type AdminHandler struct {
	store       *config.Store
	assets      *services.AssetService
	credentials *services.CredentialService
	sessions    *services.SessionService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	store *config.Store,
	assets *services.AssetService,
	credentials *services.CredentialService,
	sessions *services.SessionService,
) *AdminHandler {
	return &AdminHandler{
		store:       store,
		assets:      assets,
		credentials: credentials,
		sessions:    sessions,
	}
}

// Console renders the admin page.
func (h *AdminHandler) Console(w http.ResponseWriter, r *http.Request) {
	cfg := h.store.Current()
	principal := middleware.GetPrincipal(r.Context())
	data := views.BuildAdmin(cfg, principal,
		h.assets.Exists(services.AssetCover),
		h.assets.Exists(services.AssetBackground),
		popFlash(w, r))
	views.RenderAdmin(w, data)
}

// Update dispatches an admin form submission. The form carries one of three
// intents: restore the default colors, remove the background, or a general
// settings update. The first matching intent wins and the others are ignored.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if r.PostFormValue("restore_colors") != "" {
		h.restoreColors(w, r)
		return
	}
	if r.PostFormValue("remove_background") != "" {
		h.removeBackground(w, r)
		return
	}
	h.applyUpdate(w, r)
}

func (h *AdminHandler) restoreColors(w http.ResponseWriter, r *http.Request) {
	cfg := h.store.Current().Clone()
	cfg.Theme = config.DefaultTheme()
	if err := h.store.Replace(cfg); err != nil {
		h.failSave(w, r, err)
		return
	}
	setFlash(w, "Colors restored to their defaults.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) removeBackground(w http.ResponseWriter, r *http.Request) {
	h.assets.RemoveBackground()
	cfg := h.store.Current().Clone()
	cfg.BackgroundEnabled = false
	cfg.BackgroundFilename = ""
	if err := h.store.Replace(cfg); err != nil {
		h.failSave(w, r, err)
		return
	}
	setFlash(w, "Background removed and disabled.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// applyUpdate validates the whole submission before touching anything. A bad
// port or a rejected upload aborts with no partial writes, to disk or memory.
func (h *AdminHandler) applyUpdate(w http.ResponseWriter, r *http.Request) {
	cfg := h.store.Current().Clone()

	stationLabel := strings.TrimSpace(r.PostFormValue("station_label"))
	description := strings.TrimSpace(r.PostFormValue("description"))
	audioURL := strings.TrimSpace(r.PostFormValue("audio_url"))
	portValue := strings.TrimSpace(r.PostFormValue("port"))
	newUser := r.PostFormValue("new_user")
	newPass := r.PostFormValue("new_pass")

	port := cfg.Port
	if portValue != "" {
		parsed, err := strconv.Atoi(portValue)
		if err != nil {
			setFlash(w, "Invalid port.")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		if parsed < 1 || parsed > 65535 {
			setFlash(w, "Port out of range (1-65535).")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		port = parsed
	}

	coverFile, coverHeader, err := formFile(r, "cover_file")
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	if coverFile != nil {
		defer coverFile.Close()
	}
	backgroundFile, backgroundHeader, err := formFile(r, "background_file")
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	if backgroundFile != nil {
		defer backgroundFile.Close()
	}

	// Extensions are checked up front so a bad background never lands after
	// a good cover has already been written.
	if coverFile != nil && !h.assets.Allowed(coverHeader.Filename) {
		setFlash(w, "File type not allowed for the cover image.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if backgroundFile != nil && !h.assets.Allowed(backgroundHeader.Filename) {
		setFlash(w, "File type not allowed for the background image.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	var notices []string

	if coverFile != nil {
		if err := h.assets.Accept(services.AssetCover, coverHeader.Filename, coverFile); err != nil {
			logging.Log.WithError(err).Error("Failed to store cover upload")
			setFlash(w, "Failed to store the cover image.")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		notices = append(notices, "Cover image uploaded.")
	}
	if backgroundFile != nil {
		if err := h.assets.Accept(services.AssetBackground, backgroundHeader.Filename, backgroundFile); err != nil {
			logging.Log.WithError(err).Error("Failed to store background upload")
			setFlash(w, "Failed to store the background image.")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		cfg.BackgroundFilename = services.BackgroundFilename
		notices = append(notices, "Background image uploaded.")
	}

	changedPort := port != cfg.Port
	if stationLabel != "" {
		cfg.StationLabel = stationLabel
	}
	cfg.Description = description
	cfg.AudioURL = audioURL
	cfg.Port = port

	rotatedUser, err := h.credentials.Rotate(cfg, newUser, newPass)
	if err != nil {
		logging.Log.WithError(err).Error("Failed to rotate credentials")
		setFlash(w, "Failed to update credentials.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	applyTheme(&cfg.Theme, r)

	cfg.BackgroundEnabled = r.PostFormValue("background_enabled") != ""
	if cfg.BackgroundEnabled && !h.assets.Exists(services.AssetBackground) {
		cfg.BackgroundEnabled = false
		notices = append(notices, "No background image is uploaded: upload one and enable the background again.")
	}

	if err := h.store.Replace(cfg); err != nil {
		h.failSave(w, r, err)
		return
	}

	// The session names the admin account, so a renamed account needs a
	// fresh cookie to stay logged in.
	if strings.TrimSpace(newUser) != "" {
		token, err := h.sessions.IssueToken(rotatedUser)
		if err != nil {
			logging.Log.WithError(err).Error("Failed to refresh session after rename")
		} else {
			middleware.SetSessionCookie(w, r, token)
		}
	}

	logging.Log.WithFields(logrus.Fields{
		"station_label": cfg.StationLabel,
		"port":          cfg.Port,
	}).Info("Configuration updated")

	if changedPort {
		notices = append(notices, fmt.Sprintf("Configuration saved. Port changed to %d. Restart the server to apply it.", cfg.Port))
	} else {
		notices = append(notices, "Configuration saved.")
	}
	setFlash(w, strings.Join(notices, " "))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) failSave(w http.ResponseWriter, r *http.Request, err error) {
	logging.Log.WithError(err).Error("Failed to save configuration")
	setFlash(w, "Failed to save the configuration. Nothing was changed.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// applyTheme merges the submitted color pickers into the theme. Empty fields
// leave the current value alone; a picked card color replaces the gradient.
func applyTheme(theme *config.Theme, r *http.Request) {
	if v := strings.TrimSpace(r.PostFormValue("body_bg")); v != "" {
		theme.BodyBg = v
	}
	if v := strings.TrimSpace(r.PostFormValue("card_bg")); v != "" {
		theme.CardBg = v
	}
	if v := strings.TrimSpace(r.PostFormValue("accent1")); v != "" {
		theme.Accent1 = v
	}
	if v := strings.TrimSpace(r.PostFormValue("text")); v != "" {
		theme.Text = v
	}
}

// formFile distinguishes "field absent" from a real multipart error. An
// empty file input submits no part, which is not a failure.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if header.Filename == "" {
		file.Close()
		return nil, nil, nil
	}
	return file, header, nil
}
