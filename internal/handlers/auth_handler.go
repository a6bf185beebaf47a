package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/radiostream/server/internal/config"
	"github.com/radiostream/server/internal/logging"
	"github.com/radiostream/server/internal/middleware"
	"github.com/radiostream/server/internal/services"
	"github.com/radiostream/server/internal/views"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles the login form and logout.
type AuthHandler struct {
	store       *config.Store
	credentials *services.CredentialService
	sessions    *services.SessionService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(store *config.Store, credentials *services.CredentialService, sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{store: store, credentials: credentials, sessions: sessions}
}

// LoginPage serves the login form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	notice := popFlash(w, r)
	views.RenderLogin(w, views.BuildLogin(notice, sanitizeNext(r.URL.Query().Get("next"))))
}

// Login checks the submitted credentials and starts a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	next := sanitizeNext(r.URL.Query().Get("next"))

	cfg := h.store.Current()
	if !h.credentials.Verify(cfg, username, password) {
		logging.Log.WithFields(logrus.Fields{
			"remote_addr": r.RemoteAddr,
		}).Warn("Failed login attempt")
		setFlash(w, "Invalid credentials")
		target := "/login"
		if next != "" {
			target += "?next=" + url.QueryEscape(next)
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	token, err := h.sessions.IssueToken(cfg.Username)
	if err != nil {
		logging.Log.WithError(err).Error("Failed to issue session token")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	middleware.SetSessionCookie(w, r, token)
	setFlash(w, "Access granted. Welcome.")

	logging.Log.WithField("username", cfg.Username).Info("Admin logged in")

	if next == "" {
		next = "/admin"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Logout clears the session cookie and returns to the login view.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	setFlash(w, "Session closed.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// sanitizeNext keeps post-login redirects on this site. Only local
// absolute paths survive.
func sanitizeNext(next string) string {
	if next == "" {
		return ""
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}
