package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiostream/server/internal/config"
	"github.com/radiostream/server/internal/middleware"
	"github.com/radiostream/server/internal/services"
)

func TestAdminHandler_GeneralUpdate(t *testing.T) {
	t.Run("applies metadata and stream URL", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{
			"station_label": "Night Owl FM",
			"description":   "All jazz, all night.",
			"audio_url":     "https://stream.example/radio.mp3",
		})
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "Configuration saved.", flashMessage(resp))

		cfg := env.store.Current()
		assert.Equal(t, "Night Owl FM", cfg.StationLabel)
		assert.Equal(t, "All jazz, all night.", cfg.Description)
		assert.Equal(t, "https://stream.example/radio.mp3", cfg.AudioURL)
	})

	t.Run("empty label is preserved, empty description is cleared", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		seed := env.store.Current().Clone()
		seed.StationLabel = "Keeper"
		seed.Description = "about to go"
		seed.AudioURL = "https://stream.example/old.mp3"
		require.NoError(t, env.store.Replace(seed))

		env.postAdmin(t, session, map[string]string{
			"station_label": "",
			"description":   "",
			"audio_url":     "",
		})

		cfg := env.store.Current()
		assert.Equal(t, "Keeper", cfg.StationLabel)
		assert.Empty(t, cfg.Description)
		assert.Empty(t, cfg.AudioURL)
	})

	t.Run("the saved document survives a reload", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		env.postAdmin(t, session, map[string]string{"station_label": "Persisted FM"})

		reloaded := config.NewStore(env.store.Path(), env.credentials)
		cfg, err := reloaded.Load()
		require.NoError(t, err)
		assert.Equal(t, "Persisted FM", cfg.StationLabel)
	})
}

func TestAdminHandler_Port(t *testing.T) {
	t.Run("a valid new port is saved with a restart notice", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{"port": "8080"})
		assert.Contains(t, flashMessage(resp), "Port changed to 8080")
		assert.Contains(t, flashMessage(resp), "Restart the server")
		assert.Equal(t, 8080, env.store.Current().Port)
	})

	t.Run("an unchanged port saves without the restart notice", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{"port": "4080"})
		assert.Equal(t, "Configuration saved.", flashMessage(resp))
	})

	t.Run("an out-of-range port aborts the whole update", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{
			"station_label": "Should not stick",
			"port":          "70000",
		})
		assert.Equal(t, "Port out of range (1-65535).", flashMessage(resp))
		assert.Equal(t, config.DefaultStationLabel, env.store.Current().StationLabel)
		assert.Equal(t, config.DefaultPort, env.store.Current().Port)
	})

	t.Run("a non-numeric port aborts the whole update", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{"port": "eighty"})
		assert.Equal(t, "Invalid port.", flashMessage(resp))
		assert.Equal(t, config.DefaultPort, env.store.Current().Port)
	})

	t.Run("an empty port keeps the current one", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{"port": ""})
		assert.Equal(t, "Configuration saved.", flashMessage(resp))
		assert.Equal(t, config.DefaultPort, env.store.Current().Port)
	})
}

func TestAdminHandler_Uploads(t *testing.T) {
	t.Run("stores a cover upload under the canonical name", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{},
			formFileSpec{"cover_file", "my pic.jpg", "fake image bytes"})
		assert.Contains(t, flashMessage(resp), "Cover image uploaded.")

		stored, err := os.ReadFile(filepath.Join(env.assets.StaticDir(), services.CoverFilename))
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(stored))
	})

	t.Run("a background upload records the canonical filename", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		env.postAdmin(t, session, map[string]string{"background_enabled": "1"},
			formFileSpec{"background_file", "sunset.png", "pixels"})

		cfg := env.store.Current()
		assert.Equal(t, services.BackgroundFilename, cfg.BackgroundFilename)
		assert.True(t, cfg.BackgroundEnabled)
		assert.True(t, env.assets.Exists(services.AssetBackground))
	})

	t.Run("a rejected upload aborts the whole update", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session,
			map[string]string{"station_label": "Should not stick"},
			formFileSpec{"cover_file", "good.png", "pixels"},
			formFileSpec{"background_file", "payload.exe", "malware"})

		assert.Equal(t, "File type not allowed for the background image.", flashMessage(resp))
		assert.False(t, env.assets.Exists(services.AssetCover), "the valid cover must not land either")
		assert.Equal(t, config.DefaultStationLabel, env.store.Current().StationLabel)
	})

	t.Run("a rejected cover leaves the previous one intact", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		require.NoError(t, env.assets.Accept(services.AssetCover, "old.png", strings.NewReader("old pixels")))

		resp := env.postAdmin(t, session, map[string]string{},
			formFileSpec{"cover_file", "script.sh", "#!/bin/sh"})
		assert.Equal(t, "File type not allowed for the cover image.", flashMessage(resp))

		stored, err := os.ReadFile(filepath.Join(env.assets.StaticDir(), services.CoverFilename))
		require.NoError(t, err)
		assert.Equal(t, "old pixels", string(stored))
	})
}

func TestAdminHandler_Background(t *testing.T) {
	t.Run("enabling without an asset is corrected with a notice", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{"background_enabled": "1"})
		assert.Contains(t, flashMessage(resp), "No background image is uploaded")
		assert.False(t, env.store.Current().BackgroundEnabled)
	})

	t.Run("remove background deletes the file and disables it", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		env.postAdmin(t, session, map[string]string{"background_enabled": "1"},
			formFileSpec{"background_file", "sunset.png", "pixels"})
		require.True(t, env.assets.Exists(services.AssetBackground))

		resp := env.postAdmin(t, session, map[string]string{"remove_background": "1"})
		assert.Equal(t, "Background removed and disabled.", flashMessage(resp))
		assert.False(t, env.assets.Exists(services.AssetBackground))

		cfg := env.store.Current()
		assert.False(t, cfg.BackgroundEnabled)
		assert.Empty(t, cfg.BackgroundFilename)
	})
}

func TestAdminHandler_Theme(t *testing.T) {
	t.Run("non-empty pickers are merged, empty ones leave values alone", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		env.postAdmin(t, session, map[string]string{
			"body_bg": "#111111",
			"accent1": "#222222",
		})

		theme := env.store.Current().Theme
		assert.Equal(t, "#111111", theme.BodyBg)
		assert.Equal(t, "#222222", theme.Accent1)
		assert.Equal(t, config.DefaultTheme().CardBg, theme.CardBg)
		assert.Equal(t, config.DefaultTheme().Text, theme.Text)
	})

	t.Run("a picked card color replaces the gradient", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		env.postAdmin(t, session, map[string]string{"card_bg": "#333333"})
		assert.Equal(t, "#333333", env.store.Current().Theme.CardBg)
	})

	t.Run("restore colors resets the theme wholesale", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		env.postAdmin(t, session, map[string]string{"body_bg": "#111111", "text": "#444444"})
		require.NotEqual(t, config.DefaultTheme(), env.store.Current().Theme)

		resp := env.postAdmin(t, session, map[string]string{"restore_colors": "1"})
		assert.Equal(t, "Colors restored to their defaults.", flashMessage(resp))
		assert.Equal(t, config.DefaultTheme(), env.store.Current().Theme)
	})
}

func TestAdminHandler_CredentialRotation(t *testing.T) {
	t.Run("rotating the username refreshes the live session", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{
			"new_user": "boss",
			"new_pass": "s3cret",
		})
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)

		cfg := env.store.Current()
		assert.Equal(t, "boss", cfg.Username)
		assert.True(t, env.credentials.Verify(cfg, "boss", "s3cret"))
		assert.False(t, env.credentials.Verify(cfg, config.DefaultUsername, config.DefaultPassword))

		// The old cookie names a rotated-away identity and must be dead.
		req := httptest.NewRequest("GET", "/admin", nil)
		req.AddCookie(session)
		stale := env.do(req)
		assert.Equal(t, http.StatusSeeOther, stale.StatusCode)

		// The refreshed cookie from the update response keeps the admin in.
		fresh := responseCookie(resp, middleware.SessionCookieName)
		require.NotNil(t, fresh, "rename should issue a fresh session cookie")
		req = httptest.NewRequest("GET", "/admin", nil)
		req.AddCookie(fresh)
		assert.Equal(t, http.StatusOK, env.do(req).StatusCode)
	})

	t.Run("a password-only change keeps the session valid", func(t *testing.T) {
		env := newTestEnv(t)
		session := env.login(t, config.DefaultUsername, config.DefaultPassword)

		resp := env.postAdmin(t, session, map[string]string{"new_pass": "rotated"})
		assert.Nil(t, responseCookie(resp, middleware.SessionCookieName))

		req := httptest.NewRequest("GET", "/admin", nil)
		req.AddCookie(session)
		assert.Equal(t, http.StatusOK, env.do(req).StatusCode)

		cfg := env.store.Current()
		assert.True(t, env.credentials.Verify(cfg, config.DefaultUsername, "rotated"))
	})
}

func TestAdminHandler_Console(t *testing.T) {
	env := newTestEnv(t)
	session := env.login(t, config.DefaultUsername, config.DefaultPassword)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(session)
	resp := env.do(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Admin console")
	assert.Contains(t, body, config.DefaultUsername)
	// The gradient card background maps to its base tone for the picker.
	assert.Contains(t, body, "#071028")
}
