package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiostream/server/internal/config"
	"github.com/radiostream/server/internal/middleware"
	"github.com/radiostream/server/internal/services"
)

// testEnv wires a full router against a throwaway config file and static dir,
// seeded with the first-run admin/admin credentials.
type testEnv struct {
	store       *config.Store
	assets      *services.AssetService
	credentials *services.CredentialService
	sessions    *services.SessionService
	router      chi.Router
}

func newTestEnv(t *testing.T) *testEnv {
	tempDir, err := os.MkdirTemp("", "radiostream-handlers-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	credentials := services.NewCredentialService()
	store := config.NewStore(filepath.Join(tempDir, "config.json"), credentials)
	cfg, err := store.Load()
	require.NoError(t, err)

	assets, err := services.NewAssetService(filepath.Join(tempDir, "static"))
	require.NoError(t, err)

	sessions := services.NewSessionService(cfg.SecretKey)

	player := NewPlayerHandler(store, assets)
	auth := NewAuthHandler(store, credentials, sessions)
	admin := NewAdminHandler(store, assets, credentials, sessions)
	static := NewStaticHandler(assets)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Get("/", player.Page)
	r.Get("/embed", player.Embed)
	r.Get("/static/{filename}", static.Serve)
	r.Get("/login", auth.LoginPage)
	r.Post("/login", auth.Login)
	r.Get("/logout", auth.Logout)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(store, sessions))
		r.Get("/admin", admin.Console)
		r.Post("/admin", admin.Update)
	})

	return &testEnv{
		store:       store,
		assets:      assets,
		credentials: credentials,
		sessions:    sessions,
		router:      r,
	}
}

func (e *testEnv) do(req *http.Request) *http.Response {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr.Result()
}

// login authenticates as the given account and returns the session cookie.
func (e *testEnv) login(t *testing.T, username, password string) *http.Cookie {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp := e.do(req)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))
	require.Equal(t, "Access granted. Welcome.", flashMessage(resp))

	cookie := responseCookie(resp, middleware.SessionCookieName)
	require.NotNil(t, cookie, "login should set a session cookie")
	return cookie
}

type formFileSpec struct {
	field    string
	filename string
	content  string
}

// multipartForm builds a multipart body the way the admin console submits it.
func multipartForm(t *testing.T, fields map[string]string, files ...formFileSpec) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// postAdmin submits an admin form with the given session and returns the response.
func (e *testEnv) postAdmin(t *testing.T, session *http.Cookie, fields map[string]string, files ...formFileSpec) *http.Response {
	body, contentType := multipartForm(t, fields, files...)
	req := httptest.NewRequest("POST", "/admin", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(session)
	return e.do(req)
}

func responseCookie(resp *http.Response, name string) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// flashMessage returns the one-shot notice a redirect queued, if any.
func flashMessage(resp *http.Response) string {
	if cookie := responseCookie(resp, flashCookieName); cookie != nil {
		return cookie.Value
	}
	return ""
}

func TestPlayerHandler(t *testing.T) {
	t.Run("serves the player page with station metadata", func(t *testing.T) {
		env := newTestEnv(t)

		cfg := env.store.Current().Clone()
		cfg.StationLabel = "Night Owl FM"
		cfg.Description = "All jazz, all night."
		require.NoError(t, env.store.Replace(cfg))

		resp := env.do(httptest.NewRequest("GET", "/", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := readBody(t, resp)
		assert.Contains(t, body, "Night Owl FM")
		assert.Contains(t, body, "All jazz, all night.")
		assert.Contains(t, body, "No cover found")
	})

	t.Run("omits the background layer until it is enabled and present", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.do(httptest.NewRequest("GET", "/", nil))
		body := readBody(t, resp)
		assert.Contains(t, body, `id="bg" class="hidden"`)

		require.NoError(t, env.assets.Accept(services.AssetBackground, "bg.png", strings.NewReader("pixels")))
		cfg := env.store.Current().Clone()
		cfg.BackgroundEnabled = true
		cfg.BackgroundFilename = services.BackgroundFilename
		require.NoError(t, env.store.Replace(cfg))

		resp = env.do(httptest.NewRequest("GET", "/", nil))
		body = readBody(t, resp)
		assert.Contains(t, body, `id="bg" class="visible"`)
		assert.Contains(t, body, "/static/background.png")
	})

	t.Run("serves the embed page", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.do(httptest.NewRequest("GET", "/embed", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := readBody(t, resp)
		assert.Contains(t, body, "Powered by RadioStream")
		assert.Contains(t, body, "autoplay")
	})
}

func TestStaticHandler(t *testing.T) {
	t.Run("serves only the canonical asset names", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.assets.Accept(services.AssetCover, "pic.png", strings.NewReader("pixels")))

		resp := env.do(httptest.NewRequest("GET", "/static/cover.png", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		for _, path := range []string{"/static/other.png", "/static/config.json", "/static/..%2fconfig.json"} {
			resp := env.do(httptest.NewRequest("GET", path, nil))
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, "path %s should not be served", path)
		}
	})

	t.Run("missing asset yields 404", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.do(httptest.NewRequest("GET", "/static/cover.png", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func readBody(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return buf.String()
}
