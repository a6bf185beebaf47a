package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/radiostream/server/internal/config"
	"github.com/radiostream/server/internal/services"
)

type contextKey string

// PrincipalContextKey holds the authenticated admin username.
const PrincipalContextKey contextKey = "principal"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session_token"

// GetPrincipal retrieves the authenticated username from request context.
func GetPrincipal(ctx context.Context) string {
	if principal, ok := ctx.Value(PrincipalContextKey).(string); ok {
		return principal
	}
	return ""
}

// RequireAdmin gates admin-only routes. A request is authenticated when its
// session cookie resolves to a principal equal to the currently configured
// username; because the username is read live from the store, a session minted
// under a rotated-away identity stops working immediately.
//
// Unauthenticated requests are redirected to the login view with the original
// path preserved for post-login redirect.
func RequireAdmin(store *config.Store, sessions *services.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			toLogin := func() {
				http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
			}

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				toLogin()
				return
			}

			principal, err := sessions.ResolveToken(cookie.Value)
			if err != nil || principal != store.Current().Username {
				toLogin()
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetSessionCookie attaches a signed session token to the response.
func SetSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   24 * 60 * 60,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
