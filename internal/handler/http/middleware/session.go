package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/hoursly/worklog-portal/internal/backend"
	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/handler/http/response"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

// UserFetcher resolves a session credential into its user.
type UserFetcher interface {
	Me(ctx context.Context, sess session.Session) (*user.User, error)
}

// SessionLoader resolves the session cookie into the authenticated user
// exactly once per request and injects both into the request context. A
// stale cookie (backend answers 401) clears the cookie and forces a fresh
// login.
func SessionLoader(client UserFetcher, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromRequest(r, cookieName)
			if !ok {
				RedirectToLogin(w, r)
				return
			}

			u, err := client.Me(r.Context(), sess)
			if err != nil {
				var apiErr *backend.APIError
				if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
					ClearSessionCookie(w, cookieName)
					RedirectToLogin(w, r)
					return
				}
				response.HandleError(w, err)
				return
			}

			ctx := user.NewContext(r.Context(), u)
			ctx = session.NewContext(ctx, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// ClearSessionCookie expires the session cookie on the browser.
func ClearSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
