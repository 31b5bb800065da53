package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/hoursly/worklog-portal/internal/pkg/metrics"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

// publicPaths are reachable without a session cookie.
var publicPaths = map[string]bool{
	"/login":   true,
	"/healthz": true,
	"/metrics": true,
}

// Guard is the route gate: backend-bound /api/* traffic passes through
// untouched (the backend enforces auth per request), unauthenticated
// visitors of app pages are redirected to the login page with a return
// path, and authenticated visitors of the root land on the dashboard.
// Only cookie presence is checked here; validity is the backend's call.
func Guard(cookieName string, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if strings.HasPrefix(path, "/api/") || publicPaths[path] {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := session.FromRequest(r, cookieName); !ok {
				if m != nil {
					m.GuardRedirects.WithLabelValues("login").Inc()
				}
				RedirectToLogin(w, r)
				return
			}

			if path == "/" {
				if m != nil {
					m.GuardRedirects.WithLabelValues("dashboard").Inc()
				}
				http.Redirect(w, r, "/dashboard", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// RedirectToLogin sends the browser to the login page, preserving the
// requested path so a successful login can return to it.
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login?from="+url.QueryEscape(r.URL.Path), http.StatusFound)
}
