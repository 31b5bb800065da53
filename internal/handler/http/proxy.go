package http

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/hoursly/worklog-portal/internal/handler/http/response"
)

// NewBackendProxy forwards /api/* traffic to the backend unmodified,
// cookies included. The route guard never inspects these requests; the
// backend enforces auth per request.
func NewBackendProxy(target *url.URL, log *slog.Logger) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(target)

	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error("backend proxy error", "path", r.URL.Path, "error", err)
		response.BadGateway(w, "The worklog service is currently unavailable")
	}

	return proxy
}
