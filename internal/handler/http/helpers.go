package http

import (
	"errors"
	"net/http"

	"github.com/hoursly/worklog-portal/internal/backend"
	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/handler/http/middleware"
	"github.com/hoursly/worklog-portal/internal/handler/http/response"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

// viewContext extracts the session and user the SessionLoader middleware
// placed on the request.
func viewContext(r *http.Request) (session.Session, user.User, error) {
	u, err := user.FromContext(r.Context())
	if err != nil {
		return session.Session{}, user.User{}, err
	}
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return session.Session{}, user.User{}, user.ErrNoUser
	}
	return sess, *u, nil
}

// periodQuery reads the period selection from the request query string.
func periodQuery(r *http.Request) daterange.Query {
	q := r.URL.Query()
	return daterange.Query{
		Period:    q.Get("period"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
}

// handleViewError maps view errors to responses. A backend 401 during an app
// view means the session died mid-flight, which forces a fresh login; every
// other error is answered in place.
func handleViewError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
		middleware.RedirectToLogin(w, r)
		return
	}
	response.HandleError(w, err)
}
