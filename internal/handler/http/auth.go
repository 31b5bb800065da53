package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/handler/http/middleware"
	"github.com/hoursly/worklog-portal/internal/handler/http/response"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

// AuthBackend is the slice of the API client the auth handler needs.
type AuthBackend interface {
	Login(ctx context.Context, email, password string) (*user.User, []*http.Cookie, error)
	Logout(ctx context.Context, sess session.Session) error
}

type AuthHandler interface {
	// LoginPage returns the login view model
	LoginPage(w http.ResponseWriter, r *http.Request)
	// Login authenticates against the backend and relays its session cookie
	Login(w http.ResponseWriter, r *http.Request)
	// Logout invalidates the backend session and clears the cookie
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	backend    AuthBackend
	cookieName string
}

func NewAuthHandler(backend AuthBackend, cookieName string) AuthHandler {
	return &authHandlerImpl{backend: backend, cookieName: cookieName}
}

// LoginPage handles GET /login
func (h *authHandlerImpl) LoginPage(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"from": r.URL.Query().Get("from"),
	})
}

// Login handles POST /login. A 401 from the backend is answered in place:
// redirecting the failing login attempt itself would loop.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	u, cookies, err := h.backend.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	for _, c := range cookies {
		http.SetCookie(w, c)
	}
	response.SuccessWithMessage(w, "Logged in", u)
}

// Logout handles POST /logout. The cookie is cleared even when the backend
// call fails; the browser side of the session must always end.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromRequest(r, h.cookieName); ok {
		if err := h.backend.Logout(r.Context(), sess); err != nil {
			middleware.ClearSessionCookie(w, h.cookieName)
			response.HandleError(w, err)
			return
		}
	}

	middleware.ClearSessionCookie(w, h.cookieName)
	response.SuccessWithMessage(w, "Logged out", nil)
}
