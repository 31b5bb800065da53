package backend

import (
	"context"
	"net/http"

	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend and returns the user together with
// the Set-Cookie headers of the response, so the web tier can relay the
// session cookie to the browser.
func (c *Client) Login(ctx context.Context, email, password string) (*user.User, []*http.Cookie, error) {
	var u user.User
	cookies, err := c.do(ctx, session.Session{}, "auth.login", http.MethodPost, "/api/auth/login",
		nil, loginRequest{Email: email, Password: password}, &u)
	if err != nil {
		return nil, nil, err
	}
	return &u, cookies, nil
}

// Logout invalidates the backend session.
func (c *Client) Logout(ctx context.Context, sess session.Session) error {
	_, err := c.do(ctx, sess, "auth.logout", http.MethodPost, "/api/auth/logout", nil, nil, nil)
	return err
}

// Me returns the session's user. A 401 here means the cookie is stale and
// the caller must force a fresh login.
func (c *Client) Me(ctx context.Context, sess session.Session) (*user.User, error) {
	var u user.User
	if _, err := c.do(ctx, sess, "auth.me", http.MethodGet, "/api/auth/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
