// Package session carries the opaque backend session credential through a
// request. The portal never inspects the cookie value; presence gates
// client-side routing, validity is the backend's concern.
package session

import (
	"context"
	"net/http"
)

// Session is the single session-cookie credential issued by the backend.
type Session struct {
	Name  string
	Value string
}

// FromRequest extracts the session cookie from an incoming request.
func FromRequest(r *http.Request, cookieName string) (Session, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return Session{}, false
	}
	return Session{Name: cookieName, Value: c.Value}, true
}

// Cookie renders the session back into a request cookie.
func (s Session) Cookie() *http.Cookie {
	return &http.Cookie{Name: s.Name, Value: s.Value}
}

// IsZero reports whether no credential is present.
func (s Session) IsZero() bool {
	return s.Value == ""
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying the session credential.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts the session placed by the session middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok && !s.IsZero()
}
