package user

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying the authenticated user.
func NewContext(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext extracts the authenticated user placed by the session
// middleware. Returns ErrNoUser when the request was not authenticated.
func FromContext(ctx context.Context) (*User, error) {
	u, ok := ctx.Value(contextKey{}).(*User)
	if !ok || u == nil {
		return nil, ErrNoUser
	}
	return u, nil
}
