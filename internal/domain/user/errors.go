package user

import "errors"

var ErrNoUser = errors.New("no authenticated user in request context")
