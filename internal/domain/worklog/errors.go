package worklog

import "errors"

var ErrWorklogNotFound = errors.New("worklog not found")
