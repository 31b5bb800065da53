package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNotVisible       = errors.New("employee is outside the viewer's visibility scope")
)
