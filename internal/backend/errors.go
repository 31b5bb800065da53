package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable wraps transport-level failures: the backend could not be
// reached at all, as opposed to answering with an error status.
var ErrUnreachable = errors.New("backend unreachable")

// APIError is the uniform error the client returns for every non-2xx backend
// response. Call sites discriminate on it with errors.As instead of probing
// response shapes at runtime.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (%d %s)", e.Message, e.StatusCode, e.Code)
}

func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
}

func (e *APIError) IsServer() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// AsAPIError unwraps err into an *APIError if there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// statusMessages are the generic fallbacks used when the backend response
// carries no structured message.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "The request was invalid",
	http.StatusUnauthorized:        "Your session has expired, please log in again",
	http.StatusForbidden:           "You do not have permission to view this data",
	http.StatusNotFound:            "The requested resource was not found",
	http.StatusConflict:            "The request conflicts with the current state",
	http.StatusUnprocessableEntity: "The submitted data failed validation",
}

func fallbackMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	if status >= http.StatusInternalServerError {
		return "The server encountered an unexpected error"
	}
	return http.StatusText(status)
}
