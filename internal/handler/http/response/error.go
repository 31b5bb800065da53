package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/hoursly/worklog-portal/internal/backend"
	"github.com/hoursly/worklog-portal/internal/domain/dashboard"
	"github.com/hoursly/worklog-portal/internal/domain/employee"
	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/domain/worklog"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
	"github.com/hoursly/worklog-portal/internal/pkg/validator"
)

// HandleError maps domain and backend errors to HTTP responses. Backend
// errors arrive as one discriminated *backend.APIError; 5xx detail is never
// relayed to the browser.
func HandleError(w http.ResponseWriter, err error) {
	// Local form validation failures carry a field map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Backend responses keep their status; server failures get a generic message
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsServer():
			InternalServerError(w, "The server encountered an unexpected error")
		case apiErr.IsUnauthorized():
			Unauthorized(w, apiErr.Message)
		case apiErr.IsForbidden():
			Forbidden(w, apiErr.Message)
		case apiErr.IsNotFound():
			NotFound(w, apiErr.Message)
		case apiErr.StatusCode == http.StatusUnprocessableEntity:
			ValidationError(w, apiErr.Fields)
		case apiErr.StatusCode == http.StatusConflict:
			Conflict(w, apiErr.Message)
		default:
			BadRequest(w, apiErr.Message, apiErr.Fields)
		}
		return
	}

	switch {
	case errors.Is(err, backend.ErrUnreachable):
		BadGateway(w, "The worklog service is currently unavailable")

	case errors.Is(err, user.ErrNoUser):
		Unauthorized(w, "Authentication required")

	case errors.Is(err, dashboard.ErrForbiddenScope):
		Forbidden(w, "Your role does not permit viewing this data")
	case errors.Is(err, employee.ErrNotVisible):
		Forbidden(w, "This employee is outside your visibility scope")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, worklog.ErrWorklogNotFound):
		NotFound(w, "Worklog not found")

	case errors.Is(err, daterange.ErrInvalidDate),
		errors.Is(err, daterange.ErrUnknownPeriod):
		BadRequest(w, err.Error(), nil)

	// A newer request for the same view cancelled this one; its result
	// must not be applied.
	case errors.Is(err, context.Canceled):
		Conflict(w, "Request superseded by a newer one")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
