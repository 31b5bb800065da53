package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoursly/worklog-portal/internal/backend"
	"github.com/hoursly/worklog-portal/internal/domain/dashboard"
	"github.com/hoursly/worklog-portal/internal/domain/employee"
	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
	"github.com/hoursly/worklog-portal/internal/pkg/validator"
)

func handle(t *testing.T, err error) (int, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "hours_worked", Message: "hours_worked must be greater than 0"},
	}

	code, body := handle(t, errs)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "hours_worked")
}

func TestHandleError_BackendStatusRelayed(t *testing.T) {
	cases := []struct {
		name   string
		apiErr *backend.APIError
		want   int
	}{
		{"unauthorized", &backend.APIError{StatusCode: http.StatusUnauthorized, Message: "expired"}, http.StatusUnauthorized},
		{"forbidden", &backend.APIError{StatusCode: http.StatusForbidden, Message: "no"}, http.StatusForbidden},
		{"not found", &backend.APIError{StatusCode: http.StatusNotFound, Message: "gone"}, http.StatusNotFound},
		{"conflict", &backend.APIError{StatusCode: http.StatusConflict, Message: "dup"}, http.StatusConflict},
		{"validation", &backend.APIError{StatusCode: http.StatusUnprocessableEntity, Fields: map[string]string{"work_date": "bad"}}, http.StatusUnprocessableEntity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, _ := handle(t, c.apiErr)
			assert.Equal(t, c.want, code)
		})
	}
}

func TestHandleError_BackendServerDetailHidden(t *testing.T) {
	apiErr := &backend.APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "pq: relation worklogs does not exist",
	}

	code, body := handle(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "The server encountered an unexpected error", body.Error.Message)
	assert.NotContains(t, body.Error.Message, "pq:")
}

func TestHandleError_Sentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unreachable backend", backend.ErrUnreachable, http.StatusBadGateway},
		{"no user", user.ErrNoUser, http.StatusUnauthorized},
		{"forbidden scope", dashboard.ErrForbiddenScope, http.StatusForbidden},
		{"employee not visible", employee.ErrNotVisible, http.StatusForbidden},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"invalid date", daterange.ErrInvalidDate, http.StatusBadRequest},
		{"unknown period", daterange.ErrUnknownPeriod, http.StatusBadRequest},
		{"superseded request", context.Canceled, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, body := handle(t, c.err)
			assert.Equal(t, c.want, code)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("fetch overview"), backend.ErrUnreachable)
	code, body := handle(t, wrapped)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "BACKEND_UNAVAILABLE", body.Error.Code)
}
