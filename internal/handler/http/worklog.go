package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoursly/worklog-portal/internal/domain/worklog"
	"github.com/hoursly/worklog-portal/internal/handler/http/response"
)

type WorklogHandler interface {
	// List returns the viewer's date-grouped worklogs plus form metadata
	List(w http.ResponseWriter, r *http.Request)
	// Create submits a new worklog entry
	Create(w http.ResponseWriter, r *http.Request)
	// Update replaces an existing worklog entry
	Update(w http.ResponseWriter, r *http.Request)
	// Delete removes a worklog entry
	Delete(w http.ResponseWriter, r *http.Request)
}

type worklogHandlerImpl struct {
	worklogService worklog.Service
}

func NewWorklogHandler(worklogService worklog.Service) WorklogHandler {
	return &worklogHandlerImpl{worklogService: worklogService}
}

// List handles GET /worklogs
func (h *worklogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, viewer, err := viewContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.worklogService.List(r.Context(), sess, viewer, periodQuery(r))
	if err != nil {
		handleViewError(w, r, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /worklogs
func (h *worklogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, viewer, err := viewContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req worklog.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.worklogService.Create(r.Context(), sess, viewer, req)
	if err != nil {
		handleViewError(w, r, err)
		return
	}

	response.Created(w, "Worklog created", created)
}

// Update handles PUT /worklogs/{id}
func (h *worklogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, viewer, err := viewContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req worklog.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.worklogService.Update(r.Context(), sess, viewer, chi.URLParam(r, "id"), req)
	if err != nil {
		handleViewError(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Worklog updated", updated)
}

// Delete handles DELETE /worklogs/{id}
func (h *worklogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, _, err := viewContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.worklogService.Delete(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		handleViewError(w, r, err)
		return
	}

	response.NoContent(w)
}
