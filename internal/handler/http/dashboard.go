package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoursly/worklog-portal/internal/domain/dashboard"
	"github.com/hoursly/worklog-portal/internal/domain/employee"
	"github.com/hoursly/worklog-portal/internal/handler/http/response"
)

type DashboardHandler interface {
	// Overview returns the role-scoped dashboard view model
	Overview(w http.ResponseWriter, r *http.Request)
	// Team returns the roster view for team leads and directors
	Team(w http.ResponseWriter, r *http.Request)
	// EmployeeDetail returns the drill-down for one employee
	EmployeeDetail(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Overview handles GET /dashboard
func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	sess, viewer, err := viewContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.Overview(r.Context(), sess, viewer, periodQuery(r))
	if err != nil {
		handleViewError(w, r, err)
		return
	}

	response.Success(w, result)
}

// Team handles GET /team
func (h *dashboardHandlerImpl) Team(w http.ResponseWriter, r *http.Request) {
	sess, viewer, err := viewContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.Team(r.Context(), sess, viewer, periodQuery(r))
	if err != nil {
		handleViewError(w, r, err)
		return
	}

	response.Success(w, result)
}

// EmployeeDetail handles GET /employees/{id}. Out-of-scope targets get a
// hard redirect back to the dashboard, where the notice is rendered.
func (h *dashboardHandlerImpl) EmployeeDetail(w http.ResponseWriter, r *http.Request) {
	sess, viewer, err := viewContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "id")

	result, err := h.dashboardService.EmployeeDetail(r.Context(), sess, viewer, employeeID, periodQuery(r))
	if err != nil {
		if errors.Is(err, employee.ErrNotVisible) {
			http.Redirect(w, r, "/dashboard?notice=employee_not_visible", http.StatusSeeOther)
			return
		}
		handleViewError(w, r, err)
		return
	}

	response.Success(w, result)
}
