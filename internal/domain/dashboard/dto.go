package dashboard

import (
	"github.com/hoursly/worklog-portal/internal/domain/employee"
	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/domain/worklog"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
)

// ========== PER-EMPLOYEE STATS ==========

// MemberStats is the aggregate for one employee over one period. Derived,
// never stored; recomputed on every period or filter change.
type MemberStats struct {
	EmployeeID      string  `json:"employee_id"`
	Name            string  `json:"name,omitempty"`
	TotalHours      float64 `json:"total_hours"`
	DaysWorked      int     `json:"days_worked"`
	AverageHours    float64 `json:"average_hours"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// ========== GROUP ROLL-UP ==========

// GroupStats is the team or department roll-up for one period.
type GroupStats struct {
	MemberCount           int     `json:"member_count"`
	TotalHours            float64 `json:"total_hours"`
	AverageHoursPerMember float64 `json:"average_hours_per_member"`
	UtilizationRate       float64 `json:"utilization_rate"`
	EmployeesWithLogs     int     `json:"employees_with_logs"`
	LogComplianceRate     float64 `json:"log_compliance_rate"`
}

// ========== WORK-TYPE BREAKDOWN ==========

// TypeShare is one slice of the work-type distribution chart.
type TypeShare struct {
	WorkType   string  `json:"work_type"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

// ========== VIEW MODELS ==========

// Overview is the role-scoped dashboard view model: employees see their own
// stats, team leads and directors additionally see the group roll-up and
// per-member rows.
type Overview struct {
	Viewer        user.User         `json:"viewer"`
	Period        daterange.Info    `json:"period"`
	MyStats       *MemberStats      `json:"my_stats,omitempty"`
	Group         *GroupStats       `json:"group,omitempty"`
	Members       []MemberStats     `json:"members,omitempty"`
	TypeBreakdown []TypeShare       `json:"type_breakdown"`
	Recent        []worklog.Worklog `json:"recent_worklogs,omitempty"`
}

// TeamView is the roster page for team leads and directors. Directors also
// get the department list and the subtree rooted at their own department for
// the hierarchy filter.
type TeamView struct {
	Period        daterange.Info           `json:"period"`
	Group         GroupStats               `json:"group"`
	Members       []MemberStats            `json:"members"`
	TypeBreakdown []TypeShare              `json:"type_breakdown"`
	Departments   []employee.Department    `json:"departments,omitempty"`
	Hierarchy     *employee.DepartmentNode `json:"hierarchy,omitempty"`
}

// EmployeeDetail is the visibility-gated drill-down for one employee.
type EmployeeDetail struct {
	Employee      employee.Employee `json:"employee"`
	Period        daterange.Info    `json:"period"`
	Stats         MemberStats       `json:"stats"`
	TypeBreakdown []TypeShare       `json:"type_breakdown"`
	Worklogs      []worklog.Worklog `json:"worklogs"`
}
