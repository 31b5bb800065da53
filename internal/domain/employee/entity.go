package employee

import (
	"github.com/hoursly/worklog-portal/internal/domain/user"
)

// Employee is a user's profile as the backend exposes it for visibility
// purposes. TeamLeadID is a nullable back-reference, not ownership.
type Employee struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Position     *string `json:"position,omitempty"`
	TeamLeadID   *string `json:"team_lead_id,omitempty"`
	DepartmentID string  `json:"department_id"`
}

// VisibleTo reports whether viewer may see this employee's worklogs:
// self-access is always permitted, directors see their own department,
// team viewers see their direct reports.
func (e Employee) VisibleTo(viewer user.User) bool {
	if viewer.ID == e.ID {
		return true
	}
	if viewer.CanViewDepartmentData() &&
		viewer.DepartmentID != nil && *viewer.DepartmentID == e.DepartmentID {
		return true
	}
	if viewer.CanViewTeamData() &&
		e.TeamLeadID != nil && *e.TeamLeadID == viewer.ID {
		return true
	}
	return false
}

type Department struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

// DepartmentNode is one level of the department hierarchy tree.
type DepartmentNode struct {
	Department
	Children []DepartmentNode `json:"children,omitempty"`
}
