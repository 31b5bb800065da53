package user

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"  // Logs own hours only
	RoleTeamLead Role = "TEAM_LEAD" // Sees direct reports
	RoleDirector Role = "DIRECTOR"  // Sees whole department
)

// User is the session identity returned by the backend. The role is fixed for
// the lifetime of the session and determines the visibility scope.
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         Role    `json:"role"`
	DepartmentID *string `json:"department_id,omitempty"`
}

// IsDirector checks if user has department-wide access
func (u *User) IsDirector() bool {
	return u.Role == RoleDirector
}

// CanViewTeamData checks if user may see direct-report data
func (u *User) CanViewTeamData() bool {
	return u.Role == RoleTeamLead || u.Role == RoleDirector
}

// CanViewDepartmentData checks if user may see department-wide data
func (u *User) CanViewDepartmentData() bool {
	return u.Role == RoleDirector
}
