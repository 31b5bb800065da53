package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoursly/worklog-portal/internal/domain/user"
)

func strPtr(s string) *string { return &s }

func TestVisibleTo(t *testing.T) {
	deptA := "dept-a"
	deptB := "dept-b"

	member := Employee{
		ID:           "emp-1",
		Name:         "Alba",
		TeamLeadID:   strPtr("lead-1"),
		DepartmentID: deptA,
	}
	unledMember := Employee{
		ID:           "emp-2",
		Name:         "Bea",
		DepartmentID: deptA,
	}
	otherDept := Employee{
		ID:           "emp-3",
		Name:         "Cato",
		TeamLeadID:   strPtr("lead-2"),
		DepartmentID: deptB,
	}

	employeeViewer := user.User{ID: "emp-1", Role: user.RoleEmployee, DepartmentID: &deptA}
	teamLead := user.User{ID: "lead-1", Role: user.RoleTeamLead, DepartmentID: &deptA}
	otherLead := user.User{ID: "lead-9", Role: user.RoleTeamLead, DepartmentID: &deptA}
	director := user.User{ID: "dir-1", Role: user.RoleDirector, DepartmentID: &deptA}
	rootDirector := user.User{ID: "dir-2", Role: user.RoleDirector}

	cases := []struct {
		name    string
		subject Employee
		viewer  user.User
		want    bool
	}{
		{"employee sees self", member, employeeViewer, true},
		{"employee cannot see a peer", unledMember, employeeViewer, false},
		{"team lead sees direct report", member, teamLead, true},
		{"team lead sees self", Employee{ID: "lead-1", DepartmentID: deptA}, teamLead, true},
		{"team lead cannot see non-report", member, otherLead, false},
		{"team lead cannot see unled employee", unledMember, teamLead, false},
		{"director sees own department", unledMember, director, true},
		{"director sees led member of own department", member, director, true},
		{"director cannot see other department", otherDept, director, false},
		{"director without department sees only self", member, rootDirector, false},
		{"director without department sees self", Employee{ID: "dir-2"}, rootDirector, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.subject.VisibleTo(c.viewer))
		})
	}
}
