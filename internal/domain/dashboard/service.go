package dashboard

import (
	"context"

	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

// Service defines the aggregated view operations
type Service interface {
	// Overview returns the role-scoped dashboard for the viewer
	Overview(ctx context.Context, sess session.Session, viewer user.User, q daterange.Query) (*Overview, error)

	// Team returns the roster view for team leads and directors
	Team(ctx context.Context, sess session.Session, viewer user.User, q daterange.Query) (*TeamView, error)

	// EmployeeDetail returns the visibility-gated drill-down for one employee
	EmployeeDetail(ctx context.Context, sess session.Session, viewer user.User, employeeID string, q daterange.Query) (*EmployeeDetail, error)
}
