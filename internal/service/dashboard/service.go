package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hoursly/worklog-portal/internal/domain/dashboard"
	"github.com/hoursly/worklog-portal/internal/domain/employee"
	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/domain/worklog"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
	"github.com/hoursly/worklog-portal/internal/pkg/latest"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
	"github.com/hoursly/worklog-portal/internal/service/stats"
)

const recentWorklogLimit = 5

// Backend is the slice of the API client the dashboard views need.
type Backend interface {
	MyWorklogs(ctx context.Context, sess session.Session, startDate, endDate string) ([]worklog.Worklog, error)
	TeamWorklogs(ctx context.Context, sess session.Session, startDate, endDate, employeeID string) ([]worklog.Worklog, error)
	DepartmentWorklogs(ctx context.Context, sess session.Session, startDate, endDate, employeeID string) ([]worklog.Worklog, error)
	VisibleEmployees(ctx context.Context, sess session.Session) ([]employee.Employee, error)
	Employee(ctx context.Context, sess session.Session, id string) (*employee.Employee, error)
	Departments(ctx context.Context, sess session.Session) ([]employee.Department, error)
	DepartmentHierarchy(ctx context.Context, sess session.Session, id string) (*employee.DepartmentNode, error)
}

type DashboardServiceImpl struct {
	backend Backend
	tracker *latest.Tracker
}

func NewDashboardService(b Backend, tracker *latest.Tracker) dashboard.Service {
	return &DashboardServiceImpl{backend: b, tracker: tracker}
}

// Overview returns the role-scoped dashboard for one period. Rapid period
// changes from the same session cancel the superseded fetch, so a stale
// response can never be delivered after a newer one.
func (s *DashboardServiceImpl) Overview(ctx context.Context, sess session.Session, viewer user.User, q daterange.Query) (*dashboard.Overview, error) {
	now := time.Now()
	rng, err := q.Resolve(now)
	if err != nil {
		return nil, err
	}

	ctx, done := s.tracker.Begin(ctx, sess.Value+":overview")
	defer done()

	ov := &dashboard.Overview{Viewer: viewer, Period: rng.Info(now)}
	start, end := rng.Start.Format(daterange.DateLayout), rng.End.Format(daterange.DateLayout)

	if !viewer.CanViewTeamData() {
		logs, err := s.backend.MyWorklogs(ctx, sess, start, end)
		if err != nil {
			return nil, err
		}

		my := stats.Personal(logs, rng.ExpectedHours())
		my.EmployeeID = viewer.ID
		my.Name = viewer.Name
		ov.MyStats = &my
		ov.TypeBreakdown = stats.TypeBreakdown(logs)
		ov.Recent = recent(logs, recentWorklogLimit)
		return ov, nil
	}

	logs, roster, err := s.fetchScope(ctx, sess, viewer, start, end)
	if err != nil {
		return nil, err
	}

	members := stats.Members(roster, logs, rng.ExpectedHours())
	group := stats.Group(members, rng.ExpectedHours())
	ov.Group = &group
	ov.Members = members
	ov.TypeBreakdown = stats.TypeBreakdown(logs)
	return ov, nil
}

// Team returns the roster view. Directors additionally get the department
// list for the hierarchy filter.
func (s *DashboardServiceImpl) Team(ctx context.Context, sess session.Session, viewer user.User, q daterange.Query) (*dashboard.TeamView, error) {
	if !viewer.CanViewTeamData() {
		return nil, dashboard.ErrForbiddenScope
	}

	now := time.Now()
	rng, err := q.Resolve(now)
	if err != nil {
		return nil, err
	}

	ctx, done := s.tracker.Begin(ctx, sess.Value+":team")
	defer done()

	start, end := rng.Start.Format(daterange.DateLayout), rng.End.Format(daterange.DateLayout)

	var (
		logs        []worklog.Worklog
		roster      []employee.Employee
		departments []employee.Department
		hierarchy   *employee.DepartmentNode
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, roster, err = s.fetchScope(gCtx, sess, viewer, start, end)
		return err
	})
	if viewer.CanViewDepartmentData() {
		g.Go(func() error {
			var err error
			departments, err = s.backend.Departments(gCtx, sess)
			return err
		})
		if viewer.DepartmentID != nil {
			deptID := *viewer.DepartmentID
			g.Go(func() error {
				var err error
				hierarchy, err = s.backend.DepartmentHierarchy(gCtx, sess, deptID)
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	members := stats.Members(roster, logs, rng.ExpectedHours())
	return &dashboard.TeamView{
		Period:        rng.Info(now),
		Group:         stats.Group(members, rng.ExpectedHours()),
		Members:       members,
		TypeBreakdown: stats.TypeBreakdown(logs),
		Departments:   departments,
		Hierarchy:     hierarchy,
	}, nil
}

// EmployeeDetail loads one employee's profile and, only once the visibility
// check against the fetched profile passes, that employee's worklogs.
func (s *DashboardServiceImpl) EmployeeDetail(ctx context.Context, sess session.Session, viewer user.User, employeeID string, q daterange.Query) (*dashboard.EmployeeDetail, error) {
	now := time.Now()
	rng, err := q.Resolve(now)
	if err != nil {
		return nil, err
	}

	ctx, done := s.tracker.Begin(ctx, sess.Value+":employee:"+employeeID)
	defer done()

	// The permission check depends on the fetched profile, so the worklog
	// fetch is sequenced after it.
	target, err := s.backend.Employee(ctx, sess, employeeID)
	if err != nil {
		return nil, err
	}
	if !target.VisibleTo(viewer) {
		return nil, employee.ErrNotVisible
	}

	start, end := rng.Start.Format(daterange.DateLayout), rng.End.Format(daterange.DateLayout)

	var logs []worklog.Worklog
	switch {
	case viewer.ID == target.ID:
		logs, err = s.backend.MyWorklogs(ctx, sess, start, end)
	case viewer.CanViewDepartmentData():
		logs, err = s.backend.DepartmentWorklogs(ctx, sess, start, end, employeeID)
	default:
		logs, err = s.backend.TeamWorklogs(ctx, sess, start, end, employeeID)
	}
	if err != nil {
		return nil, err
	}

	detail := stats.PerEmployee(target.ID, logs, rng.ExpectedHours())
	detail.Name = target.Name

	return &dashboard.EmployeeDetail{
		Employee:      *target,
		Period:        rng.Info(now),
		Stats:         detail,
		TypeBreakdown: stats.TypeBreakdown(logs),
		Worklogs:      recent(logs, len(logs)),
	}, nil
}

// fetchScope loads the worklogs and roster for the viewer's scope in
// parallel, then narrows the roster to direct reports (team leads) or the
// viewer's department (directors).
func (s *DashboardServiceImpl) fetchScope(ctx context.Context, sess session.Session, viewer user.User, start, end string) ([]worklog.Worklog, []employee.Employee, error) {
	var (
		logs      []worklog.Worklog
		employees []employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if viewer.CanViewDepartmentData() {
			logs, err = s.backend.DepartmentWorklogs(gCtx, sess, start, end, "")
		} else {
			logs, err = s.backend.TeamWorklogs(gCtx, sess, start, end, "")
		}
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = s.backend.VisibleEmployees(gCtx, sess)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return logs, rosterFor(viewer, employees), nil
}

func rosterFor(viewer user.User, employees []employee.Employee) []employee.Employee {
	var roster []employee.Employee
	for _, e := range employees {
		switch {
		case viewer.CanViewDepartmentData():
			if viewer.DepartmentID != nil && e.DepartmentID == *viewer.DepartmentID {
				roster = append(roster, e)
			}
		case viewer.CanViewTeamData():
			if e.TeamLeadID != nil && *e.TeamLeadID == viewer.ID {
				roster = append(roster, e)
			}
		}
	}
	return roster
}

// recent returns up to limit worklogs ordered newest first.
func recent(logs []worklog.Worklog, limit int) []worklog.Worklog {
	sorted := make([]worklog.Worklog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].WorkDate > sorted[j].WorkDate })
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
