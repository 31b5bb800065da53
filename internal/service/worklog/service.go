package worklog

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/domain/worklog"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
	"github.com/hoursly/worklog-portal/internal/service/stats"
)

// Backend is the slice of the API client the worklog views need.
type Backend interface {
	MyWorklogs(ctx context.Context, sess session.Session, startDate, endDate string) ([]worklog.Worklog, error)
	WorklogTypes(ctx context.Context, sess session.Session) ([]worklog.Type, error)
	CreateWorklog(ctx context.Context, sess session.Session, req worklog.CreateRequest) (*worklog.Worklog, error)
	UpdateWorklog(ctx context.Context, sess session.Session, id string, req worklog.UpdateRequest) (*worklog.Worklog, error)
	DeleteWorklog(ctx context.Context, sess session.Session, id string) error
}

type WorklogServiceImpl struct {
	backend Backend
}

func NewWorklogService(b Backend) worklog.Service {
	return &WorklogServiceImpl{backend: b}
}

// List fetches the viewer's worklogs and the work-type catalogue in
// parallel; the two have no ordering dependency.
func (s *WorklogServiceImpl) List(ctx context.Context, sess session.Session, viewer user.User, q daterange.Query) (*worklog.ListResponse, error) {
	now := time.Now()
	rng, err := q.Resolve(now)
	if err != nil {
		return nil, err
	}

	var (
		logs  []worklog.Worklog
		types []worklog.Type
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.backend.MyWorklogs(gCtx, sess,
			rng.Start.Format(daterange.DateLayout), rng.End.Format(daterange.DateLayout))
		return err
	})
	g.Go(func() error {
		var err error
		types, err = s.backend.WorklogTypes(gCtx, sess)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &worklog.ListResponse{
		Period:   rng.Info(now),
		Days:     stats.GroupByDate(logs),
		Worklogs: logs,
		Types:    types,
	}, nil
}

// Create validates the form input locally before submitting, so field errors
// surface without a round trip; the backend remains the final authority.
func (s *WorklogServiceImpl) Create(ctx context.Context, sess session.Session, viewer user.User, req worklog.CreateRequest) (*worklog.Worklog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.backend.CreateWorklog(ctx, sess, req)
}

// Update validates the replacement entry and forwards it.
func (s *WorklogServiceImpl) Update(ctx context.Context, sess session.Session, viewer user.User, id string, req worklog.UpdateRequest) (*worklog.Worklog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.backend.UpdateWorklog(ctx, sess, id, req)
}

// Delete removes one entry; ownership is enforced by the backend.
func (s *WorklogServiceImpl) Delete(ctx context.Context, sess session.Session, id string) error {
	return s.backend.DeleteWorklog(ctx, sess, id)
}
