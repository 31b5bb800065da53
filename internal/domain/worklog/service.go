package worklog

import (
	"context"

	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

// Service defines the personal worklog operations
type Service interface {
	// List returns the viewer's date-grouped worklogs plus the work-type
	// catalogue for the entry form
	List(ctx context.Context, sess session.Session, viewer user.User, q daterange.Query) (*ListResponse, error)

	// Create validates and submits a new worklog entry
	Create(ctx context.Context, sess session.Session, viewer user.User, req CreateRequest) (*Worklog, error)

	// Update validates and replaces an existing worklog entry
	Update(ctx context.Context, sess session.Session, viewer user.User, id string, req UpdateRequest) (*Worklog, error)

	// Delete removes a worklog entry
	Delete(ctx context.Context, sess session.Session, id string) error
}
