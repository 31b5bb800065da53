package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hoursly/worklog-portal/internal/domain/worklog"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

// MyWorklogs returns the viewer's own worklogs inside the period.
func (c *Client) MyWorklogs(ctx context.Context, sess session.Session, startDate, endDate string) ([]worklog.Worklog, error) {
	var logs []worklog.Worklog
	_, err := c.do(ctx, sess, "worklogs.my", http.MethodGet, "/api/worklogs/my",
		rangeQuery(startDate, endDate), nil, &logs)
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// TeamWorklogs returns the worklogs of the viewer's direct reports inside
// the period, optionally narrowed to one employee.
func (c *Client) TeamWorklogs(ctx context.Context, sess session.Session, startDate, endDate, employeeID string) ([]worklog.Worklog, error) {
	return c.scopedWorklogs(ctx, sess, "worklogs.team", "/api/worklogs/team", startDate, endDate, employeeID)
}

// DepartmentWorklogs returns the worklogs of the viewer's department inside
// the period, optionally narrowed to one employee.
func (c *Client) DepartmentWorklogs(ctx context.Context, sess session.Session, startDate, endDate, employeeID string) ([]worklog.Worklog, error) {
	return c.scopedWorklogs(ctx, sess, "worklogs.department", "/api/worklogs/department", startDate, endDate, employeeID)
}

func (c *Client) scopedWorklogs(ctx context.Context, sess session.Session, endpoint, path, startDate, endDate, employeeID string) ([]worklog.Worklog, error) {
	q := rangeQuery(startDate, endDate)
	if employeeID != "" {
		q.Set("employeeId", employeeID)
	}

	var logs []worklog.Worklog
	if _, err := c.do(ctx, sess, endpoint, http.MethodGet, path, q, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// CreateWorklog submits a new worklog entry.
func (c *Client) CreateWorklog(ctx context.Context, sess session.Session, req worklog.CreateRequest) (*worklog.Worklog, error) {
	var created worklog.Worklog
	_, err := c.do(ctx, sess, "worklogs.create", http.MethodPost, "/api/worklogs", nil, req, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWorklog replaces an existing worklog entry. A backend 404 surfaces as
// worklog.ErrWorklogNotFound.
func (c *Client) UpdateWorklog(ctx context.Context, sess session.Session, id string, req worklog.UpdateRequest) (*worklog.Worklog, error) {
	var updated worklog.Worklog
	_, err := c.do(ctx, sess, "worklogs.update", http.MethodPut, "/api/worklogs/"+url.PathEscape(id), nil, req, &updated)
	if err != nil {
		return nil, worklogNotFound(err)
	}
	return &updated, nil
}

// DeleteWorklog removes a worklog entry.
func (c *Client) DeleteWorklog(ctx context.Context, sess session.Session, id string) error {
	_, err := c.do(ctx, sess, "worklogs.delete", http.MethodDelete, "/api/worklogs/"+url.PathEscape(id), nil, nil, nil)
	return worklogNotFound(err)
}

func worklogNotFound(err error) error {
	if apiErr, ok := AsAPIError(err); ok && apiErr.IsNotFound() {
		return worklog.ErrWorklogNotFound
	}
	return err
}

// WorklogTypes returns the backend's work-type catalogue.
func (c *Client) WorklogTypes(ctx context.Context, sess session.Session) ([]worklog.Type, error) {
	var types []worklog.Type
	if _, err := c.do(ctx, sess, "worklogs.types", http.MethodGet, "/api/worklog-types", nil, nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}
