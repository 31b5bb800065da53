package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hoursly/worklog-portal/internal/domain/employee"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

// VisibleEmployees returns every employee inside the viewer's visibility
// scope, as the backend resolves it.
func (c *Client) VisibleEmployees(ctx context.Context, sess session.Session) ([]employee.Employee, error) {
	var employees []employee.Employee
	if _, err := c.do(ctx, sess, "employees.visible", http.MethodGet, "/api/employees/visible", nil, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// Employee returns one employee profile by id. A backend 404 surfaces as
// employee.ErrEmployeeNotFound.
func (c *Client) Employee(ctx context.Context, sess session.Session, id string) (*employee.Employee, error) {
	var e employee.Employee
	if _, err := c.do(ctx, sess, "employees.get", http.MethodGet, "/api/employees/"+url.PathEscape(id), nil, nil, &e); err != nil {
		if apiErr, ok := AsAPIError(err); ok && apiErr.IsNotFound() {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Departments returns the flat department list.
func (c *Client) Departments(ctx context.Context, sess session.Session) ([]employee.Department, error) {
	var departments []employee.Department
	if _, err := c.do(ctx, sess, "departments.list", http.MethodGet, "/api/departments", nil, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// DepartmentHierarchy returns the subtree rooted at one department.
func (c *Client) DepartmentHierarchy(ctx context.Context, sess session.Session, id string) (*employee.DepartmentNode, error) {
	var node employee.DepartmentNode
	path := "/api/departments/" + url.PathEscape(id) + "/hierarchy"
	if _, err := c.do(ctx, sess, "departments.hierarchy", http.MethodGet, path, nil, nil, &node); err != nil {
		return nil, err
	}
	return &node, nil
}
