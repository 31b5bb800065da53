package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoursly/worklog-portal/internal/domain/user"
	"github.com/hoursly/worklog-portal/internal/domain/worklog"
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

type stubWorklogService struct {
	list *worklog.ListResponse
	err  error

	createdID string
	deletedID string
	updatedID string
}

func (s *stubWorklogService) List(ctx context.Context, sess session.Session, viewer user.User, q daterange.Query) (*worklog.ListResponse, error) {
	return s.list, s.err
}

func (s *stubWorklogService) Create(ctx context.Context, sess session.Session, viewer user.User, req worklog.CreateRequest) (*worklog.Worklog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.createdID = "wl-new"
	return &worklog.Worklog{ID: "wl-new"}, s.err
}

func (s *stubWorklogService) Update(ctx context.Context, sess session.Session, viewer user.User, id string, req worklog.UpdateRequest) (*worklog.Worklog, error) {
	s.updatedID = id
	return &worklog.Worklog{ID: id}, s.err
}

func (s *stubWorklogService) Delete(ctx context.Context, sess session.Session, id string) error {
	s.deletedID = id
	return s.err
}

func worklogRouter(h WorklogHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/worklogs", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

var worklogViewer = user.User{ID: "emp-1", Role: user.RoleEmployee}

func TestWorklogList(t *testing.T) {
	svc := &stubWorklogService{list: &worklog.ListResponse{
		Period: daterange.Info{Label: "This Week"},
	}}
	router := worklogRouter(NewWorklogHandler(svc))

	req := authed(httptest.NewRequest(http.MethodGet, "/worklogs", nil), worklogViewer)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorklogCreate(t *testing.T) {
	svc := &stubWorklogService{}
	router := worklogRouter(NewWorklogHandler(svc))

	body := `{"work_date": "2024-01-02", "hours_worked": 8, "work_type": "development"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/worklogs", strings.NewReader(body)), worklogViewer)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "wl-new", svc.createdID)
}

func TestWorklogCreate_ValidationFailure(t *testing.T) {
	svc := &stubWorklogService{}
	router := worklogRouter(NewWorklogHandler(svc))

	body := `{"work_date": "2024-01-02", "hours_worked": 0, "work_type": "development"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/worklogs", strings.NewReader(body)), worklogViewer)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Error.Details, "hours_worked")
}

func TestWorklogUpdate(t *testing.T) {
	svc := &stubWorklogService{}
	router := worklogRouter(NewWorklogHandler(svc))

	body := `{"work_date": "2024-01-02", "hours_worked": 6, "work_type": "meeting"}`
	req := authed(httptest.NewRequest(http.MethodPut, "/worklogs/wl-1", strings.NewReader(body)), worklogViewer)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wl-1", svc.updatedID)
}

func TestWorklogDelete(t *testing.T) {
	svc := &stubWorklogService{}
	router := worklogRouter(NewWorklogHandler(svc))

	req := authed(httptest.NewRequest(http.MethodDelete, "/worklogs/wl-1", nil), worklogViewer)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "wl-1", svc.deletedID)
}

