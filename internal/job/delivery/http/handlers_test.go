package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"directory-api/internal/authz"
	"directory-api/internal/job"
	"directory-api/internal/middleware"
	"directory-api/internal/model"
	"directory-api/pkg/log"
	"directory-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	running bool
}

func (f *fakeUseCase) Run(_ context.Context, name model.JobName) (model.JobStats, error) {
	switch {
	case name != model.JobDisabling:
		return model.JobStats{}, job.ErrUnknownJob
	case f.running:
		return model.JobStats{}, job.ErrJobRunning
	}
	return model.JobStats{Job: name, RunID: "01J", Checked: 4, Transitioned: 1, Errors: []string{}}, nil
}

func (f *fakeUseCase) Jobs() []model.JobName {
	return []model.JobName{model.JobDisabling}
}

func newRouter(t *testing.T, uc job.UseCase, claims ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, err := authz.New(log.NewNop(), authz.Options{})
	require.NoError(t, err)
	mw := middleware.New(log.NewNop(), nil, nil, engine, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		sc := model.Scope{UserID: "caller", Claims: model.NewClaimSet(claims)}
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
	})
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group("/api"), mw)
	return r
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		claims   []string
		running  bool
		wantCode int
	}{
		{name: "ok", path: "/api/jobs/disabling/run", claims: []string{"SuperAdmin"}, wantCode: http.StatusOK},
		{name: "running", path: "/api/jobs/disabling/run", claims: []string{"SuperAdmin"}, running: true, wantCode: http.StatusConflict},
		{name: "unknown", path: "/api/jobs/reindex/run", claims: []string{"SuperAdmin"}, wantCode: http.StatusNotFound},
		{name: "not super admin", path: "/api/jobs/disabling/run", claims: []string{"CityAdminFor:leeds"}, wantCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, &fakeUseCase{running: tt.running}, tt.claims...)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, nil))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRunReturnsStats(t *testing.T) {
	r := newRouter(t, &fakeUseCase{}, "SuperAdmin")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/jobs/disabling/run", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data model.JobStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, model.JobDisabling, body.Data.Job)
	assert.Equal(t, 4, body.Data.Checked)
	assert.Equal(t, 1, body.Data.Transitioned)
}

func TestList(t *testing.T) {
	r := newRouter(t, &fakeUseCase{}, "SuperAdmin")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"jobs":["disabling"]`)
}
