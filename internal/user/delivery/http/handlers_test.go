package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"directory-api/internal/authz"
	"directory-api/internal/middleware"
	"directory-api/internal/model"
	"directory-api/internal/user"
	"directory-api/pkg/log"
	"directory-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	user.UseCase
	users     map[string]model.User
	createErr error
}

func (f *fakeUseCase) Detail(_ context.Context, id string) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUseCase) Create(_ context.Context, _ model.Scope, ip user.CreateInput) (model.User, error) {
	if f.createErr != nil {
		return model.User{}, f.createErr
	}
	return model.User{ID: "new", Subject: ip.Subject, AuthClaims: ip.AuthClaims}, nil
}

type orgLocations map[string][]string

func (o orgLocations) OrganisationLocations(_ context.Context, key string) ([]string, error) {
	locs, ok := o[key]
	if !ok {
		return nil, authz.ErrOrganisationNotFound
	}
	return locs, nil
}

func newRouter(t *testing.T, uc user.UseCase, claims ...string) *gin.Engine {
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
	h := New(log.NewNop(), uc, orgLocations{"shelter-x": {"leeds"}}, nil)
	h.RegisterRoutes(r.Group("/api"), mw)
	return r
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestDetailVisibility(t *testing.T) {
	uc := &fakeUseCase{users: map[string]model.User{
		"org-admin": {ID: "org-admin", AuthClaims: []string{"OrgAdmin", "AdminFor:shelter-x"}},
		"stray":     {ID: "stray", AuthClaims: []string{"OrgAdmin", "AdminFor:gone"}},
	}}
	r := newRouter(t, uc, "CityAdmin", "CityAdminFor:leeds")

	get := func(id string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil))
		return w
	}

	w := get("org-admin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"AdminFor:shelter-x"`)

	w = get("stray")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, authz.ReasonInsufficientScope, errorOf(t, w))

	assert.Equal(t, http.StatusNotFound, get("nobody").Code)
}

func TestCreateDeniedCarriesReason(t *testing.T) {
	uc := &fakeUseCase{createErr: &authz.DeniedError{Reason: authz.ReasonManageUsers}}
	r := newRouter(t, uc, "SwepAdmin", "SwepAdminFor:leeds")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"Auth0Id":"auth0|1","Email":"a@b.org","AuthClaims":["SuperAdmin"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, authz.ReasonManageUsers, errorOf(t, w))
}

func TestListGate(t *testing.T) {
	r := newRouter(t, &fakeUseCase{}, "OrgAdmin", "AdminFor:shelter-x")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "City admin role required", errorOf(t, w))
}
