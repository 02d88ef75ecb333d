package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"directory-api/internal/authz"
	"directory-api/internal/model"
	"directory-api/internal/user"
	"directory-api/pkg/log"
	"directory-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUsers map[string]model.User

func (f fakeUsers) GetBySubject(_ context.Context, subject string) (model.User, error) {
	if subject == "boom" {
		return model.User{}, errors.New("db down")
	}
	u, ok := f[subject]
	if !ok {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newTestMiddleware(t *testing.T, users fakeUsers) (Middleware, scope.Manager) {
	t.Helper()
	jwtManager, err := scope.NewManager(scope.Config{SecretKey: testSecret})
	require.NoError(t, err)
	engine, err := authz.New(log.NewNop(), authz.Options{})
	require.NoError(t, err)
	return New(log.NewNop(), jwtManager, users, engine, nil), jwtManager
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

// withCaller stands in for Auth.
func withCaller(claims ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{UserID: "caller", Claims: model.NewClaimSet(claims), IsActive: true}
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

func TestAuth(t *testing.T) {
	users := fakeUsers{
		"auth0|active":   {ID: "u1", Subject: "auth0|active", AuthClaims: []string{"SuperAdmin"}, IsActive: true},
		"auth0|inactive": {ID: "u2", Subject: "auth0|inactive", IsActive: false},
	}
	mw, jwtManager := newTestMiddleware(t, users)

	token := func(sub string) string {
		tok, err := jwtManager.CreateToken(scope.Payload{RegisteredClaims: jwt.RegisteredClaims{Subject: sub}})
		require.NoError(t, err)
		return "Bearer " + tok
	}

	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		require.True(t, ok)
		c.String(http.StatusOK, sc.UserID)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "no header", header: "", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "unknown subject", header: token("auth0|ghost"), want: http.StatusUnauthorized},
		{name: "inactive user", header: token("auth0|inactive"), want: http.StatusUnauthorized},
		{name: "lookup failure", header: token("boom"), want: http.StatusInternalServerError},
		{name: "active user", header: token("auth0|active"), want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Equal(t, "Authentication required", decode(t, w).Error)
			}
			if tt.want == http.StatusOK {
				assert.Equal(t, "u1", w.Body.String())
			}
		})
	}
}

var errDB = errors.New("db down")

func organisationResolver(calls *int) Resolver {
	orgs := map[string]model.Organisation{
		"o1": {ID: "o1", Key: "shelter-x", AssociatedLocationIds: []string{"leeds"}},
	}
	return Resolver{
		Load: func(_ context.Context, id string) (authz.Target, any, error) {
			*calls++
			if id == "broken" {
				return authz.Target{}, nil, errDB
			}
			o, ok := orgs[id]
			if !ok {
				return authz.Target{}, nil, ErrTargetNotFound
			}
			return authz.OrganisationTarget(o), o, nil
		},
	}
}

func TestGuard(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	serve := func(claims []string, id string, calls *int) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/organisations/:id", withCaller(claims...), mw.Guard(authz.ResourceOrganisation, organisationResolver(calls)),
			func(c *gin.Context) {
				o, ok := GetTarget[model.Organisation](c)
				if ok {
					c.String(http.StatusOK, o.Key)
					return
				}
				c.String(http.StatusOK, "no-target")
			})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/organisations/"+id, nil))
		return w
	}

	t.Run("super admin passes without a lookup", func(t *testing.T) {
		var calls int
		w := serve([]string{"SuperAdmin"}, "missing", &calls)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no-target", w.Body.String())
		assert.Zero(t, calls)
	})

	t.Run("gate denies before lookup", func(t *testing.T) {
		var calls int
		w := serve([]string{"SwepAdmin", "SwepAdminFor:leeds"}, "o1", &calls)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "City admin or organisation admin role required", decode(t, w).Error)
		assert.Zero(t, calls)
	})

	t.Run("missing record", func(t *testing.T) {
		var calls int
		w := serve([]string{"CityAdmin", "CityAdminFor:leeds"}, "o2", &calls)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("lookup failure hides detail", func(t *testing.T) {
		var calls int
		w := serve([]string{"CityAdmin", "CityAdminFor:leeds"}, "broken", &calls)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Something went wrong", decode(t, w).Error)
	})

	t.Run("out of scope", func(t *testing.T) {
		var calls int
		w := serve([]string{"CityAdmin", "CityAdminFor:york"}, "o1", &calls)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, authz.ReasonInsufficientScope, decode(t, w).Error)
	})

	t.Run("org admin path stashes target", func(t *testing.T) {
		var calls int
		w := serve([]string{"OrgAdmin", "AdminFor:shelter-x"}, "o1", &calls)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "shelter-x", w.Body.String())
	})

	t.Run("no caller", func(t *testing.T) {
		var calls int
		r := gin.New()
		r.GET("/organisations/:id", mw.Guard(authz.ResourceOrganisation, organisationResolver(&calls)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/organisations/o1", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGuardFromBody(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	type body struct {
		LocationKey string `json:"LocationKey"`
	}
	res := Resolver{
		FromBody: func(c *gin.Context) (authz.Target, error) {
			var b body
			if err := c.ShouldBindBodyWith(&b, binding.JSON); err != nil {
				return authz.Target{}, ErrInvalidBody
			}
			return authz.Target{Locations: []string{b.LocationKey}}, nil
		},
	}

	serve := func(payload string) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/faqs", withCaller("CityAdmin", "CityAdminFor:leeds"), mw.Guard(authz.ResourceFAQ, res),
			func(c *gin.Context) {
				var b body
				require.NoError(t, c.ShouldBindBodyWith(&b, binding.JSON))
				c.String(http.StatusCreated, b.LocationKey)
			})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/faqs", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := serve(`{"LocationKey":"leeds"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "leeds", w.Body.String())

	assert.Equal(t, http.StatusCreated, serve(`{"LocationKey":"general"}`).Code)
	assert.Equal(t, http.StatusForbidden, serve(`{"LocationKey":"york"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(`{`).Code)
}

func TestGuardLocations(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	serve := func(query string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/banners", withCaller("CityAdmin", "CityAdminFor:leeds", "CityAdminFor:york"),
			mw.GuardLocations(authz.ResourceBannerLocations),
			func(c *gin.Context) { c.String(http.StatusOK, strings.Join(GetLocations(c), "|")) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/banners"+query, nil))
		return w
	}

	w := serve("?locations=leeds,%20york")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "leeds|york", w.Body.String())

	w = serve("")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, authz.ReasonNoLocations, decode(t, w).Error)

	w = serve("?locations=leeds,hull")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied for location: hull", decode(t, w).Error)
}

func TestGuardLocationsSuperAdminUnfiltered(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	r := gin.New()
	r.GET("/faqs", withCaller("SuperAdmin"),
		mw.GuardLocations(authz.ResourceFAQLocations),
		func(c *gin.Context) { c.String(http.StatusOK, "%d", len(GetLocations(c))) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/faqs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Body.String())
}

func TestSuperAdminOnly(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	serve := func(claims ...string) int {
		r := gin.New()
		r.POST("/jobs/:name/run", withCaller(claims...), mw.SuperAdminOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs/verification/run", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve("SuperAdmin"))
	assert.Equal(t, http.StatusForbidden, serve("CityAdmin", "CityAdminFor:leeds"))
}

func TestRateLimit(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)
	r := gin.New()
	r.GET("/ping", mw.RateLimit(t.Context(), RateLimitConfig{RPS: 0.001, Burst: 1}), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())
}

func TestRateLimitSweeperStops(t *testing.T) {
	lim := newIPLimiter(RateLimitConfig{RPS: 1, Burst: 1})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		lim.sweepUntil(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper still running after cancel")
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.GET("/", RequestID(), func(c *gin.Context) {
		id, ok := log.RequestIDFromContext(c.Request.Context())
		require.True(t, ok)
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"https://admin.example.org", "*.streetsupport.net"}
	assert.True(t, originAllowed("https://admin.example.org", allowed))
	assert.True(t, originAllowed("https://cms.streetsupport.net", allowed))
	assert.False(t, originAllowed("https://evil.org", allowed))
	assert.False(t, originAllowed("", allowed))
}
