package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"directory-api/internal/authz"
	"directory-api/internal/model"
	pkgErrors "directory-api/pkg/errors"
	"directory-api/pkg/response"
	"directory-api/pkg/scope"
	"directory-api/pkg/tracer"

	"github.com/gin-gonic/gin"
)

const (
	targetKey    = "guard.target"
	locationsKey = "guard.locations"

	defaultParam = "id"
	notFoundMsg  = "Resource not found"
)

var (
	// ErrTargetNotFound is returned by a Resolver when the addressed record is missing.
	ErrTargetNotFound = errors.New("guard target not found")
	// ErrInvalidBody is returned by Resolver.FromBody when the payload cannot be bound.
	ErrInvalidBody = errors.New("invalid request body")
)

// Resolver tells Guard how to find the scope of the addressed record.
type Resolver struct {
	// Param is the route parameter to look up. Defaults to "id".
	Param string
	// Load fetches the record and its scope. The record is stashed for the handler.
	Load func(ctx context.Context, value string) (authz.Target, any, error)
	// FromBody derives the scope of a record that does not exist yet.
	// Implementations must bind with ShouldBindBodyWith.
	FromBody func(c *gin.Context) (authz.Target, error)
}

func (r Resolver) param() string {
	if r.Param == "" {
		return defaultParam
	}
	return r.Param
}

// Guard enforces the policy of resource on a single-record route. It panics
// when resource has no policy, which only happens while wiring routes.
func (m Middleware) Guard(resource authz.Resource, res Resolver) gin.HandlerFunc {
	p, err := m.engine.Policy(resource)
	if err != nil {
		panic(err)
	}

	return func(c *gin.Context) {
		ctx, span := tracer.StartSpan(c.Request.Context(), "authz.guard")
		defer span.End()
		span.SetAttributes(tracer.StringAttr("authz.resource", string(resource)))

		sc, ok := scope.GetScopeFromContext(ctx)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if v, done := m.engine.Precheck(p, sc.Claims); done {
			m.engine.Record(ctx, sc, resource, c.Param(res.param()), v)
			span.SetAttributes(tracer.BoolAttr("authz.allowed", v.Allowed))
			if !v.Allowed {
				response.Forbidden(c, v.Reason)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		var (
			target authz.Target
			err    error
		)
		if c.Request.Method == http.MethodPost {
			// Creation payloads without a scope field are checked by the gate alone.
			if res.FromBody != nil {
				target, err = res.FromBody(c)
			}
		} else {
			var entity any
			target, entity, err = res.Load(ctx, c.Param(res.param()))
			if err == nil {
				c.Set(targetKey, entity)
			}
		}
		if err != nil {
			m.abortLookup(ctx, c, resource, err)
			tracer.RecordError(span, err)
			return
		}

		v := m.engine.Decide(p, sc.Claims, target)
		m.engine.Record(ctx, sc, resource, target.ID, v)
		span.SetAttributes(tracer.BoolAttr("authz.allowed", v.Allowed))
		if !v.Allowed {
			response.Forbidden(c, v.Reason)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m Middleware) abortLookup(ctx context.Context, c *gin.Context, resource authz.Resource, err error) {
	switch {
	case errors.Is(err, ErrTargetNotFound), errors.Is(err, authz.ErrOrganisationNotFound):
		response.NotFound(c, notFoundMsg)
	case errors.Is(err, ErrInvalidBody):
		response.HttpError(c, pkgErrors.NewHTTPError(http.StatusBadRequest, response.ValidationErrorMsg, http.StatusBadRequest))
	default:
		m.l.Errorf(ctx, "internal.middleware.Guard.%s: %v", resource, err)
		response.Error(c, err, m.discord)
	}
	c.Abort()
}

// GuardLocations enforces the policy of resource on a list route filtered by
// ?locations=a,b. Every requested location must be covered.
func (m Middleware) GuardLocations(resource authz.Resource) gin.HandlerFunc {
	p, err := m.engine.Policy(resource)
	if err != nil {
		panic(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sc, ok := scope.GetScopeFromContext(ctx)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		locations := model.SplitLocationSlug(c.Query("locations"))
		v := m.engine.DecideLocations(p, sc.Claims, locations)
		m.engine.Record(ctx, sc, resource, strings.Join(locations, ","), v)
		if !v.Allowed {
			response.Forbidden(c, v.Reason)
			c.Abort()
			return
		}

		c.Set(locationsKey, locations)
		c.Next()
	}
}

// GetTarget returns the record loaded by Guard, if any.
func GetTarget[T any](c *gin.Context) (T, bool) {
	var zero T
	v, ok := c.Get(targetKey)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// GetLocations returns the location filter checked by GuardLocations.
func GetLocations(c *gin.Context) []string {
	v, ok := c.Get(locationsKey)
	if !ok {
		return nil
	}
	locs, _ := v.([]string)
	return locs
}

// Gate applies only the capability gate of resource. Used where the usecase
// filters or checks scope per record.
func (m Middleware) Gate(resource authz.Resource) gin.HandlerFunc {
	p, err := m.engine.Policy(resource)
	if err != nil {
		panic(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sc, ok := scope.GetScopeFromContext(ctx)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if v, done := m.engine.Precheck(p, sc.Claims); done && !v.Allowed {
			m.engine.Record(ctx, sc, resource, "", v)
			response.Forbidden(c, v.Reason)
			c.Abort()
			return
		}
		c.Next()
	}
}
