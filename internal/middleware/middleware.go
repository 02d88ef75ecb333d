package middleware

import (
	"errors"
	"strings"

	"directory-api/internal/model"
	"directory-api/internal/user"
	"directory-api/pkg/response"
	"directory-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Auth resolves the caller: bearer token, then subject, then the stored user.
// The resulting model.Scope is attached to the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.l.Warnf(ctx, "Missing or malformed Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			m.l.Warnf(ctx, "Empty token in Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwt.Verify(tokenString)
		if err != nil {
			m.l.Warnf(ctx, "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		u, err := m.users.GetBySubject(ctx, payload.Subject)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				m.l.Warnf(ctx, "No user for subject %s | Path: %s", payload.Subject, c.Request.URL.Path)
				response.Unauthorized(c)
				c.Abort()
				return
			}
			m.l.Errorf(ctx, "internal.middleware.Auth.GetBySubject: %v", err)
			response.Error(c, err, m.discord)
			c.Abort()
			return
		}
		if !u.IsActive {
			m.l.Warnf(ctx, "Inactive user %s | Path: %s", u.ID, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, model.NewScope(u))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SuperAdminOnly guards operational endpoints.
func (m Middleware) SuperAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if !sc.IsSuperAdmin() {
			m.sec.LogAuthorizationFailure(c.Request.Context(), sc.UserID, "jobs", c.Param("name"), ReasonSuperAdminRequired)
			response.Forbidden(c, ReasonSuperAdminRequired)
			c.Abort()
			return
		}
		c.Next()
	}
}

const ReasonSuperAdminRequired = "SuperAdmin role required"
