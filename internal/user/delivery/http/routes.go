package http

import (
	"context"
	"errors"

	"directory-api/internal/authz"
	"directory-api/internal/middleware"
	"directory-api/internal/user"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the user routes. Mutations carry no resource guard:
// who may grant which claims is decided by the usecase.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/users")
	{
		users.GET("", mw.Gate(authz.ResourceUser), h.list)
		users.GET("/:id", mw.Guard(authz.ResourceUser, h.resolver()), h.detail)
		users.POST("", h.create)
		users.PUT("/:id/claims", h.updateClaims)
		users.DELETE("/:id", h.delete)
	}
}

func (h *Handler) resolver() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, id string) (authz.Target, any, error) {
			u, err := h.uc.Detail(ctx, id)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					return authz.Target{}, nil, middleware.ErrTargetNotFound
				}
				return authz.Target{}, nil, err
			}
			t, err := authz.UserTarget(ctx, h.orgs, u)
			return t, u, err
		},
	}
}
