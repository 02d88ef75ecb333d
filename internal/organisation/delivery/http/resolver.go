package http

import (
	"context"
	"errors"
	"fmt"

	"directory-api/internal/authz"
	"directory-api/internal/middleware"
	"directory-api/internal/organisation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func (h *Handler) resolveByID() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, id string) (authz.Target, any, error) {
			o, err := h.uc.Detail(ctx, id)
			if err != nil {
				return authz.Target{}, nil, notFound(err)
			}
			return authz.OrganisationTarget(o), o, nil
		},
	}
}

func (h *Handler) resolveByKey() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, key string) (authz.Target, any, error) {
			o, err := h.uc.GetByKey(ctx, key)
			if err != nil {
				return authz.Target{}, nil, notFound(err)
			}
			return authz.OrganisationTarget(o), o, nil
		},
	}
}

func (h *Handler) resolveFromBody() middleware.Resolver {
	return middleware.Resolver{
		FromBody: func(c *gin.Context) (authz.Target, error) {
			var req createReq
			if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
				return authz.Target{}, fmt.Errorf("%w: %v", middleware.ErrInvalidBody, err)
			}
			return authz.Target{Locations: req.AssociatedLocationIds, OrgKey: req.Key}, nil
		},
	}
}

func notFound(err error) error {
	if errors.Is(err, organisation.ErrNotFound) {
		return middleware.ErrTargetNotFound
	}
	return err
}
