package http

import (
	"context"

	"directory-api/internal/middleware"
	"directory-api/internal/model"
	"directory-api/pkg/response"
	"directory-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// detail serves the record stashed by the guard, or loads it when the guard
// let the caller through before any lookup.
func detail[T any](h *Handler, load func(ctx context.Context, id string) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, ok := middleware.GetTarget[T](c); ok {
			response.OK(c, v)
			return
		}

		v, err := load(c.Request.Context(), c.Param("id"))
		if err != nil {
			response.ErrorWithMap(c, err, errMap, h.discord)
			return
		}
		response.OK(c, v)
	}
}

func list[T any](h *Handler, find func(ctx context.Context, locations []string) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		items, err := find(ctx, middleware.GetLocations(c))
		if err != nil {
			h.l.Errorf(ctx, "internal.directory.delivery.http.list: %v", err)
			response.ErrorWithMap(c, err, errMap, h.discord)
			return
		}
		response.OK(c, listResp[T]{Items: items, Total: len(items)})
	}
}

// create binds with ShouldBindBodyWith because the guard may already have read the body.
func create[In, Out any](h *Handler, save func(ctx context.Context, sc model.Scope, ip In) (Out, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sc, _ := scope.GetScopeFromContext(ctx)

		var ip In
		if err := c.ShouldBindBodyWith(&ip, binding.JSON); err != nil {
			response.Error(c, errInvalidBody, nil)
			return
		}

		v, err := save(ctx, sc, ip)
		if err != nil {
			response.ErrorWithMap(c, err, errMap, h.discord)
			return
		}
		response.Created(c, v)
	}
}

func remove(h *Handler, del func(ctx context.Context, sc model.Scope, id string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sc, _ := scope.GetScopeFromContext(ctx)

		if err := del(ctx, sc, c.Param("id")); err != nil {
			response.ErrorWithMap(c, err, errMap, h.discord)
			return
		}
		response.OK(c, nil)
	}
}
