package http

import (
	"directory-api/internal/middleware"
	"directory-api/internal/model"
	"directory-api/internal/user"
	"directory-api/pkg/response"
	"directory-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errInvalidBody, nil)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	response.OK(c, newListResp(out))
}

func (h *Handler) detail(c *gin.Context) {
	if u, ok := middleware.GetTarget[model.User](c); ok {
		response.OK(c, newUserResp(u))
		return
	}

	u, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	response.OK(c, newUserResp(u))
}

func (h *Handler) create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody, nil)
		return
	}

	u, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	response.Created(c, newUserResp(u))
}

func (h *Handler) updateClaims(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req updateClaimsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody, nil)
		return
	}

	u, err := h.uc.UpdateClaims(ctx, sc, user.UpdateClaimsInput{ID: c.Param("id"), AuthClaims: req.AuthClaims})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	response.OK(c, newUserResp(u))
}

func (h *Handler) delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.respondErr(c, err)
		return
	}
	response.OK(c, nil)
}
