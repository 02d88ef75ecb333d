package http

import (
	"time"

	"directory-api/internal/middleware"
	"directory-api/internal/model"
	"directory-api/pkg/response"
	"directory-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	orgs, err := h.uc.ListByLocations(ctx, middleware.GetLocations(c))
	if err != nil {
		h.l.Errorf(ctx, "internal.organisation.delivery.http.list: %v", err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}
	response.OK(c, newListResp(orgs))
}

func (h *Handler) detail(c *gin.Context) {
	if o, ok := middleware.GetTarget[model.Organisation](c); ok {
		response.OK(c, o)
		return
	}

	o, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}
	response.OK(c, o)
}

func (h *Handler) create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req createReq
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		response.Error(c, errFieldRequired, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}
	response.Created(c, o)
}

func (h *Handler) archive(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	if err := h.uc.Archive(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}
	response.OK(c, nil)
}

func (h *Handler) togglePublished(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	o, err := h.uc.TogglePublished(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}
	response.OK(c, o)
}

func (h *Handler) toggleVerified(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	o, err := h.uc.ToggleVerified(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}
	response.OK(c, o)
}

func (h *Handler) addNote(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req addNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errNoteRequired, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, errNoteRequired, nil)
		return
	}

	note, err := h.uc.AddNote(ctx, sc, req.toInput(c.Param("id"), time.Now()))
	if err != nil {
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}
	response.Created(c, note)
}
