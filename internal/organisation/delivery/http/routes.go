package http

import (
	"directory-api/internal/authz"
	"directory-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the organisation routes. Admin operations address the
// organisation by key through the same path segment as the id routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	byID := mw.Guard(authz.ResourceOrganisation, h.resolveByID())
	byKey := mw.Guard(authz.ResourceOrganisation, h.resolveByKey())

	orgs := r.Group("/organisations")
	{
		orgs.GET("", mw.GuardLocations(authz.ResourceOrganisationLocations), h.list)
		orgs.POST("", mw.Guard(authz.ResourceOrganisation, h.resolveFromBody()), h.create)
		orgs.GET("/:id", byID, h.detail)
		orgs.DELETE("/:id", byID, h.archive)
		orgs.PATCH("/:id/publish", byKey, h.togglePublished)
		orgs.PATCH("/:id/verify", byKey, h.toggleVerified)
		orgs.POST("/:id/notes", byKey, h.addNote)
	}
}
