package http

import (
	"directory-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	jobs := r.Group("/jobs", mw.SuperAdminOnly())
	{
		jobs.GET("", h.list)
		jobs.POST("/:name/run", h.run)
	}
}
