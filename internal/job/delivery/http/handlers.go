package http

import (
	"context"

	"directory-api/internal/model"
	"directory-api/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) list(c *gin.Context) {
	response.OK(c, listResp{Jobs: h.uc.Jobs()})
}

// run executes the job synchronously. The run outlives a dropped client
// connection and is bounded by the job timeout instead.
func (h *Handler) run(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())
	name := model.JobName(c.Param("name"))

	stats, err := h.uc.Run(ctx, name)
	if err != nil {
		h.l.Warnf(ctx, "internal.job.delivery.http.run.%s: %v", name, err)
		response.ErrorWithMap(c, err, errMap, h.discord)
		return
	}
	response.OK(c, stats)
}
