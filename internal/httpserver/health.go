package httpserver

import (
	"context"
	"net/http"
	"time"

	"directory-api/pkg/errors"
	"directory-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName  = "directory-api"
	probeTimeout = 2 * time.Second
)

// dependencies pings Postgres and, when configured, Redis.
func (srv *HTTPServer) dependencies(ctx context.Context) (gin.H, *errors.HTTPError) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := gin.H{"postgres": "connected"}
	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.dependencies.Postgres: %v", err)
		return nil, errors.NewHTTPError(http.StatusServiceUnavailable, "PostgreSQL connection failed", http.StatusServiceUnavailable)
	}

	if srv.redis == nil {
		status["redis"] = "disabled"
		return status, nil
	}
	if err := srv.redis.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.dependencies.Redis: %v", err)
		return nil, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed", http.StatusServiceUnavailable)
	}
	status["redis"] = "connected"
	return status, nil
}

func (srv *HTTPServer) healthCheck(c *gin.Context) {
	deps, err := srv.dependencies(c.Request.Context())
	if err != nil {
		response.HttpError(c, err)
		return
	}

	deps["status"] = "healthy"
	deps["service"] = serviceName
	deps["jobs_enabled"] = srv.scheduler != nil
	response.OK(c, deps)
}

func (srv *HTTPServer) readyCheck(c *gin.Context) {
	deps, err := srv.dependencies(c.Request.Context())
	if err != nil {
		response.HttpError(c, err)
		return
	}

	deps["status"] = "ready"
	deps["service"] = serviceName
	response.OK(c, deps)
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
