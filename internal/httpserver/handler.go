package httpserver

import (
	"context"

	"directory-api/internal/authz"
	directoryHTTP "directory-api/internal/directory/delivery/http"
	directoryRepo "directory-api/internal/directory/repository/postgre"
	directoryUC "directory-api/internal/directory/usecase"
	jobHTTP "directory-api/internal/job/delivery/http"
	"directory-api/internal/job/scheduler"
	jobUC "directory-api/internal/job/usecase"
	"directory-api/internal/middleware"
	orgHTTP "directory-api/internal/organisation/delivery/http"
	orgRepo "directory-api/internal/organisation/repository/postgre"
	orgUC "directory-api/internal/organisation/usecase"
	userHTTP "directory-api/internal/user/delivery/http"
	userRepo "directory-api/internal/user/repository/postgre"
	userUC "directory-api/internal/user/usecase"
	"directory-api/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const Api = "/api"

// mapHandlers builds the router. Background work it starts stops with ctx.
func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	metrics.Init()

	// Repositories
	orgRepository := orgRepo.New(srv.l, srv.db)
	userRepository := userRepo.New(srv.l, srv.db)
	directoryRepository := directoryRepo.New(srv.l, srv.db)

	// Usecases
	orgUsecase := orgUC.New(srv.l, orgRepository)
	userUsecase := userUC.New(srv.l, userRepository, authz.NewUserGuard(orgUsecase))
	directoryUsecase := directoryUC.New(srv.l, directoryRepository)

	engine, err := authz.New(srv.l, srv.authzOpts)
	if err != nil {
		return err
	}
	mw := middleware.New(srv.l, srv.jwtMgr, userUsecase, engine, srv.discord)

	jobOpts := []jobUC.Option{jobUC.WithDiscord(srv.discord)}
	if srv.redis != nil {
		jobOpts = append(jobOpts, jobUC.WithLocker(srv.redis))
	}
	jobUsecase := jobUC.New(srv.l, srv.jobCfg, orgUsecase, directoryUsecase, srv.mailer, jobOpts...)

	if srv.jobsEnabled {
		srv.scheduler, err = scheduler.New(srv.l, jobUsecase, srv.jobSpecs)
		if err != nil {
			return err
		}
	}

	// Global middleware
	srv.gin.Use(
		mw.Recovery(),
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.CORS(srv.origins),
		mw.RateLimit(ctx, srv.rateLimit),
	)

	// Probes (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := srv.gin.Group(Api, mw.Auth())
	orgHTTP.New(srv.l, orgUsecase, srv.discord).RegisterRoutes(api, mw)
	directoryHTTP.New(srv.l, directoryUsecase, orgUsecase, srv.discord).RegisterRoutes(api, mw)
	userHTTP.New(srv.l, userUsecase, orgUsecase, srv.discord).RegisterRoutes(api, mw)
	jobHTTP.New(srv.l, jobUsecase, srv.discord).RegisterRoutes(api, mw)

	return nil
}
