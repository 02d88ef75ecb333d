package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"directory-api/internal/authz"
	"directory-api/internal/job"
	"directory-api/internal/job/scheduler"
	"directory-api/internal/middleware"
	"directory-api/internal/model"
	"directory-api/pkg/discord"
	"directory-api/pkg/email"
	"directory-api/pkg/log"
	pkgRedis "directory-api/pkg/redis"
	"directory-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() starts the scheduler and serves until a shutdown signal.
type HTTPServer struct {
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	db    *sql.DB
	redis pkgRedis.IRedis

	jwtMgr    scope.Manager
	authzOpts authz.Options
	rateLimit middleware.RateLimitConfig
	origins   []string

	mailer  email.Sender
	discord discord.IDiscord

	jobsEnabled bool
	jobCfg      job.Config
	jobSpecs    map[model.JobName]string
	scheduler   *scheduler.Scheduler
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host            string
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	DB    *sql.DB
	Redis pkgRedis.IRedis // optional

	JWTManager     scope.Manager
	Authz          authz.Options
	RateLimit      middleware.RateLimitConfig
	AllowedOrigins []string

	Email   email.Sender
	Discord discord.IDiscord // optional

	JobsEnabled bool
	Jobs        job.Config
	JobSpecs    map[model.JobName]string
}

// New creates a new HTTPServer instance with the provided configuration.
// It does not start any goroutines.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:             gin.New(),
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,

		db:    cfg.DB,
		redis: cfg.Redis,

		jwtMgr:    cfg.JWTManager,
		authzOpts: cfg.Authz,
		rateLimit: cfg.RateLimit,
		origins:   cfg.AllowedOrigins,

		mailer:  cfg.Email,
		discord: cfg.Discord,

		jobsEnabled: cfg.JobsEnabled,
		jobCfg:      cfg.Jobs,
		jobSpecs:    cfg.JobSpecs,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if srv.mailer == nil {
		return errors.New("email sender is required")
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 30 * time.Second
	}
	return nil
}
