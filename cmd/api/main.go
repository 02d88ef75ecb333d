package main

import (
	"context"
	"errors"
	"fmt"

	"directory-api/config"
	"directory-api/config/postgre"
	"directory-api/config/redis"
	"directory-api/internal/authz"
	"directory-api/internal/httpserver"
	"directory-api/internal/job"
	"directory-api/internal/middleware"
	"directory-api/internal/migrate"
	"directory-api/internal/model"
	"directory-api/migrations"
	"directory-api/pkg/discord"
	"directory-api/pkg/email"
	"directory-api/pkg/log"
	"directory-api/pkg/scope"
	"directory-api/pkg/tracer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	shutdownTracer, err := tracer.Setup(ctx, tracer.Config{
		Enabled:  cfg.Tracing.Enabled,
		Exporter: cfg.Tracing.Exporter,
	})
	if err != nil {
		logger.Error(ctx, "Failed to set up tracing: ", err)
		return
	}
	defer shutdownTracer(ctx)

	// PostgreSQL
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(db)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if cfg.Postgres.Migrate {
		applied, err := migrate.New(logger, db, migrations.FS).Up(ctx)
		if err != nil {
			logger.Error(ctx, "Failed to apply migrations: ", err)
			return
		}
		logger.Infof(ctx, "Applied %d migrations", len(applied))
	}

	// Redis (optional)
	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	if redisClient != nil {
		defer redisClient.Close()
		logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)
	}

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken, discord.Config{})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
	}

	mailer, err := email.New(logger, email.Config{
		BaseURL:       cfg.Email.BaseURL,
		APIKey:        cfg.Email.APIKey,
		From:          cfg.Email.From,
		Timeout:       cfg.Email.Timeout,
		MaxFailures:   cfg.Email.MaxFailures,
		OpenTimeout:   cfg.Email.OpenTimeout,
		FailureWindow: cfg.Email.FailureWindow,
	})
	if errors.Is(err, email.ErrNotConfigured) {
		logger.Warn(ctx, "Email provider not configured, verification emails will fail")
		mailer = email.Disabled()
	} else if err != nil {
		logger.Error(ctx, "Failed to initialize email sender: ", err)
		return
	}

	jwtManager, err := scope.NewManager(scope.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,

		DB:    db,
		Redis: redisClient,

		JWTManager:     jwtManager,
		Authz:          authz.Options{EnforceStubbedLocationChecks: cfg.Authz.EnforceStubbedLocationChecks},
		RateLimit:      middleware.RateLimitConfig{RPS: cfg.RateLimit.RPS, Burst: cfg.RateLimit.Burst},
		AllowedOrigins: cfg.CORS.AllowedOrigins,

		Email:   mailer,
		Discord: discordClient,

		JobsEnabled: cfg.Jobs.Enabled,
		Jobs: job.Config{
			Timeout:            cfg.Jobs.Timeout,
			LockTTL:            cfg.Jobs.LockTTL,
			ReminderTemplateID: cfg.Email.ReminderTemplateID,
			ExpiryTemplateID:   cfg.Email.ExpiryTemplateID,
		},
		JobSpecs: map[model.JobName]string{
			model.JobVerification:     cfg.Jobs.VerificationSpec,
			model.JobDisabling:        cfg.Jobs.DisablingSpec,
			model.JobBannerActivation: cfg.Jobs.BannerActivationSpec,
			model.JobSwepActivation:   cfg.Jobs.SwepActivationSpec,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
