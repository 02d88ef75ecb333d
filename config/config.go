package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres PostgresConfig
	Redis    RedisConfig

	JWT       JWTConfig
	Authz     AuthzConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig

	Discord DiscordConfig
	Email   EmailConfig
	Jobs    JobsConfig
	Tracing TracingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host            string
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Migrate applies the embedded schema on startup.
	Migrate bool
}

// RedisConfig is optional. When disabled jobs only lock within the process.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
}

type AuthzConfig struct {
	EnforceStubbedLocationChecks bool
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

type EmailConfig struct {
	BaseURL string
	APIKey  string
	From    string
	Timeout time.Duration

	MaxFailures   uint32
	OpenTimeout   time.Duration
	FailureWindow time.Duration

	ReminderTemplateID string
	ExpiryTemplateID   string
}

type JobsConfig struct {
	Enabled bool
	Timeout time.Duration
	LockTTL time.Duration

	VerificationSpec     string
	DisablingSpec        string
	BannerActivationSpec string
	SwepActivationSpec   string
}

type TracingConfig struct {
	Enabled  bool
	Exporter string
}

// Load reads directory-config.yaml when present and lets environment
// variables override any key (jobs.enabled -> JOBS_ENABLED).
func Load() (*Config, error) {
	viper.SetConfigName("directory-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/directory/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	// HTTP server
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = viper.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = viper.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Migrate = viper.GetBool("postgres.migrate")

	// Redis
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// JWT
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetString("jwt.audience")

	cfg.Authz.EnforceStubbedLocationChecks = viper.GetBool("authz.enforce_stubbed_location_checks")

	cfg.RateLimit.RPS = viper.GetFloat64("rate_limit.rps")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Email
	cfg.Email.BaseURL = viper.GetString("email.base_url")
	cfg.Email.APIKey = viper.GetString("email.api_key")
	cfg.Email.From = viper.GetString("email.from")
	cfg.Email.Timeout = viper.GetDuration("email.timeout")
	cfg.Email.MaxFailures = viper.GetUint32("email.max_failures")
	cfg.Email.OpenTimeout = viper.GetDuration("email.open_timeout")
	cfg.Email.FailureWindow = viper.GetDuration("email.failure_window")
	cfg.Email.ReminderTemplateID = viper.GetString("email.reminder_template_id")
	cfg.Email.ExpiryTemplateID = viper.GetString("email.expiry_template_id")

	// Jobs
	cfg.Jobs.Enabled = viper.GetBool("jobs.enabled")
	cfg.Jobs.Timeout = viper.GetDuration("jobs.timeout")
	cfg.Jobs.LockTTL = viper.GetDuration("jobs.lock_ttl")
	cfg.Jobs.VerificationSpec = viper.GetString("jobs.verification_spec")
	cfg.Jobs.DisablingSpec = viper.GetString("jobs.disabling_spec")
	cfg.Jobs.BannerActivationSpec = viper.GetString("jobs.banner_activation_spec")
	cfg.Jobs.SwepActivationSpec = viper.GetString("jobs.swep_activation_spec")

	// Tracing
	cfg.Tracing.Enabled = viper.GetBool("tracing.enabled")
	cfg.Tracing.Exporter = viper.GetString("tracing.exporter")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	// HTTP server
	viper.SetDefault("http_server.host", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("http_server.read_timeout", 15*time.Second)
	viper.SetDefault("http_server.write_timeout", 2*time.Minute)
	viper.SetDefault("http_server.shutdown_timeout", 30*time.Second)

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.dbname", "directory")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.migrate", true)

	// Redis
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("authz.enforce_stubbed_location_checks", false)

	viper.SetDefault("rate_limit.rps", 20)
	viper.SetDefault("rate_limit.burst", 40)

	viper.SetDefault("cors.allowed_origins", []string{})

	// Email
	viper.SetDefault("email.timeout", 10*time.Second)
	viper.SetDefault("email.max_failures", 5)
	viper.SetDefault("email.open_timeout", 30*time.Second)
	viper.SetDefault("email.failure_window", 60*time.Second)

	// Jobs, all in UTC
	viper.SetDefault("jobs.enabled", true)
	viper.SetDefault("jobs.timeout", 10*time.Minute)
	viper.SetDefault("jobs.lock_ttl", 15*time.Minute)
	viper.SetDefault("jobs.verification_spec", "0 2 * * *")
	viper.SetDefault("jobs.disabling_spec", "15 0 * * *")
	viper.SetDefault("jobs.banner_activation_spec", "5 0 * * *")
	viper.SetDefault("jobs.swep_activation_spec", "10 0 * * *")

	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.exporter", "stdout")
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Enabled && cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required when redis is enabled")
	}

	if cfg.Jobs.Enabled && cfg.Jobs.LockTTL <= cfg.Jobs.Timeout {
		return fmt.Errorf("jobs.lock_ttl must be longer than jobs.timeout")
	}

	if (cfg.Email.BaseURL == "") != (cfg.Email.APIKey == "") {
		return fmt.Errorf("email.base_url and email.api_key must be set together")
	}

	return nil
}
