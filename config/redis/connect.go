package redis

import (
	"fmt"

	"directory-api/config"
	pkgRedis "directory-api/pkg/redis"
)

// Connect returns nil without error when Redis is disabled.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
