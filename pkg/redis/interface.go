package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type IRedis interface {
	Locker
	Ping(ctx context.Context) error
	Close() error
}

// Locker is a best-effort distributed mutex keyed by name.
type Locker interface {
	// TryLock acquires name for ttl. It returns the owner token, or ok=false when
	// another holder has it.
	TryLock(ctx context.Context, name string, ttl time.Duration) (token string, ok bool, err error)
	// Unlock releases name only if token still owns it.
	Unlock(ctx context.Context, name, token string) error
}

func New(cfg RedisConfig) (IRedis, error) {
	if cfg.Host == "" {
		return nil, ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, ErrInvalidPort
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewFromClient(client), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client goredis.UniversalClient) IRedis {
	return &redisImpl{client: client}
}
