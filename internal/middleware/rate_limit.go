package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	pkgErrors "directory-api/pkg/errors"
	"directory-api/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	rateLimitMessage = "Too many requests"
	bucketTTL        = 5 * time.Minute
	sweepInterval    = time.Minute
)

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// ipLimiter keeps one token bucket per client IP. Idle buckets are dropped by sweep.
type ipLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	cfg     RateLimitConfig
	now     func() time.Time
}

func newIPLimiter(cfg RateLimitConfig) *ipLimiter {
	return &ipLimiter{
		buckets: make(map[string]*bucket),
		cfg:     cfg,
		now:     time.Now,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Limit(l.cfg.RPS), l.cfg.Burst)}
		l.buckets[ip] = b
	}
	b.seen = l.now()
	return b.lim.Allow()
}

func (l *ipLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for ip, b := range l.buckets {
		if now.Sub(b.seen) > bucketTTL {
			delete(l.buckets, ip)
		}
	}
}

// sweepUntil drops idle buckets every interval until ctx is done.
func (l *ipLimiter) sweepUntil(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

// RateLimit throttles each client IP to cfg.RPS with cfg.Burst headroom.
// A zero RPS disables limiting. The idle-bucket sweeper stops with ctx.
func (m Middleware) RateLimit(ctx context.Context, cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	lim := newIPLimiter(cfg)
	go lim.sweepUntil(ctx, sweepInterval)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !lim.allow(ip) {
			m.sec.LogRateLimitExceeded(c.Request.Context(), ip, c.Request.URL.Path)
			response.HttpError(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, rateLimitMessage, http.StatusTooManyRequests))
			c.Abort()
			return
		}
		c.Next()
	}
}
