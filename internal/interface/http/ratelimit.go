package http

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lookia/lookia/internal/infra/config"
)

const (
	rateLimitMessage = "Muitas requisições. Tente novamente em instantes."
	visitorTTL       = 5 * time.Minute
)

func rateLimitMiddleware(cfg config.RateLimitConfig, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RequestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := newTokenBucketLimiter(cfg.RequestsPerMinute, cfg.Burst, time.Now)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		wait, ok := limiter.take(ip)
		if ok {
			c.Next()
			return
		}
		logger.Warn("rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		abortWithError(c, NewHTTPError(http.StatusTooManyRequests, "rate_limit_exceeded", rateLimitMessage, nil))
	}
}

// tokenBucketLimiter keeps one bucket per client address. Buckets idle for
// longer than visitorTTL are dropped during the next sweep.
type tokenBucketLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	perSecond float64
	capacity  float64
	now       func() time.Time
	lastSweep time.Time
}

type bucket struct {
	tokens float64
	seen   time.Time
}

func newTokenBucketLimiter(perMinute, burst int, now func() time.Time) *tokenBucketLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &tokenBucketLimiter{
		buckets:   make(map[string]*bucket),
		perSecond: float64(perMinute) / 60,
		capacity:  float64(burst),
		now:       now,
		lastSweep: now(),
	}
}

// take consumes one token for key. When the bucket is empty it reports how
// long until the next token is available.
func (l *tokenBucketLimiter) take(key string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > visitorTTL {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > visitorTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, seen: now}
		l.buckets[key] = b
	} else if elapsed := now.Sub(b.seen).Seconds(); elapsed > 0 {
		b.tokens = math.Min(l.capacity, b.tokens+elapsed*l.perSecond)
	}
	b.seen = now

	if b.tokens < 1 {
		missing := 1 - b.tokens
		return time.Duration(missing / l.perSecond * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}
