package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"marketscore/internal/apperrors"
	"marketscore/internal/monitoring"
)

// RateLimiter throttles requests per client IP with in-memory token buckets.
// Idle buckets are dropped periodically so the map does not grow with every
// IP ever seen.
type RateLimiter struct {
	perMinute int
	burst     int
	metrics   *monitoring.Metrics

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests with the given
// burst per client IP. A perMinute of 0 disables limiting.
func NewRateLimiter(perMinute, burst int, metrics *monitoring.Metrics) *RateLimiter {
	rl := &RateLimiter{
		perMinute: perMinute,
		burst:     burst,
		metrics:   metrics,
		limiters:  make(map[string]*clientLimiter),
	}
	if perMinute > 0 {
		go rl.cleanup(10 * time.Minute)
	}
	return rl
}

// Middleware rejects over-limit clients with a structured 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.perMinute <= 0 {
			c.Next()
			return
		}

		if !rl.allow(c.ClientIP()) {
			rl.metrics.RateLimited()
			appErr := apperrors.NewRateLimitError("rate limit exceeded, slow down")
			apperrors.LogError(c, appErr)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[ip]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(float64(rl.perMinute)/60), rl.burst),
		}
		rl.limiters[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

func (rl *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-every)
		rl.mu.Lock()
		for ip, cl := range rl.limiters {
			if cl.lastSeen.Before(cutoff) {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}
