package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/dtroode/plantcare-server/internal/model"
)

const (
	defaultCleanupInterval = 5 * time.Minute
	defaultIdleTimeout     = 10 * time.Minute
)

// RateLimiter applies a token bucket per authenticated user. Requests
// without a caller in context are keyed by client IP.
type RateLimiter struct {
	limit          rate.Limit
	burst          int
	contextManager model.ContextManager
	now            func() time.Time

	mu       sync.Mutex
	limiters map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second with the given burst.
func NewRateLimiter(rps float64, burst int, contextManager model.ContextManager) *RateLimiter {
	return &RateLimiter{
		limit:          rate.Limit(rps),
		burst:          burst,
		contextManager: contextManager,
		now:            time.Now,
		limiters:       make(map[string]*visitor),
	}
}

// Handle aborts with 429 once the caller's bucket is empty.
func (r *RateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if userID, ok := r.contextManager.GetUserIDFromContext(c.Request.Context()); ok {
			key = "user:" + userID.String()
		}

		if !r.limiterFor(key).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

// Run evicts buckets idle for longer than idle every interval until ctx is done.
// Non-positive durations fall back to defaults.
func (r *RateLimiter) Run(ctx context.Context, interval, idle time.Duration) {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	if idle <= 0 {
		idle = defaultIdleTimeout
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.evictIdle(idle)
		}
	}
}

func (r *RateLimiter) evictIdle(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	evicted := 0
	for key, v := range r.limiters {
		if now.Sub(v.lastSeen) > idle {
			delete(r.limiters, key)
			evicted++
		}
	}
	return evicted
}

func (r *RateLimiter) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}

func (r *RateLimiter) limiterFor(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.limiters[key] = v
	}
	v.lastSeen = r.now()
	return v.limiter
}
