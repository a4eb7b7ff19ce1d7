package http_ratelimit_middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/flowquest/core/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/flowquest/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/flowquest/core/internal/config"
	"golang.org/x/time/rate"
)

const idleAfter = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter throttles per caller: the authenticated user when known, the
// client IP otherwise.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func New(cfg config.RateLimit) *Limiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(cfg.RPS),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.allow(key(ctx)) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, http_common.ErrorResponse{
				Message: "too many requests",
				Code:    "RATE_LIMITED",
			})
			return
		}
		ctx.Next()
	}
}

// Run drops idle visitors every minute until ctx is done.
func (l *Limiter) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
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

func (l *Limiter) allow(k string) bool {
	l.mu.Lock()
	v, ok := l.visitors[k]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[k] = v
	}
	now := l.now()
	v.lastSeen = now
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

func (l *Limiter) sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleAfter {
			delete(l.visitors, k)
		}
	}
	return len(l.visitors)
}

func key(ctx *gin.Context) string {
	if p := http_auth_middleware.PrincipalFrom(ctx); p.Valid() {
		return "user:" + p.UserID.String()
	}
	return "ip:" + ctx.ClientIP()
}
