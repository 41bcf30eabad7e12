package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/gosalut/salut/pkg/metrics"
)

// Rate limiter housekeeping constants.
const (
	defaultIdleTTL = 10 * time.Minute

	// evictEvery is how many hits pass between sweeps of idle entries.
	evictEvery = 512
)

// ClientLimiter applies a token bucket per client key and periodically
// evicts entries that have gone idle.
type ClientLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu    sync.Mutex
	byKey map[string]*clientEntry
	hits  uint64
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a key-based limiter. It returns nil when rps or
// burst is not positive; a nil limiter allows everything.
func NewClientLimiter(rps float64, burst int, idleTTL time.Duration) *ClientLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &ClientLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		byKey:   make(map[string]*clientEntry),
	}
}

// Allow reports whether one token can be consumed for key at now. Blank
// keys are never limited.
func (l *ClientLimiter) Allow(key string, now time.Time) bool {
	if l == nil {
		return true
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byKey[key]
	if !ok {
		e = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%evictEvery == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byKey {
			if v.lastSeen.Before(cutoff) {
				delete(l.byKey, k)
			}
		}
	}

	return allowed
}

// RateLimit rejects clients that exceed their per-key budget with 429.
func RateLimit(limiter *ClientLimiter) gin.HandlerFunc {
	const op = "api.rate_limit"
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP(), time.Now()) {
			metrics.RecordRateLimited()
			writeError(c, http.StatusTooManyRequests, "rate_limited", newKind(op, ErrRateLimited))
			return
		}
		c.Next()
	}
}
