package middleware

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/syhrzkwn/boilerplate-project-exercisetracker/pkg/appenv"
	"github.com/syhrzkwn/boilerplate-project-exercisetracker/types"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore maps client IPs to token-bucket limiters. A background janitor
// evicts stale entries to keep memory bounded.
type limiterStore struct {
	mu         sync.Mutex
	entries    map[string]*limiterEntry
	staleAfter time.Duration
}

func newLimiterStore(staleAfter time.Duration) *limiterStore {
	store := &limiterStore{
		entries:    make(map[string]*limiterEntry),
		staleAfter: staleAfter,
	}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			store.cleanup()
		}
	}()
	return store
}

func (s *limiterStore) getOrCreate(key string, r rate.Limit, burst int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		e.lastSeen = time.Now()
		return e.limiter
	}
	lim := rate.NewLimiter(r, burst)
	s.entries[key] = &limiterEntry{limiter: lim, lastSeen: time.Now()}
	return lim
}

func (s *limiterStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.staleAfter)
	for k, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// parseEnvRate reads RATE_LIMIT_RPS and RATE_LIMIT_BURST or returns defaults.
func parseEnvRate() (rate.Limit, int) {
	rps := 10.0
	burst := 30
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rps = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			burst = i
		}
	}
	return rate.Limit(rps), burst
}

// isDisabled returns true when rate limiting should be off, e.g. for tests.
func isDisabled() bool {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("RATE_LIMIT_ENABLED"))); v == "0" || v == "false" || v == "no" {
		return true
	}
	return appenv.IsTest()
}

// RateLimit applies a per-IP token bucket to every request.
func RateLimit() gin.HandlerFunc {
	store := newLimiterStore(10 * time.Minute)
	rps, burst := parseEnvRate()

	return func(c *gin.Context) {
		if isDisabled() {
			c.Next()
			return
		}
		lim := store.getOrCreate(c.ClientIP(), rps, burst)
		if !lim.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				types.NewErrorResponse(types.ErrorCodeRateLimited, "rate limit exceeded"))
			return
		}
		c.Next()
	}
}
