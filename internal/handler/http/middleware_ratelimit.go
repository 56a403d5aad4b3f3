package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mrmeaow/erp-iam-secureid/internal/apperr"
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
)

const (
	limiterTTL      = 15 * time.Minute
	cleanupInterval = 5 * time.Minute
)

// withRateLimit applies a per-client token bucket. Rejected requests get a
// 429 RATE_LIMITED envelope; excluded paths are never limited.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isExcluded(r.URL.RequestURI()) {
			next.ServeHTTP(w, r)
			return
		}

		key := clientKey(r)
		if !h.limiter.allow(key) {
			logger.FromRequest(r).Warn().Str("client", key).Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfterSeconds()))
			h.writeError(w, r, apperr.TooManyRequests("ThrottlerException: Too Many Requests"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

type limiterStore struct {
	mu          sync.Mutex
	limiters    map[string]*limiterEntry
	perMinute   int
	lastCleanup time.Time

	// now is replaced in tests.
	now func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterStore(perMinute int) *limiterStore {
	return &limiterStore{
		limiters:    make(map[string]*limiterEntry),
		perMinute:   perMinute,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

// allow consumes one token of the bucket belonging to key.
func (s *limiterStore) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastCleanup) > cleanupInterval {
		s.cleanup(now)
	}

	entry, ok := s.limiters[key]
	if !ok {
		interval := time.Minute / time.Duration(s.perMinute)
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rate.Every(interval), s.perMinute),
		}
		s.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// cleanup drops buckets not used within limiterTTL. Callers hold mu.
func (s *limiterStore) cleanup(now time.Time) {
	for key, entry := range s.limiters {
		if now.Sub(entry.lastSeen) > limiterTTL {
			delete(s.limiters, key)
		}
	}
	s.lastCleanup = now
}

// retryAfterSeconds is the time one token takes to refill, rounded up.
func (s *limiterStore) retryAfterSeconds() int {
	seconds := (60 + s.perMinute - 1) / s.perMinute
	return max(seconds, 1)
}

func (s *limiterStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// clientKey identifies the caller by the host part of RemoteAddr.
// Forwarding headers are not trusted.
func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
