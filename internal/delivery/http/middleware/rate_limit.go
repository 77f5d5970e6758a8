package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"artmarket-backend/pkg/logger"
	"artmarket-backend/pkg/utils"

	"golang.org/x/time/rate"
)

// RateLimitConfig sizes the per-client token buckets.
type RateLimitConfig struct {
	RPS   float64
	Burst int
	// CleanupPeriod is how often idle clients are swept; ClientTTL is how long
	// a client may stay idle before its bucket is dropped.
	CleanupPeriod time.Duration
	ClientTTL     time.Duration
	// Exempt paths are never limited (load balancer health probes).
	Exempt []string
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client address, as resolved by
// getClientIP, and sweeps idle buckets in the background until Shutdown.
type RateLimiter struct {
	cfg      RateLimitConfig
	exempt   map[string]bool
	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
	cancel   context.CancelFunc
}

func NewRateLimiter(ctx context.Context, cfg RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		cfg:      cfg,
		exempt:   make(map[string]bool, len(cfg.Exempt)),
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
	for _, p := range cfg.Exempt {
		rl.exempt[p] = true
	}

	ctx, rl.cancel = context.WithCancel(ctx)
	if cfg.CleanupPeriod > 0 {
		go rl.sweepLoop(ctx)
	}
	return rl
}

// Middleware rejects a client with 429 once its bucket is empty. Retry-After
// carries the wait until the next token, rounded up to whole seconds.
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.exempt[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			ip := getClientIP(r)
			res := rl.bucket(ip).ReserveN(rl.now(), 1)
			if !res.OK() {
				rl.reject(w, r, ip, time.Second)
				return
			}
			if delay := res.DelayFrom(rl.now()); delay > 0 {
				res.Cancel()
				rl.reject(w, r, ip, delay)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) reject(w http.ResponseWriter, r *http.Request, ip string, wait time.Duration) {
	secs := int(math.Ceil(wait.Seconds()))
	logger.WithContext(r.Context()).Warn().
		Str("ip", ip).
		Str("path", r.URL.Path).
		Int("retry_after", secs).
		Msg("Rate limit exceeded")

	w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
	utils.WriteError(w, http.StatusTooManyRequests, "Too many requests, slow down")
}

func (rl *RateLimiter) bucket(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if v, ok := rl.visitors[ip]; ok {
		v.lastSeen = now
		return v.limiter
	}
	v := &visitor{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst), lastSeen: now}
	rl.visitors[ip] = v
	return v.limiter
}

func (rl *RateLimiter) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(rl.cfg.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-ctx.Done():
			return
		}
	}
}

// sweep drops buckets idle for longer than ClientTTL.
func (rl *RateLimiter) sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.cfg.ClientTTL)
	removed := 0
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

// Shutdown stops the sweeper.
func (rl *RateLimiter) Shutdown() {
	rl.cancel()
}
