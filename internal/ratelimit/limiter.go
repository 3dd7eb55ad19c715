package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
)

// Config holds the per-key token bucket settings
type Config struct {
	// RequestsPerSecond is the sustained rate per key, zero disables limiting
	RequestsPerSecond float64
	Burst             int
	// IdleTTL is how long an unused key keeps its bucket
	IdleTTL time.Duration
}

// Limiter decides whether a request from key may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token for key. When denied it returns how long to wait.
	Allow(key string) (bool, time.Duration)

	// Enabled reports whether any limit is applied
	Enabled() bool
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter keeps one token bucket per key
type keyedLimiter struct {
	config Config
	clock  adapter.Clock

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewLimiter creates a limiter keeping one bucket per key
func NewLimiter(cfg Config, clock adapter.Clock) Limiter {
	if cfg.Burst <= 0 {
		cfg.Burst = max(int(cfg.RequestsPerSecond), 1)
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 10 * time.Minute
	}

	return &keyedLimiter{
		config:    cfg,
		clock:     clock,
		buckets:   make(map[string]*bucket),
		lastSweep: clock.Now(),
	}
}

func (l *keyedLimiter) Enabled() bool {
	return l.config.RequestsPerSecond > 0
}

func (l *keyedLimiter) Allow(key string) (bool, time.Duration) {
	if !l.Enabled() {
		return true, 0
	}

	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	reservation := b.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return false, time.Second
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// sweep drops idle buckets, at most once per IdleTTL
func (l *keyedLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.config.IdleTTL {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.config.IdleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// size returns the number of tracked keys
func (l *keyedLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
