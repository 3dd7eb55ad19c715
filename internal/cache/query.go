package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/adapter"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
)

// Config holds configuration for a QueryCache
type Config struct {
	// TTL is how long a cached result is served without refetching
	TTL time.Duration
}

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

// FetchFunc loads a fresh value for a key
type FetchFunc[V any] func(ctx context.Context) (V, error)

// QueryCache caches read results per key with a TTL. An expired entry is never
// served: a failed refetch returns its error to the caller.
// Purge drops every entry and makes results of fetches already in flight unstorable.
type QueryCache[V any] struct {
	config Config
	clock  adapter.Clock

	mu         sync.RWMutex
	entries    map[string]entry[V]
	generation uint64
}

// New creates a QueryCache
func New[V any](config Config, clock adapter.Clock) *QueryCache[V] {
	return &QueryCache[V]{
		config:  config,
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key when fresh, otherwise calls fetch
func (c *QueryCache[V]) Get(ctx context.Context, key string, fetch FetchFunc[V]) (V, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	generation := c.generation
	c.mu.RUnlock()

	now := c.clock.Now()

	if ok && now.Sub(cached.fetchedAt) < c.config.TTL {
		logger.DebugCtx(ctx, "Using cached query result", zap.String("key", key))
		return cached.value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("failed to fetch %s: %w", key, err)
	}

	c.mu.Lock()
	if c.generation == generation {
		c.entries[key] = entry[V]{value: value, fetchedAt: now}
	}
	c.mu.Unlock()

	return value, nil
}

// Invalidate drops every entry whose key starts with prefix and returns how many were dropped
func (c *QueryCache[V]) Invalidate(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			dropped++
		}
	}
	return dropped
}

// Purge drops every entry
func (c *QueryCache[V]) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.generation++
	c.mu.Unlock()
}

// Len returns the number of cached entries
func (c *QueryCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
