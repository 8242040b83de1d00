// Package cache provides a small string-keyed TTL memory cache.
//
// Entries expire a fixed duration after being stored and are removed
// lazily on the next access to their key, or eagerly via Delete/Clear.
// There is no size-based eviction: the intended key spaces (content
// slugs, formatted date strings) are small and finite in practice.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

type settings struct {
	now func() time.Time
}

// Option configures a Cache.
type Option func(*settings)

// WithClock overrides the time source. Useful for testing expiry
// without sleeping.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// Cache is a generic key-value store with per-entry expiration.
// Safe for concurrent use. The zero value is not usable; construct with New.
type Cache[V any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]
	group   singleflight.Group
}

// New creates a Cache whose entries expire ttl after being stored.
func New[V any](ttl time.Duration, opts ...Option) *Cache[V] {
	s := settings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}

	return &Cache[V]{
		ttl:     ttl,
		now:     s.now,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the fresh value for key, if any.
// A stale entry counts as a miss and is removed.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}

	if c.expired(e) {
		// Lazy removal. Re-check under the write lock: another
		// goroutine may have refreshed the entry in between.
		c.mu.Lock()
		if current, still := c.entries[key]; still && c.expired(current) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}

	return e.value, true
}

// Set stores value under key, resetting its expiration.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

// GetOrLoad returns the cached value for key, computing and storing it
// via load on a miss. Concurrent misses for the same key are collapsed
// into a single load; every caller receives the same result. A failed
// load is not cached, so a later call retries.
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Another caller may have populated the key while we waited.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return v.(V), nil
}

// Delete removes a single entry.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry[V])
}

// Len returns the number of stored entries, including ones that have
// expired but not yet been removed.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *Cache[V]) expired(e entry[V]) bool {
	return c.now().Sub(e.storedAt) > c.ttl
}
