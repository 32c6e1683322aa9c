// Package ttlcache is a small in-memory cache whose entries expire after a
// fixed time-to-live. The clock is injectable so expiry can be driven
// deterministically in tests.
package ttlcache

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

type item[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache maps keys to values for ttl after each Set. Safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	clock Clock
	items map[K]item[V]
}

// New builds a cache. A nil clock means SystemClock; a non-positive ttl
// makes every entry expire immediately.
func New[K comparable, V any](ttl time.Duration, clock Clock) *Cache[K, V] {
	if clock == nil {
		clock = SystemClock
	}
	return &Cache[K, V]{ttl: ttl, clock: clock, items: make(map[K]item[V])}
}

// Get returns the live value for key. Expired entries are evicted.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !c.clock.Now().Before(it.expiresAt) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set stores value under key, replacing any previous entry and restarting
// its ttl.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
}

// ExpiresAt reports when key's entry expires; ok is false when absent.
// The returned time may already be in the past.
func (c *Cache[K, V]) ExpiresAt(key K) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[key]
	return it.expiresAt, ok
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Purge drops every entry.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
}
