// Package cache provides a small concurrency-safe insert-once store
// for derived lookup tables. Keyboard neighbor maps and confusion
// tables are built once per configuration and shared by every step
// that needs them.
package cache

import "sync"

// Cache maps keys to values computed at most once per key. The zero
// value is not usable; construct with New.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New returns an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Get returns the cached value for key, if present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()

	return v, ok
}

// GetOrInsert returns the value for key, building it with build on
// first access. Concurrent callers may both run build, but only the
// first writer's value is stored; everyone observes that one value.
func (c *Cache[K, V]) GetOrInsert(key K, build func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}

	v := build()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = v

	return v
}

// Len reports the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
