package lru

import "sync"

var _ Cache[string, int] = &Shared[string, int]{}

// Shared makes a cache safe to use across goroutines by guarding every
// operation with a single exclusive lock.
//
// Get acquires the write lock too, despite being semantically a read,
// because a lookup reorders recency internally. The value is copied out
// before the lock is released, so the lock is held for the duration of the
// lookup only, not for the caller's subsequent use of the value.
//
// A *Shared pointer is a handle: copies of the pointer alias the same inner
// cache, and the cache is collected once the last handle is gone. Go locks
// do not poison, a panic raised by the inner cache propagates to the caller
// and releases the lock.
//
// Please use NewShared to create an instance.
type Shared[K comparable, V any] struct {
	mu    sync.RWMutex
	cache Cache[K, V]
}

// NewShared wraps a cache for shared use.
//
// The inner cache must not be accessed directly afterwards.
func NewShared[K comparable, V any](cache Cache[K, V]) *Shared[K, V] {
	return &Shared[K, V]{cache: cache}
}

// Insert stores value under key and makes the entry most recently used.
func (c *Shared[K, V]) Insert(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Insert(key, value)
}

// Get returns a copy of the value stored under key and makes the entry most
// recently used.
func (c *Shared[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Get(key)
}

// Remove deletes the entry if present and returns its value.
func (c *Shared[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Remove(key)
}

// Clear removes all entries keeping capacity for future use.
func (c *Shared[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Clear()
}

// Len returns current number of entries.
//
// Len is the only operation that does not mutate recency order, it takes the
// read lock.
func (c *Shared[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cache.Len()
}
