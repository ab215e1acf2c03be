package lru

import (
	"context"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

var _ Cache[string, int] = &Expiring[string, int]{}

// Timestamped wraps a stored value with the time it was inserted at.
type Timestamped[V any] struct {
	Value      V
	InsertedAt time.Time
}

// Expiring wraps a cache so that entries older than a timeout are treated as absent.
//
// There is no active eviction mechanism: a populated cache left alone past
// the timeout is still at capacity. Stale entries are removed lazily, only
// when they are accessed.
//
// Please use NewExpiring or ExpiringOver to create an instance.
type Expiring[K comparable, V any] struct {
	cache   Cache[K, Timestamped[V]]
	timeout time.Duration
	now     func() time.Time

	name string
	log  ctxd.Logger
	stat stats.Tracker
}

// NewExpiring creates an expiring LRU cache with a given timeout and optional configuration.
func NewExpiring[K comparable, V any](timeout time.Duration, cfg ...Config[K]) *Expiring[K, V] {
	c := ExpiringOver[K, V](New[K, Timestamped[V]](cfg...), timeout)

	if len(cfg) >= 1 {
		c.name = cfg[0].Name
		c.log = cfg[0].Logger
		c.stat = cfg[0].Stats
	}

	return c
}

// ExpiringOver decorates an arbitrary cache of timestamped values,
// for example a Shared one.
func ExpiringOver[K comparable, V any](cache Cache[K, Timestamped[V]], timeout time.Duration) *Expiring[K, V] {
	return &Expiring[K, V]{
		cache:   cache,
		timeout: timeout,
		now:     time.Now,
	}
}

// Insert stores value under key with the current timestamp.
func (c *Expiring[K, V]) Insert(key K, value V) (V, bool) {
	prev, replaced := c.cache.Insert(key, Timestamped[V]{Value: value, InsertedAt: c.now()})

	return prev.Value, replaced
}

// Get returns the value stored under key if it is younger than the timeout.
//
// A stale entry is removed from the inner cache and reported as absent.
// A fresh hit promotes the entry to most recently used.
func (c *Expiring[K, V]) Get(key K) (V, bool) {
	var zero V

	e, found := c.cache.Get(key)
	if !found {
		return zero, false
	}

	if c.now().Sub(e.InsertedAt) > c.timeout {
		c.cache.Remove(key)

		if c.log != nil {
			c.log.Debug(context.Background(), "removed expired cache entry", "name", c.name)
		}

		if c.stat != nil {
			c.stat.Add(context.Background(), MetricExpired, 1, "name", c.name)
		}

		return zero, false
	}

	return e.Value, true
}

// Remove deletes the entry if present and returns its value regardless of age.
func (c *Expiring[K, V]) Remove(key K) (V, bool) {
	e, found := c.cache.Remove(key)

	return e.Value, found
}

// Clear removes all entries keeping capacity for future use.
func (c *Expiring[K, V]) Clear() {
	c.cache.Clear()
}

// Len returns current number of entries, stale ones included.
func (c *Expiring[K, V]) Len() int {
	return c.cache.Len()
}

// Timeout returns the configured expiry timeout.
func (c *Expiring[K, V]) Timeout() time.Duration {
	return c.timeout
}

// SetTimeout updates the expiry timeout.
//
// Stored timestamps are untouched and no entries are removed, only future
// accesses compare against the new value.
func (c *Expiring[K, V]) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// InsertedAt returns the time the key was inserted, even when it is older
// than the timeout. The entry is promoted as a side effect.
func (c *Expiring[K, V]) InsertedAt(key K) (time.Time, bool) {
	e, found := c.cache.Get(key)
	if !found {
		return time.Time{}, false
	}

	return e.InsertedAt, true
}
