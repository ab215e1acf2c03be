package lru

import (
	"context"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

var _ Cache[string, int] = &LRU[string, int]{}

// slot holds a stored value together with the handle of its node in the
// recency ring. The handle changes every time the entry is promoted.
type slot[V any] struct {
	value V
	node  int
}

// LRU is a bounded in-memory cache with exact least-recently-used eviction.
//
// Keys are not stored, only their 64-bit digests are, which keeps the cache
// compact but makes it impossible to enumerate original keys and leaves
// digest collisions undetected (see Digester).
//
// LRU is not safe for concurrent use, wrap with NewShared to hand it across
// goroutines. Please use New to create an instance.
type LRU[K comparable, V any] struct {
	storage  map[uint64]*slot[V]
	recency  ringList[uint64]
	capacity int
	digest   Digester[K]

	name string
	log  ctxd.Logger
	stat stats.Tracker
}

// New creates an LRU cache instance with optional configuration.
func New[K comparable, V any](cfg ...Config[K]) *LRU[K, V] {
	config := Config[K]{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	if config.Capacity == 0 {
		config.Capacity = DefaultCapacity
	}

	if config.Capacity < 1 {
		config.Capacity = 1
	}

	if config.Digest == nil {
		config.Digest = DigestOf[K]
	}

	return &LRU[K, V]{
		storage:  make(map[uint64]*slot[V], config.Capacity),
		recency:  newRingList[uint64](config.Capacity),
		capacity: config.Capacity,
		digest:   config.Digest,
		name:     config.Name,
		log:      config.Logger,
		stat:     config.Stats,
	}
}

// Insert stores value under key and makes the entry most recently used.
//
// If the key was already present its previous value is returned and replaced
// without changing capacity usage. If the key is new and the cache is full,
// the least recently used entry is evicted first.
func (c *LRU[K, V]) Insert(key K, value V) (V, bool) {
	var prev V

	d := c.digest(key)

	s, found := c.storage[d]
	if found {
		prev = s.value
		c.recency.removeNode(s.node)
	} else if len(c.storage) >= c.capacity {
		c.evictTail()
	}

	if found {
		s.value = value
		s.node = c.recency.pushFront(d)
	} else {
		c.storage[d] = &slot[V]{value: value, node: c.recency.pushFront(d)}
	}

	if c.stat != nil {
		c.stat.Add(context.Background(), MetricWrite, 1, "name", c.name)
	}

	return prev, found
}

// Get returns the value stored under key and makes the entry most recently used.
//
// Promotion detaches the recency node and pushes it back to the front, the
// value itself is not reallocated.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	var zero V

	d := c.digest(key)

	s, found := c.storage[d]
	if !found {
		if c.stat != nil {
			c.stat.Add(context.Background(), MetricMiss, 1, "name", c.name)
		}

		return zero, false
	}

	c.recency.removeNode(s.node)
	s.node = c.recency.pushFront(d)

	if c.stat != nil {
		c.stat.Add(context.Background(), MetricHit, 1, "name", c.name)
	}

	return s.value, true
}

// Remove deletes the entry if present and returns its value.
// Relative order of the remaining entries is not affected.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	var zero V

	d := c.digest(key)

	s, found := c.storage[d]
	if !found {
		return zero, false
	}

	c.recency.removeNode(s.node)
	delete(c.storage, d)

	if c.stat != nil {
		c.stat.Add(context.Background(), MetricDelete, 1, "name", c.name)
	}

	return s.value, true
}

// Clear removes all entries keeping capacity for future use.
func (c *LRU[K, V]) Clear() {
	c.storage = make(map[uint64]*slot[V], c.capacity)
	c.recency.clear()

	if c.log != nil {
		c.log.Important(context.Background(), "cleared cache", "name", c.name)
	}
}

// Len returns current number of entries.
func (c *LRU[K, V]) Len() int {
	return len(c.storage)
}

func (c *LRU[K, V]) evictTail() {
	tail, ok := c.recency.popBack()
	if !ok {
		return
	}

	delete(c.storage, tail)

	if c.log != nil {
		c.log.Debug(context.Background(), "evicted least recently used entry",
			"name", c.name,
			"digest", tail,
		)
	}

	if c.stat != nil {
		c.stat.Add(context.Background(), MetricEvict, 1, "name", c.name)
	}
}
