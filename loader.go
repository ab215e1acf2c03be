package lru

import (
	"context"
	"sync"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

// LoaderConfig is optional configuration for NewLoader.
type LoaderConfig struct {
	// Name is added to logs and stats.
	Name string

	// Logger collects messages with context.
	Logger ctxd.Logger

	// Stats tracks stats.
	Stats stats.Tracker
}

// Loader is a read-through front for a cache.
//
// Builds are locked per key to avoid concurrent updates: getters of a
// missing key wait for a single build instead of stampeding the upstream.
// Wrap the cache with NewShared when the loader is used from multiple
// goroutines.
//
// Please use NewLoader to create an instance.
type Loader[K comparable, V any] struct {
	cache Cache[K, V]

	lock     sync.Mutex          // Securing keyLocks.
	keyLocks map[K]chan struct{} // Preventing update concurrency per key.

	config LoaderConfig
	log    ctxd.Logger
	stat   stats.Tracker
}

// NewLoader creates a read-through front over a cache with optional configuration.
func NewLoader[K comparable, V any](cache Cache[K, V], cfg ...LoaderConfig) *Loader[K, V] {
	config := LoaderConfig{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	l := &Loader[K, V]{
		cache:    cache,
		keyLocks: make(map[K]chan struct{}),
		config:   config,
		log:      config.Logger,
		stat:     config.Stats,
	}

	if l.log == nil {
		l.log = ctxd.NoOpLogger{}
	}

	if l.stat == nil {
		l.stat = stats.NoOp{}
	}

	return l
}

// Get returns the cached value or builds it with buildFunc and caches the result.
//
// A context from WithSkipRead disregards the cached value and forces a build.
func (l *Loader[K, V]) Get(ctx context.Context, key K, buildFunc func(ctx context.Context) (V, error)) (V, error) {
	// Checking for a cached value before the critical section.
	if !SkipRead(ctx) {
		if v, found := l.cache.Get(key); found {
			return v, nil
		}
	}

	// Locking the key for update or finding an active lock.
	l.lock.Lock()

	keyLock, alreadyLocked := l.keyLocks[key]
	if !alreadyLocked {
		keyLock = make(chan struct{})
		l.keyLocks[key] = keyLock
	}
	l.lock.Unlock()

	if alreadyLocked {
		return l.waitForValue(ctx, key, keyLock)
	}

	// Releasing the lock.
	defer func() {
		l.lock.Lock()
		delete(l.keyLocks, key)
		close(keyLock)
		l.lock.Unlock()
	}()

	// Checking again in the critical section, a former lock holder may have
	// built the value between the first check and lock acquisition.
	if !SkipRead(ctx) {
		if v, found := l.cache.Get(key); found {
			return v, nil
		}
	}

	return l.doBuild(ctx, key, buildFunc)
}

func (l *Loader[K, V]) waitForValue(ctx context.Context, key K, keyLock chan struct{}) (V, error) {
	var zero V

	l.log.Debug(ctx, "waiting for cache value", "name", l.config.Name, "key", key)

	// Waiting for the value built by the keyLock owner.
	select {
	case <-keyLock:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	if v, found := l.cache.Get(key); found {
		return v, nil
	}

	// The lock owner failed to build, callers may retry.
	return zero, ErrNotFound
}

func (l *Loader[K, V]) doBuild(ctx context.Context, key K, buildFunc func(ctx context.Context) (V, error)) (V, error) {
	var zero V

	defer func() {
		l.stat.Add(ctx, MetricBuild, 1, "name", l.config.Name)
	}()

	l.log.Debug(ctx, "building cache value", "name", l.config.Name, "key", key)

	v, err := buildFunc(ctx)
	if err != nil {
		l.stat.Add(ctx, MetricFailed, 1, "name", l.config.Name)

		return zero, err
	}

	l.cache.Insert(key, v)

	return v, nil
}
