package lru

// Cache is a bounded key-value store with least-recently-used eviction.
//
// Absence of a value is a regular result, not an error: lookup-style
// operations return false instead of failing.
//
// Implementations are not safe for concurrent use unless stated otherwise,
// wrap with NewShared to hand a cache across goroutines.
type Cache[K comparable, V any] interface {
	// Insert stores value under key and makes the entry most recently used.
	// If the key was already present its previous value is returned and
	// replaced without changing capacity usage. If the key is new and the
	// cache is full, the least recently used entry is evicted first.
	Insert(key K, value V) (prev V, replaced bool)

	// Get returns the value stored under key and makes the entry most
	// recently used.
	Get(key K) (V, bool)

	// Remove deletes the entry if present and returns its value.
	// Relative order of the remaining entries is not affected.
	Remove(key K) (V, bool)

	// Clear removes all entries keeping capacity for future use.
	Clear()

	// Len returns current number of entries.
	Len() int
}
