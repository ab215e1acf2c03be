package lru

var _ Cache[string, int] = NoOp[string, int]{}

// NoOp is a Cache stub that stores nothing, it can disable caching where a
// Cache is required.
type NoOp[K comparable, V any] struct{}

// Insert discards the value.
func (NoOp[K, V]) Insert(K, V) (V, bool) {
	var zero V

	return zero, false
}

// Get does not find anything.
func (NoOp[K, V]) Get(K) (V, bool) {
	var zero V

	return zero, false
}

// Remove does not find anything.
func (NoOp[K, V]) Remove(K) (V, bool) {
	var zero V

	return zero, false
}

// Clear does nothing.
func (NoOp[K, V]) Clear() {}

// Len returns zero.
func (NoOp[K, V]) Len() int {
	return 0
}
