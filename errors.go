package lru

// SentinelError is an error.
type SentinelError string

const (
	// ErrNotFound indicates missing cache entry.
	ErrNotFound = SentinelError("missing cache entry")

	// ErrNothingToInvalidate indicates no caches were added to Invalidator.
	ErrNothingToInvalidate = SentinelError("nothing to invalidate")

	// ErrAlreadyInvalidated indicates recent invalidation.
	ErrAlreadyInvalidated = SentinelError("already invalidated")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}
