package lru

import (
	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

// DefaultCapacity is the number of entries a cache holds when capacity is not configured.
const DefaultCapacity = 128

// Config controls cache instance.
type Config[K comparable] struct {
	// Logger is an instance of contextualized logger, can be nil.
	Logger ctxd.Logger

	// Stats is metrics collector, can be nil.
	Stats stats.Tracker

	// Name is cache instance name, used in stats and logging.
	Name string

	// Capacity is the maximum number of entries, default DefaultCapacity.
	// Capacity is fixed for the life of the instance.
	// Negative values are clamped to 1.
	Capacity int

	// Digest reduces keys to their 64-bit storage identity, default DigestOf.
	Digest Digester[K]
}
