package lru

// Metric names for stats.Tracker.
const (
	// MetricHit is a name of metric to count cache hits.
	MetricHit = "cache_hit"

	// MetricMiss is a name of metric to count cache misses.
	MetricMiss = "cache_miss"

	// MetricExpired is a name of metric to count expired entries removed on access.
	MetricExpired = "cache_expired"

	// MetricEvict is a name of metric to count entries evicted on capacity overflow.
	MetricEvict = "cache_evict"

	// MetricWrite is a name of metric to count cache writes.
	MetricWrite = "cache_write"

	// MetricDelete is a name of metric to count removed entries.
	MetricDelete = "cache_delete"

	// MetricBuild is a name of metric to count loader builds.
	MetricBuild = "cache_build"

	// MetricFailed is a name of metric to count failed loader builds.
	MetricFailed = "cache_failed"
)
