// Package lru provides a compact in-memory LRU cache with composable
// time-to-live and thread-safety decorators.
//
// Features:
//
//   - Exact least-recently-used eviction with O(1) insert, lookup and removal.
//   - Keys are reduced to 64-bit digests, recency order is an intrusive
//     arena-backed ring, keeping storage compact and allocation-light.
//   - TTL and sharing are decorators over a common Cache interface and nest
//     in either order without duplicating eviction logic.
//   - Read-through Loader locks updates per key to build missing values once.
//   - Allows logging, stats collection.
//   - Allows mass removal (drop cache) with flood protection.
package lru
