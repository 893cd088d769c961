package cache

import (
	"context"
	"time"
)

// Store is the cache backend consumed by the read-through and invalidation
// helpers. It is injected at composition time; this package never constructs
// one. Adapters live in internal/cacheinfra.
type Store interface {
	// Get returns the raw stored bytes, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteByPattern removes every key matching a glob pattern,
	// e.g. "carpool:travel:*".
	DeleteByPattern(ctx context.Context, pattern string) error
}
