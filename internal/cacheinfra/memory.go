package cacheinfra

import (
	"context"
	"path"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/wheelshare/carpool-api/cache"
)

var _ cache.Store = (*MemoryStore)(nil)

// MemoryConfig sizes the in-process store.
type MemoryConfig struct {
	// Capacity is the maximum number of entries. Must be greater than 0.
	Capacity int

	// NumShards controls concurrent access; higher values trade memory for
	// less lock contention. Must be greater than 0.
	NumShards int

	// TTL is the client-wide lifetime applied to every entry.
	TTL time.Duration

	// EvictionPercentage is the share of entries dropped when the cache is
	// full, between 1 and 100.
	EvictionPercentage int
}

// DefaultMemoryConfig returns sizes suitable for tests and single-node runs.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Capacity:           10000,
		NumShards:          64,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
	}
}

// Validate checks the configuration values.
func (c MemoryConfig) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	return nil
}

// ConfigError reports an invalid store configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "cacheinfra: config field " + e.Field + " " + e.Message
}

// MemoryStore backs cache.Store with a sturdyc client. It serves tests and
// single-process deployments; multi-node deployments want the Redis store so
// invalidations reach every replica.
//
// sturdyc expires entries with the client-wide TTL, so the per-call TTL hint
// is ignored here. The Redis store honors it.
type MemoryStore struct {
	client *sturdyc.Client[[]byte]
}

// NewMemoryStore builds an in-process store from the given sizing.
func NewMemoryStore(cfg MemoryConfig) (*MemoryStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[[]byte](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage)
	return &MemoryStore{client: client}, nil
}

// Get returns the stored bytes or (nil, nil) on a miss.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := s.client.Get(key)
	if !ok {
		return nil, nil
	}
	return value, nil
}

// Set stores value under key. The ttl argument is ignored, see MemoryStore.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, _ time.Duration) error {
	s.client.Set(key, value)
	return nil
}

// DeleteByPattern removes every key matching the glob pattern. Keys contain
// no path separators, so path.Match's "*" spans whole key suffixes.
func (s *MemoryStore) DeleteByPattern(ctx context.Context, pattern string) error {
	for _, key := range s.client.ScanKeys() {
		ok, err := path.Match(pattern, key)
		if err != nil {
			return err
		}
		if ok {
			s.client.Delete(key)
		}
	}
	return nil
}
