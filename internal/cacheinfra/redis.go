package cacheinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wheelshare/carpool-api/cache"
)

var _ cache.Store = (*RedisStore)(nil)

// RedisConfig connects the distributed store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// ScanCount bounds how many keys each SCAN page inspects during pattern
	// deletion. Zero uses a sensible default.
	ScanCount int64
}

// RedisStore backs cache.Store with Redis, making cached entries and
// invalidations visible across every API replica. Pattern deletion walks the
// keyspace with SCAN rather than KEYS so large caches never block the server.
type RedisStore struct {
	client    *redis.Client
	scanCount int64
}

// NewRedisStore connects and pings the Redis backend.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cacheinfra: redis ping: %w", err)
	}

	scan := cfg.ScanCount
	if scan <= 0 {
		scan = 200
	}

	return &RedisStore{client: client, scanCount: scan}, nil
}

// Get returns the stored bytes or (nil, nil) when the key is absent.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cacheinfra: redis get %q: %w", key, err)
	}
	return b, nil
}

// Set stores value under key with the given expiration.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cacheinfra: redis set %q: %w", key, err)
	}
	return nil
}

// DeleteByPattern deletes every key matching the glob pattern, batching DELs
// per SCAN page.
func (s *RedisStore) DeleteByPattern(ctx context.Context, pattern string) error {
	iter := s.client.Scan(ctx, 0, pattern, s.scanCount).Iterator()

	keys := make([]string, 0, s.scanCount)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if int64(len(keys)) >= s.scanCount {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cacheinfra: redis del %q: %w", pattern, err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cacheinfra: redis scan %q: %w", pattern, err)
	}
	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("cacheinfra: redis del %q: %w", pattern, err)
		}
	}
	return nil
}

// Ping checks backend health.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
