package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "memory", cfg.CacheBackend)
	assert.True(t, cfg.CacheEnabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_KEY_PREFIX", "staging:")
	t.Setenv("CACHE_DEFAULT_TTL", "30s")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, "staging:", cfg.CacheKeyPrefix)
	assert.Equal(t, 30*time.Second, cfg.CacheDefaultTTL)
	assert.Equal(t, "redis", cfg.CacheBackend)
	assert.Equal(t, "redis.internal:6380", cfg.RedisSettings().Addr)
}

func TestCacheSettings_KeepsDomainTTLs(t *testing.T) {
	t.Setenv("CACHE_DEFAULT_TTL", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	settings := cfg.CacheSettings()
	assert.Equal(t, 45*time.Second, settings.DefaultTTL)
	assert.Equal(t, 24*time.Hour, settings.TTLFor("brand"), "domain overrides must survive the merge")
	assert.Equal(t, time.Minute, settings.TTLFor("travel"))
}

func TestMemorySettings_SizesFromEnvironment(t *testing.T) {
	t.Setenv("MEMORY_CACHE_CAPACITY", "500")
	t.Setenv("MEMORY_CACHE_SHARDS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	mem := cfg.MemorySettings()
	assert.Equal(t, 500, mem.Capacity)
	assert.Equal(t, 8, mem.NumShards)
	assert.NoError(t, mem.Validate())
}
