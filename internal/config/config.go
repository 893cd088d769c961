// Package config loads the service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/cacheinfra"
)

// Config is the flat environment surface of the service.
type Config struct {
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	CacheEnabled    bool          `envconfig:"CACHE_ENABLED" default:"true"`
	CacheKeyPrefix  string        `envconfig:"CACHE_KEY_PREFIX" default:"carpool:"`
	CacheDefaultTTL time.Duration `envconfig:"CACHE_DEFAULT_TTL" default:"5m"`

	// CacheBackend selects "memory" or "redis".
	CacheBackend string `envconfig:"CACHE_BACKEND" default:"memory"`

	RedisAddr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`
	RedisScanCount int64  `envconfig:"REDIS_SCAN_COUNT" default:"200"`

	MemoryCapacity int `envconfig:"MEMORY_CACHE_CAPACITY" default:"10000"`
	MemoryShards   int `envconfig:"MEMORY_CACHE_SHARDS" default:"64"`
}

// Load reads .env when present, then the process environment. Environment
// variables win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CacheSettings merges the environment overrides into the default cache
// configuration. Per-domain TTLs keep their defaults; only the knobs the
// environment exposes are replaced.
func (c *Config) CacheSettings() cache.Config {
	cfg := cache.DefaultConfig()
	cfg.Enabled = c.CacheEnabled
	cfg.KeyPrefix = c.CacheKeyPrefix
	if c.CacheDefaultTTL > 0 {
		cfg.DefaultTTL = c.CacheDefaultTTL
	}
	return cfg
}

// RedisSettings maps the environment onto the Redis store configuration.
func (c *Config) RedisSettings() cacheinfra.RedisConfig {
	return cacheinfra.RedisConfig{
		Addr:      c.RedisAddr,
		Password:  c.RedisPassword,
		DB:        c.RedisDB,
		ScanCount: c.RedisScanCount,
	}
}

// MemorySettings maps the environment onto the in-process store sizing.
func (c *Config) MemorySettings() cacheinfra.MemoryConfig {
	cfg := cacheinfra.DefaultMemoryConfig()
	if c.MemoryCapacity > 0 {
		cfg.Capacity = c.MemoryCapacity
	}
	if c.MemoryShards > 0 {
		cfg.NumShards = c.MemoryShards
	}
	if c.CacheDefaultTTL > 0 {
		cfg.TTL = c.CacheDefaultTTL
	}
	return cfg
}
