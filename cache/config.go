package cache

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config controls the cached repository decorators. It is constructed once
// at composition time and read-only afterwards. Enabled=false turns every
// decorator into a pure passthrough: reads never touch the store and writes
// never issue invalidations.
type Config struct {
	Enabled   bool
	KeyPrefix string

	// DefaultTTL applies to any domain missing from TTL.
	DefaultTTL time.Duration

	// TTL maps a domain label (travel, inscription, ...) to the lifetime of
	// its cached entries.
	TTL map[string]time.Duration
}

// DefaultConfig returns the prefix and per-domain lifetimes used when
// nothing is configured. Catalog data (brands, cities) moves rarely and gets
// long TTLs; seat availability (travels, inscriptions) is the most volatile.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		KeyPrefix:  "carpool:",
		DefaultTTL: 5 * time.Minute,
		TTL: map[string]time.Duration{
			"brand":       24 * time.Hour,
			"city":        12 * time.Hour,
			"car":         30 * time.Minute,
			"user":        10 * time.Minute,
			"driver":      10 * time.Minute,
			"auth":        5 * time.Minute,
			"travel":      time.Minute,
			"inscription": time.Minute,
		},
	}
}

// TTLFor returns the lifetime configured for domain, falling back to
// DefaultTTL for unknown domains or non-positive overrides.
func (c Config) TTLFor(domain string) time.Duration {
	if ttl, ok := c.TTL[domain]; ok && ttl > 0 {
		return ttl
	}
	return c.DefaultTTL
}

// Validate checks whether the configuration values are usable. A disabled
// cache passes unconditionally since none of the other fields are read.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.KeyPrefix, validation.Required),
		validation.Field(&c.DefaultTTL, validation.Required, validation.Min(time.Second)),
	)
}
