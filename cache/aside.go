package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// FetchFn loads a value from the source of truth on a cache miss.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Metrics receives cache outcome counts. The zero dependency is a no-op.
type Metrics interface {
	Hit(domain string)
	Miss(domain string)
	Invalidate(pattern string)
}

type nopMetrics struct{}

func (nopMetrics) Hit(string)        {}
func (nopMetrics) Miss(string)       {}
func (nopMetrics) Invalidate(string) {}

// envelope is the shape written to the store. The sentinel field lets a
// cached nil be told apart from a miss, and rejects payloads left behind by
// an incompatible schema version: anything that does not carry it is treated
// as a miss and falls through to the source.
type envelope struct {
	Cached bool            `json:"__cached"`
	Data   json.RawMessage `json:"data"`
}

// Aside coordinates read-through caching and post-write invalidation against
// a single Store. It holds no mutable state beyond its injected
// collaborators, so one instance is shared by every decorator.
type Aside struct {
	store   Store
	log     *zap.Logger
	metrics Metrics
}

// Option configures an Aside.
type Option func(*Aside)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *Aside) {
		if log != nil {
			a.log = log
		}
	}
}

// WithMetrics sets the hit/miss/invalidation recorder.
func WithMetrics(m Metrics) Option {
	return func(a *Aside) {
		if m != nil {
			a.metrics = m
		}
	}
}

// NewAside wraps the given store.
func NewAside(store Store, opts ...Option) *Aside {
	a := &Aside{
		store:   store,
		log:     zap.NewNop(),
		metrics: nopMetrics{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ReadThrough wraps a single fallible read with a cache lookup/populate step.
//
// The store is consulted first; a stored value carrying the sentinel is
// returned immediately, including a cached nil, without invoking fetch.
// Anything else (absent key, malformed payload, read error) degrades to
// calling fetch. Fetch failures are returned unchanged and never written to
// the store, so failed lookups cannot poison the cache. A successful fetch is
// written back best-effort: a store write failure is logged and the value is
// still returned.
//
// The wrapped read is therefore never less correct than calling fetch
// directly. The cache may make it slower, never wrong, never broken.
func ReadThrough[T any](ctx context.Context, a *Aside, domain, key string, ttl time.Duration, fetch FetchFn[T]) (T, error) {
	if Bypassed(ctx) {
		return fetch(ctx)
	}

	if raw, err := a.store.Get(ctx, key); err != nil {
		a.log.Warn("cache read failed, falling through",
			zap.String("key", key), zap.Error(err))
	} else if raw != nil {
		if value, ok := decode[T](raw); ok {
			a.metrics.Hit(domain)
			a.log.Debug("cache hit", zap.String("key", key))
			return value, nil
		}
	}

	a.metrics.Miss(domain)

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	if raw, merr := encode(value); merr != nil {
		a.log.Warn("cache write failed",
			zap.String("key", key), zap.Error(merr))
	} else if serr := a.store.Set(ctx, key, raw, ttl); serr != nil {
		a.log.Warn("cache write failed",
			zap.String("key", key), zap.Error(serr))
	}

	return value, nil
}

// Invalidate issues best-effort pattern deletions scoped under the given key
// prefix. Each pattern is independent: a failed deletion is logged at warn
// level and the remaining patterns are still attempted. The write this
// follows has already committed by the time invalidation runs, so a failure
// here trades short-lived staleness for write availability.
func (a *Aside) Invalidate(ctx context.Context, prefix string, patterns ...string) {
	for _, p := range patterns {
		full := prefix + p
		if err := a.store.DeleteByPattern(ctx, full); err != nil {
			a.log.Warn("cache invalidation failed",
				zap.String("pattern", full), zap.Error(err))
			continue
		}
		a.metrics.Invalidate(p)
	}
}

// decode unwraps a stored envelope. ok=false means the payload is not a
// valid sentinel-wrapped entry and must be treated as a miss.
func decode[T any](raw []byte) (T, bool) {
	var value T

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || !env.Cached {
		return value, false
	}

	// A cached "data": null is a legitimate hit recording absence.
	if len(env.Data) == 0 {
		return value, true
	}
	if err := json.Unmarshal(env.Data, &value); err != nil {
		return value, false
	}
	return value, true
}

func encode[T any](value T) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Cached: true, Data: data})
}
