// Package di wires the cache store, the aside coordinator, and the cached
// repository decorators together. It manages singleton instances so every
// decorator shares one store and one set of collectors.
package di

import (
	"go.uber.org/zap"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/internal/repository/cached"
)

// Container holds the shared cache collaborators and provides factory
// methods for the per-entity cached repositories.
type Container struct {
	store cache.Store
	cfg   cache.Config
	aside *cache.Aside
}

// Option configures the container's optional collaborators.
type Option func(*options)

type options struct {
	log     *zap.Logger
	metrics cache.Metrics
}

// WithLogger routes cache warnings and debug lines to the given logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics wires a hit/miss/invalidation recorder.
func WithMetrics(m cache.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// NewContainer validates cfg and builds the shared Aside over store.
func NewContainer(store cache.Store, cfg cache.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	asideOpts := []cache.Option{}
	if o.log != nil {
		asideOpts = append(asideOpts, cache.WithLogger(o.log))
	}
	if o.metrics != nil {
		asideOpts = append(asideOpts, cache.WithMetrics(o.metrics))
	}

	return &Container{
		store: store,
		cfg:   cfg,
		aside: cache.NewAside(store, asideOpts...),
	}, nil
}

// Store returns the shared store instance for advanced use cases.
func (c *Container) Store() cache.Store {
	return c.store
}

// Config returns a copy of the cache configuration used by this container.
func (c *Container) Config() cache.Config {
	return c.cfg
}

// Aside returns the shared read-through coordinator.
func (c *Container) Aside() *cache.Aside {
	return c.aside
}

// Brands wraps inner with the brand cache decorator.
func (c *Container) Brands(inner repository.BrandRepository) repository.BrandRepository {
	return cached.NewBrandRepository(inner, c.aside, c.cfg)
}

// Cars wraps inner with the car cache decorator.
func (c *Container) Cars(inner repository.CarRepository) repository.CarRepository {
	return cached.NewCarRepository(inner, c.aside, c.cfg)
}

// Cities wraps inner with the city cache decorator.
func (c *Container) Cities(inner repository.CityRepository) repository.CityRepository {
	return cached.NewCityRepository(inner, c.aside, c.cfg)
}

// Users wraps inner with the user cache decorator.
func (c *Container) Users(inner repository.UserRepository) repository.UserRepository {
	return cached.NewUserRepository(inner, c.aside, c.cfg)
}

// Drivers wraps inner with the driver cache decorator.
func (c *Container) Drivers(inner repository.DriverRepository) repository.DriverRepository {
	return cached.NewDriverRepository(inner, c.aside, c.cfg)
}

// Sessions wraps inner with the auth-session cache decorator.
func (c *Container) Sessions(inner repository.SessionRepository) repository.SessionRepository {
	return cached.NewSessionRepository(inner, c.aside, c.cfg)
}

// Travels wraps inner with the travel cache decorator.
func (c *Container) Travels(inner repository.TravelRepository) repository.TravelRepository {
	return cached.NewTravelRepository(inner, c.aside, c.cfg)
}

// Inscriptions wraps inner with the inscription cache decorator.
func (c *Container) Inscriptions(inner repository.InscriptionRepository) repository.InscriptionRepository {
	return cached.NewInscriptionRepository(inner, c.aside, c.cfg)
}
