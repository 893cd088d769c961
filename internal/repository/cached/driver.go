package cached

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
)

var _ repository.DriverRepository = (*DriverRepository)(nil)

// DriverRepository caches driver profiles.
type DriverRepository struct {
	inner repository.DriverRepository
	aside *cache.Aside
	cfg   cache.Config
}

func NewDriverRepository(inner repository.DriverRepository, aside *cache.Aside, cfg cache.Config) *DriverRepository {
	return &DriverRepository{inner: inner, aside: aside, cfg: cfg}
}

func (r *DriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByID(ctx, id)
	}
	key := cache.Key(r.cfg.KeyPrefix, driverDomain, "FindByID", id)
	return cache.ReadThrough(ctx, r.aside, driverDomain, key, r.cfg.TTLFor(driverDomain),
		func(ctx context.Context) (*domain.Driver, error) {
			return r.inner.FindByID(ctx, id)
		})
}

func (r *DriverRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*domain.Driver, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByUser(ctx, userID)
	}
	key := cache.Key(r.cfg.KeyPrefix, driverDomain, "FindByUser", userID)
	return cache.ReadThrough(ctx, r.aside, driverDomain, key, r.cfg.TTLFor(driverDomain),
		func(ctx context.Context) (*domain.Driver, error) {
			return r.inner.FindByUser(ctx, userID)
		})
}

func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	if err := r.inner.Create(ctx, driver); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, driverDomain)
	return nil
}

func (r *DriverRepository) Update(ctx context.Context, driver *domain.Driver) error {
	if err := r.inner.Update(ctx, driver); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, driverDomain)
	return nil
}

func (r *DriverRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	if err := r.inner.SetVerified(ctx, id, verified); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, driverDomain)
	return nil
}
