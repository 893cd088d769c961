package cached

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/pkg/pagination"
)

var _ repository.CarRepository = (*CarRepository)(nil)

// CarRepository caches registered vehicles.
type CarRepository struct {
	inner repository.CarRepository
	aside *cache.Aside
	cfg   cache.Config
}

func NewCarRepository(inner repository.CarRepository, aside *cache.Aside, cfg cache.Config) *CarRepository {
	return &CarRepository{inner: inner, aside: aside, cfg: cfg}
}

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByID(ctx, id)
	}
	key := cache.Key(r.cfg.KeyPrefix, carDomain, "FindByID", id)
	return cache.ReadThrough(ctx, r.aside, carDomain, key, r.cfg.TTLFor(carDomain),
		func(ctx context.Context) (*domain.Car, error) {
			return r.inner.FindByID(ctx, id)
		})
}

func (r *CarRepository) FindByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByPlate(ctx, plate)
	}
	key := cache.Key(r.cfg.KeyPrefix, carDomain, "FindByPlate", plate)
	return cache.ReadThrough(ctx, r.aside, carDomain, key, r.cfg.TTLFor(carDomain),
		func(ctx context.Context) (*domain.Car, error) {
			return r.inner.FindByPlate(ctx, plate)
		})
}

func (r *CarRepository) FindByDriver(ctx context.Context, driverID uuid.UUID, p pagination.Params) (*pagination.Page[domain.Car], error) {
	if !r.cfg.Enabled {
		return r.inner.FindByDriver(ctx, driverID, p)
	}
	key := cache.Key(r.cfg.KeyPrefix, carDomain, "FindByDriver", driverID, p)
	return cache.ReadThrough(ctx, r.aside, carDomain, key, r.cfg.TTLFor(carDomain),
		func(ctx context.Context) (*pagination.Page[domain.Car], error) {
			return r.inner.FindByDriver(ctx, driverID, p)
		})
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	if err := r.inner.Create(ctx, car); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, carDomain)
	return nil
}

func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	if err := r.inner.Update(ctx, car); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, carDomain)
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, carDomain)
	return nil
}
