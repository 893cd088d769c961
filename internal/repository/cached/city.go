package cached

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/pkg/pagination"
)

var _ repository.CityRepository = (*CityRepository)(nil)

// CityRepository caches the city catalog.
type CityRepository struct {
	inner repository.CityRepository
	aside *cache.Aside
	cfg   cache.Config
}

func NewCityRepository(inner repository.CityRepository, aside *cache.Aside, cfg cache.Config) *CityRepository {
	return &CityRepository{inner: inner, aside: aside, cfg: cfg}
}

func (r *CityRepository) FindAll(ctx context.Context, p pagination.Params) (*pagination.Page[domain.City], error) {
	if !r.cfg.Enabled {
		return r.inner.FindAll(ctx, p)
	}
	key := cache.Key(r.cfg.KeyPrefix, cityDomain, "FindAll", p)
	return cache.ReadThrough(ctx, r.aside, cityDomain, key, r.cfg.TTLFor(cityDomain),
		func(ctx context.Context) (*pagination.Page[domain.City], error) {
			return r.inner.FindAll(ctx, p)
		})
}

func (r *CityRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByID(ctx, id)
	}
	key := cache.Key(r.cfg.KeyPrefix, cityDomain, "FindByID", id)
	return cache.ReadThrough(ctx, r.aside, cityDomain, key, r.cfg.TTLFor(cityDomain),
		func(ctx context.Context) (*domain.City, error) {
			return r.inner.FindByID(ctx, id)
		})
}

func (r *CityRepository) SearchByName(ctx context.Context, query string, p pagination.Params) (*pagination.Page[domain.City], error) {
	if !r.cfg.Enabled {
		return r.inner.SearchByName(ctx, query, p)
	}
	key := cache.Key(r.cfg.KeyPrefix, cityDomain, "SearchByName", query, p)
	return cache.ReadThrough(ctx, r.aside, cityDomain, key, r.cfg.TTLFor(cityDomain),
		func(ctx context.Context) (*pagination.Page[domain.City], error) {
			return r.inner.SearchByName(ctx, query, p)
		})
}

func (r *CityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if !r.cfg.Enabled {
		return r.inner.ExistsByName(ctx, name)
	}
	key := cache.Key(r.cfg.KeyPrefix, cityDomain, "ExistsByName", name)
	return cache.ReadThrough(ctx, r.aside, cityDomain, key, r.cfg.TTLFor(cityDomain),
		func(ctx context.Context) (bool, error) {
			return r.inner.ExistsByName(ctx, name)
		})
}

func (r *CityRepository) Create(ctx context.Context, city *domain.City) error {
	if err := r.inner.Create(ctx, city); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, cityDomain)
	return nil
}

func (r *CityRepository) Update(ctx context.Context, city *domain.City) error {
	if err := r.inner.Update(ctx, city); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, cityDomain)
	return nil
}

func (r *CityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, cityDomain)
	return nil
}
