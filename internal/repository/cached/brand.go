package cached

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
)

var _ repository.BrandRepository = (*BrandRepository)(nil)

// BrandRepository caches the brand catalog. Brands change rarely, so they
// get the longest default TTL.
type BrandRepository struct {
	inner repository.BrandRepository
	aside *cache.Aside
	cfg   cache.Config
}

func NewBrandRepository(inner repository.BrandRepository, aside *cache.Aside, cfg cache.Config) *BrandRepository {
	return &BrandRepository{inner: inner, aside: aside, cfg: cfg}
}

func (r *BrandRepository) FindAll(ctx context.Context) ([]domain.Brand, error) {
	if !r.cfg.Enabled {
		return r.inner.FindAll(ctx)
	}
	key := cache.Key(r.cfg.KeyPrefix, brandDomain, "FindAll")
	return cache.ReadThrough(ctx, r.aside, brandDomain, key, r.cfg.TTLFor(brandDomain),
		func(ctx context.Context) ([]domain.Brand, error) {
			return r.inner.FindAll(ctx)
		})
}

func (r *BrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByID(ctx, id)
	}
	key := cache.Key(r.cfg.KeyPrefix, brandDomain, "FindByID", id)
	return cache.ReadThrough(ctx, r.aside, brandDomain, key, r.cfg.TTLFor(brandDomain),
		func(ctx context.Context) (*domain.Brand, error) {
			return r.inner.FindByID(ctx, id)
		})
}

func (r *BrandRepository) FindModels(ctx context.Context, brandID uuid.UUID) ([]domain.CarModel, error) {
	if !r.cfg.Enabled {
		return r.inner.FindModels(ctx, brandID)
	}
	key := cache.Key(r.cfg.KeyPrefix, brandDomain, "FindModels", brandID)
	return cache.ReadThrough(ctx, r.aside, brandDomain, key, r.cfg.TTLFor(brandDomain),
		func(ctx context.Context) ([]domain.CarModel, error) {
			return r.inner.FindModels(ctx, brandID)
		})
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	if err := r.inner.Create(ctx, brand); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, brandDomain)
	return nil
}

func (r *BrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	if err := r.inner.Update(ctx, brand); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, brandDomain)
	return nil
}

func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, brandDomain)
	return nil
}
