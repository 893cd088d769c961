package cached

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/pkg/pagination"
)

var _ repository.TravelRepository = (*TravelRepository)(nil)

// TravelRepository caches published travels. Deleting a travel cascades to
// its inscriptions in the source, so the invalidation must sweep both
// namespaces or inscription listings would keep serving rows whose travel is
// gone.
type TravelRepository struct {
	inner repository.TravelRepository
	aside *cache.Aside
	cfg   cache.Config
}

func NewTravelRepository(inner repository.TravelRepository, aside *cache.Aside, cfg cache.Config) *TravelRepository {
	return &TravelRepository{inner: inner, aside: aside, cfg: cfg}
}

func (r *TravelRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Travel, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByID(ctx, id)
	}
	key := cache.Key(r.cfg.KeyPrefix, travelDomain, "FindByID", id)
	return cache.ReadThrough(ctx, r.aside, travelDomain, key, r.cfg.TTLFor(travelDomain),
		func(ctx context.Context) (*domain.Travel, error) {
			return r.inner.FindByID(ctx, id)
		})
}

func (r *TravelRepository) Search(ctx context.Context, q repository.TravelQuery, p pagination.Params) (*pagination.Page[domain.Travel], error) {
	if !r.cfg.Enabled {
		return r.inner.Search(ctx, q, p)
	}
	key := cache.Key(r.cfg.KeyPrefix, travelDomain, "Search", q, p)
	return cache.ReadThrough(ctx, r.aside, travelDomain, key, r.cfg.TTLFor(travelDomain),
		func(ctx context.Context) (*pagination.Page[domain.Travel], error) {
			return r.inner.Search(ctx, q, p)
		})
}

func (r *TravelRepository) FindByDriver(ctx context.Context, driverID uuid.UUID, p pagination.Params) (*pagination.Page[domain.Travel], error) {
	if !r.cfg.Enabled {
		return r.inner.FindByDriver(ctx, driverID, p)
	}
	key := cache.Key(r.cfg.KeyPrefix, travelDomain, "FindByDriver", driverID, p)
	return cache.ReadThrough(ctx, r.aside, travelDomain, key, r.cfg.TTLFor(travelDomain),
		func(ctx context.Context) (*pagination.Page[domain.Travel], error) {
			return r.inner.FindByDriver(ctx, driverID, p)
		})
}

func (r *TravelRepository) CountByDriver(ctx context.Context, driverID uuid.UUID) (int64, error) {
	if !r.cfg.Enabled {
		return r.inner.CountByDriver(ctx, driverID)
	}
	key := cache.Key(r.cfg.KeyPrefix, travelDomain, "CountByDriver", driverID)
	return cache.ReadThrough(ctx, r.aside, travelDomain, key, r.cfg.TTLFor(travelDomain),
		func(ctx context.Context) (int64, error) {
			return r.inner.CountByDriver(ctx, driverID)
		})
}

func (r *TravelRepository) Create(ctx context.Context, travel *domain.Travel) error {
	if err := r.inner.Create(ctx, travel); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, travelDomain)
	return nil
}

func (r *TravelRepository) Update(ctx context.Context, travel *domain.Travel) error {
	if err := r.inner.Update(ctx, travel); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, travelDomain)
	return nil
}

func (r *TravelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, travelDomain, inscriptionDomain)
	return nil
}
