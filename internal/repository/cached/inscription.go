package cached

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/pkg/pagination"
)

var _ repository.InscriptionRepository = (*InscriptionRepository)(nil)

// InscriptionRepository caches bookings. Every write also sweeps the travel
// namespace because cached travels carry derived seat availability.
type InscriptionRepository struct {
	inner repository.InscriptionRepository
	aside *cache.Aside
	cfg   cache.Config
}

func NewInscriptionRepository(inner repository.InscriptionRepository, aside *cache.Aside, cfg cache.Config) *InscriptionRepository {
	return &InscriptionRepository{inner: inner, aside: aside, cfg: cfg}
}

func (r *InscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Inscription, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByID(ctx, id)
	}
	key := cache.Key(r.cfg.KeyPrefix, inscriptionDomain, "FindByID", id)
	return cache.ReadThrough(ctx, r.aside, inscriptionDomain, key, r.cfg.TTLFor(inscriptionDomain),
		func(ctx context.Context) (*domain.Inscription, error) {
			return r.inner.FindByID(ctx, id)
		})
}

func (r *InscriptionRepository) FindByTravel(ctx context.Context, travelID uuid.UUID, p pagination.Params) (*pagination.Page[domain.Inscription], error) {
	if !r.cfg.Enabled {
		return r.inner.FindByTravel(ctx, travelID, p)
	}
	key := cache.Key(r.cfg.KeyPrefix, inscriptionDomain, "FindByTravel", travelID, p)
	return cache.ReadThrough(ctx, r.aside, inscriptionDomain, key, r.cfg.TTLFor(inscriptionDomain),
		func(ctx context.Context) (*pagination.Page[domain.Inscription], error) {
			return r.inner.FindByTravel(ctx, travelID, p)
		})
}

func (r *InscriptionRepository) FindByPassenger(ctx context.Context, passengerID uuid.UUID, p pagination.Params) (*pagination.Page[domain.Inscription], error) {
	if !r.cfg.Enabled {
		return r.inner.FindByPassenger(ctx, passengerID, p)
	}
	key := cache.Key(r.cfg.KeyPrefix, inscriptionDomain, "FindByPassenger", passengerID, p)
	return cache.ReadThrough(ctx, r.aside, inscriptionDomain, key, r.cfg.TTLFor(inscriptionDomain),
		func(ctx context.Context) (*pagination.Page[domain.Inscription], error) {
			return r.inner.FindByPassenger(ctx, passengerID, p)
		})
}

func (r *InscriptionRepository) ExistsByTravelAndPassenger(ctx context.Context, travelID, passengerID uuid.UUID) (bool, error) {
	if !r.cfg.Enabled {
		return r.inner.ExistsByTravelAndPassenger(ctx, travelID, passengerID)
	}
	key := cache.Key(r.cfg.KeyPrefix, inscriptionDomain, "ExistsByTravelAndPassenger", travelID, passengerID)
	return cache.ReadThrough(ctx, r.aside, inscriptionDomain, key, r.cfg.TTLFor(inscriptionDomain),
		func(ctx context.Context) (bool, error) {
			return r.inner.ExistsByTravelAndPassenger(ctx, travelID, passengerID)
		})
}

func (r *InscriptionRepository) CountByTravel(ctx context.Context, travelID uuid.UUID) (int64, error) {
	if !r.cfg.Enabled {
		return r.inner.CountByTravel(ctx, travelID)
	}
	key := cache.Key(r.cfg.KeyPrefix, inscriptionDomain, "CountByTravel", travelID)
	return cache.ReadThrough(ctx, r.aside, inscriptionDomain, key, r.cfg.TTLFor(inscriptionDomain),
		func(ctx context.Context) (int64, error) {
			return r.inner.CountByTravel(ctx, travelID)
		})
}

func (r *InscriptionRepository) Create(ctx context.Context, inscription *domain.Inscription) error {
	if err := r.inner.Create(ctx, inscription); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, inscriptionDomain, travelDomain)
	return nil
}

func (r *InscriptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InscriptionStatus) error {
	if err := r.inner.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, inscriptionDomain, travelDomain)
	return nil
}

func (r *InscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, inscriptionDomain, travelDomain)
	return nil
}
