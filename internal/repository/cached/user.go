package cached

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository caches user accounts. Anonymize carries the widest
// invalidation set in the system: the scrubbed identity is denormalized into
// auth sessions, the driver profile, and inscription listings, so all four
// namespaces go.
type UserRepository struct {
	inner repository.UserRepository
	aside *cache.Aside
	cfg   cache.Config
}

func NewUserRepository(inner repository.UserRepository, aside *cache.Aside, cfg cache.Config) *UserRepository {
	return &UserRepository{inner: inner, aside: aside, cfg: cfg}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByID(ctx, id)
	}
	key := cache.Key(r.cfg.KeyPrefix, userDomain, "FindByID", id)
	return cache.ReadThrough(ctx, r.aside, userDomain, key, r.cfg.TTLFor(userDomain),
		func(ctx context.Context) (*domain.User, error) {
			return r.inner.FindByID(ctx, id)
		})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByEmail(ctx, email)
	}
	key := cache.Key(r.cfg.KeyPrefix, userDomain, "FindByEmail", email)
	return cache.ReadThrough(ctx, r.aside, userDomain, key, r.cfg.TTLFor(userDomain),
		func(ctx context.Context) (*domain.User, error) {
			return r.inner.FindByEmail(ctx, email)
		})
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if !r.cfg.Enabled {
		return r.inner.ExistsByEmail(ctx, email)
	}
	key := cache.Key(r.cfg.KeyPrefix, userDomain, "ExistsByEmail", email)
	return cache.ReadThrough(ctx, r.aside, userDomain, key, r.cfg.TTLFor(userDomain),
		func(ctx context.Context) (bool, error) {
			return r.inner.ExistsByEmail(ctx, email)
		})
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.inner.Create(ctx, user); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, userDomain)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := r.inner.Update(ctx, user); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, userDomain)
	return nil
}

func (r *UserRepository) Anonymize(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Anonymize(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, userDomain, authDomain, driverDomain, inscriptionDomain)
	return nil
}
