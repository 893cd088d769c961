package cached

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
)

var _ repository.SessionRepository = (*SessionRepository)(nil)

// SessionRepository caches refresh sessions under the auth namespace so a
// user anonymization can sweep them with one pattern.
type SessionRepository struct {
	inner repository.SessionRepository
	aside *cache.Aside
	cfg   cache.Config
}

func NewSessionRepository(inner repository.SessionRepository, aside *cache.Aside, cfg cache.Config) *SessionRepository {
	return &SessionRepository{inner: inner, aside: aside, cfg: cfg}
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	if !r.cfg.Enabled {
		return r.inner.FindByToken(ctx, token)
	}
	key := cache.Key(r.cfg.KeyPrefix, authDomain, "FindByToken", token)
	return cache.ReadThrough(ctx, r.aside, authDomain, key, r.cfg.TTLFor(authDomain),
		func(ctx context.Context) (*domain.Session, error) {
			return r.inner.FindByToken(ctx, token)
		})
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if err := r.inner.Create(ctx, session); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, authDomain)
	return nil
}

func (r *SessionRepository) Revoke(ctx context.Context, token string) error {
	if err := r.inner.Revoke(ctx, token); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, authDomain)
	return nil
}

func (r *SessionRepository) RevokeByUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.inner.RevokeByUser(ctx, userID); err != nil {
		return err
	}
	invalidate(ctx, r.aside, r.cfg, authDomain)
	return nil
}
