package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/internal/domain"
)

// UserRepository is the user-account port.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error

	// Anonymize scrubs the account's personal data in place (GDPR erasure).
	// The user row survives so historical travels and inscriptions keep
	// their foreign keys.
	Anonymize(ctx context.Context, id uuid.UUID) error
}

// DriverRepository is the driver-profile port.
type DriverRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*domain.Driver, error)

	Create(ctx context.Context, driver *domain.Driver) error
	Update(ctx context.Context, driver *domain.Driver) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}

// SessionRepository is the refresh-session port; cached under the auth
// namespace.
type SessionRepository interface {
	FindByToken(ctx context.Context, token string) (*domain.Session, error)

	Create(ctx context.Context, session *domain.Session) error
	Revoke(ctx context.Context, token string) error
	RevokeByUser(ctx context.Context, userID uuid.UUID) error
}
