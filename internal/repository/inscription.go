package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/pkg/pagination"
)

// InscriptionRepository is the booking port. Writes touch seat availability
// on the parent travel, so the caching decorator invalidates both namespaces.
type InscriptionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Inscription, error)
	FindByTravel(ctx context.Context, travelID uuid.UUID, p pagination.Params) (*pagination.Page[domain.Inscription], error)
	FindByPassenger(ctx context.Context, passengerID uuid.UUID, p pagination.Params) (*pagination.Page[domain.Inscription], error)
	ExistsByTravelAndPassenger(ctx context.Context, travelID, passengerID uuid.UUID) (bool, error)
	CountByTravel(ctx context.Context, travelID uuid.UUID) (int64, error)

	Create(ctx context.Context, inscription *domain.Inscription) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InscriptionStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
