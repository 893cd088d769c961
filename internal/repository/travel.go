package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/pkg/pagination"
)

// TravelQuery filters the public travel search. Date is a YYYY-MM-DD string;
// empty matches any day. The whole struct is serialized into the cache key,
// so every field that narrows the result must live here.
type TravelQuery struct {
	OriginID      uuid.UUID `json:"originId"`
	DestinationID uuid.UUID `json:"destinationId"`
	Date          string    `json:"date,omitempty"`
}

// TravelRepository is the published-trip port.
type TravelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Travel, error)
	Search(ctx context.Context, q TravelQuery, p pagination.Params) (*pagination.Page[domain.Travel], error)
	FindByDriver(ctx context.Context, driverID uuid.UUID, p pagination.Params) (*pagination.Page[domain.Travel], error)
	CountByDriver(ctx context.Context, driverID uuid.UUID) (int64, error)

	Create(ctx context.Context, travel *domain.Travel) error
	Update(ctx context.Context, travel *domain.Travel) error

	// Delete cascades to the travel's inscriptions.
	Delete(ctx context.Context, id uuid.UUID) error
}
