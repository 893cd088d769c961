package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/pkg/pagination"
)

// CarRepository is the registered-vehicle port.
type CarRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	FindByPlate(ctx context.Context, plate string) (*domain.Car, error)
	FindByDriver(ctx context.Context, driverID uuid.UUID, p pagination.Params) (*pagination.Page[domain.Car], error)

	Create(ctx context.Context, car *domain.Car) error
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
}
