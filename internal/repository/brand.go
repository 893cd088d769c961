package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/internal/domain"
)

// BrandRepository is the vehicle-brand catalog port.
type BrandRepository interface {
	FindAll(ctx context.Context) ([]domain.Brand, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	FindModels(ctx context.Context, brandID uuid.UUID) ([]domain.CarModel, error)

	Create(ctx context.Context, brand *domain.Brand) error
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}
