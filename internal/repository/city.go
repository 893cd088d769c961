package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/pkg/pagination"
)

// CityRepository is the city catalog port.
type CityRepository interface {
	FindAll(ctx context.Context, p pagination.Params) (*pagination.Page[domain.City], error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.City, error)
	SearchByName(ctx context.Context, query string, p pagination.Params) (*pagination.Page[domain.City], error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	Create(ctx context.Context, city *domain.City) error
	Update(ctx context.Context, city *domain.City) error
	Delete(ctx context.Context, id uuid.UUID) error
}
