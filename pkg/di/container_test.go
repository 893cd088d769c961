package di

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/cacheinfra"
	"github.com/wheelshare/carpool-api/internal/domain"
)

type countingBrandRepo struct {
	findAllCalls int
}

func (r *countingBrandRepo) FindAll(context.Context) ([]domain.Brand, error) {
	r.findAllCalls++
	return []domain.Brand{{ID: uuid.New(), Name: "Renault"}}, nil
}

func (r *countingBrandRepo) FindByID(context.Context, uuid.UUID) (*domain.Brand, error) {
	return nil, domain.NewError(domain.CodeBrandNotFound, "brand not found")
}

func (r *countingBrandRepo) FindModels(context.Context, uuid.UUID) ([]domain.CarModel, error) {
	return nil, nil
}

func (r *countingBrandRepo) Create(context.Context, *domain.Brand) error { return nil }
func (r *countingBrandRepo) Update(context.Context, *domain.Brand) error { return nil }
func (r *countingBrandRepo) Delete(context.Context, uuid.UUID) error     { return nil }

func newTestStore(t *testing.T) cache.Store {
	t.Helper()
	store, err := cacheinfra.NewMemoryStore(cacheinfra.DefaultMemoryConfig())
	require.NoError(t, err)
	return store
}

func TestNewContainer_RejectsInvalidConfig(t *testing.T) {
	cfg := cache.DefaultConfig()
	cfg.KeyPrefix = ""

	_, err := NewContainer(newTestStore(t), cfg)
	assert.Error(t, err)
}

func TestNewContainer_DisabledConfigAlwaysValid(t *testing.T) {
	_, err := NewContainer(newTestStore(t), cache.Config{Enabled: false})
	assert.NoError(t, err)
}

func TestContainer_DecoratorsShareOneStore(t *testing.T) {
	store := newTestStore(t)
	c, err := NewContainer(store, cache.DefaultConfig())
	require.NoError(t, err)

	inner := &countingBrandRepo{}
	brands := c.Brands(inner)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		got, err := brands.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}

	assert.Equal(t, 1, inner.findAllCalls, "repeat reads should be served from the shared store")
	assert.Same(t, store, c.Store())
}

func TestContainer_ConfigIsACopy(t *testing.T) {
	cfg := cache.DefaultConfig()
	c, err := NewContainer(newTestStore(t), cfg)
	require.NoError(t, err)

	got := c.Config()
	got.KeyPrefix = "other:"

	assert.Equal(t, cfg.KeyPrefix, c.Config().KeyPrefix)
}
