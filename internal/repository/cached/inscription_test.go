package cached

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/pkg/pagination"
)

type stubInscriptionRepo struct {
	exists      map[string]bool
	existsCalls int
}

func (s *stubInscriptionRepo) FindByID(context.Context, uuid.UUID) (*domain.Inscription, error) {
	return &domain.Inscription{}, nil
}

func (s *stubInscriptionRepo) FindByTravel(_ context.Context, _ uuid.UUID, p pagination.Params) (*pagination.Page[domain.Inscription], error) {
	return pagination.NewPage([]domain.Inscription{}, p, 0), nil
}

func (s *stubInscriptionRepo) FindByPassenger(_ context.Context, _ uuid.UUID, p pagination.Params) (*pagination.Page[domain.Inscription], error) {
	return pagination.NewPage([]domain.Inscription{}, p, 0), nil
}

func (s *stubInscriptionRepo) ExistsByTravelAndPassenger(_ context.Context, travelID, passengerID uuid.UUID) (bool, error) {
	s.existsCalls++
	return s.exists[travelID.String()+"/"+passengerID.String()], nil
}

func (s *stubInscriptionRepo) CountByTravel(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubInscriptionRepo) Create(context.Context, *domain.Inscription) error { return nil }
func (s *stubInscriptionRepo) UpdateStatus(context.Context, uuid.UUID, domain.InscriptionStatus) error {
	return nil
}
func (s *stubInscriptionRepo) Delete(context.Context, uuid.UUID) error { return nil }

func TestInscriptionRepository_WritesInvalidateInscriptionsAndTravels(t *testing.T) {
	want := []string{"test:inscription:*", "test:travel:*"}

	writes := map[string]func(*InscriptionRepository) error{
		"create": func(r *InscriptionRepository) error {
			return r.Create(context.Background(), &domain.Inscription{ID: uuid.New()})
		},
		"update status": func(r *InscriptionRepository) error {
			return r.UpdateStatus(context.Background(), uuid.New(), domain.InscriptionCancelled)
		},
		"delete": func(r *InscriptionRepository) error {
			return r.Delete(context.Background(), uuid.New())
		},
	}

	for name, write := range writes {
		t.Run(name, func(t *testing.T) {
			store := newRecordingStore()
			repo := NewInscriptionRepository(&stubInscriptionRepo{}, cache.NewAside(store), testConfig())

			if err := write(repo); err != nil {
				t.Fatalf("write: %v", err)
			}

			got := store.patterns()
			if len(got) != len(want) {
				t.Fatalf("got %d invalidation patterns %v, want %v", len(got), got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("pattern[%d] = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestInscriptionRepository_ExistsKeyIsPerPair(t *testing.T) {
	store := newRecordingStore()
	travelID := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	inner := &stubInscriptionRepo{exists: map[string]bool{
		travelID.String() + "/" + alice.String(): true,
	}}
	repo := NewInscriptionRepository(inner, cache.NewAside(store), testConfig())

	ctx := context.Background()
	gotAlice, err := repo.ExistsByTravelAndPassenger(ctx, travelID, alice)
	if err != nil {
		t.Fatalf("exists(alice): %v", err)
	}
	gotBob, err := repo.ExistsByTravelAndPassenger(ctx, travelID, bob)
	if err != nil {
		t.Fatalf("exists(bob): %v", err)
	}

	if !gotAlice || gotBob {
		t.Errorf("got alice=%v bob=%v, want true false", gotAlice, gotBob)
	}
	// Different passengers must not share a cache entry.
	if inner.existsCalls != 2 {
		t.Errorf("inner Exists called %d times, want 2", inner.existsCalls)
	}

	// Same pair again is a hit.
	if _, err := repo.ExistsByTravelAndPassenger(ctx, travelID, alice); err != nil {
		t.Fatalf("exists(alice) again: %v", err)
	}
	if inner.existsCalls != 2 {
		t.Errorf("repeat lookup reached the inner repo: %d calls", inner.existsCalls)
	}
}
