package cached

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/cache"
	"github.com/wheelshare/carpool-api/internal/domain"
)

type stubUserRepo struct {
	user         *domain.User
	anonymizeErr error
}

func (s *stubUserRepo) FindByID(context.Context, uuid.UUID) (*domain.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return s.user != nil, nil }
func (s *stubUserRepo) Create(context.Context, *domain.User) error          { return nil }
func (s *stubUserRepo) Update(context.Context, *domain.User) error          { return nil }
func (s *stubUserRepo) Anonymize(context.Context, uuid.UUID) error          { return s.anonymizeErr }

func TestUserRepository_AnonymizeSweepsAllLinkedNamespaces(t *testing.T) {
	store := newRecordingStore()
	repo := NewUserRepository(&stubUserRepo{}, cache.NewAside(store), testConfig())

	if err := repo.Anonymize(context.Background(), uuid.New()); err != nil {
		t.Fatalf("Anonymize: %v", err)
	}

	want := []string{"test:user:*", "test:auth:*", "test:driver:*", "test:inscription:*"}
	got := store.patterns()
	if len(got) != len(want) {
		t.Fatalf("got %d invalidation patterns %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pattern[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUserRepository_UpdateInvalidatesOnlyUsers(t *testing.T) {
	store := newRecordingStore()
	repo := NewUserRepository(&stubUserRepo{}, cache.NewAside(store), testConfig())

	if err := repo.Update(context.Background(), &domain.User{ID: uuid.New()}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := store.patterns()
	if len(got) != 1 || got[0] != "test:user:*" {
		t.Errorf("got patterns %v, want [test:user:*]", got)
	}
}

func TestUserRepository_FailedAnonymizeDoesNotInvalidate(t *testing.T) {
	store := newRecordingStore()
	inner := &stubUserRepo{anonymizeErr: errors.New("db down")}
	repo := NewUserRepository(inner, cache.NewAside(store), testConfig())

	if err := repo.Anonymize(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected anonymize error")
	}
	if _, _, dels := store.calls(); dels != 0 {
		t.Errorf("failed write invalidated %d patterns, want 0", dels)
	}
}
