package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avolkovv/memobox-backend/internal/adapter/postgres/settings"
	"github.com/avolkovv/memobox-backend/internal/adapter/postgres/testhelper"
	"github.com/avolkovv/memobox-backend/internal/domain"
)

func newRepo(t *testing.T) (*settings.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return settings.New(pool), pool
}

func TestRepo_GetByUserID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByUserID(ctx, testhelper.SeedUserID())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_Upsert_InsertThenUpdate(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	userID := testhelper.SeedUserID()

	initial := domain.DefaultUserSettings(userID)
	saved, err := repo.Upsert(ctx, initial)
	if err != nil {
		t.Fatalf("Upsert[insert]: unexpected error: %v", err)
	}

	if saved.UserID != userID {
		t.Errorf("UserID mismatch: got %s, want %s", saved.UserID, userID)
	}
	if saved.DesiredRetention != initial.DesiredRetention {
		t.Errorf("DesiredRetention mismatch: got %f", saved.DesiredRetention)
	}

	saved.DesiredRetention = 0.85
	saved.NewCardsPerDay = 10
	saved.Timezone = "Europe/Berlin"

	updated, err := repo.Upsert(ctx, saved)
	if err != nil {
		t.Fatalf("Upsert[update]: unexpected error: %v", err)
	}

	if updated.DesiredRetention != 0.85 {
		t.Errorf("DesiredRetention mismatch: got %f, want 0.85", updated.DesiredRetention)
	}
	if updated.NewCardsPerDay != 10 {
		t.Errorf("NewCardsPerDay mismatch: got %d, want 10", updated.NewCardsPerDay)
	}
	if updated.Timezone != "Europe/Berlin" {
		t.Errorf("Timezone mismatch: got %q", updated.Timezone)
	}
	if !updated.UpdatedAt.After(saved.UpdatedAt) && !updated.UpdatedAt.Equal(saved.UpdatedAt) {
		t.Errorf("expected UpdatedAt to advance, got %v", updated.UpdatedAt)
	}

	got, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID: unexpected error: %v", err)
	}
	if got.DesiredRetention != 0.85 {
		t.Errorf("persisted DesiredRetention mismatch: got %f", got.DesiredRetention)
	}
}

func TestRepo_Upsert_RejectsOutOfRangeRetention(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	bad := domain.DefaultUserSettings(testhelper.SeedUserID())
	bad.DesiredRetention = 1.5

	_, err := repo.Upsert(ctx, bad)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation from check constraint, got: %v", err)
	}
}
