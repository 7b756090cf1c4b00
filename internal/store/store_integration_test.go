//go:build integration

package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/wisdom/internal/guard"
	"github.com/MikeSquared-Agency/wisdom/internal/masters"
	"github.com/MikeSquared-Agency/wisdom/internal/wisdom"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestIntegration_SaveAndGetReflection(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	ref := &wisdom.Reflection{
		ID:       uuid.New(),
		EntryID:  "integration-" + uuid.New().String()[:8],
		Language: guard.Chinese,
		Masters: []masters.Commentary{
			{ID: masters.Laozi, Name: "老子", Content: "上善若水。"},
			{ID: masters.Plato, Name: "柏拉图", Content: "认识你自己。"},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := s.SaveReflection(ctx, ref); err != nil {
		t.Fatalf("SaveReflection failed: %v", err)
	}

	got, err := s.GetReflection(ctx, ref.ID)
	if err != nil {
		t.Fatalf("GetReflection failed: %v", err)
	}
	if got.EntryID != ref.EntryID || got.Language != guard.Chinese {
		t.Errorf("unexpected reflection: %+v", got)
	}
	if len(got.Masters) != 2 || got.Masters[0].ID != masters.Laozi || got.Masters[1].Content != "认识你自己。" {
		t.Errorf("unexpected masters: %+v", got.Masters)
	}
	if !got.CreatedAt.Equal(ref.CreatedAt) {
		t.Errorf("expected created_at %v, got %v", ref.CreatedAt, got.CreatedAt)
	}
}

func TestIntegration_GetReflectionNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetReflection(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
