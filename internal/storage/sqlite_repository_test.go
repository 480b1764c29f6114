package storage

import (
	"context"
	"errors"
	"testing"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func TestLoadMissingSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	if _, err := repo.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	payload := []byte(`{"users":[],"currentUserId":"","tasksHistory":null}`)
	if err := repo.Save(ctx, payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("payload mismatch: got %q", got)
	}
}

func TestSaveOverwritesExistingRow(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Save(ctx, []byte(`first`)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, []byte(`second`)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected latest payload, got %q", got)
	}
}

func TestClearRemovesSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Save(ctx, []byte(`payload`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := repo.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got: %v", err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}
}
