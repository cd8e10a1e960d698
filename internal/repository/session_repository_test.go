package repository

import (
	"path/filepath"
	"testing"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	db, err := InitDB(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer db.Close()

	repo := NewSessionRepository(db)

	if _, ok, err := repo.Get(KeyAuthToken); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	if err := repo.Set(KeyAuthToken, "abc123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := repo.Get(KeyAuthToken)
	if err != nil || !ok || value != "abc123" {
		t.Fatalf("unexpected read: value=%q ok=%v err=%v", value, ok, err)
	}

	// Upsert overwrites.
	if err := repo.Set(KeyAuthToken, "def456"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, _, _ = repo.Get(KeyAuthToken)
	if value != "def456" {
		t.Errorf("expected overwritten value, got %q", value)
	}

	if err := repo.Delete(KeyAuthToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := repo.Get(KeyAuthToken); ok {
		t.Error("expected entry to be gone after delete")
	}

	if err := repo.Set(KeyUser, `{"id":3}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := repo.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := repo.Get(KeyUser); ok {
		t.Error("expected store empty after clear")
	}
}
