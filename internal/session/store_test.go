package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/GuilleEguia/taskmanager/internal/repository"
	"github.com/sirupsen/logrus"
)

func newTestStore(t *testing.T, dbPath string) *Store {
	t.Helper()

	db, err := repository.InitDB(dbPath)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log := logrus.NewEntry(logrus.New())
	store, err := NewStore(repository.NewSessionRepository(db), repository.NewTaskCacheRepository(db), log)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestFreshStoreIsAnonymous(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, filepath.Join(t.TempDir(), "session.db"))
	if store.IsAuthenticated() {
		t.Error("expected fresh store to be anonymous")
	}
	if store.Token() != "" {
		t.Errorf("expected empty token, got %q", store.Token())
	}
}

func TestLoginPersistsAcrossReload(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "session.db")

	store := newTestStore(t, dbPath)
	if err := store.Login("abc123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !store.IsAuthenticated() {
		t.Fatal("expected store to be authenticated after login")
	}

	if err := store.SetUser(&models.Profile{ID: 3, UserID: 5, Username: "guille"}); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}

	// A second store over the same file plays the page reload.
	reloaded := newTestStore(t, dbPath)
	if !reloaded.IsAuthenticated() {
		t.Error("expected reloaded store to be authenticated")
	}
	if reloaded.Token() != "abc123" {
		t.Errorf("expected token abc123 after reload, got %q", reloaded.Token())
	}

	user := reloaded.User()
	if user == nil {
		t.Fatal("expected user to survive reload")
	}
	if user.UserID != 5 || user.Username != "guille" {
		t.Errorf("unexpected reloaded user: %+v", user)
	}
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, filepath.Join(t.TempDir(), "session.db"))
	if err := store.Login(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestLogoutClearsDurableState(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "session.db")

	store := newTestStore(t, dbPath)
	if err := store.Login("abc123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := store.SetUser(&models.Profile{UserID: 5}); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}
	if err := store.SetTasks([]models.Task{{ID: 1, Title: "one", Owner: 5}}); err != nil {
		t.Fatalf("SetTasks failed: %v", err)
	}

	if err := store.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if store.IsAuthenticated() {
		t.Error("expected store to be anonymous after logout")
	}
	if store.User() != nil {
		t.Error("expected user to be cleared on logout")
	}
	if len(store.Tasks()) != 0 {
		t.Error("expected task cache to be cleared on logout")
	}

	// Logout is idempotent.
	if err := store.Logout(); err != nil {
		t.Fatalf("second Logout failed: %v", err)
	}

	reloaded := newTestStore(t, dbPath)
	if reloaded.IsAuthenticated() {
		t.Error("expected reload after logout to be anonymous")
	}
}

func TestTaskCacheRoundTrip(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "session.db")
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	store := newTestStore(t, dbPath)
	if err := store.Login("abc123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	tasks := []models.Task{
		{ID: 2, Title: "second", Owner: 5, Status: models.StatusOpen, DueDate: &due},
		{ID: 1, Title: "first", Owner: 5, Status: models.StatusDone},
	}
	if err := store.SetTasks(tasks); err != nil {
		t.Fatalf("SetTasks failed: %v", err)
	}
	if err := store.AddTask(models.Task{ID: 3, Title: "third", Owner: 5}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	reloaded := newTestStore(t, dbPath)
	got := reloaded.Tasks()
	if len(got) != 3 {
		t.Fatalf("expected 3 cached tasks, got %d", len(got))
	}
	// Listing order survives the round trip.
	if got[0].ID != 2 || got[1].ID != 1 || got[2].ID != 3 {
		t.Errorf("unexpected cache order: %d, %d, %d", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[0].DueDate == nil || !got[0].DueDate.Equal(due) {
		t.Errorf("due date did not survive caching: %v", got[0].DueDate)
	}
}
