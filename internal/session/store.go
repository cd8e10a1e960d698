// Package session holds the client-side authentication state: the
// bearer token, the current user, and the shared task cache. The four
// mutating actions are the only way state changes, and every change is
// written through to durable storage so a later invocation starts where
// this one left off.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/GuilleEguia/taskmanager/internal/repository"
	"github.com/sirupsen/logrus"
)

type Store struct {
	mu    sync.Mutex
	token string
	user  *models.Profile
	tasks []models.Task

	sessions *repository.SessionRepository
	cache    *repository.TaskCacheRepository
	log      *logrus.Entry
}

// NewStore hydrates a store from durable storage. A persisted token is
// taken at face value: validity only surfaces on the first
// authenticated call, exactly as a freshly restored browser session
// would discover it.
func NewStore(sessions *repository.SessionRepository, cache *repository.TaskCacheRepository, log *logrus.Entry) (*Store, error) {
	s := &Store{
		sessions: sessions,
		cache:    cache,
		log:      log,
	}

	token, ok, err := sessions.Get(repository.KeyAuthToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s, nil
	}
	s.token = token

	if raw, ok, err := sessions.Get(repository.KeyUser); err != nil {
		return nil, err
	} else if ok {
		var user models.Profile
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			log.WithError(err).Warn("discarding unreadable persisted user")
		} else {
			s.user = &user
		}
	}

	tasks, err := cache.Load()
	if err != nil {
		return nil, err
	}
	s.tasks = tasks

	return s, nil
}

// Login records a credential already validated by the authentication
// endpoint and persists it. The caller is responsible for not passing
// an unverified token.
func (s *Store) Login(token string) error {
	if token == "" {
		return fmt.Errorf("login with empty token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Set(repository.KeyAuthToken, token); err != nil {
		return err
	}
	s.token = token
	s.log.Debug("session opened")
	return nil
}

// Logout resets the store to anonymous and removes every persisted
// entry. Calling it on an anonymous store is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Clear(); err != nil {
		return err
	}
	if err := s.cache.Clear(); err != nil {
		return err
	}

	s.token = ""
	s.user = nil
	s.tasks = nil
	s.log.Debug("session closed")
	return nil
}

// SetUser caches the profile fetched lazily after login.
func (s *Store) SetUser(user *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := s.sessions.Set(repository.KeyUser, string(raw)); err != nil {
		return err
	}
	s.user = user
	return nil
}

// SetTasks replaces the shared task cache.
func (s *Store) SetTasks(tasks []models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Replace(tasks); err != nil {
		return err
	}
	s.tasks = tasks
	return nil
}

// AddTask appends one task to the shared cache.
func (s *Store) AddTask(task models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Append(task); err != nil {
		return err
	}
	s.tasks = append(s.tasks, task)
	return nil
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Store) User() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}
