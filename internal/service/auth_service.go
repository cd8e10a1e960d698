package service

import (
	"context"

	"github.com/GuilleEguia/taskmanager/internal/client"
	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/GuilleEguia/taskmanager/internal/session"
	"github.com/sirupsen/logrus"
)

type AuthService struct {
	api   client.API
	store *session.Store
	log   *logrus.Entry
}

func NewAuthService(api client.API, store *session.Store, log *logrus.Entry) *AuthService {
	return &AuthService{
		api:   api,
		store: store,
		log:   log,
	}
}

// Login authenticates against the remote service and opens a session
// with the returned token. The profile is fetched right after so views
// have the user's identity; a failed profile fetch is logged and does
// not undo the login, the next authenticated view retries it lazily.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Profile, error) {
	const op = "service.Auth.Login"
	log := s.log.WithField("operation", op)

	token, err := s.api.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := s.store.Login(token); err != nil {
		return nil, err
	}

	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		log.WithError(err).Warn("could not load profile data")
		return nil, nil
	}
	if err := s.store.SetUser(profile); err != nil {
		return nil, err
	}

	log.WithField("user", profile.Username).Info("logged in")
	return profile, nil
}

func (s *AuthService) Logout() error {
	return s.store.Logout()
}
