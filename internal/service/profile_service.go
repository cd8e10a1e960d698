package service

import (
	"context"

	"github.com/GuilleEguia/taskmanager/internal/client"
	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/GuilleEguia/taskmanager/internal/session"
	"github.com/sirupsen/logrus"
)

type ProfileService struct {
	api   client.ProfileAPI
	store *session.Store
	log   *logrus.Entry
}

func NewProfileService(api client.ProfileAPI, store *session.Store, log *logrus.Entry) *ProfileService {
	return &ProfileService{
		api:   api,
		store: store,
		log:   log,
	}
}

// Get returns the cached profile when there is one, fetching it lazily
// otherwise. The lazy fetch happens at most once per session.
func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	if !s.store.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	if user := s.store.User(); user != nil {
		return user, nil
	}

	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		return nil, checkAuthFailure(s.store, err)
	}
	if err := s.store.SetUser(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, req client.UpdateProfileRequest) (*models.Profile, error) {
	const op = "service.Profile.Update"

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateProfile(ctx, current.ID, req)
	if err != nil {
		return nil, checkAuthFailure(s.store, err)
	}
	if err := s.store.SetUser(updated); err != nil {
		return nil, err
	}

	s.log.WithField("operation", op).Info("profile updated")
	return updated, nil
}
