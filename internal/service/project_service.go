package service

import (
	"context"

	"github.com/GuilleEguia/taskmanager/internal/client"
	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/GuilleEguia/taskmanager/internal/session"
	"github.com/sirupsen/logrus"
)

type ProjectService struct {
	api     client.ProjectAPI
	profile *ProfileService
	store   *session.Store
	log     *logrus.Entry
}

func NewProjectService(api client.ProjectAPI, profile *ProfileService, store *session.Store, log *logrus.Entry) *ProjectService {
	return &ProjectService{
		api:     api,
		profile: profile,
		store:   store,
		log:     log,
	}
}

// List fetches the project collection and keeps only the current
// user's own projects. Filtering happens here, at the query boundary,
// so foreign records never reach a view.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	user, err := s.profile.Get(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.api.GetProjects(ctx)
	if err != nil {
		return nil, checkAuthFailure(s.store, err)
	}

	own := make([]models.Project, 0, len(projects))
	for _, project := range projects {
		if project.Owner == user.UserID {
			own = append(own, project)
		}
	}
	return own, nil
}

func (s *ProjectService) Create(ctx context.Context, name string) (*models.Project, error) {
	const op = "service.Project.Create"

	if !s.store.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	project, err := s.api.CreateProject(ctx, name)
	if err != nil {
		return nil, checkAuthFailure(s.store, err)
	}

	s.log.WithField("operation", op).WithField("project", project.ID).Info("project created")
	return project, nil
}
