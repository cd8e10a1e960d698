package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GuilleEguia/taskmanager/internal/client"
	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/GuilleEguia/taskmanager/internal/session"
	"github.com/sirupsen/logrus"
)

type TaskService struct {
	api      client.TaskAPI
	projects *ProjectService
	profile  *ProfileService
	store    *session.Store
	pageSize int
	log      *logrus.Entry
}

func NewTaskService(api client.TaskAPI, projects *ProjectService, profile *ProfileService, store *session.Store, pageSize int, log *logrus.Entry) *TaskService {
	return &TaskService{
		api:      api,
		projects: projects,
		profile:  profile,
		store:    store,
		pageSize: pageSize,
		log:      log,
	}
}

// TaskListing is one rendered page: the user's own tasks plus the
// project names they reference.
type TaskListing struct {
	Tasks        []models.Task
	ProjectNames map[int64]string
	Page         int
	Count        int
	HasNext      bool
	HasPrevious  bool
}

// TaskChanges carries the fields an edit wants to touch; nil fields
// keep their current value. DueDateSet distinguishes "clear the due
// date" from "leave it alone".
type TaskChanges struct {
	Title       *string
	Description *string
	Status      *models.Status
	Project     *int64
	AssignedTo  *int64
	DueDate     *time.Time
	DueDateSet  bool
}

// List fetches one page of tasks, drops everything not owned by the
// current user before anyone else sees it, joins project names, and
// refreshes the shared cache. A failed fetch leaves the cache as it
// was.
func (s *TaskService) List(ctx context.Context, page int) (*TaskListing, error) {
	const op = "service.Task.List"

	user, err := s.profile.Get(ctx)
	if err != nil {
		return nil, err
	}

	taskPage, err := s.api.GetTasks(ctx, page, s.pageSize)
	if err != nil {
		return nil, checkAuthFailure(s.store, err)
	}

	own := make([]models.Task, 0, len(taskPage.Results))
	for _, task := range taskPage.Results {
		if task.Owner == user.UserID {
			own = append(own, task)
		}
	}

	names, err := s.projectNames(ctx)
	if err != nil {
		s.log.WithField("operation", op).WithError(err).Warn("could not load project names")
		names = map[int64]string{}
	}

	if err := s.store.SetTasks(own); err != nil {
		return nil, err
	}

	return &TaskListing{
		Tasks:        own,
		ProjectNames: names,
		Page:         page,
		Count:        taskPage.Count,
		HasNext:      taskPage.HasNext,
		HasPrevious:  taskPage.HasPrevious,
	}, nil
}

// CachedList serves the last fetched page from the shared cache,
// avoiding a network round trip. The data may be stale.
func (s *TaskService) CachedList(ctx context.Context) (*TaskListing, error) {
	if !s.store.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	names, err := s.projectNames(ctx)
	if err != nil {
		names = map[int64]string{}
	}

	return &TaskListing{
		Tasks:        s.store.Tasks(),
		ProjectNames: names,
	}, nil
}

func (s *TaskService) Create(ctx context.Context, title, description string, projectId int64, due *time.Time) (*models.Task, error) {
	const op = "service.Task.Create"

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	if !containsProject(projects, projectId) {
		return nil, fmt.Errorf("project %d is not one of your projects", projectId)
	}

	task, err := s.api.CreateTask(ctx, client.CreateTaskRequest{
		Title:       title,
		Description: description,
		Project:     projectId,
		DueDate:     client.FormatDueDate(due),
	})
	if err != nil {
		return nil, checkAuthFailure(s.store, err)
	}

	if err := s.store.AddTask(*task); err != nil {
		return nil, err
	}

	s.log.WithField("operation", op).WithField("task", task.ID).Info("task created")
	return task, nil
}

// Update applies changes over the task's current state and sends the
// full record, since the service expects a complete body on update. On
// failure the cache keeps the previous version.
func (s *TaskService) Update(ctx context.Context, id int64, changes TaskChanges) (*models.Task, error) {
	const op = "service.Task.Update"

	current, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}

	req := client.UpdateTaskRequest{
		Title:       current.Title,
		Description: current.Description,
		Status:      int(current.Status),
		Project:     current.Project,
		AssignedTo:  current.AssignedTo,
		DueDate:     client.FormatDueDate(current.DueDate),
	}
	if changes.Title != nil {
		req.Title = *changes.Title
	}
	if changes.Description != nil {
		req.Description = *changes.Description
	}
	if changes.Status != nil {
		req.Status = int(*changes.Status)
	}
	if changes.Project != nil {
		req.Project = *changes.Project
	}
	if changes.AssignedTo != nil {
		req.AssignedTo = changes.AssignedTo
	}
	if changes.DueDateSet {
		req.DueDate = client.FormatDueDate(changes.DueDate)
	}

	updated, err := s.api.UpdateTask(ctx, id, req)
	if err != nil {
		return nil, checkAuthFailure(s.store, err)
	}

	cached := s.store.Tasks()
	for i, task := range cached {
		if task.ID == id {
			cached[i] = *updated
		}
	}
	if err := s.store.SetTasks(cached); err != nil {
		return nil, err
	}

	s.log.WithField("operation", op).WithField("task", id).Info("task updated")
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	const op = "service.Task.Delete"

	if !s.store.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if err := s.api.DeleteTask(ctx, id); err != nil {
		return checkAuthFailure(s.store, err)
	}

	cached := s.store.Tasks()
	remaining := make([]models.Task, 0, len(cached))
	for _, task := range cached {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}
	if err := s.store.SetTasks(remaining); err != nil {
		return err
	}

	s.log.WithField("operation", op).WithField("task", id).Info("task deleted")
	return nil
}

// findTask looks in the shared cache first and walks the remote pages
// only on a miss.
func (s *TaskService) findTask(ctx context.Context, id int64) (*models.Task, error) {
	for _, task := range s.store.Tasks() {
		if task.ID == id {
			return &task, nil
		}
	}

	user, err := s.profile.Get(ctx)
	if err != nil {
		return nil, err
	}

	for page := 1; ; page++ {
		taskPage, err := s.api.GetTasks(ctx, page, s.pageSize)
		if err != nil {
			return nil, checkAuthFailure(s.store, err)
		}
		for _, task := range taskPage.Results {
			if task.ID == id && task.Owner == user.UserID {
				return &task, nil
			}
		}
		if !taskPage.HasNext {
			break
		}
	}
	return nil, fmt.Errorf("task %d not found", id)
}

func (s *TaskService) projectNames(ctx context.Context) (map[int64]string, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(projects))
	for _, project := range projects {
		names[project.ID] = project.Name
	}
	return names, nil
}

func containsProject(projects []models.Project, id int64) bool {
	for _, project := range projects {
		if project.ID == id {
			return true
		}
	}
	return false
}
