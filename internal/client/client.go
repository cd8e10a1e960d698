package client

import (
	"context"

	"github.com/GuilleEguia/taskmanager/internal/models"
)

// TokenSource supplies the bearer credential for authenticated calls.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type TaskAPI interface {
	GetTasks(ctx context.Context, page, pageSize int) (*models.TaskPage, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type ProjectAPI interface {
	GetProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, name string) (*models.Project, error)
}

type ProfileAPI interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*models.Profile, error)
}

// API is the full surface of the remote TaskManager service.
type API interface {
	Authenticator
	TaskAPI
	ProjectAPI
	ProfileAPI
}
