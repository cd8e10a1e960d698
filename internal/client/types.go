package client

import (
	"time"

	"github.com/GuilleEguia/taskmanager/internal/models"
)

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// taskPayload is a task as it crosses the wire; due_date travels as a
// yyyy-MM-dd string and is parsed at this boundary only.
type taskPayload struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      int       `json:"status"`
	Project     int64     `json:"project"`
	AssignedTo  *int64    `json:"assigned_to"`
	Owner       int64     `json:"owner"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"due_date"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type taskPageResponse struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []taskPayload `json:"results"`
}

type projectPageResponse struct {
	Count   int              `json:"count"`
	Results []models.Project `json:"results"`
}

// CreateTaskRequest is the body for task creation. The service stamps
// id, owner and status itself.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Project     int64   `json:"project"`
	DueDate     *string `json:"due_date"`
}

// UpdateTaskRequest is the full task body required by the update call.
type UpdateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      int     `json:"status"`
	Project     int64   `json:"project"`
	AssignedTo  *int64  `json:"assigned_to"`
	DueDate     *string `json:"due_date"`
}

type createProjectRequest struct {
	Name string `json:"name"`
}

type UpdateProfileRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
	Bio       string `json:"bio"`
	State     string `json:"state"`
}

func (p taskPayload) toTask() (models.Task, error) {
	due, err := parseDueDate(p.DueDate)
	if err != nil {
		return models.Task{}, err
	}
	return models.Task{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      models.Status(p.Status),
		Project:     p.Project,
		AssignedTo:  p.AssignedTo,
		Owner:       p.Owner,
		Priority:    p.Priority,
		DueDate:     due,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}
