package models

import "time"

// Status is the integer code the TaskManager API uses for task state.
type Status int

const (
	StatusDone Status = 48
	StatusOpen Status = 49
)

func (s Status) Done() bool {
	return s == StatusDone
}

func (s Status) String() string {
	if s == StatusDone {
		return "done"
	}
	return "open"
}

type Task struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	Project     int64
	AssignedTo  *int64
	Owner       int64
	Priority    string
	DueDate     *time.Time
	UpdatedAt   time.Time
}

// TaskPage is one page of the paginated task listing. HasNext and
// HasPrevious reflect the presence of the API's next/previous links.
type TaskPage struct {
	Count       int
	HasNext     bool
	HasPrevious bool
	Results     []Task
}
