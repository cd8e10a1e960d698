package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TaskManagerClient talks to the remote TaskManager REST service. It
// shapes request bodies and attaches the bearer token; everything else
// (ownership, status codes, persistence) is the service's business.
type TaskManagerClient struct {
	baseUrl    string
	tokens     TokenSource
	httpClient *http.Client
	log        *logrus.Entry
}

func NewTaskManagerClient(baseUrl string, tokens TokenSource, log *logrus.Entry) *TaskManagerClient {
	return &TaskManagerClient{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("parse due_date: %w", err)
	}
	return &t, nil
}

// FormatDueDate renders a due date the way the service expects it, or
// nil for no due date.
func FormatDueDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// do performs one request against path, marshalling reqBody when
// present, attaching the token when authed, and decoding a successful
// answer into out. Non-2xx answers become an *APIError.
func (c *TaskManagerClient) do(ctx context.Context, method, path string, reqBody, out any, authed bool) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+"/"+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestId := uuid.NewString()
	req.Header.Set("X-Request-ID", requestId)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Token "+c.tokens.Token())
	}

	log := c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestId,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log.WithField("status", resp.StatusCode).Debug("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Detail:     parseErrorDetail(errorBody),
		}
	}

	if out == nil {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response (%s %s): %w", method, path, err)
	}
	return nil
}

func (c *TaskManagerClient) Authenticate(ctx context.Context, username, password string) (string, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "api-auth/", authRequest{Username: username, Password: password}, &resp, false)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *TaskManagerClient) GetTasks(ctx context.Context, page, pageSize int) (*models.TaskPage, error) {
	path := "taskmanager/tasks/?page=" + strconv.Itoa(page)
	if pageSize > 0 {
		path += "&page_size=" + strconv.Itoa(pageSize)
	}

	var resp taskPageResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, len(resp.Results))
	for i, payload := range resp.Results {
		task, err := payload.toTask()
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}

	return &models.TaskPage{
		Count:       resp.Count,
		HasNext:     resp.Next != nil,
		HasPrevious: resp.Previous != nil,
		Results:     tasks,
	}, nil
}

func (c *TaskManagerClient) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	var resp taskPayload
	if err := c.do(ctx, http.MethodPost, "taskmanager/tasks/", req, &resp, true); err != nil {
		return nil, err
	}
	task, err := resp.toTask()
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *TaskManagerClient) UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) (*models.Task, error) {
	var resp taskPayload
	path := "taskmanager/tasks/" + strconv.FormatInt(id, 10) + "/"
	if err := c.do(ctx, http.MethodPut, path, req, &resp, true); err != nil {
		return nil, err
	}
	task, err := resp.toTask()
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *TaskManagerClient) DeleteTask(ctx context.Context, id int64) error {
	path := "taskmanager/tasks/" + strconv.FormatInt(id, 10) + "/"
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}

func (c *TaskManagerClient) GetProjects(ctx context.Context) ([]models.Project, error) {
	var resp projectPageResponse
	if err := c.do(ctx, http.MethodGet, "taskmanager/projects/", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *TaskManagerClient) CreateProject(ctx context.Context, name string) (*models.Project, error) {
	var resp models.Project
	if err := c.do(ctx, http.MethodPost, "taskmanager/projects/", createProjectRequest{Name: name}, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *TaskManagerClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	var resp models.Profile
	if err := c.do(ctx, http.MethodGet, "users/profiles/profile_data/", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *TaskManagerClient) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*models.Profile, error) {
	var resp models.Profile
	path := "users/profiles/" + strconv.FormatInt(id, 10) + "/"
	if err := c.do(ctx, http.MethodPut, path, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}
