package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/GuilleEguia/taskmanager/internal/models"
)

// TaskCacheRepository persists the shared task list between command
// invocations so views can render without a redundant fetch. Rows are
// stored as JSON payloads in listing order.
type TaskCacheRepository struct {
	db *sql.DB
}

func NewTaskCacheRepository(db *sql.DB) *TaskCacheRepository {
	return &TaskCacheRepository{db: db}
}

func (r *TaskCacheRepository) Replace(tasks []models.Task) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin task cache write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM task_cache`); err != nil {
		return fmt.Errorf("clear task cache: %w", err)
	}

	for i, task := range tasks {
		payload, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("marshal cached task %d: %w", task.ID, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO task_cache (id, position, payload) VALUES (?, ?, ?)`,
			task.ID, i, string(payload),
		); err != nil {
			return fmt.Errorf("write cached task %d: %w", task.ID, err)
		}
	}

	return tx.Commit()
}

func (r *TaskCacheRepository) Append(task models.Task) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal cached task %d: %w", task.ID, err)
	}

	query := `
		INSERT INTO task_cache (id, position, payload)
        VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM task_cache), ?)
        ON CONFLICT(id) DO UPDATE SET payload = excluded.payload
	`
	if _, err := r.db.Exec(query, task.ID, string(payload)); err != nil {
		return fmt.Errorf("append cached task %d: %w", task.ID, err)
	}
	return nil
}

func (r *TaskCacheRepository) Load() ([]models.Task, error) {
	rows, err := r.db.Query(`SELECT payload FROM task_cache ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("read task cache: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan cached task: %w", err)
		}
		var task models.Task
		if err := json.Unmarshal([]byte(payload), &task); err != nil {
			return nil, fmt.Errorf("parse cached task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *TaskCacheRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM task_cache`); err != nil {
		return fmt.Errorf("clear task cache: %w", err)
	}
	return nil
}
