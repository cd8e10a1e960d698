package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// Storage keys carried over from the browser client this replaces.
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read session entry %q: %w", key, err)
	}
	return value, true, nil
}

func (r *SessionRepository) Set(key, value string) error {
	query := `
		INSERT INTO session (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("write session entry %q: %w", key, err)
	}
	return nil
}

func (r *SessionRepository) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM session WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete session entry %q: %w", key, err)
	}
	return nil
}

func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session entries: %w", err)
	}
	return nil
}
