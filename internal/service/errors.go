package service

import (
	"errors"
	"net/http"

	"github.com/GuilleEguia/taskmanager/internal/client"
	"github.com/GuilleEguia/taskmanager/internal/session"
)

var (
	// ErrNotAuthenticated means the command needs a session and none exists.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrSessionExpired means the service answered 401 to a persisted
	// token. Policy: the stale session is dropped immediately rather
	// than left to fail every following call.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// checkAuthFailure turns a 401 into an expired-session error, clearing
// the persisted state on the way. Every other error passes through.
func checkAuthFailure(store *session.Store, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		if logoutErr := store.Logout(); logoutErr != nil {
			return logoutErr
		}
		return ErrSessionExpired
	}
	return err
}
