// Package cli is the user-facing surface: each command plays the role
// of one view over the services, collecting input and rendering state.
package cli

import (
	"io"

	"github.com/GuilleEguia/taskmanager/internal/config"
	"github.com/GuilleEguia/taskmanager/internal/service"
	"github.com/GuilleEguia/taskmanager/internal/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Version = "dev"

// App bundles the wired dependencies the commands share.
type App struct {
	Store    *session.Store
	Auth     *service.AuthService
	Tasks    *service.TaskService
	Projects *service.ProjectService
	Profile  *service.ProfileService
	Config   *config.Config
	Log      *logrus.Entry
	Out      io.Writer
	In       io.Reader
}

func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "taskmanager",
		Short:         "TaskManager - terminal client for the TaskManager service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(loginCmd(app))
	rootCmd.AddCommand(logoutCmd(app))
	rootCmd.AddCommand(whoamiCmd(app))
	rootCmd.AddCommand(tasksCmd(app))
	rootCmd.AddCommand(taskCmd(app))
	rootCmd.AddCommand(projectsCmd(app))
	rootCmd.AddCommand(projectCmd(app))
	rootCmd.AddCommand(profileCmd(app))

	return rootCmd
}

// requireAuth guards the authenticated commands the way the protected
// routes guarded views: anonymous users are sent to login instead.
func requireAuth(app *App) error {
	if !app.Store.IsAuthenticated() {
		return service.ErrNotAuthenticated
	}
	return nil
}
