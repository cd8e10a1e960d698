package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func loginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and open a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(app.In)

			if username == "" {
				fmt.Fprint(app.Out, "Username: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read username: %w", err)
				}
				username = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(app.Out, "Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required")
			}

			profile, err := app.Auth.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if profile != nil {
				fmt.Fprintf(app.Out, "Logged in as %s <%s>\n", profile.FullName(), profile.Email)
			} else {
				fmt.Fprintln(app.Out, "Logged in")
			}
			fmt.Fprintln(app.Out, "Run 'taskmanager tasks' to see your task list.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")

	return cmd
}

func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the session and forget the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Logged out")
			return nil
		},
	}
}

func whoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show session status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Store.IsAuthenticated() {
				fmt.Fprintln(app.Out, "Not logged in")
				return nil
			}
			if user := app.Store.User(); user != nil {
				fmt.Fprintf(app.Out, "Logged in as %s <%s>\n", user.FullName(), user.Email)
			} else {
				fmt.Fprintln(app.Out, "Logged in (profile not loaded yet)")
			}
			return nil
		},
	}
}
