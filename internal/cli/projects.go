package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func projectsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(app.Out, "No projects yet. Create one with 'taskmanager project create NAME'.")
				return nil
			}

			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, project := range projects {
				fmt.Fprintf(w, "%d\t%s\n", project.ID, project.Name)
			}
			return w.Flush()
		},
	}
}

func projectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(projectCreateCmd(app))
	return cmd
}

func projectCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			project, err := app.Projects.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Created project %d: %s\n", project.ID, project.Name)
			return nil
		},
	}
}

func parseId(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
