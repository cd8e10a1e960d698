package cli

import (
	"fmt"
	"time"

	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/GuilleEguia/taskmanager/internal/service"
	"github.com/spf13/cobra"
)

func tasksCmd(app *App) *cobra.Command {
	var page int
	var cached bool

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List your tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			var listing *service.TaskListing
			var err error
			if cached {
				listing, err = app.Tasks.CachedList(cmd.Context())
			} else {
				listing, err = app.Tasks.List(cmd.Context(), page)
			}
			if err != nil {
				return err
			}

			renderTasks(app.Out, listing, emojiEnabled())

			if !cached {
				switch {
				case listing.HasNext && listing.HasPrevious:
					fmt.Fprintf(app.Out, "Page %d (more before and after; use --page)\n", listing.Page)
				case listing.HasNext:
					fmt.Fprintf(app.Out, "Page %d (more after; use --page %d)\n", listing.Page, listing.Page+1)
				case listing.HasPrevious:
					fmt.Fprintf(app.Out, "Page %d (more before; use --page %d)\n", listing.Page, listing.Page-1)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page to fetch")
	cmd.Flags().BoolVar(&cached, "cached", false, "Show the last fetched list without contacting the service")

	return cmd
}

func taskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Create, edit or delete a task",
	}

	cmd.AddCommand(taskCreateCmd(app))
	cmd.AddCommand(taskEditCmd(app))
	cmd.AddCommand(taskRmCmd(app))

	return cmd
}

func taskCreateCmd(app *App) *cobra.Command {
	var title, description, due string
	var projectId int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task in one of your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			dueDate, err := parseDueFlag(due)
			if err != nil {
				return err
			}

			task, err := app.Tasks.Create(cmd.Context(), title, description, projectId, dueDate)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Created task %d: %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Task title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().Int64Var(&projectId, "project", 0, "Project id the task belongs to")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("project")

	return cmd
}

func taskEditCmd(app *App) *cobra.Command {
	var title, description, due string
	var projectId, assignTo int64
	var done, open bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit task fields inline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			id, err := parseId(args[0])
			if err != nil {
				return err
			}
			if done && open {
				return fmt.Errorf("--done and --open are mutually exclusive")
			}

			var changes service.TaskChanges
			if cmd.Flags().Changed("title") {
				changes.Title = &title
			}
			if cmd.Flags().Changed("description") {
				changes.Description = &description
			}
			if cmd.Flags().Changed("project") {
				changes.Project = &projectId
			}
			if cmd.Flags().Changed("assign") {
				changes.AssignedTo = &assignTo
			}
			if done {
				status := models.StatusDone
				changes.Status = &status
			}
			if open {
				status := models.StatusOpen
				changes.Status = &status
			}
			if cmd.Flags().Changed("due") {
				changes.DueDateSet = true
				if due != "" {
					dueDate, err := parseDueFlag(due)
					if err != nil {
						return err
					}
					changes.DueDate = dueDate
				}
			}

			task, err := app.Tasks.Update(cmd.Context(), id, changes)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Updated task %d: %s (%s)\n", task.ID, task.Title, task.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().Int64Var(&projectId, "project", 0, "Move to project id")
	cmd.Flags().Int64Var(&assignTo, "assign", 0, "Assign to user id")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD, empty clears it)")
	cmd.Flags().BoolVar(&done, "done", false, "Mark the task done")
	cmd.Flags().BoolVar(&open, "open", false, "Mark the task not done")

	return cmd
}

func taskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			id, err := parseId(args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Deleted task %d\n", id)
			return nil
		},
	}
}

func parseDueFlag(due string) (*time.Time, error) {
	if due == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", due)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", due)
	}
	return &t, nil
}
