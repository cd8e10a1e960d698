package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/GuilleEguia/taskmanager/internal/service"
	"github.com/GuilleEguia/taskmanager/internal/urgency"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// emojiEnabled gates the emoji indicators to real terminals; piped
// output gets the word form instead.
func emojiEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func renderTasks(out io.Writer, listing *service.TaskListing, emoji bool) {
	if len(listing.Tasks) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return
	}

	now := time.Now()

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tURGENCY\tSTATUS\tTITLE\tPROJECT\tDUE\tUPDATED")
	for _, task := range listing.Tasks {
		indicator := urgency.Classify(task, now)

		urgencyCell := indicator.String()
		if emoji {
			urgencyCell = indicator.Emoji()
		}

		project := listing.ProjectNames[task.Project]
		if project == "" {
			project = fmt.Sprintf("#%d", task.Project)
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			urgencyCell,
			task.Status,
			task.Title,
			project,
			formatDue(task.DueDate),
			humanize.Time(task.UpdatedAt),
		)
	}
	w.Flush()
}

func formatDue(due *time.Time) string {
	if due == nil {
		return "N/A"
	}
	return due.Format("2006-01-02")
}

func printProfile(app *App, profile *models.Profile) {
	fmt.Fprintf(app.Out, "%s\n", profile.FullName())
	fmt.Fprintf(app.Out, "  username: %s\n", profile.Username)
	fmt.Fprintf(app.Out, "  email:    %s\n", profile.Email)
	if profile.DOB != "" {
		fmt.Fprintf(app.Out, "  dob:      %s\n", profile.DOB)
	}
	if profile.State != "" {
		fmt.Fprintf(app.Out, "  state:    %s\n", profile.State)
	}
	if profile.Bio != "" {
		fmt.Fprintf(app.Out, "  bio:      %s\n", profile.Bio)
	}
}
