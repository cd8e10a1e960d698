package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/GuilleEguia/taskmanager/internal/models"
	"github.com/GuilleEguia/taskmanager/internal/service"
)

func TestRenderTasksPlainOutput(t *testing.T) {
	t.Parallel()

	due := time.Now().Add(10 * 24 * time.Hour)
	listing := &service.TaskListing{
		Tasks: []models.Task{
			{
				ID:        1,
				Title:     "write report",
				Status:    models.StatusOpen,
				Project:   3,
				Priority:  "high",
				DueDate:   &due,
				UpdatedAt: time.Now().Add(-2 * time.Hour),
			},
			{
				ID:        2,
				Title:     "no deadline",
				Status:    models.StatusDone,
				Project:   9,
				UpdatedAt: time.Now().Add(-48 * time.Hour),
			},
		},
		ProjectNames: map[int64]string{3: "Alpha"},
	}

	var buf bytes.Buffer
	renderTasks(&buf, listing, false)
	out := buf.String()

	if !strings.Contains(out, "write report") {
		t.Errorf("missing task title in output:\n%s", out)
	}
	if !strings.Contains(out, "Alpha") {
		t.Errorf("expected project name join, got:\n%s", out)
	}
	// Unknown project ids fall back to the raw id.
	if !strings.Contains(out, "#9") {
		t.Errorf("expected #9 fallback for unnamed project, got:\n%s", out)
	}
	if !strings.Contains(out, "low") {
		t.Errorf("expected plain-text urgency, got:\n%s", out)
	}
	if strings.Contains(out, "🟢") {
		t.Errorf("emoji must be off in plain mode:\n%s", out)
	}
	if !strings.Contains(out, "N/A") {
		t.Errorf("expected N/A for missing due date, got:\n%s", out)
	}
	if !strings.Contains(out, "hours ago") {
		t.Errorf("expected humanized updated-at, got:\n%s", out)
	}
}

func TestRenderTasksEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderTasks(&buf, &service.TaskListing{}, true)
	if !strings.Contains(buf.String(), "No tasks.") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
