package urgency

import (
	"testing"
	"time"

	"github.com/GuilleEguia/taskmanager/internal/models"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestClassify(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task models.Task
		want Indicator
	}{
		{
			name: "no due date",
			task: models.Task{Priority: "high", Status: models.StatusOpen},
			want: Missing,
		},
		{
			name: "no priority",
			task: models.Task{DueDate: datePtr(now.Add(48 * time.Hour)), Status: models.StatusOpen},
			want: Missing,
		},
		{
			name: "no due date and no priority",
			task: models.Task{Status: models.StatusOpen},
			want: Missing,
		},
		{
			name: "done wins over past due date",
			task: models.Task{
				DueDate:  datePtr(now.Add(-96 * time.Hour)),
				Priority: "high",
				Status:   models.StatusDone,
			},
			want: Done,
		},
		{
			name: "done with no due date is still missing",
			task: models.Task{Priority: "high", Status: models.StatusDone},
			want: Missing,
		},
		{
			name: "due at this exact instant",
			task: models.Task{DueDate: datePtr(now), Priority: "high", Status: models.StatusOpen},
			want: DueToday,
		},
		{
			name: "due earlier today",
			task: models.Task{DueDate: datePtr(now.Add(-6 * time.Hour)), Priority: "high", Status: models.StatusOpen},
			want: DueToday,
		},
		{
			name: "four days out",
			task: models.Task{DueDate: datePtr(now.Add(4 * 24 * time.Hour)), Priority: "low", Status: models.StatusOpen},
			want: LowUrgency,
		},
		{
			name: "ten days out",
			task: models.Task{DueDate: datePtr(now.Add(10 * 24 * time.Hour)), Priority: "low", Status: models.StatusOpen},
			want: LowUrgency,
		},
		{
			name: "one day out",
			task: models.Task{DueDate: datePtr(now.Add(24 * time.Hour)), Priority: "high", Status: models.StatusOpen},
			want: MediumUrgency,
		},
		{
			name: "three days out",
			task: models.Task{DueDate: datePtr(now.Add(3 * 24 * time.Hour)), Priority: "high", Status: models.StatusOpen},
			want: MediumUrgency,
		},
		{
			name: "two days overdue",
			task: models.Task{DueDate: datePtr(now.Add(-2 * 24 * time.Hour)), Priority: "high", Status: models.StatusOpen},
			want: Overdue,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.task, now)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysRemainingCeiling(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ahead time.Duration
		want  int
	}{
		{25 * time.Hour, 2},
		{24 * time.Hour, 1},
		{time.Hour, 1},
		{0, 0},
		{-30 * time.Minute, 0},
		{-25 * time.Hour, -1},
	}

	for _, tt := range tests {
		got := daysRemaining(now.Add(tt.ahead), now)
		if got != tt.want {
			t.Errorf("daysRemaining(now+%v) = %d, want %d", tt.ahead, got, tt.want)
		}
	}
}

func TestIndicatorRendering(t *testing.T) {
	t.Parallel()

	indicators := []Indicator{Missing, Done, DueToday, LowUrgency, MediumUrgency, Overdue}
	for _, in := range indicators {
		if in.String() == "unknown" {
			t.Errorf("indicator %d has no name", in)
		}
		if in.Emoji() == "❔" {
			t.Errorf("indicator %d has no emoji", in)
		}
	}
}
