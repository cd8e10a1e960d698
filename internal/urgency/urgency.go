package urgency

import (
	"math"
	"time"

	"github.com/GuilleEguia/taskmanager/internal/models"
)

// Indicator is the urgency bucket a task falls into.
type Indicator int

const (
	Missing Indicator = iota
	Done
	DueToday
	LowUrgency
	MediumUrgency
	Overdue
)

func (i Indicator) String() string {
	switch i {
	case Missing:
		return "missing"
	case Done:
		return "done"
	case DueToday:
		return "due today"
	case LowUrgency:
		return "low"
	case MediumUrgency:
		return "medium"
	case Overdue:
		return "overdue"
	}
	return "unknown"
}

func (i Indicator) Emoji() string {
	switch i {
	case Missing:
		return "⚠️"
	case Done:
		return "✔️"
	case DueToday:
		return "🔴"
	case LowUrgency:
		return "🟢"
	case MediumUrgency:
		return "🟡"
	case Overdue:
		return "☠️"
	}
	return "❔"
}

// Classify maps a task to exactly one indicator. The branches are ordered;
// earlier rules win because the conditions overlap (a done task with a past
// due date is Done, not Overdue). now is the evaluation instant supplied by
// the caller and is not cached between calls.
func Classify(task models.Task, now time.Time) Indicator {
	if task.DueDate == nil {
		return Missing
	}
	if task.Priority == "" {
		return Missing
	}
	if task.Status == models.StatusDone {
		return Done
	}

	due := *task.DueDate
	remaining := daysRemaining(due, now)

	switch {
	case due.Equal(now) || remaining == 0:
		return DueToday
	case remaining > 3:
		return LowUrgency
	case due.Before(now) || remaining < 0:
		return Overdue
	default:
		return MediumUrgency
	}
}

// daysRemaining counts whole days until due, rounding up: a due date 25
// hours away is 2 days out, one 1 hour away is 1 day out.
func daysRemaining(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
