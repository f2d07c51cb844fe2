package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
)

// FormatHistory renders recent activity events, newest first. Exercise
// names are looked up in plan; ids no longer in the plan are shown raw.
func FormatHistory(events []*domain.ActivityEvent, plan *domain.Plan, now time.Time) string {
	if len(events) == 0 {
		return RenderBox("History", Dim("No activity yet."))
	}

	headers := []string{"WHEN", "ACTION", "EXERCISE", "DAY"}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		name := e.ExerciseID
		if ex, ok := plan.ExerciseByID(e.ExerciseID); ok {
			name = ex.Name
		}
		day := e.PlanDate
		if d, ok := plan.Day(e.PlanDate); ok {
			day = d.Label
		}
		rows = append(rows, []string{
			Dim(HumanTimestampFrom(e.At, now)),
			actionPill(e.Action),
			StyleFg.Render(name),
			Dim(day),
		})
	}
	return RenderBox("History", strings.TrimRight(RenderTable(headers, rows), "\n"))
}

func actionPill(a domain.ActivityAction) string {
	switch a {
	case domain.ActivityCompleted:
		return StyleGreen.Render("✔ completed")
	case domain.ActivityReopened:
		return StyleYellow.Render("○ reopened")
	case domain.ActivityReset:
		return StyleRed.Render("✖ reset")
	default:
		return Dim(string(a))
	}
}
