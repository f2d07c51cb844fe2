package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/physio/internal/progress"
)

const statusProgressBarWidth = 10

// DaysCompletedLine renders "X of N days".
func DaysCompletedLine(s progress.Summary) string {
	return fmt.Sprintf("%d of %d days", s.CompletedDays, s.TotalDays)
}

// DayState renders a short state for a day: done, "N% completed", or a
// dim marker when nothing is counted or started.
func DayState(d progress.DaySummary) string {
	switch {
	case d.Total == 0:
		return Dim("–")
	case d.Complete:
		return StyleGreen.Render("✔ done")
	case d.InProgress():
		return StyleYellow.Render(fmt.Sprintf("%d%% completed", d.Percent))
	default:
		return Dim("not started")
	}
}

// FormatStatus renders the overall progress dashboard.
func FormatStatus(s progress.Summary) string {
	var b strings.Builder

	b.WriteString(Bold("Overall") + "  " + RenderProgress(s.OverallPercent, 24) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s completed · %d/%d exercises", DaysCompletedLine(s), s.DoneExercises, s.TotalExercises)))
	b.WriteString("\n\n")

	headers := []string{"DATE", "DAY", "TYPE", "PROGRESS", "STATE"}
	rows := make([][]string, 0, len(s.Days))
	for _, d := range s.Days {
		bar := Dim("--")
		if d.Total > 0 {
			bar = RenderProgress(d.Percent, statusProgressBarWidth)
		}
		rows = append(rows, []string{
			Dim(d.Date),
			Bold(d.Label),
			DayTypeBadge(d.Type),
			bar,
			DayState(d),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Progress", strings.TrimRight(b.String(), "\n"))
}
