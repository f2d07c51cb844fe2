package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/physio/internal/progress"
)

// DayMenuLine renders one entry of the day list. current marks the
// displayed day.
func DayMenuLine(d progress.DaySummary, current bool, today time.Time) string {
	cursor := "  "
	label := StyleFg.Render(d.Label)
	if current {
		cursor = StyleHeader.Render("▸ ")
		label = Bold(d.Label)
	}

	mark := Dim("○")
	if d.Complete {
		mark = StyleGreen.Render("✔")
	} else if d.InProgress() {
		mark = StyleYellow.Render("◐")
	}

	line := cursor + mark + " " + label + "  " + DayTypeStyle(d.Type).Render(DayTypeLabel(d.Type))
	if rel := RelativeDayFrom(d.Date, today); rel == "Today" {
		line += "  " + StylePurple.Render(rel)
	}
	if d.InProgress() {
		line += "  " + DayState(d)
	}
	return line
}

// FormatDays renders the plan's day list with per-day progress.
func FormatDays(s progress.Summary, current string, today time.Time) string {
	var b strings.Builder
	b.WriteString(Bold("Overall") + "  " + RenderPercent(s.OverallPercent) + Dim("  ·  "+DaysCompletedLine(s)) + "\n\n")
	for _, d := range s.Days {
		b.WriteString(DayMenuLine(d, d.Date == current, today))
		b.WriteString("\n")
	}
	return RenderBox("Plan", strings.TrimRight(b.String(), "\n"))
}
