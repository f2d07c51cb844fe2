package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/service"
)

const dayProgressBarWidth = 20

// ExerciseDetail joins the exercise's sets, reps and duration.
func ExerciseDetail(e domain.Exercise) string {
	var parts []string
	if e.Sets != "" {
		sets := e.Sets
		if isDigits(sets) {
			sets += " sets"
		}
		parts = append(parts, sets)
	}
	if e.Reps != "" {
		parts = append(parts, e.Reps)
	}
	if e.Duration != "" {
		parts = append(parts, e.Duration)
	}
	return strings.Join(parts, " · ")
}

// CheckMark renders the leading marker of an exercise row.
func CheckMark(item service.ExerciseItem) string {
	switch {
	case !item.Completable:
		return StyleBlue.Render(" ℹ ")
	case item.Done:
		return StyleGreen.Render("[✔]")
	default:
		return StyleFg.Render("[ ]")
	}
}

// ExerciseLine renders one exercise row. showID appends the exercise id
// for use with the toggle command.
func ExerciseLine(item service.ExerciseItem, showID bool) string {
	ex := item.Exercise
	var name string
	switch {
	case !item.Completable:
		name = StyleBlue.Render(ex.Name)
	case item.Done:
		name = StyleDone.Render(ex.Name)
	default:
		name = StyleFg.Render(ex.Name)
	}

	line := CheckMark(item) + " " + name
	if detail := ExerciseDetail(ex); detail != "" {
		line += "  " + Dim(detail)
	}
	if ex.HasNote() && !ex.IsGuidance() {
		line += "  " + StyleYellow.Render("("+ex.Notes+")")
	}
	if showID && item.Completable {
		line += "  " + StylePurple.Render("#"+ex.ID)
	}
	return line
}

// DayHeading renders the type badge, duration and completion of a day.
func DayHeading(view *service.DayView) string {
	parts := []string{DayTypeBadge(view.Day.Type)}
	if view.Day.Duration != "" {
		parts = append(parts, Dim(view.Day.Duration))
	}
	heading := strings.Join(parts, Dim("  ·  "))
	if view.Total == 0 {
		return heading
	}
	return heading + "\n" + RenderProgress(view.Percent, dayProgressBarWidth) +
		Dim(fmt.Sprintf("  %d/%d done", view.Done, view.Total))
}

// FormatDay renders a full day for the day command.
func FormatDay(view *service.DayView) string {
	var b strings.Builder
	b.WriteString(DayHeading(view))
	b.WriteString("\n\n")
	for _, item := range view.Items {
		b.WriteString(ExerciseLine(item, true))
		b.WriteString("\n")
	}
	if view.Complete {
		b.WriteString("\n" + StyleGreen.Render("Day complete. Nice work!") + "\n")
	}
	return RenderBox(view.Day.Label, strings.TrimRight(b.String(), "\n"))
}

// FormatNoDay is the empty state for a date outside the plan.
func FormatNoDay(date string) string {
	return RenderBox("No workout planned", Dim(fmt.Sprintf("Nothing scheduled for %s.", date)))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
