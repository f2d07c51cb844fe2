// Package progress derives completion figures from the plan and the set of
// completed exercises. Everything here is a pure function.
package progress

import "github.com/alexanderramin/physio/internal/domain"

// CountableExercises returns the day's exercises that count towards
// progress, i.e. everything except guidance notes.
func CountableExercises(day domain.WorkoutDay) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(day.Exercises))
	for _, e := range day.Exercises {
		if !e.IsGuidance() {
			out = append(out, e)
		}
	}
	return out
}

// DayCounts returns how many countable exercises of day are completed and
// how many there are in total.
func DayCounts(day domain.WorkoutDay, completed domain.CompletedSet) (done, total int) {
	for _, e := range CountableExercises(day) {
		total++
		if completed.Has(e.ID) {
			done++
		}
	}
	return done, total
}

// DayProgress returns the rounded completion percentage of day.
func DayProgress(day domain.WorkoutDay, completed domain.CompletedSet) int {
	done, total := DayCounts(day, completed)
	return Percent(done, total)
}

// DayComplete reports whether day has at least one countable exercise and
// all of them are completed.
func DayComplete(day domain.WorkoutDay, completed domain.CompletedSet) bool {
	done, total := DayCounts(day, completed)
	return total > 0 && done == total
}

// OverallProgress aggregates countable and completed exercises across the
// whole plan and returns the rounded percentage.
func OverallProgress(plan *domain.Plan, completed domain.CompletedSet) int {
	var done, total int
	for i := 0; i < plan.Len(); i++ {
		d, t := DayCounts(plan.At(i), completed)
		done += d
		total += t
	}
	return Percent(done, total)
}

// CompletedDaysCount returns the number of days for which DayComplete holds.
func CompletedDaysCount(plan *domain.Plan, completed domain.CompletedSet) int {
	n := 0
	for i := 0; i < plan.Len(); i++ {
		if DayComplete(plan.At(i), completed) {
			n++
		}
	}
	return n
}

// Percent returns round(100 * done / total) with halves rounded up, or 0
// when total is 0. Integer arithmetic keeps x.5 exact.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}
	return (200*done + total) / (2 * total)
}
