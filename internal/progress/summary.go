package progress

import "github.com/alexanderramin/physio/internal/domain"

// DaySummary is the completion view of a single plan day.
type DaySummary struct {
	Date     string
	Label    string
	Type     domain.DayType
	Done     int
	Total    int
	Percent  int
	Complete bool
}

// Summary is the completion view of the whole plan.
type Summary struct {
	Days           []DaySummary
	OverallPercent int
	CompletedDays  int
	TotalDays      int
	DoneExercises  int
	TotalExercises int
}

// Summarize computes per-day and overall figures in a single pass.
func Summarize(plan *domain.Plan, completed domain.CompletedSet) Summary {
	s := Summary{
		Days:      make([]DaySummary, 0, plan.Len()),
		TotalDays: plan.Len(),
	}
	for i := 0; i < plan.Len(); i++ {
		day := plan.At(i)
		done, total := DayCounts(day, completed)
		ds := DaySummary{
			Date:     day.Date,
			Label:    day.Label,
			Type:     day.Type,
			Done:     done,
			Total:    total,
			Percent:  Percent(done, total),
			Complete: total > 0 && done == total,
		}
		if ds.Complete {
			s.CompletedDays++
		}
		s.DoneExercises += done
		s.TotalExercises += total
		s.Days = append(s.Days, ds)
	}
	s.OverallPercent = Percent(s.DoneExercises, s.TotalExercises)
	return s
}

// InProgress reports whether the day is started but not finished.
func (d DaySummary) InProgress() bool {
	return d.Percent > 0 && d.Percent < 100
}
