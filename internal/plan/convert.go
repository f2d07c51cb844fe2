package plan

import (
	"github.com/alexanderramin/physio/internal/domain"
)

// Convert turns a validated File into a domain plan. Call Validate first.
func Convert(f *File) (*domain.Plan, error) {
	days := make([]domain.WorkoutDay, 0, len(f.Days))
	for _, d := range f.Days {
		exercises := make([]domain.Exercise, 0, len(d.Exercises))
		for _, e := range d.Exercises {
			exercises = append(exercises, domain.Exercise{
				ID:       e.ID,
				Name:     e.Name,
				Sets:     e.Sets,
				Reps:     e.Reps,
				Duration: e.Duration,
				Notes:    e.Notes,
			})
		}
		days = append(days, domain.WorkoutDay{
			Date:      d.Date,
			Label:     d.Label,
			Type:      domain.DayType(d.Type),
			Duration:  d.Duration,
			Exercises: exercises,
		})
	}
	return domain.NewPlan(days)
}

// FromPlan is the inverse of Convert.
func FromPlan(p *domain.Plan) *File {
	f := &File{Days: make([]DayFile, 0, p.Len())}
	for _, d := range p.Days() {
		df := DayFile{
			Date:      d.Date,
			Label:     d.Label,
			Type:      string(d.Type),
			Duration:  d.Duration,
			Exercises: make([]ExerciseFile, 0, len(d.Exercises)),
		}
		for _, e := range d.Exercises {
			df.Exercises = append(df.Exercises, ExerciseFile{
				ID:       e.ID,
				Name:     e.Name,
				Sets:     e.Sets,
				Reps:     e.Reps,
				Duration: e.Duration,
				Notes:    e.Notes,
			})
		}
		f.Days = append(f.Days, df)
	}
	return f
}
