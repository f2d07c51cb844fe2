package plan

import (
	"fmt"

	"github.com/alexanderramin/physio/internal/domain"
)

// Validate checks f and returns every problem found.
func Validate(f *File) []error {
	var errs []error
	if len(f.Days) == 0 {
		return []error{domain.ErrEmptyPlan}
	}

	dates := make(map[string]bool, len(f.Days))
	ids := make(map[string]string)
	prevDate := ""
	for i, d := range f.Days {
		prefix := fmt.Sprintf("days[%d]", i)
		if d.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := domain.ParseDate(d.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, d.Date))
		} else {
			if dates[d.Date] {
				errs = append(errs, fmt.Errorf("%s.date: duplicate date %s", prefix, d.Date))
			} else if prevDate != "" && d.Date < prevDate {
				errs = append(errs, fmt.Errorf("%s.date: %s comes before %s; days must be in date order", prefix, d.Date, prevDate))
			}
			dates[d.Date] = true
			prevDate = d.Date
		}

		if d.Label == "" {
			errs = append(errs, fmt.Errorf("%s.label is required", prefix))
		}
		if !domain.ValidDayTypes[d.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q (expected rest, light, full or optional)", prefix, d.Type))
		}

		for j, e := range d.Exercises {
			exPrefix := fmt.Sprintf("%s.exercises[%d]", prefix, j)
			if e.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", exPrefix))
			} else if prev, dup := ids[e.ID]; dup {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q (first used at %s)", exPrefix, e.ID, prev))
			} else {
				ids[e.ID] = exPrefix
			}
			if e.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", exPrefix))
			}
		}
	}
	return errs
}
