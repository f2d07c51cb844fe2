package progress

import (
	"time"

	"github.com/alexanderramin/physio/internal/domain"
)

// ResolveInitialDate picks the plan date to show for today: the exact match
// if there is one, otherwise the date nearest to today by whole days, with
// ties going to the earlier entry in plan order.
func ResolveInitialDate(plan *domain.Plan, today time.Time) (string, error) {
	if plan.Len() == 0 {
		return "", domain.ErrEmptyPlan
	}

	target := domain.CalendarDate(today)
	key := target.Format(domain.DateLayout)
	if plan.Index(key) >= 0 {
		return key, nil
	}

	best := -1
	var bestDiff int
	for i := 0; i < plan.Len(); i++ {
		d, err := domain.ParseDate(plan.At(i).Date)
		if err != nil {
			continue
		}
		diff := absDays(d.Sub(target))
		if best < 0 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	if best < 0 {
		return plan.At(0).Date, nil
	}
	return plan.At(best).Date, nil
}

// Previous returns the date before current in plan order. It returns
// current unchanged at the first entry or when current is not a plan date.
func Previous(plan *domain.Plan, current string) string {
	i := plan.Index(current)
	if i <= 0 {
		return current
	}
	return plan.At(i - 1).Date
}

// Next returns the date after current in plan order. It returns current
// unchanged at the last entry or when current is not a plan date.
func Next(plan *domain.Plan, current string) string {
	i := plan.Index(current)
	if i < 0 || i >= plan.Len()-1 {
		return current
	}
	return plan.At(i + 1).Date
}

// Today resolves the initial date against the clock's current local date.
func Today(plan *domain.Plan, now func() time.Time) (string, error) {
	if now == nil {
		now = time.Now
	}
	return ResolveInitialDate(plan, now())
}

// Position reports where date sits in the plan.
func Position(plan *domain.Plan, date string) (index int, isFirst, isLast bool) {
	index = plan.Index(date)
	if index < 0 {
		return -1, false, false
	}
	return index, index == 0, index == plan.Len()-1
}

func absDays(d time.Duration) int {
	days := int(d.Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}
