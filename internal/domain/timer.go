package domain

// Selectable countdown lengths, in seconds.
var TimerDurations = []int{30, 45, 60}

const DefaultTimerDuration = 30

// IsTimerDuration reports whether d is one of the selectable durations.
func IsTimerDuration(d int) bool {
	for _, v := range TimerDurations {
		if v == d {
			return true
		}
	}
	return false
}

// TimerState is a snapshot of the countdown timer.
// Active implies Remaining > 0.
type TimerState struct {
	Remaining int
	Active    bool
	Duration  int
}

// Fraction returns the remaining share of the current run in [0, 1].
func (s TimerState) Fraction() float64 {
	if s.Duration <= 0 || s.Remaining <= 0 {
		return 0
	}
	f := float64(s.Remaining) / float64(s.Duration)
	if f > 1 {
		return 1
	}
	return f
}
