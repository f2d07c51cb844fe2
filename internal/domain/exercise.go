package domain

import "strconv"

type Exercise struct {
	ID       string
	Name     string
	Sets     string
	Reps     string
	Duration string
	Notes    string
}

// IsGuidance reports whether the exercise is informational only.
// Guidance exercises cannot be completed and never count towards progress.
func (e Exercise) IsGuidance() bool {
	return e.Notes == NoteGuidance
}

// IsOptional reports whether the exercise is advisory. Optional exercises
// are still completable and counted.
func (e Exercise) IsOptional() bool {
	return e.Notes == NoteOptional
}

// HasNote reports whether the exercise carries a free-text note worth
// displaying (anything other than the guidance marker).
func (e Exercise) HasNote() bool {
	return e.Notes != "" && !e.IsGuidance()
}

// TimedSeconds extracts the leading seconds value from a duration
// descriptor such as "30–45s" or "30s / side". It returns 0 when the
// descriptor is not expressed in seconds or the value is not one of the
// selectable timer durations.
func (e Exercise) TimedSeconds() int {
	d := e.Duration
	start := -1
	end := -1
	for i := 0; i < len(d); i++ {
		if d[i] >= '0' && d[i] <= '9' {
			if start < 0 {
				start = i
			}
			end = i + 1
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 0
	}

	// Only plain-seconds descriptors qualify; "5–8 min" must not.
	if !secondsUnit(d[end:]) {
		return 0
	}

	n, err := strconv.Atoi(d[start:end])
	if err != nil || !IsTimerDuration(n) {
		return 0
	}
	return n
}

// secondsUnit reports whether the remainder of a descriptor (after the
// leading number) is expressed in seconds: either "s" directly or a range
// like "–45s".
func secondsUnit(rest string) bool {
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case c == 's':
			return true
		case c == 'm' || c == 'h':
			return false
		}
	}
	return false
}
