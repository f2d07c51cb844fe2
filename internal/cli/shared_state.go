package cli

import (
	"github.com/alexanderramin/physio/internal/service"
	"github.com/alexanderramin/physio/internal/timer"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App     *App
	Tracker service.TrackerService

	// Timer is the single countdown for the session. It is only advanced
	// from the update loop.
	Timer *timer.Machine

	// Date is the plan date currently displayed.
	Date string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
