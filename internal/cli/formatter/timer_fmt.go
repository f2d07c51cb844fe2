package formatter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/timer"
)

const timerBarWidth = 24

// DurationLabel names a countdown length the way the duration menu shows it.
func DurationLabel(seconds int) string {
	if seconds == 60 {
		return "1 minute"
	}
	return fmt.Sprintf("%d seconds", seconds)
}

// TimerBadge is the compact header form: "⏱ 0:27" while running.
func TimerBadge(st domain.TimerState) string {
	if !st.Active {
		return Dim("⏱ " + timer.FormatClock(st.Duration))
	}
	return StyleRed.Render("⏱ " + timer.FormatClock(st.Remaining))
}

// TimerBar renders the remaining share of the current run.
func TimerBar(st domain.TimerState, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(st.Fraction() * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if !st.Active {
		return StyleDim.Render(bar)
	}
	return StyleBlue.Render(bar)
}

// FormatTimer renders the one-line countdown used by the timer command.
func FormatTimer(st domain.TimerState) string {
	return TimerBadge(st) + " " + TimerBar(st, timerBarWidth)
}

// LiveLine rewrites a single terminal line in place.
type LiveLine struct {
	mu sync.Mutex
	w  io.Writer
}

func NewLiveLine(w io.Writer) *LiveLine {
	return &LiveLine{w: w}
}

// Update replaces the line's content.
func (l *LiveLine) Update(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "\r\033[K  %s", s)
}

// Finish writes a final message and ends the line.
func (l *LiveLine) Finish(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "\r\033[K  %s\n", s)
}
