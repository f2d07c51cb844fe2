package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for an integer percent.
// Green from 67%, yellow from 34%, red below.
func RenderProgress(pct int, width int) string {
	return fmt.Sprintf("[%s] %3d%%", RenderCompactBar(pct, width, false), clampPercent(pct))
}

// RenderCompactBar renders just the blocks, without brackets or label.
func RenderCompactBar(pct int, width int, dim bool) string {
	pct = clampPercent(pct)
	if width < 2 {
		width = 2
	}

	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if dim {
		return StyleDim.Render(bar)
	}
	return percentStyle(pct).Render(bar)
}

// RenderPercent renders "N%" colored like the bar.
func RenderPercent(pct int) string {
	pct = clampPercent(pct)
	return percentStyle(pct).Render(fmt.Sprintf("%d%%", pct))
}

func percentStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 67:
		return StyleGreen
	case pct >= 34:
		return StyleYellow
	default:
		return StyleRed
	}
}

func clampPercent(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
