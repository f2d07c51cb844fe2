package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleDone   = lipgloss.NewStyle().Foreground(ColorGreen).Strikethrough(true)
)

type dayTypeStyle struct {
	label string
	style lipgloss.Style
}

// dayTypes maps each day type to its display label and accent.
var dayTypes = map[domain.DayType]dayTypeStyle{
	domain.DayFull:     {label: "Full Strength", style: StyleBlue},
	domain.DayLight:    {label: "Light Control", style: StyleGreen},
	domain.DayRest:     {label: "Rest Day", style: StyleDim},
	domain.DayOptional: {label: "Optional", style: StyleYellow},
}

// DayTypeLabel returns the human label for t, or t itself if unknown.
func DayTypeLabel(t domain.DayType) string {
	if s, ok := dayTypes[t]; ok {
		return s.label
	}
	return string(t)
}

// DayTypeStyle returns the accent style for t.
func DayTypeStyle(t domain.DayType) lipgloss.Style {
	if s, ok := dayTypes[t]; ok {
		return s.style
	}
	return StyleFg
}

// DayTypeBadge renders the colored label, e.g. "● Full Strength".
func DayTypeBadge(t domain.DayType) string {
	return DayTypeStyle(t).Render("● " + DayTypeLabel(t))
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
