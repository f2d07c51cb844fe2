package cli

import (
	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// physioHuhTheme returns a huh theme using the Gruvbox palette.
func physioHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// durationOptions lists the selectable countdown lengths with their menu
// labels.
func durationOptions() []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(domain.TimerDurations))
	for _, d := range domain.TimerDurations {
		options = append(options, huh.NewOption(formatter.DurationLabel(d), d))
	}
	return options
}

// wizardSelectDuration creates a huh form to pick the countdown length.
// result holds the current duration on entry, so it starts highlighted.
func wizardSelectDuration(result *int, startsTimer bool) *huh.Form {
	desc := "Sets the default countdown."
	if startsTimer {
		desc = "The countdown starts right away."
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Timer duration").
				Description(desc).
				Options(durationOptions()...).
				Value(result),
		),
	).WithTheme(physioHuhTheme()).WithShowHelp(false)
}
