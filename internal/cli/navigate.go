package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDay ViewID = iota
	ViewDayMenu
	ViewForm
)

func (id ViewID) String() string {
	switch id {
	case ViewDay:
		return "day"
	case ViewDayMenu:
		return "day-menu"
	case ViewForm:
		return "form"
	}
	return "unknown"
}

// View is a screen on the navigation stack. Title is its breadcrumb
// segment and ShortHelp its hints in the bottom bar.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding
	Title() string
}

// Views talk to the appModel through these messages.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload from the tracker.
type refreshViewMsg struct{}

// flashMsg shows a transient line in the status bar until the next key.
type flashMsg struct {
	text string
}

// wizardCompleteMsg ends a wizard, completed or cancelled. The appModel
// pops the wizard and then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func refreshViews() tea.Msg { return refreshViewMsg{} }

func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}
