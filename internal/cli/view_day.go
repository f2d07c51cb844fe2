package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/progress"
	"github.com/alexanderramin/physio/internal/service"
	"github.com/alexanderramin/physio/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dayView shows one plan day with its exercises and the countdown timer.
type dayView struct {
	state  *SharedState
	view   *service.DayView
	cursor int
}

func newDayView(state *SharedState) *dayView {
	v := &dayView{state: state}
	v.load()
	return v
}

func (v *dayView) ID() ViewID { return ViewDay }

func (v *dayView) Title() string {
	if v.view != nil {
		return v.view.Day.Label
	}
	return v.state.Date
}

func (v *dayView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "day")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "all days")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "timer")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duration")),
	}
}

func (v *dayView) Init() tea.Cmd { return nil }

// load re-reads the displayed day from the tracker. A date outside the
// plan leaves view nil, which renders the empty state.
func (v *dayView) load() {
	view, err := v.state.Tracker.DayView(v.state.Date)
	if err != nil {
		v.view = nil
		v.cursor = 0
		return
	}
	v.view = view
	if v.cursor >= len(view.Items) {
		v.cursor = max(len(view.Items)-1, 0)
	}
}

func (v *dayView) goTo(date string) {
	if date == v.state.Date {
		return
	}
	v.state.Date = date
	v.cursor = 0
	v.load()
}

func (v *dayView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.load()
		return v, nil

	case tea.KeyMsg:
		plan := v.state.Tracker.Plan()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.view != nil && v.cursor < len(v.view.Items)-1 {
				v.cursor++
			}
		case " ", "space":
			return v, v.toggleSelected()
		case "left", "h":
			v.goTo(progress.Previous(plan, v.state.Date))
		case "right", "l":
			v.goTo(progress.Next(plan, v.state.Date))
		case "t":
			if date, err := progress.Today(plan, v.state.App.now); err == nil {
				v.goTo(date)
			}
		case "m":
			return v, pushView(newDayMenuView(v.state))
		case "s":
			return v, v.toggleTimer()
		case "d":
			return v, v.chooseDuration()
		}
	}
	return v, nil
}

func (v *dayView) toggleSelected() tea.Cmd {
	if v.view == nil || len(v.view.Items) == 0 {
		return nil
	}
	item := v.view.Items[v.cursor]
	if !item.Completable {
		return flash(formatter.Dim("Guidance notes can't be checked off."))
	}

	_, err := v.state.Tracker.Toggle(context.Background(), item.Exercise.ID)
	wasComplete := v.view.Complete
	v.load()
	if err != nil {
		if errors.Is(err, service.ErrNotCompletable) {
			return flash(formatter.Dim("Guidance notes can't be checked off."))
		}
		v.state.App.logger().Error("toggle_failed", "exercise_id", item.Exercise.ID, "error", err.Error())
		return flash(formatter.StyleRed.Render("Could not save: " + err.Error()))
	}
	if v.view != nil && v.view.Complete && !wasComplete {
		return flash(formatter.StyleGreen.Render("Day complete. Nice work!"))
	}
	return nil
}

func (v *dayView) toggleTimer() tea.Cmd {
	m := v.state.Timer
	if m.State().Active {
		m.Stop()
		return nil
	}
	if err := m.Start(); err != nil {
		return flash(formatter.StyleRed.Render(err.Error()))
	}
	return startTimer(m)
}

func (v *dayView) chooseDuration() tea.Cmd {
	m := v.state.Timer
	if m.State().Active {
		return flash(formatter.Dim("Stop the timer to change its duration."))
	}

	choice := m.State().Duration
	startsTimer := m.Policy() == timer.StartOnSelect
	form := wizardSelectDuration(&choice, startsTimer)
	return pushView(newWizardView(v.state, "Timer", form, func() tea.Cmd {
		if err := m.SelectDuration(choice); err != nil {
			return flash(formatter.StyleRed.Render(err.Error()))
		}
		return startTimer(m)
	}))
}

func (v *dayView) View() string {
	if v.view == nil {
		return "\n" + formatter.FormatNoDay(v.state.Date) + "\n\n" + v.renderNav()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.StyleHeader.Render(strings.ToUpper(v.view.Day.Label)))
	if rel := formatter.RelativeDayFrom(v.view.Day.Date, v.state.App.now()); rel == "Today" {
		b.WriteString("  " + formatter.StylePurple.Render(rel))
	}
	b.WriteString("\n")
	b.WriteString(formatter.DayHeading(v.view))
	b.WriteString("\n\n")

	for i, item := range v.view.Items {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
		}
		b.WriteString(cursor + formatter.ExerciseLine(item, false) + "\n")
	}
	if v.view.Complete {
		b.WriteString("\n" + formatter.StyleGreen.Render("Day complete. Nice work!") + "\n")
	}

	b.WriteString("\n" + formatter.FormatTimer(v.state.Timer.State()))
	if hint := v.timedHint(); hint != "" {
		b.WriteString("  " + formatter.Dim(hint))
	}
	b.WriteString("\n\n" + v.renderNav())
	return b.String()
}

// timedHint points at the timer when the selected exercise is a timed hold
// whose length differs from the current countdown.
func (v *dayView) timedHint() string {
	if v.view == nil || len(v.view.Items) == 0 || v.state.Timer.State().Active {
		return ""
	}
	secs := v.view.Items[v.cursor].Exercise.TimedSeconds()
	if secs == 0 || secs == v.state.Timer.State().Duration {
		return ""
	}
	return "d: set " + formatter.DurationLabel(secs)
}

func (v *dayView) renderNav() string {
	plan := v.state.Tracker.Plan()
	_, isFirst, isLast := progress.Position(plan, v.state.Date)

	prev := formatter.StyleFg.Render("◀ prev")
	if isFirst {
		prev = formatter.Dim("◀ prev")
	}
	next := formatter.StyleFg.Render("next ▶")
	if isLast {
		next = formatter.Dim("next ▶")
	}
	return prev + "   " + next
}
