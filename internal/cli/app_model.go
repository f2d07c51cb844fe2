package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack and owns the session's countdown timer.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient status line, cleared on the next key press.
	flash string
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:     app,
		Tracker: app.Tracker,
		Timer:   newTUIMachine(app),
	}
	if date, err := progress.ResolveInitialDate(app.Tracker.Plan(), app.now()); err == nil {
		state.Date = date
	}

	return appModel{
		state:     state,
		viewStack: []View{newDayView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case timerTickMsg:
		return m, m.handleTick(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case refreshViewMsg:
		// Broadcast so views below the top reload after mutations above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case flashMsg:
		m.flash = msg.text
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews)
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	m.flash = ""

	// Forms receive every key, including q and esc.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		return m.forward(msg)
	}

	switch {
	case msg.String() == "q":
		return m.quit()

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	return m.forward(msg)
}

// handleTick advances the countdown for the run the tick was scheduled for
// and schedules the next tick while that run is still going.
func (m appModel) handleTick(msg timerTickMsg) tea.Cmd {
	if msg.run != m.state.Timer.Run() || !m.state.Timer.State().Active {
		return nil
	}
	st := m.state.Timer.TickFor(context.Background(), msg.run)
	if st.Active {
		return tickTimer(msg.run)
	}
	if st.Remaining == 0 {
		return flash(formatter.StyleGreen.Render("⏱ Time's up!"))
	}
	return nil
}

// quit stops any running countdown so no tick or chime outlives the UI.
func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.state.Timer.Stop()
	m.quitting = true
	return m, tea.Quit
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("physio")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	left := title
	if len(crumbs) > 0 {
		left += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	right := m.headerStatus()
	gap := max(m.state.Width-lipgloss.Width(left)-lipgloss.Width(right), 2)
	header := left + strings.Repeat(" ", gap) + right

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

// headerStatus shows the countdown while it runs, otherwise the current
// day's completion.
func (m *appModel) headerStatus() string {
	if st := m.state.Timer.State(); st.Active {
		return formatter.TimerBadge(st)
	}
	view, err := m.state.Tracker.DayView(m.state.Date)
	if err != nil || view.Total == 0 {
		return ""
	}
	return formatter.RenderPercent(view.Percent)
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.flash != "" {
		hints = append(hints, m.flash)
	}
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
