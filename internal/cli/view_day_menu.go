package cli

import (
	"strings"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/progress"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dayMenuView lists every plan day with its progress. Enter jumps to the
// highlighted day.
type dayMenuView struct {
	state   *SharedState
	summary progress.Summary
	cursor  int
}

func newDayMenuView(state *SharedState) *dayMenuView {
	v := &dayMenuView{state: state}
	v.load()
	if i := state.Tracker.Plan().Index(state.Date); i >= 0 {
		v.cursor = i
	}
	return v
}

func (v *dayMenuView) ID() ViewID    { return ViewDayMenu }
func (v *dayMenuView) Title() string { return "Days" }

func (v *dayMenuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open day")),
	}
}

func (v *dayMenuView) Init() tea.Cmd { return nil }

func (v *dayMenuView) load() {
	v.summary = v.state.Tracker.Summary()
}

func (v *dayMenuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.load()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.summary.Days)-1 {
				v.cursor++
			}
		case "m":
			return v, popView()
		case "enter":
			if len(v.summary.Days) == 0 {
				return v, nil
			}
			v.state.Date = v.summary.Days[v.cursor].Date
			return v, tea.Batch(popView(), refreshViews)
		}
	}
	return v, nil
}

func (v *dayMenuView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Bold("Overall") + "  " + formatter.RenderProgress(v.summary.OverallPercent, 20))
	b.WriteString(formatter.Dim("  ·  " + formatter.DaysCompletedLine(v.summary)) + "\n\n")

	now := v.state.App.now()
	first, last := v.window()
	if first > 0 {
		b.WriteString(formatter.Dim("  ↑ more") + "\n")
	}
	for i := first; i < last; i++ {
		b.WriteString(formatter.DayMenuLine(v.summary.Days[i], i == v.cursor, now) + "\n")
	}
	if last < len(v.summary.Days) {
		b.WriteString(formatter.Dim("  ↓ more") + "\n")
	}
	return b.String()
}

// menuChrome is the lines the menu spends on the overall line, blank lines
// and the scroll markers.
const menuChrome = 6

// window returns the [first, last) range of days that fits the terminal,
// keeping the cursor visible.
func (v *dayMenuView) window() (int, int) {
	n := len(v.summary.Days)
	rows := v.state.ContentHeight() - menuChrome
	if v.state.Height == 0 || rows >= n {
		return 0, n
	}
	rows = max(rows, 1)
	first := min(max(v.cursor-rows/2, 0), n-rows)
	return first, first + rows
}
