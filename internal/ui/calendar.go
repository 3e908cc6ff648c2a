// Package ui provides terminal user interface components for the pomo app.
package ui

import (
	"fmt"
	"strings"
	"time"

	"pomo/internal/config"
	"pomo/internal/store"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// CalendarPane shows a week strip, the tasks due on the selected day, and
// per-project daily goal progress.
type CalendarPane struct {
	store    *store.Store
	styles   *Styles
	selected time.Time
	tasks    []store.TaskRef
	focused  bool
	width    int
	height   int

	// Key bindings
	keys CalendarKeyMap
}

// NewCalendarPane creates a new calendar pane.
func NewCalendarPane(st *store.Store, styles *Styles) *CalendarPane {
	return NewCalendarPaneWithKeys(st, styles, &config.KeysConfig{})
}

// NewCalendarPaneWithKeys creates a new calendar pane with custom key bindings.
func NewCalendarPaneWithKeys(st *store.Store, styles *Styles, keyCfg *config.KeysConfig) *CalendarPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	p := &CalendarPane{
		store:    st,
		styles:   styles,
		selected: startOfDay(st.Now()),
		keys:     NewCalendarKeyMap(keyCfg),
	}
	p.Refresh()
	return p
}

// Refresh re-queries the tasks for the selected day.
func (p *CalendarPane) Refresh() {
	p.tasks = p.store.TasksForDate(p.selected.Format(store.DateFormat))
}

// SelectedDate returns the selected day as YYYY-MM-DD.
func (p *CalendarPane) SelectedDate() string {
	return p.selected.Format(store.DateFormat)
}

// SetSize sets the pane dimensions.
func (p *CalendarPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *CalendarPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *CalendarPane) IsFocused() bool {
	return p.focused
}

// Update handles messages for the calendar pane.
func (p *CalendarPane) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case refreshMsg:
		p.Refresh()
		return nil
	}

	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.PrevDay):
			p.selected = p.selected.AddDate(0, 0, -1)
			p.Refresh()

		case key.Matches(msg, p.keys.NextDay):
			p.selected = p.selected.AddDate(0, 0, 1)
			p.Refresh()
		}
	}

	return nil
}

// View renders the calendar pane.
func (p *CalendarPane) View() string {
	var b strings.Builder

	b.WriteString(p.styles.PaneTitleStyle.Render("CALENDAR"))
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	// Week strip around the selected day (Sunday start)
	b.WriteString(p.renderWeekStrip())
	b.WriteString("\n\n")

	// Tasks for the selected day
	header := p.selected.Format("Mon, Jan 2")
	if p.SelectedDate() == p.store.Today() {
		header += " (today)"
	}
	b.WriteString("  " + p.styles.DateHeaderStyle.Render(header))
	b.WriteString("\n")

	if len(p.tasks) == 0 {
		b.WriteString("  " + p.styles.StatLabelStyle.Render("No tasks."))
		b.WriteString("\n")
	} else {
		maxTasks := p.height - 12
		if maxTasks < 3 {
			maxTasks = 3
		}
		for i, ref := range p.tasks {
			if i >= maxTasks {
				b.WriteString("  " + p.styles.StatLabelStyle.Render(fmt.Sprintf("… and %d more", len(p.tasks)-maxTasks)))
				b.WriteString("\n")
				break
			}
			checkbox := p.styles.TaskCheckboxPending
			if ref.Completed {
				checkbox = p.styles.TaskCheckboxDone
			}
			slot := ""
			if ref.PlannedTime != "" {
				slot = p.styles.StatLabelStyle.Render(ref.PlannedTime) + " "
			}
			title := runewidth.Truncate(ref.Title, max(10, p.width-14), "..")
			b.WriteString(fmt.Sprintf("  %s %s%s\n", checkbox, slot, title))
		}
	}

	// Per-project daily goal progress
	b.WriteString("\n")
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Daily goals"))
	b.WriteString("\n")
	goals := 0
	for _, project := range p.store.Projects() {
		if project.DailyGoalHours <= 0 {
			continue
		}
		goals++
		b.WriteString(p.renderGoalLine(project))
		b.WriteString("\n")
	}
	if goals == 0 {
		b.WriteString("  " + p.styles.StatLabelStyle.Render("No project goals set."))
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// renderWeekStrip renders the seven days of the selected week with task
// counts underneath.
func (p *CalendarPane) renderWeekStrip() string {
	weekStart := p.selected.AddDate(0, 0, -int(p.selected.Weekday()))
	today := p.store.Today()

	var days, counts []string
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		dayStr := day.Format(store.DateFormat)
		label := day.Format("Mon")[:2] + day.Format(" 2")

		style := p.styles.CalendarDayStyle
		switch {
		case dayStr == p.SelectedDate():
			style = p.styles.CalendarSelectedDayStyle
		case dayStr == today:
			style = p.styles.CalendarTodayStyle
		}
		days = append(days, style.Render(fmt.Sprintf("%-6s", label)))

		n := len(p.store.TasksForDate(dayStr))
		if n == 0 {
			counts = append(counts, p.styles.CalendarDayStyle.Render("  ·   "))
		} else {
			counts = append(counts, p.styles.CalendarDayStyle.Render(fmt.Sprintf("  %-4d", n)))
		}
	}

	return "  " + strings.Join(days, "") + "\n  " + strings.Join(counts, "")
}

// renderGoalLine renders one project's goal progress bar.
func (p *CalendarPane) renderGoalLine(project store.Project) string {
	const barWidth = 10

	ratio := project.DailyTimeSpent / project.DailyGoalHours
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * barWidth)

	bar := p.styles.ProgressFilledStyle.Render(strings.Repeat("█", filled)) +
		p.styles.ProgressEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	name := runewidth.Truncate(project.Name, 12, "..")
	return fmt.Sprintf("  %-12s %s %s", name, bar,
		p.styles.StatLabelStyle.Render(fmt.Sprintf("%.1f/%.1fh", project.DailyTimeSpent, project.DailyGoalHours)))
}

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
