// Package ui provides terminal user interface components for the pomo app.
package ui

import (
	"fmt"
	"strings"
	"time"

	"pomo/internal/config"
	"pomo/internal/store"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// taskRow is one visual row in the task list: either a date group header
// (all-tasks view only) or a task.
type taskRow struct {
	header bool
	date   string
	ref    store.TaskRef
}

// TaskPane handles the task list display and interactions. It shows either
// today's tasks or every task grouped by due date.
type TaskPane struct {
	store    *store.Store
	styles   *Styles
	rows     []taskRow
	workload store.Workload
	cursor   int
	focused  bool
	width    int
	height   int
	adding   bool
	showAll  bool
	input    textinput.Model

	// Key bindings
	keys      TaskKeyMap
	inputKeys InputKeyMap
}

// NewTaskPane creates a new task pane.
func NewTaskPane(st *store.Store, styles *Styles) *TaskPane {
	return NewTaskPaneWithKeys(st, styles, &config.KeysConfig{})
}

// NewTaskPaneWithKeys creates a new task pane with custom key bindings.
func NewTaskPaneWithKeys(st *store.Store, styles *Styles, keyCfg *config.KeysConfig) *TaskPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "What needs doing? (~30 for minutes, @2026-03-12 for a date)"
	ti.CharLimit = 120
	ti.Width = 40

	p := &TaskPane{
		store:     st,
		styles:    styles,
		input:     ti,
		focused:   true,
		keys:      NewTaskKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
	p.Refresh()
	return p
}

// Refresh rebuilds the visible rows from the store.
func (p *TaskPane) Refresh() {
	var rows []taskRow
	if p.showAll {
		dates, buckets := p.store.TasksGroupedByDate()
		for _, date := range dates {
			rows = append(rows, taskRow{header: true, date: date})
			for _, ref := range buckets[date] {
				rows = append(rows, taskRow{ref: ref})
			}
		}
	} else {
		for _, ref := range p.store.TodayTasks() {
			rows = append(rows, taskRow{ref: ref})
		}
	}
	p.rows = rows
	p.workload = p.store.TodayWorkload()
	p.clampCursor()
}

// clampCursor keeps the cursor inside the row list and off header rows.
func (p *TaskPane) clampCursor() {
	if len(p.rows) == 0 {
		p.cursor = 0
		return
	}
	if p.cursor >= len(p.rows) {
		p.cursor = len(p.rows) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.rows[p.cursor].header {
		if !p.moveCursor(1) {
			p.moveCursor(-1)
		}
	}
}

// moveCursor steps the cursor past header rows in the given direction.
// Returns false if no task row exists in that direction.
func (p *TaskPane) moveCursor(dir int) bool {
	for i := p.cursor + dir; i >= 0 && i < len(p.rows); i += dir {
		if !p.rows[i].header {
			p.cursor = i
			return true
		}
	}
	return false
}

// selected returns the task under the cursor.
func (p *TaskPane) selected() (store.TaskRef, bool) {
	if p.cursor < 0 || p.cursor >= len(p.rows) || p.rows[p.cursor].header {
		return store.TaskRef{}, false
	}
	return p.rows[p.cursor].ref, true
}

// SetSize sets the pane dimensions.
func (p *TaskPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-4)
}

// SetFocused sets whether this pane is focused.
func (p *TaskPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *TaskPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether we're in add mode.
func (p *TaskPane) IsAdding() bool {
	return p.adding
}

// ShowingAll returns whether the all-tasks view is active.
func (p *TaskPane) ShowingAll() bool {
	return p.showAll
}

// Update handles messages for the task pane.
func (p *TaskPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg.(type) {
	case refreshMsg:
		p.Refresh()
		return nil
	}

	// If we're adding a task, handle input
	if p.adding {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				text := strings.TrimSpace(p.input.Value())
				p.adding = false
				p.input.Reset()
				if text == "" {
					return nil
				}
				draft := parseTaskInput(text, p.store.Today())
				return addTaskCmd(p.store, "", draft)

			case key.Matches(msg, p.inputKeys.Cancel):
				p.adding = false
				p.input.Reset()
				return nil
			}
		}

		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	// Normal mode
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			p.moveCursor(1)

		case key.Matches(msg, p.keys.Up):
			p.moveCursor(-1)

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0
			p.clampCursor()

		case key.Matches(msg, p.keys.Bottom):
			p.cursor = len(p.rows) - 1
			p.clampCursor()

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.ShowAll):
			p.showAll = !p.showAll
			p.cursor = 0
			p.Refresh()

		case key.Matches(msg, p.keys.Toggle):
			if ref, ok := p.selected(); ok {
				return toggleTaskCmd(p.store, ref)
			}

		case key.Matches(msg, p.keys.Pick):
			if ref, ok := p.selected(); ok {
				if ref.IsCurrent {
					return clearCurrentTaskCmd(p.store)
				}
				return pickCurrentTaskCmd(p.store, ref)
			}

		case key.Matches(msg, p.keys.Delete):
			if ref, ok := p.selected(); ok {
				return deleteTaskCmd(p.store, ref)
			}
		}
	}

	return nil
}

// parseTaskInput turns the add-task input line into a draft. A "@YYYY-MM-DD"
// token sets the due date and a "~N" token sets the estimate in minutes;
// unrecognized tokens stay part of the title. Validation happens here so the
// store can assume well-formed input.
func parseTaskInput(text, today string) store.TaskDraft {
	draft := store.TaskDraft{
		DueDate:       today,
		EstimatedTime: 25,
		ForToday:      true,
	}

	var titleWords []string
	for _, word := range strings.Fields(text) {
		switch {
		case strings.HasPrefix(word, "@"):
			if _, err := time.ParseInLocation(store.DateFormat, word[1:], time.Local); err == nil {
				draft.DueDate = word[1:]
				draft.ForToday = draft.DueDate == today
				continue
			}
		case strings.HasPrefix(word, "~"):
			var minutes int
			if _, err := fmt.Sscanf(word[1:], "%d", &minutes); err == nil && minutes > 0 {
				draft.EstimatedTime = minutes
				continue
			}
		}
		titleWords = append(titleWords, word)
	}

	draft.Title = strings.Join(titleWords, " ")
	return draft
}

// View renders the task pane.
func (p *TaskPane) View() string {
	var b strings.Builder

	// Title
	title := "TODAY"
	if p.showAll {
		title = "ALL TASKS"
	}
	b.WriteString(p.styles.PaneTitleStyle.Render(title))
	b.WriteString("\n")

	// Separator
	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorMuted).Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	if len(p.rows) == 0 && !p.adding {
		b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorTextMuted).Italic(true).Render("  Nothing here. Press 'a' to add a task."))
		b.WriteString("\n")
	} else {
		// Calculate how many rows we can show
		maxRows := p.height - 6 // Account for title, separator, input, workload
		if maxRows < 3 {
			maxRows = 5
		}

		startIdx := 0
		if p.cursor >= maxRows {
			startIdx = p.cursor - maxRows + 1
		}

		for i, row := range p.rows {
			if i < startIdx || i >= startIdx+maxRows {
				continue
			}

			if row.header {
				b.WriteString(p.styles.DateHeaderStyle.Render(" " + p.formatDateHeader(row.date)))
				b.WriteString("\n")
				continue
			}

			b.WriteString(p.renderTaskRow(row.ref, i == p.cursor && p.focused && !p.adding))
			b.WriteString("\n")
		}

		// Workload summary for today
		b.WriteString("\n")
		summary := fmt.Sprintf("%s logged · %s left",
			formatMinutes(p.workload.TotalCompleted), formatMinutes(p.workload.Remaining))
		b.WriteString("  " + p.styles.StatLabelStyle.Render(summary))
		b.WriteString("\n")
	}

	// Input field when adding
	if p.adding {
		b.WriteString("\n")
		prompt := p.styles.InputPromptStyle.Render("+ ")
		b.WriteString(prompt + p.input.View())
		b.WriteString("\n")
	}

	// Apply pane style
	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// renderTaskRow renders a single task line.
func (p *TaskPane) renderTaskRow(ref store.TaskRef, selected bool) string {
	// Current-task marker
	marker := " "
	if ref.IsCurrent {
		marker = p.styles.CurrentTaskMarker
	}

	// Checkbox
	checkbox := p.styles.TaskCheckboxPending
	if ref.Completed {
		checkbox = p.styles.TaskCheckboxDone
	}

	// Due date indicator (hidden in the today view where it is redundant)
	var dueIndicator string
	if p.showAll {
		dueIndicator = ""
	} else {
		dueIndicator = p.formatDueDate(ref.DueDate)
	}
	dueWidth := lipgloss.Width(dueIndicator)

	// Streak for completed routine tasks
	var streak string
	if ref.IsRoutine && ref.Completed {
		if n := p.store.TaskStreak(ref.ProjectID, ref.Task); n > 1 {
			streak = p.styles.StreakStyle.Render(fmt.Sprintf("🔥%d", n))
		}
	}
	streakWidth := lipgloss.Width(streak)

	// Layout: [space][marker][checkbox][space][title][pad][streak][due]
	fixedWidth := 7
	if dueWidth > 0 {
		fixedWidth += dueWidth + 1
	}
	if streakWidth > 0 {
		fixedWidth += streakWidth + 1
	}
	availableTextWidth := p.width - 4 - fixedWidth
	if availableTextWidth < 5 {
		availableTextWidth = 5
	}

	title := runewidth.Truncate(ref.Title, availableTextWidth, "..")
	titleWidth := runewidth.StringWidth(title)

	var styledTitle string
	switch {
	case selected:
		styledTitle = title
	case ref.Completed:
		styledTitle = p.styles.TaskDoneStyle.Render(title)
	case ref.IsCurrent:
		styledTitle = p.styles.TaskCurrentStyle.Render(title)
	default:
		styledTitle = p.styles.TaskPendingStyle.Render(title)
	}

	line := fmt.Sprintf("%s%s %s", marker, checkbox, styledTitle)
	if streakWidth > 0 || dueWidth > 0 {
		padding := availableTextWidth - titleWidth
		if padding < 1 {
			padding = 1
		}
		line += strings.Repeat(" ", padding)
		if streakWidth > 0 {
			line += streak + " "
		}
		line += dueIndicator
	}

	if selected {
		return p.styles.TaskSelectedStyle.Render(" " + line + " ")
	}
	return " " + line
}

// Stats returns done/total counts over today's tasks.
func (p *TaskPane) Stats() (done, total int) {
	for _, ref := range p.store.TodayTasks() {
		total++
		if ref.Completed {
			done++
		}
	}
	return done, total
}

// formatDateHeader renders a group date as "Tue, Mar 10" (or the raw string
// if it doesn't parse).
func (p *TaskPane) formatDateHeader(date string) string {
	t, err := time.ParseInLocation(store.DateFormat, date, time.Local)
	if err != nil {
		return date
	}
	if date == p.store.Today() {
		return t.Format("Mon, Jan 2") + " (today)"
	}
	return t.Format("Mon, Jan 2")
}

// formatDueDate returns a compact, styled due date indicator.
// Returns empty string for today, otherwise: "!" (overdue), "+1" (tomorrow),
// "3d" (days), "2w" (weeks), ">1m" (over a month).
func (p *TaskPane) formatDueDate(dueDate string) string {
	if dueDate == "" {
		return ""
	}
	due, err := time.ParseInLocation(store.DateFormat, dueDate, time.Local)
	if err != nil {
		return ""
	}
	now := p.store.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := int(due.Sub(today).Hours() / 24)

	switch {
	case days < 0:
		return p.styles.DueDateOverdueStyle.Render("!")
	case days == 0:
		return ""
	case days == 1:
		return p.styles.DueDateFutureStyle.Render("+1")
	case days <= 7:
		return p.styles.DueDateFutureStyle.Render(fmt.Sprintf("%dd", days))
	case days <= 30:
		return p.styles.DueDateFutureStyle.Render(fmt.Sprintf("%dw", days/7))
	default:
		return p.styles.DueDateFutureStyle.Render(">1m")
	}
}

// formatMinutes renders minutes as "45m" or "1h 30m".
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
