// Package ui provides terminal user interface components for the pomo app.
// This file contains the main App model which coordinates all panes and
// routes messages using the Bubble Tea architecture.
package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pomo/internal/config"
	"pomo/internal/store"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PaneID identifies each pane in the application.
type PaneID int

const (
	PaneTasks PaneID = iota
	PaneTimer
	PaneCalendar
	PaneStats
)

// paneCount is the number of panes the app cycles through.
const paneCount = 4

// pane is the surface every pane exposes to the app.
type pane interface {
	SetSize(width, height int)
	SetFocused(focused bool)
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// LayoutMode determines how panes are arranged based on terminal width.
type LayoutMode int

const (
	// LayoutWide shows all panes side-by-side.
	LayoutWide LayoutMode = iota
	// LayoutNarrow shows only the focused pane with a tab bar.
	LayoutNarrow
)

// rolloverInterval is how often the app re-checks for a day change.
const rolloverInterval = time.Minute

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys                  *config.KeysConfig
	ConfirmDeletions      bool
	NarrowLayoutThreshold int
}

// App is the main application model that coordinates all panes.
type App struct {
	store        *store.Store
	styles       *Styles
	config       *AppConfig
	taskPane     *TaskPane
	timerPane    *TimerPane
	calendarPane *CalendarPane
	statsPane    *StatsPane
	helpOverlay  *HelpOverlay
	confirmDel   *confirmDeleteState
	activePane   PaneID
	layoutMode   LayoutMode
	showHelp     bool
	width        int
	height       int
	status       string
	statusErr    bool
	statusUntil  time.Time
	quitting     bool

	// ticksToRollover counts down seconds until the next day-change check.
	ticksToRollover int

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap
}

type confirmDeleteState struct {
	title string
	body  string
	cmd   tea.Cmd
}

// NewApp creates a new application from an already-opened store.
func NewApp(st *store.Store, styles *Styles, fullCfg *config.Config, cfg *AppConfig) *App {
	if fullCfg == nil {
		fullCfg = config.Default()
	}
	if cfg == nil {
		cfg = &AppConfig{
			Keys:                  &fullCfg.Keys,
			ConfirmDeletions:      true,
			NarrowLayoutThreshold: 80,
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &fullCfg.Keys
	}

	app := &App{
		store:        st,
		styles:       styles,
		config:       cfg,
		taskPane:     NewTaskPaneWithKeys(st, styles, cfg.Keys),
		timerPane:    NewTimerPaneWithConfig(st, styles, fullCfg),
		calendarPane: NewCalendarPaneWithKeys(st, styles, cfg.Keys),
		statsPane:    NewStatsPane(st, styles),
		helpOverlay:  NewHelpOverlay(styles),
		activePane:   PaneTasks,
		keys:         NewGlobalKeyMap(cfg.Keys),
		helpKeys:     DefaultHelpKeyMap(),
	}

	app.setActivePane(PaneTasks)
	app.ticksToRollover = int(rolloverInterval / time.Second)

	return app
}

// panes returns the panes in tab order.
func (a *App) panes() [paneCount]pane {
	return [paneCount]pane{a.taskPane, a.timerPane, a.calendarPane, a.statsPane}
}

// tickMsg is sent every second for countdowns and time updates.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop and runs the startup rollover check.
func (a *App) Init() tea.Cmd {
	return tea.Batch(tickCmd(), rolloverCmd(a.store))
}

// broadcastRefresh tells every pane to re-query the store.
func (a *App) broadcastRefresh() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range a.panes() {
		if cmd := p.Update(refreshMsg{}); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Route async store results first, regardless of which pane is active.
	switch msg := msg.(type) {
	case taskAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add task: "+msg.err.Error(), true)
		} else if msg.task.Title != "" {
			a.SetStatus("Added: "+truncateText(msg.task.Title, 40), false)
		}
		return a, a.broadcastRefresh()

	case taskToggledMsg:
		if msg.err != nil {
			a.SetStatus("Toggle task: "+msg.err.Error(), true)
		} else if msg.done {
			a.SetStatus("Done: "+truncateText(msg.title, 40), false)
		}
		return a, a.broadcastRefresh()

	case taskDeletedMsg:
		if msg.err != nil {
			a.SetStatus("Delete task: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Deleted: "+truncateText(msg.title, 40), false)
		}
		return a, a.broadcastRefresh()

	case currentTaskSetMsg:
		switch {
		case errors.Is(msg.err, store.ErrTimerRunning):
			a.SetStatus("Finish or reset the focus cycle first", true)
		case errors.Is(msg.err, errNoCurrentTask):
			a.SetStatus("Pick a task first ('p' in the task pane)", true)
		case msg.err != nil:
			a.SetStatus("Current task: "+msg.err.Error(), true)
		case msg.cleared:
			a.SetStatus("Cleared current task", false)
		default:
			a.SetStatus("Now on: "+truncateText(msg.title, 40), false)
		}
		return a, a.broadcastRefresh()

	case focusCycleAppliedMsg:
		if msg.err != nil {
			a.SetStatus("Log focus time: "+msg.err.Error(), true)
		} else {
			a.SetStatus(fmt.Sprintf("Focus cycle done, +%dm logged", msg.minutes), false)
		}
		return a, a.broadcastRefresh()

	case timerFlagSavedMsg:
		if msg.err != nil {
			a.SetStatus("Timer state: "+msg.err.Error(), true)
		}
		return a, nil

	case rolloverMsg:
		if msg.err != nil {
			a.SetStatus("Daily reset: "+msg.err.Error(), true)
		} else if msg.rolled {
			a.SetStatus("New day, daily progress reset", false)
			return a, a.broadcastRefresh()
		}
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.confirmDel != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				cmd := a.confirmDel.cmd
				a.confirmDel = nil
				return a, cmd
			case "n", "N", "esc":
				a.confirmDel = nil
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
			}
			return a, nil
		}

		if !a.taskPane.IsAdding() {
			// Confirm task deletions if enabled.
			if a.config.ConfirmDeletions && a.activePane == PaneTasks {
				if key.Matches(msg, a.taskPane.keys.Delete) {
					ref, ok := a.taskPane.selected()
					if !ok {
						a.SetStatus("No task selected", true)
						return a, nil
					}
					a.confirmDel = &confirmDeleteState{
						title: "Delete task?",
						body:  truncateText(ref.Title, 60),
						cmd:   deleteTaskCmd(a.store, ref),
					}
					return a, nil
				}
			}

			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.NextPane):
				a.setActivePane((a.activePane + 1) % paneCount)
				return a, nil

			case key.Matches(msg, a.keys.Pane1):
				a.setActivePane(PaneTasks)
				return a, nil

			case key.Matches(msg, a.keys.Pane2):
				a.setActivePane(PaneTimer)
				return a, nil

			case key.Matches(msg, a.keys.Pane3):
				a.setActivePane(PaneCalendar)
				return a, nil

			case key.Matches(msg, a.keys.Pane4):
				a.setActivePane(PaneStats)
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tickMsg:
		var cmds []tea.Cmd

		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}

		// Drive the countdown even when the timer pane isn't focused.
		cmds = append(cmds, a.timerPane.Tick()...)

		a.ticksToRollover--
		if a.ticksToRollover <= 0 {
			a.ticksToRollover = int(rolloverInterval / time.Second)
			cmds = append(cmds, rolloverCmd(a.store))
		}

		cmds = append(cmds, tickCmd())
		return a, tea.Batch(cmds...)
	}

	// Forward to active pane (only if help is not shown)
	if !a.showHelp {
		if cmd := a.panes()[a.activePane].Update(msg); cmd != nil {
			return a, cmd
		}
	}

	return a, nil
}

// setActivePane sets the active pane and updates focus states.
func (a *App) setActivePane(id PaneID) {
	a.activePane = id
	for i, p := range a.panes() {
		p.SetFocused(PaneID(i) == id)
	}
}

// updateLayout recalculates pane sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar (2) and help bar (1)
	contentHeight := a.height - 4
	if contentHeight < 10 {
		contentHeight = 10
	}

	a.helpOverlay.SetSize(a.width, a.height)

	totalWidth := a.width - 4

	threshold := a.config.NarrowLayoutThreshold
	if threshold <= 0 {
		threshold = 80
	}

	if a.width < threshold {
		// Narrow mode: single focused pane with tab bar
		a.layoutMode = LayoutNarrow

		narrowHeight := contentHeight - 1
		if narrowHeight < 8 {
			narrowHeight = 8
		}
		paneWidth := totalWidth
		if paneWidth < 20 {
			paneWidth = 20
		}

		for _, p := range a.panes() {
			p.SetSize(paneWidth, narrowHeight)
		}
		return
	}

	// Wide mode: four panes side-by-side
	a.layoutMode = LayoutWide

	tasksWidth := (totalWidth * 30) / 100
	timerWidth := (totalWidth * 20) / 100
	calendarWidth := (totalWidth * 27) / 100
	statsWidth := totalWidth - tasksWidth - timerWidth - calendarWidth - 3

	a.taskPane.SetSize(tasksWidth, contentHeight)
	a.timerPane.SetSize(timerWidth, contentHeight)
	a.calendarPane.SetSize(calendarWidth, contentHeight)
	a.statsPane.SetSize(statsWidth, contentHeight)
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.confirmDel != nil {
		return a.renderConfirmDelete()
	}

	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	b.WriteString(a.renderTitleBar())
	b.WriteString("\n")

	switch a.layoutMode {
	case LayoutNarrow:
		b.WriteString(a.renderNarrowContent())
	default:
		b.WriteString(a.renderWideContent())
	}
	b.WriteString("\n")

	b.WriteString(a.renderHelpBar())

	return b.String()
}

func (a *App) renderConfirmDelete() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.confirmDel.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirmDel.body))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] delete    [n/esc] cancel"))

	return RenderCentered(overlayStyle.Render(b.String()), a.width, a.height)
}

// renderWideContent renders all panes side by side.
func (a *App) renderWideContent() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		a.taskPane.View(), " ",
		a.timerPane.View(), " ",
		a.calendarPane.View(), " ",
		a.statsPane.View(),
	)
}

// renderNarrowContent renders the focused pane with a tab bar.
func (a *App) renderNarrowContent() string {
	var b strings.Builder

	b.WriteString(a.renderPaneTabs())
	b.WriteString("\n")
	b.WriteString(a.panes()[a.activePane].View())

	return b.String()
}

// renderPaneTabs renders a tab bar showing available panes.
func (a *App) renderPaneTabs() string {
	tabs := []struct {
		id    PaneID
		label string
	}{
		{PaneTasks, "Tasks"},
		{PaneTimer, "Timer"},
		{PaneCalendar, "Calendar"},
		{PaneStats, "Stats"},
	}

	activeTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorPrimary).
		Bold(true)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var parts []string
	for _, tab := range tabs {
		label := tab.label
		if tab.id == a.activePane {
			label = activeTabStyle.Render("[" + label + "]")
		} else {
			label = inactiveTabStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}

	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}

	return tabBar
}

// renderGoodbye shows an exit message with a day summary.
func (a *App) renderGoodbye() string {
	tasksDone, tasksTotal := a.taskPane.Stats()
	goals := a.store.DailyGoalSummary()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you later!\n")
	b.WriteString("\n")

	if tasksTotal > 0 || goals.SpentHours > 0 {
		b.WriteString("  Today's progress:\n")
		if tasksTotal > 0 {
			pct := (tasksDone * 100) / tasksTotal
			b.WriteString(fmt.Sprintf("     Tasks: %d/%d (%d%%)\n", tasksDone, tasksTotal, pct))
		}
		if goals.SpentHours > 0 {
			b.WriteString(fmt.Sprintf("     Focus: %.1fh\n", goals.SpentHours))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderTitleBar creates the top title bar with stats and timer status.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" pomo ")

	tasksDone, tasksTotal := a.taskPane.Stats()
	var statsItems []string
	if tasksTotal > 0 {
		statsItems = append(statsItems, fmt.Sprintf("Tasks: %d/%d", tasksDone, tasksTotal))
	}
	if streak := a.store.FocusStreak(); streak > 0 {
		statsItems = append(statsItems, fmt.Sprintf("Streak: %d", streak))
	}
	stats := a.styles.StatLabelStyle.Render(strings.Join(statsItems, "  "))

	// Countdown indicator while a cycle runs
	var timerStatus string
	if a.timerPane.IsRunning() {
		remaining := a.timerPane.Remaining()
		label := "focus"
		if !a.timerPane.InFocusCycle() {
			label = "break"
		}
		timerStatus = a.styles.TimerFocusStyle.Render(
			fmt.Sprintf("▶ %s %02d:%02d", label, remaining/60, remaining%60))
	}

	now := time.Now()
	date := a.styles.DateStyle.Render(now.Format("Mon Jan 2 · 15:04"))

	titleWidth := lipgloss.Width(title)
	statsWidth := lipgloss.Width(stats)
	timerWidth := lipgloss.Width(timerStatus)
	dateWidth := lipgloss.Width(date)

	usedWidth := titleWidth + statsWidth + timerWidth + dateWidth
	spacerWidth := a.width - usedWidth - 6
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	var parts []string
	parts = append(parts, title)
	if stats != "" {
		parts = append(parts, "  "+stats)
	}

	leftSpacer := strings.Repeat(" ", spacerWidth/2)
	rightSpacer := strings.Repeat(" ", spacerWidth-spacerWidth/2)

	parts = append(parts, leftSpacer)
	if timerStatus != "" {
		parts = append(parts, timerStatus)
	}
	parts = append(parts, rightSpacer)
	parts = append(parts, date)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	if a.taskPane.IsAdding() {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	switch a.activePane {
	case PaneTasks:
		return a.styles.RenderHelp(
			"a", "add",
			"d", "done",
			"p", "pick",
			"v", "all",
			"x", "del",
			"tab", "pane",
			"?", "help",
		)
	case PaneTimer:
		if a.timerPane.IsRunning() {
			return a.styles.RenderHelp(
				"space", "pause",
				"r", "reset",
				"tab", "pane",
				"?", "help",
			)
		}
		return a.styles.RenderHelp(
			"space", "start",
			"m", "mode",
			"r", "reset",
			"tab", "pane",
			"?", "help",
		)
	case PaneCalendar:
		return a.styles.RenderHelp(
			"h/l", "day",
			"tab", "pane",
			"?", "help",
		)
	case PaneStats:
		return a.styles.RenderHelp(
			"tab", "pane",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// truncateText shortens text to maxLen display cells with an ellipsis.
func truncateText(text string, maxLen int) string {
	return runewidth.Truncate(text, maxLen, "…")
}

// Run starts the Bubble Tea program with the given store, styles, and config.
func Run(st *store.Store, styles *Styles, cfg *config.Config) error {
	appCfg := &AppConfig{
		Keys:                  &cfg.Keys,
		ConfirmDeletions:      cfg.UX.ConfirmDeletions,
		NarrowLayoutThreshold: cfg.UX.NarrowLayoutThreshold,
	}
	app := NewApp(st, styles, cfg, appCfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
