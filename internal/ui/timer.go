// Package ui provides terminal user interface components for the pomo app.
package ui

import (
	"fmt"
	"strings"

	"pomo/internal/config"
	"pomo/internal/notify"
	"pomo/internal/store"
	"pomo/internal/timer"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// TimerPane drives the pomodoro countdown and shows the current task.
type TimerPane struct {
	store    *store.Store
	engine   *timer.Engine
	styles   *Styles
	notifier notify.Notifier
	notify   config.NotificationConfig
	focused  bool
	width    int
	height   int

	// pendingMinutes holds the focus minutes reported by the engine's
	// completion callback until the next Tick caller collects them.
	pendingMinutes int

	// Key bindings
	keys TimerKeyMap
}

// NewTimerPane creates a new timer pane.
func NewTimerPane(st *store.Store, styles *Styles) *TimerPane {
	return NewTimerPaneWithConfig(st, styles, &config.Config{Timer: config.TimerConfig{}})
}

// NewTimerPaneWithConfig creates a new timer pane using the configured
// cycle durations, key bindings, and notification settings.
func NewTimerPaneWithConfig(st *store.Store, styles *Styles, cfg *config.Config) *TimerPane {
	if cfg == nil {
		cfg = config.Default()
	}

	p := &TimerPane{
		store:    st,
		styles:   styles,
		notifier: notify.New(),
		notify:   cfg.Notifications,
		keys:     NewTimerKeyMap(&cfg.Keys),
	}
	p.engine = timer.New(timer.Settings{
		FocusMinutes:       cfg.Timer.FocusMinutes,
		ShortBreakMinutes:  cfg.Timer.ShortBreakMinutes,
		LongBreakMinutes:   cfg.Timer.LongBreakMinutes,
		CyclesPerLongBreak: cfg.Timer.CyclesPerLongBreak,
	}, func(minutes int) {
		p.pendingMinutes = minutes
	})
	return p
}

// SetSize sets the pane dimensions.
func (p *TimerPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *TimerPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *TimerPane) IsFocused() bool {
	return p.focused
}

// IsRunning reports whether the countdown is active.
func (p *TimerPane) IsRunning() bool {
	return p.engine.Running()
}

// InFocusCycle reports whether an active countdown is a focus cycle.
// The store's timer-running flag mirrors this.
func (p *TimerPane) InFocusCycle() bool {
	return p.engine.Running() && p.engine.Mode() == timer.ModeFocus
}

// Remaining returns the remaining seconds of the active cycle.
func (p *TimerPane) Remaining() int {
	return p.engine.Remaining()
}

// Tick advances the countdown by one second. It returns the commands the
// app must run: crediting a finished focus cycle, persisting the
// timer-running flag, and firing a notification.
func (p *TimerPane) Tick() []tea.Cmd {
	if !p.engine.Running() {
		return nil
	}

	finished := p.engine.Mode()
	switched := p.engine.Tick()
	if !switched {
		return nil
	}

	var cmds []tea.Cmd
	if p.pendingMinutes > 0 {
		minutes := p.pendingMinutes
		p.pendingMinutes = 0
		cmds = append(cmds, applyFocusCycleCmd(p.store, minutes))
	}
	if p.notify.Enabled {
		cycle := finished.String()
		sound := p.notify.Sound
		notifier := p.notifier
		cmds = append(cmds, func() tea.Msg {
			_ = notify.CycleFinished(notifier, cycle, sound)
			return nil
		})
	}
	// The engine stops after every cycle switch.
	cmds = append(cmds, setTimerRunningCmd(p.store, false))
	return cmds
}

// Update handles messages for the timer pane.
func (p *TimerPane) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case refreshMsg:
		return nil
	}

	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Toggle):
			if p.engine.Running() {
				p.engine.Pause()
				if p.engine.Mode() == timer.ModeFocus {
					return setTimerRunningCmd(p.store, false)
				}
				return nil
			}
			if p.engine.Mode() == timer.ModeFocus {
				if _, _, ok := p.store.CurrentTask(); !ok {
					return func() tea.Msg {
						return currentTaskSetMsg{err: errNoCurrentTask}
					}
				}
				p.engine.Start()
				return setTimerRunningCmd(p.store, true)
			}
			p.engine.Start()
			return nil

		case key.Matches(msg, p.keys.Reset):
			wasFocus := p.InFocusCycle()
			p.engine.Reset()
			if wasFocus {
				return setTimerRunningCmd(p.store, false)
			}

		case key.Matches(msg, p.keys.SwitchMode):
			if p.engine.Running() {
				return nil
			}
			switch p.engine.Mode() {
			case timer.ModeFocus:
				p.engine.SetMode(timer.ModeShortBreak)
			case timer.ModeShortBreak:
				p.engine.SetMode(timer.ModeLongBreak)
			default:
				p.engine.SetMode(timer.ModeFocus)
			}
		}
	}

	return nil
}

// View renders the timer pane.
func (p *TimerPane) View() string {
	var b strings.Builder

	b.WriteString(p.styles.PaneTitleStyle.Render("TIMER"))
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	// Mode line
	modeStyle := p.styles.TimerBreakStyle
	if p.engine.Mode() == timer.ModeFocus {
		modeStyle = p.styles.TimerFocusStyle
	}
	state := "paused"
	if p.engine.Running() {
		state = "running"
	}
	b.WriteString("  " + modeStyle.Render(strings.ToUpper(p.engine.Mode().String())))
	b.WriteString("  " + p.styles.StatLabelStyle.Render(state))
	b.WriteString("\n\n")

	// Countdown
	remaining := p.engine.Remaining()
	digits := fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
	digitsStyle := p.styles.TimerDigitsStyle
	if !p.engine.Running() {
		digitsStyle = p.styles.TimerPausedStyle
	}
	b.WriteString("    " + digitsStyle.Render(digits))
	b.WriteString("\n\n")

	// Cycles today
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Cycles: ") +
		p.styles.StatValueStyle.Render(fmt.Sprintf("%d", p.engine.CompletedCycles())))
	b.WriteString("\n\n")

	// Current task
	if task, projectID, ok := p.store.CurrentTask(); ok {
		title := runewidth.Truncate(task.Title, max(10, p.width-8), "..")
		b.WriteString("  " + p.styles.StatLabelStyle.Render("On: ") + p.styles.TimerTaskStyle.Render(title))
		b.WriteString("\n")
		if task.IsRoutine {
			if streak := p.store.TaskStreak(projectID, task); streak > 1 {
				b.WriteString("  " + p.styles.StreakStyle.Render(fmt.Sprintf("🔥 %d day streak", streak)))
				b.WriteString("\n")
			}
		}
		b.WriteString("  " + p.styles.StatLabelStyle.Render(
			fmt.Sprintf("%d pomodoros · %s", task.CompletedPomodoros, formatMinutes(task.CompletedTime))))
		b.WriteString("\n")
	} else {
		b.WriteString("  " + p.styles.StatLabelStyle.Render("No current task."))
		b.WriteString("\n")
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Pick one with 'p' in the task pane."))
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}
