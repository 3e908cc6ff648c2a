// Package ui provides terminal user interface components for the pomo app.
// This file defines key bindings using the Bubble Tea key package for
// type-safe key matching, help text generation, and customization.
package ui

import (
	"strings"

	"pomo/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// Helpers
// =============================================================================

// parseKeys splits a comma-separated string into individual keys.
// If the input is empty, returns the default keys.
func parseKeys(customKeys string, defaultKeys ...string) []string {
	if customKeys == "" {
		return defaultKeys
	}
	keys := strings.Split(customKeys, ",")
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		trimmed := strings.TrimSpace(k)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// =============================================================================
// Global Keys (available in all contexts)
// =============================================================================

// GlobalKeyMap defines keys available throughout the application.
type GlobalKeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	NextPane key.Binding
	Pane1    key.Binding
	Pane2    key.Binding
	Pane3    key.Binding
	Pane4    key.Binding
}

// DefaultGlobalKeyMap returns the default global key bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return NewGlobalKeyMap(&config.KeysConfig{})
}

// NewGlobalKeyMap creates global key bindings from config.
func NewGlobalKeyMap(cfg *config.KeysConfig) GlobalKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit, "q", "ctrl+c")...),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help, "?")...),
			key.WithHelp("?", "help"),
		),
		NextPane: key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextPane, "tab")...),
			key.WithHelp("tab", "next pane"),
		),
		Pane1: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane1, "1")...),
			key.WithHelp("1", "tasks"),
		),
		Pane2: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane2, "2")...),
			key.WithHelp("2", "timer"),
		),
		Pane3: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane3, "3")...),
			key.WithHelp("3", "calendar"),
		),
		Pane4: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pane4, "4")...),
			key.WithHelp("4", "stats"),
		),
	}
}

// =============================================================================
// Navigation Keys (shared by list-based panes)
// =============================================================================

// NavigationKeyMap defines keys for list navigation.
type NavigationKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultNavigationKeyMap returns the default navigation key bindings.
func DefaultNavigationKeyMap() NavigationKeyMap {
	return NewNavigationKeyMap(&config.KeysConfig{})
}

// NewNavigationKeyMap creates navigation key bindings from config.
func NewNavigationKeyMap(cfg *config.KeysConfig) NavigationKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return NavigationKeyMap{
		Up: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Up, "k", "up")...),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Down, "j", "down")...),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Top, "g")...),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Bottom, "G")...),
			key.WithHelp("G", "bottom"),
		),
	}
}

// =============================================================================
// Input Keys (shared by text input fields)
// =============================================================================

// InputKeyMap defines keys for text input mode.
type InputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultInputKeyMap returns the default input key bindings.
func DefaultInputKeyMap() InputKeyMap {
	return NewInputKeyMap(&config.KeysConfig{})
}

// NewInputKeyMap creates input key bindings from config.
func NewInputKeyMap(cfg *config.KeysConfig) InputKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return InputKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Confirm, "enter")...),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Cancel, "esc")...),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// =============================================================================
// Task Pane Keys
// =============================================================================

// TaskKeyMap defines keys for the task pane.
type TaskKeyMap struct {
	Add     key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Pick    key.Binding
	ShowAll key.Binding
	NavigationKeyMap
}

// DefaultTaskKeyMap returns the default task pane key bindings.
func DefaultTaskKeyMap() TaskKeyMap {
	return NewTaskKeyMap(&config.KeysConfig{})
}

// NewTaskKeyMap creates task key bindings from config.
func NewTaskKeyMap(cfg *config.KeysConfig) TaskKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return TaskKeyMap{
		Add: key.NewBinding(
			key.WithKeys(parseKeys(cfg.AddTask, "a")...),
			key.WithHelp("a", "add task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(parseKeys(cfg.ToggleTask, "d", "enter")...),
			key.WithHelp("d", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys(parseKeys(cfg.DeleteTask, "x")...),
			key.WithHelp("x", "delete"),
		),
		Pick: key.NewBinding(
			key.WithKeys(parseKeys(cfg.PickTask, "p", " ")...),
			key.WithHelp("p/space", "pick current"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys(parseKeys(cfg.ShowAll, "v")...),
			key.WithHelp("v", "today/all"),
		),
		NavigationKeyMap: NewNavigationKeyMap(cfg),
	}
}

// ShortHelp returns the short help for the task pane (implements help.KeyMap).
func (k TaskKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Pick, k.Down}
}

// FullHelp returns the full help for the task pane (implements help.KeyMap).
func (k TaskKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Toggle, k.Delete, k.Pick, k.ShowAll},
		{k.Up, k.Down, k.Top, k.Bottom},
	}
}

// =============================================================================
// Timer Pane Keys
// =============================================================================

// TimerKeyMap defines keys for the timer pane.
type TimerKeyMap struct {
	Toggle     key.Binding
	Reset      key.Binding
	SwitchMode key.Binding
}

// DefaultTimerKeyMap returns the default timer pane key bindings.
func DefaultTimerKeyMap() TimerKeyMap {
	return NewTimerKeyMap(&config.KeysConfig{})
}

// NewTimerKeyMap creates timer key bindings from config.
func NewTimerKeyMap(cfg *config.KeysConfig) TimerKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return TimerKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(parseKeys(cfg.ToggleTimer, " ", "enter")...),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys(parseKeys(cfg.ResetTimer, "r")...),
			key.WithHelp("r", "reset"),
		),
		SwitchMode: key.NewBinding(
			key.WithKeys(parseKeys(cfg.SwitchMode, "m")...),
			key.WithHelp("m", "switch mode"),
		),
	}
}

// ShortHelp returns the short help for the timer pane (implements help.KeyMap).
func (k TimerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.SwitchMode}
}

// FullHelp returns the full help for the timer pane (implements help.KeyMap).
func (k TimerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.SwitchMode},
	}
}

// =============================================================================
// Calendar Pane Keys
// =============================================================================

// CalendarKeyMap defines keys for the calendar pane.
type CalendarKeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
}

// DefaultCalendarKeyMap returns the default calendar pane key bindings.
func DefaultCalendarKeyMap() CalendarKeyMap {
	return NewCalendarKeyMap(&config.KeysConfig{})
}

// NewCalendarKeyMap creates calendar key bindings from config.
func NewCalendarKeyMap(cfg *config.KeysConfig) CalendarKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return CalendarKeyMap{
		PrevDay: key.NewBinding(
			key.WithKeys(parseKeys(cfg.PrevDay, "h", "left")...),
			key.WithHelp("h/←", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextDay, "l", "right")...),
			key.WithHelp("l/→", "next day"),
		),
	}
}

// ShortHelp returns the short help for the calendar pane (implements help.KeyMap).
func (k CalendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay}
}

// FullHelp returns the full help for the calendar pane (implements help.KeyMap).
func (k CalendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay},
	}
}

// =============================================================================
// Help Overlay Keys
// =============================================================================

// HelpKeyMap defines keys for the help overlay.
type HelpKeyMap struct {
	Close key.Binding
}

// DefaultHelpKeyMap returns the default help overlay key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Close: key.NewBinding(
			key.WithKeys("?", "esc", "q", "enter", " "),
			key.WithHelp("any key", "close"),
		),
	}
}
