// Package ui provides terminal user interface components for the pomo app.
// This file defines message types for async store operations using the
// Bubble Tea command pattern. All store mutations return these messages to
// keep the event loop non-blocking.
package ui

import (
	"errors"

	"pomo/internal/store"
)

// errNoCurrentTask blocks starting a focus cycle with nothing to credit it to.
var errNoCurrentTask = errors.New("no current task selected")

// refreshMsg tells every pane to re-query the store.
type refreshMsg struct{}

// =============================================================================
// Task Messages
// =============================================================================

// taskAddedMsg is sent when a new task is created.
type taskAddedMsg struct {
	task store.Task
	err  error
}

// taskToggledMsg is sent when a task's completed flag is flipped.
type taskToggledMsg struct {
	title string
	done  bool
	err   error
}

// taskDeletedMsg is sent when a task is removed.
type taskDeletedMsg struct {
	title string
	err   error
}

// currentTaskSetMsg is sent when the current-task pointer changes.
// err is ErrTimerRunning when a focus cycle blocked the change.
type currentTaskSetMsg struct {
	title   string
	cleared bool
	err     error
}

// =============================================================================
// Timer Messages
// =============================================================================

// focusCycleAppliedMsg is sent after a completed focus cycle has been
// credited to the current task, its project, and the stats log.
type focusCycleAppliedMsg struct {
	minutes int
	err     error
}

// timerFlagSavedMsg is sent when the persisted timer-running flag changes.
type timerFlagSavedMsg struct {
	running bool
	err     error
}

// =============================================================================
// Rollover Messages
// =============================================================================

// rolloverMsg is sent after a daily rollover check.
type rolloverMsg struct {
	rolled bool
	err    error
}
