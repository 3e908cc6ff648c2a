// Package ui provides terminal user interface components for the pomo app.
// This file contains tea.Cmd factories that wrap store mutations. These
// commands run persistence asynchronously to keep the Bubble Tea event loop
// responsive. Each command returns a corresponding message type defined in
// messages.go.
package ui

import (
	"pomo/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// Task Commands
// =============================================================================

// addTaskCmd returns a command that creates a new task in a project.
// An empty projectID targets the standalone project.
func addTaskCmd(st *store.Store, projectID string, draft store.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		task, err := st.AddTask(projectID, draft)
		return taskAddedMsg{task: task, err: err}
	}
}

// toggleTaskCmd returns a command that flips a task's completed flag.
func toggleTaskCmd(st *store.Store, ref store.TaskRef) tea.Cmd {
	return func() tea.Msg {
		done := !ref.Completed
		err := st.UpdateTask(ref.ProjectID, ref.ID, store.TaskUpdate{Completed: &done})
		return taskToggledMsg{title: ref.Title, done: done, err: err}
	}
}

// deleteTaskCmd returns a command that removes a task.
func deleteTaskCmd(st *store.Store, ref store.TaskRef) tea.Cmd {
	return func() tea.Msg {
		err := st.DeleteTask(ref.ProjectID, ref.ID)
		return taskDeletedMsg{title: ref.Title, err: err}
	}
}

// pickCurrentTaskCmd returns a command that makes ref the current task.
// Fails with ErrTimerRunning while a focus cycle is active.
func pickCurrentTaskCmd(st *store.Store, ref store.TaskRef) tea.Cmd {
	return func() tea.Msg {
		err := st.SetCurrentTask(ref.ProjectID, ref.ID)
		return currentTaskSetMsg{title: ref.Title, err: err}
	}
}

// clearCurrentTaskCmd returns a command that clears the current-task pointer.
func clearCurrentTaskCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		err := st.ClearCurrentTask()
		return currentTaskSetMsg{cleared: true, err: err}
	}
}

// =============================================================================
// Timer Commands
// =============================================================================

// applyFocusCycleCmd returns a command that credits a finished focus cycle
// to the current task, its project, and the daily stats log.
func applyFocusCycleCmd(st *store.Store, minutes int) tea.Cmd {
	return func() tea.Msg {
		err := st.ApplyFocusCycle(minutes)
		return focusCycleAppliedMsg{minutes: minutes, err: err}
	}
}

// setTimerRunningCmd returns a command that persists the timer-running flag.
func setTimerRunningCmd(st *store.Store, running bool) tea.Cmd {
	return func() tea.Msg {
		err := st.SetTimerRunning(running)
		return timerFlagSavedMsg{running: running, err: err}
	}
}

// =============================================================================
// Rollover Commands
// =============================================================================

// rolloverCmd returns a command that runs the daily rollover check.
func rolloverCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		rolled, err := st.CheckRollover()
		return rolloverMsg{rolled: rolled, err: err}
	}
}
