package ui

import (
	"testing"

	"pomo/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestApp builds an app with default config and a sized terminal.
func newTestApp(t *testing.T) *App {
	t.Helper()
	st := createTestStore(t)
	styles := createTestStyles()
	app := NewApp(st, styles, config.Default(), nil)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

func TestAppView_WideLayout(t *testing.T) {
	setupTest(t)
	app := newTestApp(t)

	if app.layoutMode != LayoutWide {
		t.Fatalf("layout = %v, want wide at 120 columns", app.layoutMode)
	}

	output := app.View()
	assertContains(t, output, "pomo")
	assertContains(t, output, "TODAY")
	assertContains(t, output, "TIMER")
	assertContains(t, output, "CALENDAR")
	assertContains(t, output, "STATS")
}

func TestAppView_NarrowLayout(t *testing.T) {
	setupTest(t)
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 60, Height: 30})

	if app.layoutMode != LayoutNarrow {
		t.Fatalf("layout = %v, want narrow at 60 columns", app.layoutMode)
	}

	output := app.View()
	assertContains(t, output, "[Tasks]")
	assertContains(t, output, "TODAY")
	assertNotContains(t, output, "CALENDAR")
}

func TestApp_PaneSwitching(t *testing.T) {
	setupTest(t)
	app := newTestApp(t)

	if app.activePane != PaneTasks {
		t.Fatalf("initial pane = %v, want tasks", app.activePane)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	if app.activePane != PaneTimer {
		t.Errorf("pane after tab = %v, want timer", app.activePane)
	}
	if !app.timerPane.IsFocused() || app.taskPane.IsFocused() {
		t.Error("focus flags not updated on pane switch")
	}

	app.Update(keyPress('4'))
	if app.activePane != PaneStats {
		t.Errorf("pane after 4 = %v, want stats", app.activePane)
	}

	app.Update(keyPress('1'))
	if app.activePane != PaneTasks {
		t.Errorf("pane after 1 = %v, want tasks", app.activePane)
	}

	// Tab wraps around
	for i := 0; i < 4; i++ {
		app.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if app.activePane != PaneTasks {
		t.Errorf("pane after four tabs = %v, want tasks", app.activePane)
	}
}

func TestApp_HelpOverlay(t *testing.T) {
	setupTest(t)
	app := newTestApp(t)

	app.Update(keyPress('?'))
	if !app.showHelp {
		t.Fatal("expected help overlay after ?")
	}
	assertContains(t, app.View(), "Keyboard Shortcuts")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.showHelp {
		t.Error("expected help overlay closed on esc")
	}
}

func TestApp_Quit(t *testing.T) {
	setupTest(t)
	app := newTestApp(t)

	_, cmd := app.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !app.quitting {
		t.Error("expected quitting state after q")
	}
	assertContains(t, app.View(), "See you later")
}

func TestApp_ConfirmDelete(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()
	addTestTask(t, st, "Keep me safe")

	app := NewApp(st, styles, config.Default(), nil)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	app.Update(keyPress('x'))
	if app.confirmDel == nil {
		t.Fatal("expected delete confirmation")
	}
	assertContains(t, app.View(), "Delete task?")
	assertContains(t, app.View(), "Keep me safe")

	// Decline keeps the task
	app.Update(keyPress('n'))
	if app.confirmDel != nil {
		t.Fatal("expected confirmation dismissed on n")
	}
	if len(st.TodayTasks()) != 1 {
		t.Error("declined delete must keep the task")
	}

	// Accept deletes it
	app.Update(keyPress('x'))
	_, cmd := app.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected delete command on y")
	}
	app.Update(cmd())
	if len(st.TodayTasks()) != 0 {
		t.Error("confirmed delete must remove the task")
	}
}

func TestApp_StatusMessages(t *testing.T) {
	setupTest(t)
	app := newTestApp(t)

	app.Update(focusCycleAppliedMsg{minutes: 25})
	assertContains(t, app.View(), "+25m logged")

	app.Update(currentTaskSetMsg{err: errNoCurrentTask})
	assertContains(t, app.View(), "Pick a task first")

	app.Update(rolloverMsg{rolled: true})
	assertContains(t, app.View(), "New day")
}

func TestApp_MutationsRefreshPanes(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	app := NewApp(st, styles, config.Default(), nil)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	// Add a task behind the panes' backs, then deliver the message a
	// command would produce.
	ref := addTestTask(t, st, "Fresh task")
	app.Update(taskAddedMsg{task: ref.Task})

	assertContains(t, app.taskPane.View(), "Fresh task")
	assertContains(t, app.View(), "Added: Fresh task")
}

func TestApp_GlobalKeysIgnoredWhileTyping(t *testing.T) {
	setupTest(t)
	app := newTestApp(t)

	app.Update(keyPress('a'))
	if !app.taskPane.IsAdding() {
		t.Fatal("expected add mode")
	}

	// 'q' must type into the input, not quit
	app.Update(keyPress('q'))
	if app.quitting {
		t.Error("q while typing must not quit")
	}
	if got := app.taskPane.input.Value(); got != "q" {
		t.Errorf("input = %q, want %q", got, "q")
	}
}
