package ui

import (
	"testing"

	"pomo/internal/store"
)

func TestStatsPaneView_Empty(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	pane := NewStatsPane(st, styles)
	pane.SetSize(40, 24)
	pane.SetFocused(true)

	output := pane.View()
	assertContains(t, output, "STATS")
	assertContains(t, output, "Goal:   0.0h")
	assertContains(t, output, "Logged: 0.0h")
	assertContains(t, output, "Last 7 days")
	assertNotContains(t, output, "focus streak")
	assertNotContains(t, output, "Routines")
}

func TestStatsPaneView_GoalSummary(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	project, err := st.AddProject("Thesis", "")
	if err != nil {
		t.Fatalf("failed to add project: %v", err)
	}
	goal := 3.0
	st.UpdateProject(project.ID, store.ProjectUpdate{DailyGoalHours: &goal})
	st.UpdateProjectTimeSpent(project.ID, 1.0)

	pane := NewStatsPane(st, styles)
	pane.SetSize(40, 24)

	output := pane.View()
	assertContains(t, output, "Goal:   3.0h")
	assertContains(t, output, "Logged: 1.0h")
	assertContains(t, output, "Left:   2.0h")
}

func TestStatsPaneView_FocusStreak(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	// Three consecutive days ending today
	st.LogFocusTime("2026-03-08", 1.5)
	st.LogFocusTime("2026-03-09", 2.0)
	st.LogFocusTime("2026-03-10", 0.5)

	pane := NewStatsPane(st, styles)
	pane.SetSize(40, 24)

	output := pane.View()
	assertContains(t, output, "3 day focus streak")
	assertContains(t, output, "4.0h this week")
}

func TestStatsPaneView_Routines(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	reading, err := st.AddRoutine("Reading", 1.0, nil)
	if err != nil {
		t.Fatalf("failed to add routine: %v", err)
	}
	if _, err := st.AddRoutine("Exercise", 0.5, nil); err != nil {
		t.Fatalf("failed to add routine: %v", err)
	}
	st.UpdateRoutineTimeSpent(reading.ID, 1.0)

	pane := NewStatsPane(st, styles)
	pane.SetSize(40, 24)

	output := pane.View()
	assertContains(t, output, "Routines")
	assertContains(t, output, "[x] Reading")
	assertContains(t, output, "[ ] Exercise")
	assertContains(t, output, "1.0/1.0h")
	assertContains(t, output, "0.0/0.5h")
}

func TestStatsPane_IgnoresInput(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	pane := NewStatsPane(st, styles)
	pane.SetFocused(true)

	if cmd := pane.Update(keyPress('j')); cmd != nil {
		t.Error("stats pane must not react to keys")
	}
}
