package ui

import (
	"testing"

	"pomo/internal/store"
)

func TestCalendarPaneView_Today(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	addTestTask(t, st, "Morning review")

	pane := NewCalendarPane(st, styles)
	pane.SetSize(44, 24)
	pane.SetFocused(true)

	if pane.SelectedDate() != "2026-03-10" {
		t.Fatalf("selected = %s, want 2026-03-10", pane.SelectedDate())
	}

	output := pane.View()
	assertContains(t, output, "CALENDAR")
	assertContains(t, output, "Tue, Mar 10 (today)")
	assertContains(t, output, "Morning review")
}

func TestCalendarPane_DayNavigation(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	if _, err := st.AddTask("", store.TaskDraft{
		Title:         "Future errand",
		EstimatedTime: 25,
		DueDate:       "2026-03-11",
	}); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	pane := NewCalendarPane(st, styles)
	pane.SetSize(44, 24)
	pane.SetFocused(true)

	pane.Update(keyPress('l'))
	if pane.SelectedDate() != "2026-03-11" {
		t.Fatalf("selected after l = %s, want 2026-03-11", pane.SelectedDate())
	}
	assertContains(t, pane.View(), "Future errand")

	pane.Update(keyPress('h'))
	pane.Update(keyPress('h'))
	if pane.SelectedDate() != "2026-03-09" {
		t.Fatalf("selected after h h = %s, want 2026-03-09", pane.SelectedDate())
	}
	assertContains(t, pane.View(), "No tasks.")
}

func TestCalendarPane_WeekStripSundayStart(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	pane := NewCalendarPane(st, styles)
	pane.SetSize(50, 24)

	output := pane.View()
	// 2026-03-10 is a Tuesday, so the strip runs Sunday the 8th through
	// Saturday the 14th.
	assertContains(t, output, "Su 8")
	assertContains(t, output, "Sa 14")
}

func TestCalendarPane_PlannedTimeSlot(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	if _, err := st.AddTask("", store.TaskDraft{
		Title:         "Team call",
		EstimatedTime: 30,
		DueDate:       st.Today(),
		ForToday:      true,
		PlannedTime:   "14:30",
	}); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	pane := NewCalendarPane(st, styles)
	pane.SetSize(44, 24)
	pane.Update(refreshMsg{})

	output := pane.View()
	assertContains(t, output, "14:30")
	assertContains(t, output, "Team call")
}

func TestCalendarPane_GoalBars(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	project, err := st.AddProject("Thesis", "")
	if err != nil {
		t.Fatalf("failed to add project: %v", err)
	}
	goal := 2.0
	if err := st.UpdateProject(project.ID, store.ProjectUpdate{DailyGoalHours: &goal}); err != nil {
		t.Fatalf("failed to set goal: %v", err)
	}
	if err := st.UpdateProjectTimeSpent(project.ID, 1.0); err != nil {
		t.Fatalf("failed to log time: %v", err)
	}

	pane := NewCalendarPane(st, styles)
	pane.SetSize(50, 24)

	output := pane.View()
	assertContains(t, output, "Thesis")
	assertContains(t, output, "1.0/2.0h")
	assertContains(t, output, "█████░░░░░")
}

func TestCalendarPane_NoGoals(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	styles := createTestStyles()

	pane := NewCalendarPane(st, styles)
	pane.SetSize(44, 24)

	assertContains(t, pane.View(), "No project goals set.")
}
