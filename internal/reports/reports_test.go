package reports

import (
	"strings"
	"testing"
	"time"

	"pomo/internal/store"
)

// newTestStore returns a store pinned to Tuesday 2026-03-10 with a project,
// a couple of tasks, a routine, and a short focus log.
func newTestStore(t *testing.T) (*store.Store, time.Time) {
	t.Helper()

	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	st.SetNowFunc(func() time.Time { return now })

	p, err := st.AddProject("Thesis", "#EF4444")
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if err := st.UpdateProject(p.ID, store.ProjectUpdate{DailyGoalHours: floatPtr(2)}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	done, err := st.AddTask(p.ID, store.TaskDraft{Title: "Write chapter", DueDate: "2026-03-10", EstimatedTime: 60})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := st.UpdateTask(p.ID, done.ID, store.TaskUpdate{Completed: boolPtr(true), CompletedTime: intPtr(50)}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if _, err := st.AddTask(p.ID, store.TaskDraft{Title: "Review notes", DueDate: "2026-03-10", EstimatedTime: 30}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	if _, err := st.AddRoutine("Reading", 1, nil); err != nil {
		t.Fatalf("AddRoutine: %v", err)
	}

	for _, day := range []struct {
		date  string
		hours float64
	}{
		{"2026-03-08", 1.5},
		{"2026-03-09", 2},
		{"2026-03-10", 0.5},
	} {
		if err := st.LogFocusTime(day.date, day.hours); err != nil {
			t.Fatalf("LogFocusTime: %v", err)
		}
	}

	if err := st.UpdateProjectTimeSpent(p.ID, 0.5); err != nil {
		t.Fatalf("UpdateProjectTimeSpent: %v", err)
	}

	return st, now
}

func TestGenerateDaily(t *testing.T) {
	st, now := newTestStore(t)
	gen := NewGenerator(st)

	report, err := gen.GenerateDaily(now)
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}

	if report.Tasks.CompletedCount != 1 {
		t.Errorf("CompletedCount = %d, want 1", report.Tasks.CompletedCount)
	}
	if report.Tasks.PendingCount != 1 {
		t.Errorf("PendingCount = %d, want 1", report.Tasks.PendingCount)
	}
	if got := report.Tasks.Completed[0].Title; got != "Write chapter" {
		t.Errorf("completed task = %q, want %q", got, "Write chapter")
	}
	if len(report.Tasks.ByProject) != 1 || report.Tasks.ByProject[0].Project != "Thesis" {
		t.Errorf("ByProject = %+v, want single Thesis entry", report.Tasks.ByProject)
	}

	if report.Focus.Hours != 0.5 {
		t.Errorf("Focus.Hours = %v, want 0.5", report.Focus.Hours)
	}
	if report.Focus.GoalHours != 2 {
		t.Errorf("Focus.GoalHours = %v, want 2", report.Focus.GoalHours)
	}
	if report.Focus.Progress != 0.25 {
		t.Errorf("Focus.Progress = %v, want 0.25", report.Focus.Progress)
	}
	// Hours logged on the 8th, 9th, and 10th.
	if report.Focus.Streak != 3 {
		t.Errorf("Focus.Streak = %d, want 3", report.Focus.Streak)
	}

	if report.Routines.TotalCount != 1 || report.Routines.CompletedCount != 0 {
		t.Errorf("Routines = %d/%d, want 0/1", report.Routines.CompletedCount, report.Routines.TotalCount)
	}

	if len(report.Goals) != 1 {
		t.Fatalf("Goals = %+v, want one entry", report.Goals)
	}
	if report.Goals[0].Percentage != 25 {
		t.Errorf("goal percentage = %v, want 25", report.Goals[0].Percentage)
	}
}

func TestGenerateWeekly(t *testing.T) {
	st, now := newTestStore(t)
	gen := NewGenerator(st)

	report, err := gen.GenerateWeekly(now)
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}

	// Week containing Tuesday 2026-03-10 starts Sunday 2026-03-08.
	if got := report.StartDate.Format(store.DateFormat); got != "2026-03-08" {
		t.Errorf("StartDate = %s, want 2026-03-08", got)
	}
	if len(report.Focus.ByDay) != 7 {
		t.Fatalf("ByDay length = %d, want 7", len(report.Focus.ByDay))
	}

	if report.Focus.TotalHours != 4 {
		t.Errorf("TotalHours = %v, want 4", report.Focus.TotalHours)
	}
	if report.Focus.BestDay != "2026-03-09" {
		t.Errorf("BestDay = %s, want 2026-03-09", report.Focus.BestDay)
	}
	if report.Focus.ByDay[0].DayOfWeek != "Sunday" {
		t.Errorf("first day = %s, want Sunday", report.Focus.ByDay[0].DayOfWeek)
	}

	if report.Tasks.TotalCompleted != 1 {
		t.Errorf("TotalCompleted = %d, want 1", report.Tasks.TotalCompleted)
	}
}

func TestFormatDailyMarkdown(t *testing.T) {
	st, now := newTestStore(t)
	gen := NewGenerator(st)

	report, err := gen.GenerateDaily(now)
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}

	md := FormatDailyMarkdown(report)
	for _, want := range []string{
		"# Daily Report: Tuesday, March 10, 2026",
		"[x] Write chapter (Thesis)",
		"[ ] Review notes (Thesis)",
		"Thesis: 30m / 2h (25%)",
		"[ ] Reading: 0m / 1h",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("daily markdown missing %q\n%s", want, md)
		}
	}
}

func TestFormatWeeklyMarkdown(t *testing.T) {
	st, now := newTestStore(t)
	gen := NewGenerator(st)

	report, err := gen.GenerateWeekly(now)
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}

	md := FormatWeeklyMarkdown(report)
	for _, want := range []string{
		"# Weekly Report: Mar 8 - Mar 14, 2026",
		"- Total: 4h",
		"- Best day: 2026-03-09",
		"| Sun 2026-03-08 | 1h 30m | 0 | 0 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("weekly markdown missing %q\n%s", want, md)
		}
	}
}

func TestFormatJSONRoundTrips(t *testing.T) {
	st, now := newTestStore(t)
	gen := NewGenerator(st)

	daily, err := gen.GenerateDaily(now)
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}
	data, err := FormatDailyJSON(daily)
	if err != nil {
		t.Fatalf("FormatDailyJSON: %v", err)
	}
	if !strings.Contains(string(data), `"completed_count": 1`) {
		t.Errorf("daily JSON missing completed_count:\n%s", data)
	}

	weekly, err := gen.GenerateWeekly(now)
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}
	data, err = FormatWeeklyJSON(weekly)
	if err != nil {
		t.Fatalf("FormatWeeklyJSON: %v", err)
	}
	if !strings.Contains(string(data), `"total_hours": 4`) {
		t.Errorf("weekly JSON missing total_hours:\n%s", data)
	}
}

func boolPtr(b bool) *bool        { return &b }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
