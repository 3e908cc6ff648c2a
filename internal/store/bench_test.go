package store

import (
	"fmt"
	"testing"
	"time"
)

// createBenchStore creates a Store instance for benchmarks, clock pinned the
// same way the test store is.
func createBenchStore(b *testing.B) *Store {
	b.Helper()
	s, err := Open(b.TempDir())
	if err != nil {
		b.Fatalf("failed to open bench store: %v", err)
	}
	s.SetNowFunc(func() time.Time {
		return time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	})
	return s
}

// populateBenchStore spreads size tasks over a handful of projects, half of
// them due today so the daily views have work to do.
func populateBenchStore(b *testing.B, s *Store, size int) {
	b.Helper()
	today := s.Today()
	projects := make([]Project, 5)
	for i := range projects {
		projects[i] = mustAddBenchProject(b, s, fmt.Sprintf("Project %d", i))
	}
	for i := 0; i < size; i++ {
		p := projects[i%len(projects)]
		due := today
		if i%2 == 1 {
			due = s.Now().AddDate(0, 0, 1+i%14).Format(DateFormat)
		}
		if _, err := s.AddTask(p.ID, TaskDraft{
			Title:         fmt.Sprintf("Task %d", i),
			EstimatedTime: 25,
			CompletedTime: i % 30,
			DueDate:       due,
		}); err != nil {
			b.Fatalf("AddTask failed: %v", err)
		}
	}
}

func mustAddBenchProject(b *testing.B, s *Store, name string) Project {
	b.Helper()
	p, err := s.AddProject(name, "")
	if err != nil {
		b.Fatalf("AddProject failed: %v", err)
	}
	return p
}

// BenchmarkAddTask measures task creation (including the save) performance.
func BenchmarkAddTask(b *testing.B) {
	s := createBenchStore(b)
	p := mustAddBenchProject(b, s, "Inbox")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := s.AddTask(p.ID, TaskDraft{Title: fmt.Sprintf("Task %d", i), EstimatedTime: 25})
		if err != nil {
			b.Fatalf("AddTask failed: %v", err)
		}
	}
}

// BenchmarkOpen measures full state loading performance with varying sizes.
func BenchmarkOpen(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			s := createBenchStore(b)
			populateBenchStore(b, s, size)
			dir := s.DataDir()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Open(dir); err != nil {
					b.Fatalf("Open failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkTodayWorkload measures the daily workload aggregation.
func BenchmarkTodayWorkload(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			s := createBenchStore(b)
			populateBenchStore(b, s, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w := s.TodayWorkload()
				if w.TotalEstimated == 0 {
					b.Fatal("workload should not be empty")
				}
			}
		})
	}
}

// BenchmarkTasksGroupedByDate measures the all-tasks grouping view.
func BenchmarkTasksGroupedByDate(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			s := createBenchStore(b)
			populateBenchStore(b, s, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dates, groups := s.TasksGroupedByDate()
				if len(dates) == 0 || len(groups) == 0 {
					b.Fatal("grouping should not be empty")
				}
			}
		})
	}
}

// BenchmarkTaskStreak measures the streak walk over a long routine history.
func BenchmarkTaskStreak(b *testing.B) {
	s := createBenchStore(b)
	p := mustAddBenchProject(b, s, "Routines")

	// A 60-day completed history ending today.
	var latest Task
	for i := 59; i >= 0; i-- {
		due := s.Now().AddDate(0, 0, -i).Format(DateFormat)
		task, err := s.AddTask(p.ID, TaskDraft{Title: "Reading", IsRoutine: true, DueDate: due})
		if err != nil {
			b.Fatalf("AddTask failed: %v", err)
		}
		if err := s.UpdateTask(p.ID, task.ID, TaskUpdate{Completed: boolPtr(true)}); err != nil {
			b.Fatalf("UpdateTask failed: %v", err)
		}
		latest = task
	}
	// The returned copy predates the completion update.
	latest.Completed = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		streak := s.TaskStreak(p.ID, latest)
		if streak != 60 {
			b.Fatalf("streak = %d, want 60", streak)
		}
	}
}

// BenchmarkFocusStreak measures the stats-log streak with many logged days.
func BenchmarkFocusStreak(b *testing.B) {
	s := createBenchStore(b)
	for i := 0; i < 365; i++ {
		date := s.Now().AddDate(0, 0, -i).Format(DateFormat)
		if err := s.LogFocusTime(date, 1.5); err != nil {
			b.Fatalf("LogFocusTime failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if streak := s.FocusStreak(); streak == 0 {
			b.Fatal("streak should not be 0")
		}
	}
}

// BenchmarkCheckRollover measures the no-op (same day) rollover check, the
// case the UI tick loop hits once a minute.
func BenchmarkCheckRollover(b *testing.B) {
	s := createBenchStore(b)
	populateBenchStore(b, s, 100)
	if _, err := s.CheckRollover(); err != nil {
		b.Fatalf("CheckRollover failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.CheckRollover(); err != nil {
			b.Fatalf("CheckRollover failed: %v", err)
		}
	}
}

// BenchmarkConcurrentReads measures view performance under concurrent access
// from multiple panes.
func BenchmarkConcurrentReads(b *testing.B) {
	s := createBenchStore(b)
	populateBenchStore(b, s, 200)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = s.TodayTasks()
			_ = s.TodayWorkload()
			_ = s.DailyGoalSummary()
		}
	})
}
