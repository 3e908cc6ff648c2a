package store

import (
	"sort"
	"time"
)

// This file contains the derived views: pure queries over a snapshot of the
// store. None of them mutate state.

// TaskRef is a task annotated with its owning project, for views that flatten
// tasks across projects.
type TaskRef struct {
	Task
	ProjectID    string
	ProjectName  string
	ProjectColor string
}

// Workload sums estimated and completed minutes over today's open tasks.
type Workload struct {
	TotalEstimated int // minutes planned across tasks due today or routine, not completed
	TotalCompleted int // minutes logged on those tasks
	Remaining      int // max(0, TotalEstimated-TotalCompleted)
}

// TasksForDate returns every task due on date or routine, across all
// projects, annotated with project info.
func (s *Store) TasksForDate(date string) []TaskRef {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []TaskRef
	for i := range s.projects {
		p := &s.projects[i]
		for _, t := range p.Tasks {
			if t.DueDate == date || t.IsRoutine {
				out = append(out, TaskRef{
					Task:         copyTask(t),
					ProjectID:    p.ID,
					ProjectName:  p.Name,
					ProjectColor: p.Color,
				})
			}
		}
	}
	return out
}

// TodayTasks returns TasksForDate for today per the store clock.
func (s *Store) TodayTasks() []TaskRef {
	return s.TasksForDate(s.Today())
}

// TasksGroupedByDate buckets every task by due date, ascending. The returned
// date slice gives bucket order; within a bucket, tasks keep the sort order.
func (s *Store) TasksGroupedByDate() ([]string, map[string][]TaskRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []TaskRef
	for i := range s.projects {
		p := &s.projects[i]
		for _, t := range p.Tasks {
			all = append(all, TaskRef{
				Task:         copyTask(t),
				ProjectID:    p.ID,
				ProjectName:  p.Name,
				ProjectColor: p.Color,
			})
		}
	}

	// Due dates are YYYY-MM-DD, so lexicographic order is calendar order.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DueDate < all[j].DueDate
	})

	var dates []string
	buckets := make(map[string][]TaskRef)
	for _, ref := range all {
		if _, ok := buckets[ref.DueDate]; !ok {
			dates = append(dates, ref.DueDate)
		}
		buckets[ref.DueDate] = append(buckets[ref.DueDate], ref)
	}
	return dates, buckets
}

// CompletedTasks returns all completed tasks, newest due date first.
func (s *Store) CompletedTasks() []TaskRef {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []TaskRef
	for i := range s.projects {
		p := &s.projects[i]
		for _, t := range p.Tasks {
			if t.Completed {
				out = append(out, TaskRef{
					Task:         copyTask(t),
					ProjectID:    p.ID,
					ProjectName:  p.Name,
					ProjectColor: p.Color,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate > out[j].DueDate
	})
	return out
}

// TodayWorkload sums estimated and completed minutes over tasks that are due
// today or routine and not yet completed.
func (s *Store) TodayWorkload() Workload {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format(DateFormat)
	var w Workload
	for i := range s.projects {
		for _, t := range s.projects[i].Tasks {
			if t.Completed {
				continue
			}
			if t.DueDate == today || t.IsRoutine {
				w.TotalEstimated += t.EstimatedTime
				w.TotalCompleted += t.CompletedTime
			}
		}
	}
	w.Remaining = w.TotalEstimated - w.TotalCompleted
	if w.Remaining < 0 {
		w.Remaining = 0
	}
	return w
}

// TaskStreak reports how many consecutive days, ending with the task's own
// due date, a completed task with the same title existed in the same
// project. It is defined only for routine tasks that are completed; for
// anything else it returns 0.
//
// Matching is deliberately by (project, title) rather than task id: routine
// tasks are re-dated in place across days, so the id is not a stable key for
// "the same routine slot". Two differently scheduled tasks sharing a title
// within one project will therefore share a streak.
func (s *Store) TaskStreak(projectID string, task Task) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !task.IsRoutine || !task.Completed {
		return 0
	}
	idx := s.findProject(projectID)
	if idx < 0 {
		return 0
	}
	p := &s.projects[idx]

	anchor, err := time.ParseInLocation(DateFormat, task.DueDate, time.Local)
	if err != nil {
		return 0
	}

	streak := 1
	for day := anchor.AddDate(0, 0, -1); ; day = day.AddDate(0, 0, -1) {
		if !completedOnDate(p, task.Title, day.Format(DateFormat)) {
			break
		}
		streak++
	}
	return streak
}

func completedOnDate(p *Project, title, date string) bool {
	for _, t := range p.Tasks {
		if t.Completed && t.Title == title && t.DueDate == date {
			return true
		}
	}
	return false
}

// FocusStreak counts consecutive days ending today with nonzero logged focus
// time in the stats log.
func (s *Store) FocusStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate := make(map[string]float64, len(s.stats))
	for _, d := range s.stats {
		byDate[d.Date] = d.Hours
	}

	streak := 0
	day := s.now()
	for {
		key := day.Format(DateFormat)
		if byDate[key] <= 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// RecentStats returns the last n days of the stats log, oldest first, with
// zero-hour entries filled in for days without logged time.
func (s *Store) RecentStats(n int) []DayStat {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate := make(map[string]float64, len(s.stats))
	for _, d := range s.stats {
		byDate[d.Date] = d.Hours
	}

	out := make([]DayStat, 0, n)
	now := s.now()
	for i := n - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(DateFormat)
		out = append(out, DayStat{Date: date, Hours: byDate[date]})
	}
	return out
}

// GoalSummary aggregates daily goals and time spent across all projects.
type GoalSummary struct {
	GoalHours      float64
	SpentHours     float64
	RemainingHours float64 // max(0, GoalHours-SpentHours)
}

// DailyGoalSummary totals DailyGoalHours and DailyTimeSpent over all
// projects, for the stats view.
func (s *Store) DailyGoalSummary() GoalSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var g GoalSummary
	for i := range s.projects {
		g.GoalHours += s.projects[i].DailyGoalHours
		g.SpentHours += s.projects[i].DailyTimeSpent
	}
	g.RemainingHours = g.GoalHours - g.SpentHours
	if g.RemainingHours < 0 {
		g.RemainingHours = 0
	}
	return g
}
