// Package reports provides daily and weekly report generation for the pomo app.
package reports

import (
	"sort"
	"time"

	"pomo/internal/store"
)

// Generator creates reports from store data.
type Generator struct {
	store *store.Store
}

// NewGenerator creates a new report generator.
func NewGenerator(st *store.Store) *Generator {
	return &Generator{store: st}
}

// GenerateDaily generates a report for a specific date.
func (g *Generator) GenerateDaily(date time.Time) (*DailyReport, error) {
	date = startOfDay(date)

	return &DailyReport{
		Date:        date,
		Tasks:       g.taskSummary(date),
		Focus:       g.focusSummary(date),
		Routines:    g.routineSummary(),
		Goals:       g.goalProgress(),
		GeneratedAt: time.Now(),
	}, nil
}

// GenerateWeekly generates a report for the week containing startDate.
func (g *Generator) GenerateWeekly(startDate time.Time) (*WeeklyReport, error) {
	// Align to start of week (Sunday)
	startDate = startOfWeekSunday(startDate)
	endDate := startDate.AddDate(0, 0, 7)

	return &WeeklyReport{
		StartDate:   startDate,
		EndDate:     endDate.Add(-time.Nanosecond), // End of last day
		Tasks:       g.weeklyTasks(startDate),
		Focus:       g.weeklyFocus(startDate),
		GeneratedAt: time.Now(),
	}, nil
}

// taskSummary returns task statistics for a single date.
func (g *Generator) taskSummary(date time.Time) TaskSummary {
	day := date.Format(store.DateFormat)

	var completed, pending []TaskLine
	projectCounts := make(map[string]int)

	for _, ref := range g.store.TasksForDate(day) {
		line := TaskLine{
			Title:     ref.Title,
			Project:   ref.ProjectName,
			Completed: ref.Completed,
			Minutes:   ref.CompletedTime,
			Pomodoros: ref.CompletedPomodoros,
		}
		if ref.Completed {
			if ref.IsRoutine {
				line.Streak = g.store.TaskStreak(ref.ProjectID, ref.Task)
			}
			completed = append(completed, line)
			projectCounts[ref.ProjectName]++
		} else {
			pending = append(pending, line)
		}
	}

	return TaskSummary{
		Completed:      completed,
		Pending:        pending,
		CompletedCount: len(completed),
		PendingCount:   len(pending),
		ByProject:      sortedProjectCounts(projectCounts),
	}
}

// focusSummary returns focus time statistics for a single date.
func (g *Generator) focusSummary(date time.Time) FocusSummary {
	day := date.Format(store.DateFormat)

	var hours float64
	for _, s := range g.store.Stats() {
		if s.Date == day {
			hours = s.Hours
			break
		}
	}

	goals := g.store.DailyGoalSummary()
	summary := FocusSummary{
		Hours:     hours,
		GoalHours: goals.GoalHours,
		Streak:    g.store.FocusStreak(),
	}
	if goals.GoalHours > 0 {
		summary.Progress = hours / goals.GoalHours
		if summary.Progress > 1 {
			summary.Progress = 1
		}
	}
	return summary
}

// routineSummary reports each routine's progress against its time goal.
// Routine time resets daily, so this always reflects the current day.
func (g *Generator) routineSummary() RoutineSummary {
	var summary RoutineSummary
	for _, r := range g.store.Routines() {
		done := r.TimeGoalHours > 0 && r.TimeSpent >= r.TimeGoalHours
		summary.Routines = append(summary.Routines, RoutineStatus{
			ID:        r.ID,
			Name:      r.Name,
			Spent:     r.TimeSpent,
			GoalHours: r.TimeGoalHours,
			Done:      done,
		})
		summary.TotalCount++
		if done {
			summary.CompletedCount++
		}
	}
	if summary.TotalCount > 0 {
		summary.CompletionRate = float64(summary.CompletedCount) / float64(summary.TotalCount)
	}
	return summary
}

// goalProgress reports each project's daily time goal and logged time.
// Projects without a goal are skipped.
func (g *Generator) goalProgress() []GoalProgress {
	var out []GoalProgress
	for _, p := range g.store.Projects() {
		if p.DailyGoalHours <= 0 {
			continue
		}
		out = append(out, GoalProgress{
			Project:    p.Name,
			SpentHours: p.DailyTimeSpent,
			GoalHours:  p.DailyGoalHours,
			Percentage: p.DailyTimeSpent / p.DailyGoalHours * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Project < out[j].Project
	})
	return out
}

// weeklyTasks returns task statistics for the week starting at start.
func (g *Generator) weeklyTasks(start time.Time) WeeklyTasks {
	var weekly WeeklyTasks
	projectCounts := make(map[string]int)

	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		dayStr := day.Format(store.DateFormat)

		count := DayTaskCount{
			Date:      dayStr,
			DayOfWeek: day.Weekday().String(),
		}
		for _, ref := range g.store.TasksForDate(dayStr) {
			if ref.Completed {
				count.Completed++
				projectCounts[ref.ProjectName]++
			} else {
				count.Pending++
			}
		}
		weekly.TotalCompleted += count.Completed
		weekly.TotalPending += count.Pending
		weekly.ByDay = append(weekly.ByDay, count)
	}

	weekly.ByProject = sortedProjectCounts(projectCounts)
	return weekly
}

// weeklyFocus returns focus time statistics for the week starting at start.
func (g *Generator) weeklyFocus(start time.Time) WeeklyFocus {
	byDate := make(map[string]float64)
	for _, s := range g.store.Stats() {
		byDate[s.Date] = s.Hours
	}

	var weekly WeeklyFocus
	var bestHours float64
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		dayStr := day.Format(store.DateFormat)
		hours := byDate[dayStr]

		weekly.ByDay = append(weekly.ByDay, DayFocus{
			Date:      dayStr,
			DayOfWeek: day.Weekday().String(),
			Hours:     hours,
		})
		weekly.TotalHours += hours
		if hours > bestHours {
			bestHours = hours
			weekly.BestDay = dayStr
		}
	}
	weekly.DailyAverage = weekly.TotalHours / 7

	return weekly
}

// sortedProjectCounts converts a project count map to a slice sorted by
// count descending, then name.
func sortedProjectCounts(counts map[string]int) []ProjectCount {
	out := make([]ProjectCount, 0, len(counts))
	for project, count := range counts {
		out = append(out, ProjectCount{Project: project, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Project < out[j].Project
	})
	return out
}

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeekSunday returns the Sunday at or before t, at local midnight.
func startOfWeekSunday(t time.Time) time.Time {
	t = startOfDay(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}
