// Package reports provides daily and weekly report generation for the pomo
// app. Reports aggregate data from projects, tasks, routines, and the focus
// time log.
package reports

import (
	"time"
)

// DailyReport contains aggregated data for a single day.
type DailyReport struct {
	Date        time.Time      `json:"date"`
	Tasks       TaskSummary    `json:"tasks"`
	Focus       FocusSummary   `json:"focus"`
	Routines    RoutineSummary `json:"routines"`
	Goals       []GoalProgress `json:"goals"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// WeeklyReport contains aggregated data for a week.
type WeeklyReport struct {
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Tasks       WeeklyTasks `json:"tasks"`
	Focus       WeeklyFocus `json:"focus"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// TaskSummary contains task statistics for a single day.
type TaskSummary struct {
	Completed      []TaskLine     `json:"completed"`
	Pending        []TaskLine     `json:"pending"`
	CompletedCount int            `json:"completed_count"`
	PendingCount   int            `json:"pending_count"`
	ByProject      []ProjectCount `json:"by_project"`
}

// TaskLine is a single task entry in a report.
type TaskLine struct {
	Title     string `json:"title"`
	Project   string `json:"project"`
	Completed bool   `json:"completed"`
	Minutes   int    `json:"minutes"`
	Pomodoros int    `json:"pomodoros"`
	Streak    int    `json:"streak,omitempty"`
}

// ProjectCount represents a count grouped by project.
type ProjectCount struct {
	Project string `json:"project"`
	Count   int    `json:"count"`
}

// FocusSummary contains focus time statistics for a single day.
type FocusSummary struct {
	Hours     float64 `json:"hours"`
	GoalHours float64 `json:"goal_hours"`
	Progress  float64 `json:"progress"` // 0..1, capped at 1
	Streak    int     `json:"streak"`
}

// RoutineSummary contains routine goal statistics for a single day.
type RoutineSummary struct {
	Routines       []RoutineStatus `json:"routines"`
	CompletedCount int             `json:"completed_count"`
	TotalCount     int             `json:"total_count"`
	CompletionRate float64         `json:"completion_rate"`
}

// RoutineStatus represents a routine and its progress against its time goal.
type RoutineStatus struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Spent     float64 `json:"spent_hours"`
	GoalHours float64 `json:"goal_hours"`
	Done      bool    `json:"done"`
}

// GoalProgress represents a project's daily time goal and what has been
// logged against it.
type GoalProgress struct {
	Project    string  `json:"project"`
	SpentHours float64 `json:"spent_hours"`
	GoalHours  float64 `json:"goal_hours"`
	Percentage float64 `json:"percentage"`
}

// WeeklyTasks contains task statistics for a week.
type WeeklyTasks struct {
	TotalCompleted int            `json:"total_completed"`
	TotalPending   int            `json:"total_pending"`
	ByProject      []ProjectCount `json:"by_project"`
	ByDay          []DayTaskCount `json:"by_day"`
}

// DayTaskCount represents task counts for a specific day.
type DayTaskCount struct {
	Date      string `json:"date"`
	DayOfWeek string `json:"day_of_week"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

// WeeklyFocus contains focus time statistics for a week.
type WeeklyFocus struct {
	TotalHours   float64    `json:"total_hours"`
	DailyAverage float64    `json:"daily_average"`
	BestDay      string     `json:"best_day,omitempty"`
	ByDay        []DayFocus `json:"by_day"`
}

// DayFocus represents focus hours logged on a specific day.
type DayFocus struct {
	Date      string  `json:"date"`
	DayOfWeek string  `json:"day_of_week"`
	Hours     float64 `json:"hours"`
}
