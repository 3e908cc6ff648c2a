package store

// DateFormat is the calendar-day format used everywhere in persisted state.
// Comparisons are by calendar day, never by timestamp.
const DateFormat = "2006-01-02"

// StandaloneProjectID is the reserved id of the project that collects tasks
// not assigned to a user-created project. The project is created lazily the
// first time a task is added to it.
const StandaloneProjectID = "standalone"

// StandaloneProjectName is the display name of the standalone project.
const StandaloneProjectName = "Standalone Tasks"

// Subtask is an independent checklist item under a task. It has no effect
// on the parent task's completion or time tracking.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is the atomic unit of work, either one-off or recurring.
type Task struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Completed          bool      `json:"completed"`
	EstimatedTime      int       `json:"estimated_time"` // planned minutes
	CompletedTime      int       `json:"completed_time"` // logged minutes, reset daily; may exceed EstimatedTime
	CompletedPomodoros int       `json:"completed_pomodoros"`
	DueDate            string    `json:"due_date"` // YYYY-MM-DD; streak anchor for routine tasks
	IsRoutine          bool      `json:"is_routine"`
	ForToday           bool      `json:"for_today"`
	IsCurrent          bool      `json:"is_current"` // true for at most one task store-wide
	PlannedTime        string    `json:"planned_time,omitempty"` // HH:MM slot; empty means all-day
	Subtasks           []Subtask `json:"subtasks,omitempty"`
	Notes              string    `json:"notes,omitempty"`
}

// Project groups tasks under a name with an optional daily time goal.
type Project struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Tasks          []Task  `json:"tasks"`
	DailyGoalHours float64 `json:"daily_goal_hours"`
	DailyTimeSpent float64 `json:"daily_time_spent"` // hours logged today, reset daily
	IsRoutine      bool    `json:"is_routine"`
	Color          string  `json:"color,omitempty"`
}

// IsStandalone reports whether p is the reserved standalone project.
func (p *Project) IsStandalone() bool {
	return p.ID == StandaloneProjectID
}

// Routine is a lightweight recurring time goal, independent of task-level
// IsRoutine.
type Routine struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TimeGoalHours float64 `json:"time_goal_hours"`
	TimeSpent     float64 `json:"time_spent"` // hours, reset daily
	DaysOfWeek    []int   `json:"days_of_week"` // 0=Sunday
}

// DayStat records focus hours logged on one day. The stats log holds one
// entry per day with nonzero logged time.
type DayStat struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Hours float64 `json:"hours"`
}

// projectFile is the on-disk shape of projects.json.
type projectFile struct {
	Projects []Project `json:"projects"`
}

// routineFile is the on-disk shape of routines.json.
type routineFile struct {
	Routines []Routine `json:"routines"`
}

// statsFile is the on-disk shape of stats.json.
type statsFile struct {
	Days []DayStat `json:"days"`
}

// stateFile is the on-disk shape of state.json. The current-task pointer is
// derived from Task.IsCurrent flags and deliberately not stored here.
type stateFile struct {
	LastResetDate string `json:"last_reset_date"`
	TimerRunning  bool   `json:"timer_running"`
}

// TaskDraft carries caller-supplied fields for a new task. The store assigns
// the id. Callers validate input (non-empty title, positive estimate) before
// calling; the store does not re-validate.
type TaskDraft struct {
	Title         string
	EstimatedTime int
	CompletedTime int
	DueDate       string
	IsRoutine     bool
	ForToday      bool
	PlannedTime   string
	Subtasks      []Subtask
	Notes         string
}

// TaskUpdate is a partial update for a task. Nil fields are left untouched;
// set fields win. The task id can never change.
type TaskUpdate struct {
	Title              *string
	Completed          *bool
	EstimatedTime      *int
	CompletedTime      *int
	CompletedPomodoros *int
	DueDate            *string
	IsRoutine          *bool
	ForToday           *bool
	PlannedTime        *string
	Subtasks           *[]Subtask
	Notes              *string
}

func (u TaskUpdate) apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	if u.EstimatedTime != nil {
		t.EstimatedTime = *u.EstimatedTime
	}
	if u.CompletedTime != nil {
		t.CompletedTime = *u.CompletedTime
	}
	if u.CompletedPomodoros != nil {
		t.CompletedPomodoros = *u.CompletedPomodoros
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.IsRoutine != nil {
		t.IsRoutine = *u.IsRoutine
	}
	if u.ForToday != nil {
		t.ForToday = *u.ForToday
	}
	if u.PlannedTime != nil {
		t.PlannedTime = *u.PlannedTime
	}
	if u.Subtasks != nil {
		t.Subtasks = *u.Subtasks
	}
	if u.Notes != nil {
		t.Notes = *u.Notes
	}
}

// ProjectUpdate is a partial update for a project. Nil fields are left
// untouched.
type ProjectUpdate struct {
	Name           *string
	DailyGoalHours *float64
	IsRoutine      *bool
	Color          *string
}

func (u ProjectUpdate) apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.DailyGoalHours != nil {
		p.DailyGoalHours = *u.DailyGoalHours
	}
	if u.IsRoutine != nil {
		p.IsRoutine = *u.IsRoutine
	}
	if u.Color != nil {
		p.Color = *u.Color
	}
}

// RoutineUpdate is a partial update for a routine. Nil fields are left
// untouched.
type RoutineUpdate struct {
	Name          *string
	TimeGoalHours *float64
	DaysOfWeek    *[]int
}

func (u RoutineUpdate) apply(r *Routine) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.TimeGoalHours != nil {
		r.TimeGoalHours = *u.TimeGoalHours
	}
	if u.DaysOfWeek != nil {
		r.DaysOfWeek = *u.DaysOfWeek
	}
}

func copyTask(t Task) Task {
	out := t
	if t.Subtasks != nil {
		out.Subtasks = make([]Subtask, len(t.Subtasks))
		copy(out.Subtasks, t.Subtasks)
	}
	return out
}

func copyProject(p Project) Project {
	out := p
	out.Tasks = make([]Task, len(p.Tasks))
	for i, t := range p.Tasks {
		out.Tasks[i] = copyTask(t)
	}
	return out
}

func copyRoutine(r Routine) Routine {
	out := r
	if r.DaysOfWeek != nil {
		out.DaysOfWeek = make([]int, len(r.DaysOfWeek))
		copy(out.DaysOfWeek, r.DaysOfWeek)
	}
	return out
}
