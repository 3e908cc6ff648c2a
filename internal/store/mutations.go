package store

import "math"

// This file contains the mutation API. Every operation takes the store lock,
// applies the change, and persists before returning. Not-found conditions are
// silent no-ops: the UI has no good way to surface per-field failures, and a
// stale id simply means the view will refresh to match reality.

// AddProject creates an empty project with no daily goal.
func (s *Store) AddProject(name, color string) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Project{
		ID:    s.newID(),
		Name:  name,
		Tasks: []Task{},
		Color: color,
	}
	s.projects = append(s.projects, p)
	if err := s.saveProjects(); err != nil {
		return Project{}, err
	}
	return copyProject(p), nil
}

// AddTask appends a task built from draft to the project with the given id.
// An empty projectID or StandaloneProjectID targets the reserved standalone
// project, which is created lazily on first use. Tasks added to a routine
// project are always eligible for today, regardless of draft.ForToday.
func (s *Store) AddTask(projectID string, draft TaskDraft) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if projectID == "" {
		projectID = StandaloneProjectID
	}

	idx := s.findProject(projectID)
	if idx < 0 {
		if projectID != StandaloneProjectID {
			return Task{}, nil
		}
		s.projects = append(s.projects, Project{
			ID:    StandaloneProjectID,
			Name:  StandaloneProjectName,
			Tasks: []Task{},
		})
		idx = len(s.projects) - 1
	}

	p := &s.projects[idx]
	task := Task{
		ID:            s.newID(),
		Title:         draft.Title,
		EstimatedTime: draft.EstimatedTime,
		CompletedTime: draft.CompletedTime,
		DueDate:       draft.DueDate,
		IsRoutine:     draft.IsRoutine,
		ForToday:      draft.ForToday,
		PlannedTime:   draft.PlannedTime,
		Subtasks:      draft.Subtasks,
		Notes:         draft.Notes,
	}
	if p.IsRoutine || p.IsStandalone() {
		task.ForToday = true
	}
	p.Tasks = append(p.Tasks, task)

	if err := s.saveProjects(); err != nil {
		return Task{}, err
	}
	return copyTask(task), nil
}

// UpdateTask merges the set fields of update into the matching task.
func (s *Store) UpdateTask(projectID, taskID string, update TaskUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProject(projectID)
	if idx < 0 {
		return nil
	}
	p := &s.projects[idx]
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			update.apply(&p.Tasks[i])
			return s.saveProjects()
		}
	}
	return nil
}

// DeleteTask removes the matching task. Idempotent.
func (s *Store) DeleteTask(projectID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProject(projectID)
	if idx < 0 {
		return nil
	}
	p := &s.projects[idx]
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
			return s.saveProjects()
		}
	}
	return nil
}

// UpdateProject merges the set fields of update into the matching project.
func (s *Store) UpdateProject(projectID string, update ProjectUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProject(projectID)
	if idx < 0 {
		return nil
	}
	update.apply(&s.projects[idx])
	return s.saveProjects()
}

// DeleteProject removes the project and all its tasks.
func (s *Store) DeleteProject(projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == projectID {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return s.saveProjects()
		}
	}
	return nil
}

// UpdateProjectTimeSpent adds additionalHours to the project's daily total.
// For non-routine projects the elapsed time is also distributed to every
// incomplete task's CompletedTime (additionalHours*60 minutes each). The
// distribution intentionally covers all incomplete tasks, not just the
// current one, matching the long-standing accounting behavior.
func (s *Store) UpdateProjectTimeSpent(projectID string, additionalHours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProject(projectID)
	if idx < 0 {
		return nil
	}
	p := &s.projects[idx]
	p.DailyTimeSpent += additionalHours
	if !p.IsRoutine {
		minutes := int(math.Round(additionalHours * 60))
		for i := range p.Tasks {
			if !p.Tasks[i].Completed {
				p.Tasks[i].CompletedTime += minutes
			}
		}
	}
	return s.saveProjects()
}

// SetCurrentTask marks the task matching both ids as current and clears the
// flag on every other task, in one pass over the full task set, so at most
// one task is ever current. Passing ("", "") clears the current task.
// Returns ErrTimerRunning while a focus cycle is in progress.
func (s *Store) SetCurrentTask(projectID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.TimerRunning {
		return ErrTimerRunning
	}

	for i := range s.projects {
		p := &s.projects[i]
		for j := range p.Tasks {
			p.Tasks[j].IsCurrent = p.ID == projectID &&
				p.Tasks[j].ID == taskID &&
				projectID != "" && taskID != ""
		}
	}
	return s.saveProjects()
}

// ClearCurrentTask clears the current-task flag everywhere.
func (s *Store) ClearCurrentTask() error {
	return s.SetCurrentTask("", "")
}

// =============================================================================
// Routines
// =============================================================================

// AddRoutine creates a recurring time goal for the given days of week
// (0=Sunday).
func (s *Store) AddRoutine(name string, timeGoalHours float64, daysOfWeek []int) (Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Routine{
		ID:            s.newID(),
		Name:          name,
		TimeGoalHours: timeGoalHours,
		DaysOfWeek:    daysOfWeek,
	}
	s.routines = append(s.routines, r)
	if err := s.saveRoutines(); err != nil {
		return Routine{}, err
	}
	return copyRoutine(r), nil
}

// UpdateRoutine merges the set fields of update into the matching routine.
func (s *Store) UpdateRoutine(routineID string, update RoutineUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.routines {
		if s.routines[i].ID == routineID {
			update.apply(&s.routines[i])
			return s.saveRoutines()
		}
	}
	return nil
}

// DeleteRoutine removes the matching routine. Idempotent.
func (s *Store) DeleteRoutine(routineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.routines {
		if s.routines[i].ID == routineID {
			s.routines = append(s.routines[:i], s.routines[i+1:]...)
			return s.saveRoutines()
		}
	}
	return nil
}

// UpdateRoutineTimeSpent adds additionalHours to the routine's daily total.
func (s *Store) UpdateRoutineTimeSpent(routineID string, additionalHours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.routines {
		if s.routines[i].ID == routineID {
			s.routines[i].TimeSpent += additionalHours
			return s.saveRoutines()
		}
	}
	return nil
}

// =============================================================================
// Stats log
// =============================================================================

// LogFocusTime adds hours to the stats log entry for date, creating the
// entry if the day has no logged time yet.
func (s *Store) LogFocusTime(date string, hours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stats {
		if s.stats[i].Date == date {
			s.stats[i].Hours += hours
			return s.saveStats()
		}
	}
	s.stats = append(s.stats, DayStat{Date: date, Hours: hours})
	return s.saveStats()
}

// ApplyFocusCycle records a completed focus cycle of the given length
// against the current task: the owning project's daily time advances (with
// task-level distribution per UpdateProjectTimeSpent), the current task's
// pomodoro count and completed minutes increase, and the day's focus hours
// are logged. All of it happens under one lock so no reader observes a
// partially applied cycle.
func (s *Store) ApplyFocusCycle(minutes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p *Project
	var t *Task
	for i := range s.projects {
		for j := range s.projects[i].Tasks {
			if s.projects[i].Tasks[j].IsCurrent {
				p = &s.projects[i]
				t = &s.projects[i].Tasks[j]
				break
			}
		}
		if t != nil {
			break
		}
	}
	if t == nil {
		return nil
	}

	hours := float64(minutes) / 60

	p.DailyTimeSpent += hours
	if !p.IsRoutine {
		for j := range p.Tasks {
			if !p.Tasks[j].Completed {
				p.Tasks[j].CompletedTime += minutes
			}
		}
	}

	t.CompletedPomodoros++
	t.CompletedTime += minutes

	if err := s.saveProjects(); err != nil {
		return err
	}

	today := s.now().Format(DateFormat)
	for i := range s.stats {
		if s.stats[i].Date == today {
			s.stats[i].Hours += hours
			return s.saveStats()
		}
	}
	s.stats = append(s.stats, DayStat{Date: today, Hours: hours})
	return s.saveStats()
}

// findProject returns the index of the project with the given id, or -1.
// Callers must hold s.mu.
func (s *Store) findProject(projectID string) int {
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			return i
		}
	}
	return -1
}
