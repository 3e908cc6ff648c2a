package store

// CheckRollover resets daily state when the calendar day has changed since
// the last recorded reset. On a new day every task is reopened
// (Completed=false, CompletedTime=0) and its ForToday flag is recomputed
// from the owning project's routine-ness; every project's and routine's
// daily time resets to zero. Re-running on the same day is a no-op, so the
// check is safe to call at startup and from a ticker.
func (s *Store) CheckRollover() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format(DateFormat)
	if s.state.LastResetDate == today {
		return false, nil
	}

	for i := range s.projects {
		p := &s.projects[i]
		p.DailyTimeSpent = 0
		for j := range p.Tasks {
			t := &p.Tasks[j]
			t.Completed = false
			t.CompletedTime = 0
			t.ForToday = p.IsRoutine
		}
	}
	for i := range s.routines {
		s.routines[i].TimeSpent = 0
	}

	if err := s.saveProjects(); err != nil {
		return false, err
	}
	if err := s.saveRoutines(); err != nil {
		return false, err
	}

	s.state.LastResetDate = today
	if err := s.saveState(); err != nil {
		return false, err
	}
	return true, nil
}
