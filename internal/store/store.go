// Package store is the single source of truth for projects, tasks, routines,
// and the daily stats log. Every mutation computes the new state under one
// lock and persists it before returning (write-after-apply), so readers only
// ever see complete snapshots. Update and delete operations referencing a
// missing project or task are silent no-ops; callers are expected to validate
// input (non-empty titles, positive durations) before calling.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pomo/internal/fsutil"

	"github.com/google/uuid"
)

// ErrTimerRunning is returned when an operation is disallowed because a
// focus cycle is in progress.
var ErrTimerRunning = errors.New("a focus cycle is running")

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	projectsFilename = "projects.json"
	routinesFilename = "routines.json"
	statsFilename    = "stats.json"
	stateFilename    = "state.json"
)

// Store owns all application state. Mutations and the rollover check share
// s.mu, so a rollover can never interleave with a concurrent mutation.
type Store struct {
	mu      sync.Mutex
	dataDir string
	now     func() time.Time
	newID   func() string

	projects []Project
	routines []Routine
	stats    []DayStat
	state    stateFile
}

// Open loads (or initializes) all state files in dataDir. When a file is
// corrupt but recoverable, Open still returns a usable Store together with an
// error describing the recovery; callers may log it and carry on.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Store{
		dataDir: dataDir,
		now:     time.Now,
		newID:   uuid.NewString,
	}

	var warn error

	var pf projectFile
	if err := s.loadJSONWithRecovery(projectsFilename, &pf); err != nil && warn == nil {
		warn = err
	}
	s.projects = pf.Projects

	var rf routineFile
	if err := s.loadJSONWithRecovery(routinesFilename, &rf); err != nil && warn == nil {
		warn = err
	}
	s.routines = rf.Routines

	var sf statsFile
	if err := s.loadJSONWithRecovery(statsFilename, &sf); err != nil && warn == nil {
		warn = err
	}
	s.stats = sf.Days

	if err := s.loadJSONWithRecovery(stateFilename, &s.state); err != nil && warn == nil {
		warn = err
	}

	// The timer engine always starts stopped, so a running flag left behind
	// by a quit or crash mid-cycle must not survive into the new session.
	// Without this, SetCurrentTask would reject every pick forever.
	if s.state.TimerRunning {
		s.state.TimerRunning = false
		if err := s.saveState(); err != nil && warn == nil {
			warn = err
		}
	}

	return s, warn
}

// SetNowFunc overrides the store clock. Passing nil resets it to time.Now.
func (s *Store) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the store clock.
func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now()
}

// Today returns today's calendar date according to the store clock.
func (s *Store) Today() string {
	return s.Now().Format(DateFormat)
}

// DataDir returns the path to the data directory.
func (s *Store) DataDir() string {
	return s.dataDir
}

// Projects returns a deep copy of all projects in insertion order.
func (s *Store) Projects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = copyProject(p)
	}
	return out
}

// Routines returns a deep copy of all routines.
func (s *Store) Routines() []Routine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Routine, len(s.routines))
	for i, r := range s.routines {
		out[i] = copyRoutine(r)
	}
	return out
}

// Stats returns a copy of the daily focus-time log.
func (s *Store) Stats() []DayStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DayStat, len(s.stats))
	copy(out, s.stats)
	return out
}

// Project returns a copy of the project with the given id.
func (s *Store) Project(projectID string) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			return copyProject(s.projects[i]), true
		}
	}
	return Project{}, false
}

// StandaloneProject returns the reserved standalone project, if it has been
// created yet.
func (s *Store) StandaloneProject() (Project, bool) {
	return s.Project(StandaloneProjectID)
}

// CurrentTask returns the task currently targeted by the timer, along with
// its owning project id.
func (s *Store) CurrentTask() (Task, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		for j := range s.projects[i].Tasks {
			if s.projects[i].Tasks[j].IsCurrent {
				return copyTask(s.projects[i].Tasks[j]), s.projects[i].ID, true
			}
		}
	}
	return Task{}, "", false
}

// TimerRunning reports whether a focus cycle is in progress. The flag is
// persisted so concurrent views agree on it within a session; Open resets
// it, since the engine always starts stopped.
func (s *Store) TimerRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TimerRunning
}

// SetTimerRunning records whether a focus cycle is in progress.
func (s *Store) SetTimerRunning(running bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.TimerRunning == running {
		return nil
	}
	s.state.TimerRunning = running
	return s.saveState()
}

// =============================================================================
// Persistence
// =============================================================================

func (s *Store) path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

func (s *Store) saveProjects() error {
	return s.writeJSONAtomic(projectsFilename, projectFile{Projects: s.projects})
}

func (s *Store) saveRoutines() error {
	return s.writeJSONAtomic(routinesFilename, routineFile{Routines: s.routines})
}

func (s *Store) saveStats() error {
	return s.writeJSONAtomic(statsFilename, statsFile{Days: s.stats})
}

func (s *Store) saveState() error {
	return s.writeJSONAtomic(stateFilename, s.state)
}

func (s *Store) writeJSONAtomic(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filename, err)
	}

	path := s.path(filename)

	// Keep a best-effort backup before overwriting.
	fsutil.BestEffortBackup(path, dataFilePerm)

	if err := fsutil.WriteFileAtomic(path, data, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func (s *Store) loadJSONWithRecovery(filename string, v any) error {
	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.writeJSONAtomic(filename, v)
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recoverCorruptJSON(filename, v, fmt.Errorf("%s is empty", filename))
	}

	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}
	return s.recoverCorruptJSON(filename, v, fmt.Errorf("parse %s: %w", filename, err))
}

func (s *Store) recoverCorruptJSON(filename string, v any, cause error) error {
	path := s.path(filename)

	// Try the backup first.
	bakData, bakErr := os.ReadFile(path + ".bak")
	if bakErr == nil && len(bytes.TrimSpace(bakData)) > 0 {
		if err := json.Unmarshal(bakData, v); err == nil {
			corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
			_ = os.Rename(path, corruptPath)
			_ = s.writeJSONAtomic(filename, v)
			return fmt.Errorf("%s (recovered from %s.bak)", cause.Error(), filename)
		}
	}

	// No usable backup: preserve the broken file (best effort) and reset.
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
	_ = os.Rename(path, corruptPath)
	_ = s.writeJSONAtomic(filename, v)
	return fmt.Errorf("%s (reset to defaults; original moved to %s)", cause.Error(), corruptPath)
}
