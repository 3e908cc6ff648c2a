// Package timer implements the pomodoro cycle engine: a focus countdown
// alternating with short breaks, and a long break after every fourth
// completed focus cycle. The engine is a plain state machine driven by
// one-second ticks; it knows nothing about rendering or storage and reports
// completed focus cycles through a callback.
package timer

import "fmt"

// Mode identifies the current cycle type.
type Mode int

const (
	ModeFocus Mode = iota
	ModeShortBreak
	ModeLongBreak
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeFocus:
		return "focus"
	case ModeShortBreak:
		return "short break"
	case ModeLongBreak:
		return "long break"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Settings holds cycle durations in minutes and the long-break cadence.
type Settings struct {
	FocusMinutes       int
	ShortBreakMinutes  int
	LongBreakMinutes   int
	CyclesPerLongBreak int
}

// DefaultSettings returns the classic 25/5/15 pomodoro configuration with a
// long break after every 4th focus cycle.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:       25,
		ShortBreakMinutes:  5,
		LongBreakMinutes:   15,
		CyclesPerLongBreak: 4,
	}
}

// Engine runs the focus/break state machine. It is not safe for concurrent
// use; the Bubble Tea event loop drives it from a single goroutine.
type Engine struct {
	settings        Settings
	mode            Mode
	remaining       int // seconds left in the current cycle
	running         bool
	completedCycles int

	// onFocusComplete fires with the elapsed focus minutes whenever a focus
	// cycle counts down to zero.
	onFocusComplete func(minutes int)
}

// New creates an engine in focus mode, stopped, with a full countdown.
// Non-positive settings fall back to the defaults.
func New(s Settings, onFocusComplete func(minutes int)) *Engine {
	def := DefaultSettings()
	if s.FocusMinutes <= 0 {
		s.FocusMinutes = def.FocusMinutes
	}
	if s.ShortBreakMinutes <= 0 {
		s.ShortBreakMinutes = def.ShortBreakMinutes
	}
	if s.LongBreakMinutes <= 0 {
		s.LongBreakMinutes = def.LongBreakMinutes
	}
	if s.CyclesPerLongBreak <= 0 {
		s.CyclesPerLongBreak = def.CyclesPerLongBreak
	}
	e := &Engine{settings: s, onFocusComplete: onFocusComplete}
	e.remaining = e.cycleSeconds(ModeFocus)
	return e
}

// Mode returns the current cycle type.
func (e *Engine) Mode() Mode { return e.mode }

// Running reports whether the countdown is active.
func (e *Engine) Running() bool { return e.running }

// Remaining returns the seconds left in the current cycle.
func (e *Engine) Remaining() int { return e.remaining }

// CompletedCycles returns the number of focus cycles finished since the
// engine was created.
func (e *Engine) CompletedCycles() int { return e.completedCycles }

// Settings returns the engine's effective settings.
func (e *Engine) Settings() Settings { return e.settings }

// Start begins or resumes the countdown.
func (e *Engine) Start() { e.running = true }

// Pause suspends the countdown without losing progress.
func (e *Engine) Pause() { e.running = false }

// Reset stops the countdown and restores the current cycle's full duration.
func (e *Engine) Reset() {
	e.running = false
	e.remaining = e.cycleSeconds(e.mode)
}

// SetMode switches to the given cycle type, stopped, with a full countdown.
func (e *Engine) SetMode(m Mode) {
	e.mode = m
	e.running = false
	e.remaining = e.cycleSeconds(m)
}

// Tick advances the countdown by one second. When a focus cycle reaches
// zero the completion callback fires with the focus length, the cycle count
// advances, and the engine switches (stopped) into a short break, or a long
// break after every CyclesPerLongBreak-th cycle. A finished break switches
// back into a stopped focus cycle. Tick reports whether a cycle finished on
// this call.
func (e *Engine) Tick() bool {
	if !e.running || e.remaining <= 0 {
		return false
	}
	e.remaining--
	if e.remaining > 0 {
		return false
	}

	finished := e.mode
	if finished == ModeFocus {
		e.completedCycles++
		if e.onFocusComplete != nil {
			e.onFocusComplete(e.settings.FocusMinutes)
		}
		if e.completedCycles%e.settings.CyclesPerLongBreak == 0 {
			e.SetMode(ModeLongBreak)
		} else {
			e.SetMode(ModeShortBreak)
		}
	} else {
		e.SetMode(ModeFocus)
	}
	return true
}

func (e *Engine) cycleSeconds(m Mode) int {
	switch m {
	case ModeShortBreak:
		return e.settings.ShortBreakMinutes * 60
	case ModeLongBreak:
		return e.settings.LongBreakMinutes * 60
	default:
		return e.settings.FocusMinutes * 60
	}
}
