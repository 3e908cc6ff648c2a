package timer

import "testing"

// tickN drives the engine n seconds and returns how many cycles finished.
func tickN(e *Engine, n int) int {
	finished := 0
	for i := 0; i < n; i++ {
		if e.Tick() {
			finished++
		}
	}
	return finished
}

func TestNew_Defaults(t *testing.T) {
	e := New(Settings{}, nil)

	if e.Mode() != ModeFocus {
		t.Errorf("Mode() = %v, want focus", e.Mode())
	}
	if e.Running() {
		t.Error("Running() = true, want stopped")
	}
	if e.Remaining() != 25*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 25*60)
	}
	if s := e.Settings(); s != DefaultSettings() {
		t.Errorf("Settings() = %+v, want defaults", s)
	}
}

func TestTick_NoopWhileStopped(t *testing.T) {
	e := New(DefaultSettings(), nil)
	if e.Tick() {
		t.Error("Tick() finished a cycle while stopped")
	}
	if e.Remaining() != 25*60 {
		t.Errorf("Remaining() = %d, countdown moved while stopped", e.Remaining())
	}
}

func TestFocusCycleCompletion(t *testing.T) {
	var reported []int
	e := New(Settings{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 2, CyclesPerLongBreak: 4},
		func(minutes int) { reported = append(reported, minutes) })

	e.Start()
	if finished := tickN(e, 60); finished != 1 {
		t.Fatalf("finished = %d cycles in 60 ticks, want 1", finished)
	}

	if len(reported) != 1 || reported[0] != 1 {
		t.Errorf("reported minutes = %v, want [1]", reported)
	}
	if e.Mode() != ModeShortBreak {
		t.Errorf("Mode() = %v, want short break", e.Mode())
	}
	if e.Running() {
		t.Error("engine still running after cycle completion")
	}
	if e.Remaining() != 60 {
		t.Errorf("Remaining() = %d, want full short break", e.Remaining())
	}
	if e.CompletedCycles() != 1 {
		t.Errorf("CompletedCycles() = %d, want 1", e.CompletedCycles())
	}
}

func TestLongBreakAfterFourthCycle(t *testing.T) {
	e := New(Settings{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 2, CyclesPerLongBreak: 4}, nil)

	for cycle := 1; cycle <= 4; cycle++ {
		e.Start()
		tickN(e, 60) // focus cycle

		wantMode := ModeShortBreak
		if cycle == 4 {
			wantMode = ModeLongBreak
		}
		if e.Mode() != wantMode {
			t.Fatalf("after cycle %d: Mode() = %v, want %v", cycle, e.Mode(), wantMode)
		}

		// Run the break down to get back into focus.
		e.Start()
		tickN(e, e.Remaining())
		if e.Mode() != ModeFocus {
			t.Fatalf("after break %d: Mode() = %v, want focus", cycle, e.Mode())
		}
	}

	if e.CompletedCycles() != 4 {
		t.Errorf("CompletedCycles() = %d, want 4", e.CompletedCycles())
	}
}

func TestBreakCompletionDoesNotReport(t *testing.T) {
	calls := 0
	e := New(Settings{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, CyclesPerLongBreak: 4},
		func(int) { calls++ })

	e.SetMode(ModeShortBreak)
	e.Start()
	tickN(e, 60)

	if calls != 0 {
		t.Errorf("focus callback fired %d times for a break cycle", calls)
	}
	if e.Mode() != ModeFocus {
		t.Errorf("Mode() = %v, want focus after break", e.Mode())
	}
}

func TestPauseAndReset(t *testing.T) {
	e := New(Settings{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, CyclesPerLongBreak: 4}, nil)

	e.Start()
	tickN(e, 10)
	e.Pause()

	if e.Running() {
		t.Error("Running() = true after Pause()")
	}
	if e.Remaining() != 50 {
		t.Errorf("Remaining() = %d, want 50", e.Remaining())
	}

	// Paused ticks are no-ops.
	tickN(e, 5)
	if e.Remaining() != 50 {
		t.Errorf("Remaining() = %d after paused ticks, want 50", e.Remaining())
	}

	e.Reset()
	if e.Remaining() != 60 {
		t.Errorf("Remaining() = %d after Reset(), want 60", e.Remaining())
	}
	if e.Running() {
		t.Error("Running() = true after Reset()")
	}
}

func TestSetMode(t *testing.T) {
	e := New(Settings{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15, CyclesPerLongBreak: 4}, nil)

	e.Start()
	e.SetMode(ModeLongBreak)

	if e.Running() {
		t.Error("SetMode() left the engine running")
	}
	if e.Remaining() != 15*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 15*60)
	}
}
