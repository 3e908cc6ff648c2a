package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DataDir == "" {
		t.Error("DataDir is empty")
	}
	if cfg.Timer.FocusMinutes != 25 {
		t.Errorf("Timer.FocusMinutes = %d, want 25", cfg.Timer.FocusMinutes)
	}
	if cfg.Timer.ShortBreakMinutes != 5 {
		t.Errorf("Timer.ShortBreakMinutes = %d, want 5", cfg.Timer.ShortBreakMinutes)
	}
	if cfg.Timer.LongBreakMinutes != 15 {
		t.Errorf("Timer.LongBreakMinutes = %d, want 15", cfg.Timer.LongBreakMinutes)
	}
	if cfg.Timer.CyclesPerLongBreak != 4 {
		t.Errorf("Timer.CyclesPerLongBreak = %d, want 4", cfg.Timer.CyclesPerLongBreak)
	}
	if !cfg.UX.ConfirmDeletions {
		t.Error("UX.ConfirmDeletions = false, want true")
	}
	if cfg.UX.NarrowLayoutThreshold != 80 {
		t.Errorf("UX.NarrowLayoutThreshold = %d, want 80", cfg.UX.NarrowLayoutThreshold)
	}
	if cfg.Notifications.Enabled {
		t.Error("Notifications.Enabled = true, want false by default")
	}
}

func TestLoadFromBytes_MergesOntoDefaults(t *testing.T) {
	data := []byte(`
data_dir: /tmp/pomo-test
timer:
  focus_minutes: 50
theme:
  primary: "#123456"
keys:
  quit: "Q"
`)
	cfg, err := loadFromBytes(Default(), data)
	if err != nil {
		t.Fatalf("loadFromBytes() error = %v", err)
	}

	if cfg.DataDir != "/tmp/pomo-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Timer.FocusMinutes != 50 {
		t.Errorf("Timer.FocusMinutes = %d, want 50", cfg.Timer.FocusMinutes)
	}
	// Unset fields keep their defaults.
	if cfg.Timer.ShortBreakMinutes != 5 {
		t.Errorf("Timer.ShortBreakMinutes = %d, want default 5", cfg.Timer.ShortBreakMinutes)
	}
	if cfg.Theme.Primary != "#123456" {
		t.Errorf("Theme.Primary = %q", cfg.Theme.Primary)
	}
	if cfg.Theme.Accent != "#10B981" {
		t.Errorf("Theme.Accent = %q, want default", cfg.Theme.Accent)
	}
	if cfg.Keys.Quit != "Q" {
		t.Errorf("Keys.Quit = %q", cfg.Keys.Quit)
	}
	if !cfg.UX.ConfirmDeletions {
		t.Error("UX.ConfirmDeletions flipped without being present in YAML")
	}
}

func TestLoadFromBytes_PresenceAwareBooleans(t *testing.T) {
	data := []byte(`
ux:
  confirm_deletions: false
notifications:
  enabled: true
`)
	cfg, err := loadFromBytes(Default(), data)
	if err != nil {
		t.Fatalf("loadFromBytes() error = %v", err)
	}

	if cfg.UX.ConfirmDeletions {
		t.Error("UX.ConfirmDeletions = true, want false (explicitly set)")
	}
	if !cfg.Notifications.Enabled {
		t.Error("Notifications.Enabled = false, want true (explicitly set)")
	}
	// Sound was absent: keep default.
	if cfg.Notifications.Sound {
		t.Error("Notifications.Sound = true, want default false")
	}
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	if _, err := loadFromBytes(Default(), []byte("{ not yaml")); err == nil {
		t.Error("loadFromBytes() expected error for invalid YAML")
	}
}

func TestGetDataDir_TildeExpansion(t *testing.T) {
	cfg := &Config{DataDir: "~/pomo-data"}
	got := cfg.GetDataDir()
	if got == "~/pomo-data" {
		t.Skip("home directory unavailable")
	}
	if filepath.Base(got) != "pomo-data" {
		t.Errorf("GetDataDir() = %q, want a path ending in pomo-data", got)
	}
	if filepath.IsAbs(got) == false {
		t.Errorf("GetDataDir() = %q, want absolute", got)
	}
}

func TestGetDataDir_EmptyFallsBack(t *testing.T) {
	cfg := &Config{}
	if cfg.GetDataDir() == "" {
		t.Error("GetDataDir() is empty")
	}
}
