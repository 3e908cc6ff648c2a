// Package config handles configuration loading and defaults for the pomo app.
// Configuration is loaded from XDG-compliant paths (typically
// ~/.config/pomo/config.yaml).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"pomo/internal/fsutil"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// DataDir overrides the default data directory (~/.pomo)
	DataDir string `yaml:"data_dir,omitempty"`

	// Timer customizes pomodoro cycle durations
	Timer TimerConfig `yaml:"timer,omitempty"`

	// Theme customizes the visual appearance
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Keys customizes keyboard shortcuts
	Keys KeysConfig `yaml:"keys,omitempty"`

	// UX customizes user experience settings
	UX UXConfig `yaml:"ux,omitempty"`

	// Notifications configures desktop notifications
	Notifications NotificationConfig `yaml:"notifications,omitempty"`
}

// TimerConfig defines pomodoro cycle durations in minutes.
type TimerConfig struct {
	// FocusMinutes is the length of a focus cycle
	FocusMinutes int `yaml:"focus_minutes,omitempty"`

	// ShortBreakMinutes is the length of a short break
	ShortBreakMinutes int `yaml:"short_break_minutes,omitempty"`

	// LongBreakMinutes is the length of a long break
	LongBreakMinutes int `yaml:"long_break_minutes,omitempty"`

	// CyclesPerLongBreak is how many focus cycles precede a long break
	CyclesPerLongBreak int `yaml:"cycles_per_long_break,omitempty"`
}

// NotificationConfig defines desktop notification settings.
type NotificationConfig struct {
	// Enabled enables/disables notifications
	Enabled bool `yaml:"enabled,omitempty"`

	// Sound enables notification sounds
	Sound bool `yaml:"sound,omitempty"`
}

// ThemeConfig defines color and style settings.
type ThemeConfig struct {
	// Primary color for focused elements (hex, e.g., "#FF5733")
	Primary string `yaml:"primary,omitempty"`

	// Accent color for highlights (hex)
	Accent string `yaml:"accent,omitempty"`

	// Muted color for secondary text (hex)
	Muted string `yaml:"muted,omitempty"`

	// Background color (hex)
	Background string `yaml:"background,omitempty"`

	// Text color (hex)
	Text string `yaml:"text,omitempty"`
}

// KeysConfig defines customizable keyboard shortcuts.
// Each field accepts a comma-separated list of key bindings.
// Examples: "q,ctrl+c", "tab", "j,down"
type KeysConfig struct {
	// Global keys
	Quit     string `yaml:"quit,omitempty"`      // default: "q,ctrl+c"
	Help     string `yaml:"help,omitempty"`      // default: "?"
	NextPane string `yaml:"next_pane,omitempty"` // default: "tab"
	Pane1    string `yaml:"pane_1,omitempty"`    // default: "1"
	Pane2    string `yaml:"pane_2,omitempty"`    // default: "2"
	Pane3    string `yaml:"pane_3,omitempty"`    // default: "3"
	Pane4    string `yaml:"pane_4,omitempty"`    // default: "4"

	// Navigation keys
	Up     string `yaml:"up,omitempty"`     // default: "k,up"
	Down   string `yaml:"down,omitempty"`   // default: "j,down"
	Top    string `yaml:"top,omitempty"`    // default: "g"
	Bottom string `yaml:"bottom,omitempty"` // default: "G"

	// Task keys
	AddTask    string `yaml:"add_task,omitempty"`    // default: "a"
	ToggleTask string `yaml:"toggle_task,omitempty"` // default: "d,enter"
	DeleteTask string `yaml:"delete_task,omitempty"` // default: "x"
	PickTask   string `yaml:"pick_task,omitempty"`   // default: "p,space"
	ShowAll    string `yaml:"show_all,omitempty"`    // default: "v"

	// Timer keys
	ToggleTimer string `yaml:"toggle_timer,omitempty"` // default: "space,enter"
	ResetTimer  string `yaml:"reset_timer,omitempty"`  // default: "r"
	SwitchMode  string `yaml:"switch_mode,omitempty"`  // default: "m"

	// Calendar keys
	PrevDay string `yaml:"prev_day,omitempty"` // default: "h,left"
	NextDay string `yaml:"next_day,omitempty"` // default: "l,right"

	// Input keys
	Confirm string `yaml:"confirm,omitempty"` // default: "enter"
	Cancel  string `yaml:"cancel,omitempty"`  // default: "esc"
}

// UXConfig defines user experience settings.
type UXConfig struct {
	// ConfirmDeletions shows confirmation dialogs before deleting items
	ConfirmDeletions bool `yaml:"confirm_deletions,omitempty"` // default: true

	// NarrowLayoutThreshold is the terminal width below which to use stacked layout
	NarrowLayoutThreshold int `yaml:"narrow_layout_threshold,omitempty"` // default: 80
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Timer: TimerConfig{
			FocusMinutes:       25,
			ShortBreakMinutes:  5,
			LongBreakMinutes:   15,
			CyclesPerLongBreak: 4,
		},
		Theme: ThemeConfig{
			Primary:    "#EF4444", // Red
			Accent:     "#10B981", // Emerald
			Muted:      "#6B7280", // Gray
			Background: "",        // Terminal default
			Text:       "",        // Terminal default
		},
		Keys: KeysConfig{
			// Defaults are empty strings, which means use built-in defaults
		},
		UX: UXConfig{
			ConfirmDeletions:      true,
			NarrowLayoutThreshold: 80,
		},
		Notifications: NotificationConfig{
			Enabled: false,
			Sound:   false,
		},
	}
}

// defaultDataDir returns the default data directory path.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pomo"
	}
	return filepath.Join(home, ".pomo")
}

// configDir returns the configuration directory path (XDG compliant).
func configDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pomo")
	}

	// Fall back to ~/.config/pomo
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pomo")
}

// configPath returns the path to the config file.
func configPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from disk, merging with defaults.
// If no config file exists, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	path := configPath()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	return loadFromBytes(cfg, data)
}

// loadFromBytes merges user YAML onto cfg. Split out for tests.
func loadFromBytes(cfg *Config, data []byte) (*Config, error) {
	var userCfg Config
	if err := yaml.Unmarshal(data, &userCfg); err != nil {
		return nil, err
	}

	var doc yaml.Node
	_ = yaml.Unmarshal(data, &doc) // best-effort; fall back to conservative merge if this fails

	cfg.mergeFromYAML(&userCfg, &doc)
	return cfg, nil
}

// mergeNonEmpty applies non-empty values from other to c.
// It intentionally does not touch booleans (those require presence-aware
// merging).
func (c *Config) mergeNonEmpty(other *Config) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}

	// Timer merging
	if other.Timer.FocusMinutes > 0 {
		c.Timer.FocusMinutes = other.Timer.FocusMinutes
	}
	if other.Timer.ShortBreakMinutes > 0 {
		c.Timer.ShortBreakMinutes = other.Timer.ShortBreakMinutes
	}
	if other.Timer.LongBreakMinutes > 0 {
		c.Timer.LongBreakMinutes = other.Timer.LongBreakMinutes
	}
	if other.Timer.CyclesPerLongBreak > 0 {
		c.Timer.CyclesPerLongBreak = other.Timer.CyclesPerLongBreak
	}

	// Theme merging
	if other.Theme.Primary != "" {
		c.Theme.Primary = other.Theme.Primary
	}
	if other.Theme.Accent != "" {
		c.Theme.Accent = other.Theme.Accent
	}
	if other.Theme.Muted != "" {
		c.Theme.Muted = other.Theme.Muted
	}
	if other.Theme.Background != "" {
		c.Theme.Background = other.Theme.Background
	}
	if other.Theme.Text != "" {
		c.Theme.Text = other.Theme.Text
	}

	// Keys merging
	if other.Keys.Quit != "" {
		c.Keys.Quit = other.Keys.Quit
	}
	if other.Keys.Help != "" {
		c.Keys.Help = other.Keys.Help
	}
	if other.Keys.NextPane != "" {
		c.Keys.NextPane = other.Keys.NextPane
	}
	if other.Keys.Pane1 != "" {
		c.Keys.Pane1 = other.Keys.Pane1
	}
	if other.Keys.Pane2 != "" {
		c.Keys.Pane2 = other.Keys.Pane2
	}
	if other.Keys.Pane3 != "" {
		c.Keys.Pane3 = other.Keys.Pane3
	}
	if other.Keys.Pane4 != "" {
		c.Keys.Pane4 = other.Keys.Pane4
	}
	if other.Keys.Up != "" {
		c.Keys.Up = other.Keys.Up
	}
	if other.Keys.Down != "" {
		c.Keys.Down = other.Keys.Down
	}
	if other.Keys.Top != "" {
		c.Keys.Top = other.Keys.Top
	}
	if other.Keys.Bottom != "" {
		c.Keys.Bottom = other.Keys.Bottom
	}
	if other.Keys.AddTask != "" {
		c.Keys.AddTask = other.Keys.AddTask
	}
	if other.Keys.ToggleTask != "" {
		c.Keys.ToggleTask = other.Keys.ToggleTask
	}
	if other.Keys.DeleteTask != "" {
		c.Keys.DeleteTask = other.Keys.DeleteTask
	}
	if other.Keys.PickTask != "" {
		c.Keys.PickTask = other.Keys.PickTask
	}
	if other.Keys.ShowAll != "" {
		c.Keys.ShowAll = other.Keys.ShowAll
	}
	if other.Keys.ToggleTimer != "" {
		c.Keys.ToggleTimer = other.Keys.ToggleTimer
	}
	if other.Keys.ResetTimer != "" {
		c.Keys.ResetTimer = other.Keys.ResetTimer
	}
	if other.Keys.SwitchMode != "" {
		c.Keys.SwitchMode = other.Keys.SwitchMode
	}
	if other.Keys.PrevDay != "" {
		c.Keys.PrevDay = other.Keys.PrevDay
	}
	if other.Keys.NextDay != "" {
		c.Keys.NextDay = other.Keys.NextDay
	}
	if other.Keys.Confirm != "" {
		c.Keys.Confirm = other.Keys.Confirm
	}
	if other.Keys.Cancel != "" {
		c.Keys.Cancel = other.Keys.Cancel
	}

	// UX ints (presence-aware booleans handled in mergeFromYAML)
	if other.UX.NarrowLayoutThreshold > 0 {
		c.UX.NarrowLayoutThreshold = other.UX.NarrowLayoutThreshold
	}
}

func (c *Config) mergeFromYAML(other *Config, doc *yaml.Node) {
	// Fall back to conservative behavior if we can't inspect presence.
	if doc == nil || len(doc.Content) == 0 {
		c.mergeNonEmpty(other)
		return
	}

	// First apply all non-empty string/int merges.
	c.mergeNonEmpty(other)

	// Now re-apply booleans only when present in YAML.
	if yamlHasPath(doc, "ux", "confirm_deletions") {
		c.UX.ConfirmDeletions = other.UX.ConfirmDeletions
	}
	if yamlHasPath(doc, "notifications", "enabled") {
		c.Notifications.Enabled = other.Notifications.Enabled
	}
	if yamlHasPath(doc, "notifications", "sound") {
		c.Notifications.Sound = other.Notifications.Sound
	}
}

func yamlHasPath(doc *yaml.Node, path ...string) bool {
	if doc == nil || len(path) == 0 {
		return false
	}

	// Document -> root mapping.
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	for _, key := range path {
		if n == nil || n.Kind != yaml.MappingNode {
			return false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.Value == key {
				next = v
				break
			}
		}
		if next == nil {
			return false
		}
		n = next
	}
	return true
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path := configPath()
	if path == "" {
		return nil
	}

	// Create config directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return fsutil.WriteFileAtomic(path, data, 0600)
}

// GetDataDir returns the resolved data directory path.
func (c *Config) GetDataDir() string {
	if c.DataDir != "" {
		// Expand ~ if present
		if c.DataDir == "~" {
			home, err := os.UserHomeDir()
			if err == nil {
				return home
			}
			return c.DataDir
		}

		if strings.HasPrefix(c.DataDir, "~/") || strings.HasPrefix(c.DataDir, `~\`) {
			home, err := os.UserHomeDir()
			if err == nil {
				trimmed := strings.TrimPrefix(c.DataDir, "~/")
				trimmed = strings.TrimPrefix(trimmed, `~\`)
				trimmed = strings.TrimPrefix(trimmed, `\`)
				return filepath.Join(home, trimmed)
			}
		}
		return c.DataDir
	}
	return defaultDataDir()
}
