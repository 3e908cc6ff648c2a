package ui

import (
	"strings"
	"testing"
	"time"

	"pomo/internal/config"
	"pomo/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
// The ASCII profile disables all color codes in output.
func setupTest(t *testing.T) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
}

// testNow is the pinned clock for UI tests: a Tuesday morning.
var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

// createTestStore creates a Store backed by a temporary directory with the
// clock pinned to testNow.
func createTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	st.SetNowFunc(func() time.Time { return testNow })
	return st
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// addTestTask adds a standalone task due today and returns it as a TaskRef.
func addTestTask(t *testing.T, st *store.Store, title string) store.TaskRef {
	t.Helper()
	task, err := st.AddTask("", store.TaskDraft{
		Title:         title,
		EstimatedTime: 25,
		DueDate:       st.Today(),
		ForToday:      true,
	})
	if err != nil {
		t.Fatalf("failed to add task %q: %v", title, err)
	}
	for _, ref := range st.TodayTasks() {
		if ref.ID == task.ID {
			return ref
		}
	}
	t.Fatalf("task %q not visible in today view", title)
	return store.TaskRef{}
}

// assertContains fails the test when output doesn't contain want.
func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("output missing %q\noutput:\n%s", want, output)
	}
}

// assertNotContains fails the test when output contains unwanted.
func assertNotContains(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Errorf("output unexpectedly contains %q\noutput:\n%s", unwanted, output)
	}
}

// keyPress builds a KeyMsg for a single printable key.
func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
