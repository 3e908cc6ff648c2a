package store

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

// FuzzOpenRecovery feeds arbitrary bytes as the on-disk projects file and
// checks that Open never panics and always returns a usable store, whether
// the input parses, is empty, or is garbage routed through recovery.
func FuzzOpenRecovery(f *testing.F) {
	// Seed corpus with interesting cases
	f.Add([]byte(""))
	f.Add([]byte("   \n\t"))
	f.Add([]byte("{"))
	f.Add([]byte("null"))
	f.Add([]byte("[]"))
	f.Add([]byte(`{"projects": null}`))
	f.Add([]byte(`{"projects": []}`))
	f.Add([]byte(`{"projects": [{"id": "p1", "name": "Deep Work", "tasks": []}]}`))
	f.Add([]byte(`{"projects": [{"id": 42}]}`))
	f.Add([]byte("\x00\x01\x02"))
	f.Add([]byte(`{"projects": [{"id": "standalone", "name": "Standalone Tasks", "tasks": [{"id": "t1", "title": "x", "for_today": true}]}]}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, projectsFilename), data, dataFilePerm); err != nil {
			t.Fatal(err)
		}

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Open panicked with data=%q: %v", data, r)
			}
		}()

		s, err := Open(dir)
		if s == nil {
			t.Fatalf("Open returned nil store (err = %v)", err)
		}

		// Whatever was on disk, the store must accept mutations.
		task, aerr := s.AddTask("", TaskDraft{Title: "recovered", EstimatedTime: 25})
		if aerr != nil {
			t.Fatalf("AddTask after open: %v", aerr)
		}
		if task.ID == "" {
			t.Error("task.ID should not be empty")
		}

		// The rewritten files must load cleanly on the next open.
		reopened, rerr := Open(dir)
		if rerr != nil {
			t.Errorf("reopen after recovery: %v", rerr)
		}
		sp, ok := reopened.StandaloneProject()
		if !ok {
			t.Fatal("standalone project lost across reopen")
		}
		found := false
		for _, rt := range sp.Tasks {
			if rt.ID == task.ID {
				found = true
			}
		}
		if !found {
			t.Error("task added after recovery not persisted")
		}
	})
}

// FuzzAddTask tests AddTask with random text inputs to ensure no panics
// and faithful persistence of whatever the caller supplied. The store does
// not validate or trim; that is the UI's job.
func FuzzAddTask(f *testing.F) {
	// Seed corpus
	f.Add("", "")
	f.Add("Call the dentist", "")
	f.Add("Task with notes", "remember the referral number")
	f.Add("Task\nwith\nnewlines", "line one\nline two")
	f.Add("Unicode: 数学の宿題 🍅", "")
	f.Add("   whitespace   ", "  spaces  ")
	f.Add("\x00\x01\x02", "")
	f.Add("Task with 'quotes' and \"double quotes\"", "")

	f.Fuzz(func(t *testing.T, title string, notes string) {
		s := createTestStore(t)

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("AddTask panicked with title=%q notes=%q: %v", title, notes, r)
			}
		}()

		task, err := s.AddTask("", TaskDraft{Title: title, Notes: notes})
		if err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
		if task.ID == "" {
			t.Error("task.ID should not be empty")
		}
		if task.Completed {
			t.Error("new task should not be completed")
		}
		if task.Title != title {
			t.Errorf("task.Title = %q, want %q (stored verbatim)", task.Title, title)
		}

		// JSON replaces invalid UTF-8 on encode, so only valid strings are
		// expected to round-trip byte for byte.
		if !utf8.ValidString(title) || !utf8.ValidString(notes) {
			return
		}

		reopened, err := Open(s.DataDir())
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		sp, ok := reopened.StandaloneProject()
		if !ok || len(sp.Tasks) != 1 {
			t.Fatalf("expected 1 standalone task after reopen")
		}
		if sp.Tasks[0].Title != title || sp.Tasks[0].Notes != notes {
			t.Errorf("round-trip mismatch: got (%q, %q), want (%q, %q)",
				sp.Tasks[0].Title, sp.Tasks[0].Notes, title, notes)
		}
	})
}
