package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	s := testStore(t)
	prev := 0
	for _, title := range []string{"one", "two", "three"} {
		task, err := s.Add(title, "")
		if err != nil {
			t.Fatalf("Add(%q): %v", title, err)
		}
		if task.ID <= prev {
			t.Errorf("id %d not greater than previous %d", task.ID, prev)
		}
		prev = task.ID
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	s := testStore(t)
	for _, title := range []string{"one", "two", "three"} {
		if _, err := s.Add(title, ""); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := s.Delete(2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	task, err := s.Add("four", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.ID != 4 {
		t.Errorf("expected id 4 after deleting id 3, got %d", task.ID)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := Open(path)
	if _, err := s.Add("Buy milk", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add("Call Bob", "urgent"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Toggle(0); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	reloaded := Open(path)
	if !reflect.DeepEqual(reloaded.Tasks(), s.Tasks()) {
		t.Errorf("reloaded tasks differ:\ngot  %+v\nwant %+v", reloaded.Tasks(), s.Tasks())
	}
	task, err := reloaded.Add("next", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.ID != 3 {
		t.Errorf("id counter did not resume above max: got %d, want 3", task.ID)
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	s := testStore(t)
	if _, err := s.Add("one", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Toggle(0); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !s.Tasks()[0].Completed {
		t.Fatal("expected task completed after first toggle")
	}
	if err := s.Toggle(0); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if s.Tasks()[0].Completed {
		t.Error("expected task pending after second toggle")
	}
}

func TestOutOfRangeMutationsAreNoops(t *testing.T) {
	s := testStore(t)
	if _, err := s.Add("one", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	before := append([]Task(nil), s.Tasks()...)

	if err := s.Delete(5); err != nil {
		t.Errorf("Delete out of range: %v", err)
	}
	if err := s.Toggle(-1); err != nil {
		t.Errorf("Toggle out of range: %v", err)
	}
	if err := s.SetTitle(1, "x"); err != nil {
		t.Errorf("SetTitle out of range: %v", err)
	}
	if err := s.SetDescription(1, "x"); err != nil {
		t.Errorf("SetDescription out of range: %v", err)
	}

	if !reflect.DeepEqual(before, s.Tasks()) {
		t.Errorf("tasks changed by out-of-range mutation: %+v", s.Tasks())
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	for _, title := range []string{"one", "two", "three"} {
		if _, err := s.Add(title, ""); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := s.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", s.Len())
	}
	if s.Tasks()[0].Title != "one" || s.Tasks()[1].Title != "three" {
		t.Errorf("unexpected tasks after delete: %+v", s.Tasks())
	}
}

func TestOpenMissingFile(t *testing.T) {
	s := testStore(t)
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d tasks", s.Len())
	}
	task, err := s.Add("first", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("expected first id 1, got %d", task.ID)
	}
}

func TestOpenCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := Open(path)
	if s.Len() != 0 {
		t.Fatalf("expected empty store from corrupt file, got %d tasks", s.Len())
	}
	task, err := s.Add("fresh", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("expected id counter reset to 1, got %d", task.ID)
	}
}

func TestSaveFailureStillMutates(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// blocker is a regular file, so paths below it cannot be written
	s := Open(filepath.Join(blocker, "tasks.json"))
	task, err := s.Add("unsaved", "")
	if err == nil {
		t.Error("expected save error for unwritable path")
	}
	if task.ID != 1 || s.Len() != 1 {
		t.Errorf("mutation should apply despite save failure: %+v", s.Tasks())
	}
}

func TestSaveWritesRecordFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := Open(path)
	if _, err := s.Add("one", "details"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	for _, field := range []string{"id", "title", "description", "completed"} {
		if _, ok := records[0][field]; !ok {
			t.Errorf("missing field %q in %v", field, records[0])
		}
	}
}

func TestMigrateLegacy(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "old", "tasks.json")
	target := filepath.Join(dir, "new-tasks.json")
	if err := os.MkdirAll(filepath.Dir(legacy), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := []byte(`[{"id":1,"title":"old","description":"","completed":false}]`)
	if err := os.WriteFile(legacy, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	moved, err := MigrateLegacy(legacy, target)
	if err != nil {
		t.Fatalf("MigrateLegacy: %v", err)
	}
	if !moved {
		t.Fatal("expected migration to happen")
	}
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("target content differs: %s", got)
	}
	if _, err := os.Stat(legacy); !os.IsNotExist(err) {
		t.Error("legacy file should be removed after migration")
	}
}

func TestMigrateLegacySkipsWhenTargetExists(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "legacy.json")
	target := filepath.Join(dir, "target.json")
	if err := os.WriteFile(legacy, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(target, []byte(`[{"id":7,"title":"keep","description":"","completed":false}]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	moved, err := MigrateLegacy(legacy, target)
	if err != nil {
		t.Fatalf("MigrateLegacy: %v", err)
	}
	if moved {
		t.Error("migration should not overwrite an existing target")
	}
	if _, err := os.Stat(legacy); err != nil {
		t.Error("legacy file should be untouched when target exists")
	}
}

func TestMigrateLegacyNoLegacyFile(t *testing.T) {
	dir := t.TempDir()
	moved, err := MigrateLegacy(filepath.Join(dir, "absent.json"), filepath.Join(dir, "target.json"))
	if err != nil {
		t.Fatalf("MigrateLegacy: %v", err)
	}
	if moved {
		t.Error("nothing to migrate, moved should be false")
	}
}
