package store

import (
	"os"
	"path/filepath"
)

const dataFileName = "tasks.json"

// DefaultPath returns the task file location inside the per-user data
// directory, creating the directory if needed. If no home directory is
// available or the directory cannot be created, it falls back to
// tasks.json in the current working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dataFileName
	}
	dir := filepath.Join(home, ".local", "share", "gtasks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return dataFileName
	}
	return filepath.Join(dir, dataFileName)
}

// MigrateLegacy moves a task file from an earlier version's location to
// target. It only acts when target does not exist yet and legacy does.
// It reports whether a migration happened. Removing the legacy file is
// best effort; the copy is what matters.
func MigrateLegacy(legacy, target string) (bool, error) {
	if legacy == target {
		return false, nil
	}
	if _, err := os.Stat(target); err == nil {
		return false, nil
	}
	data, err := os.ReadFile(legacy)
	if err != nil {
		return false, nil
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return false, err
	}
	_ = os.Remove(legacy)
	return true, nil
}
