// Package store keeps the authoritative task list in memory and mirrors
// every mutation to a JSON file on disk.
package store

import (
	"encoding/json"
	"os"
)

type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type Store struct {
	path   string
	tasks  []Task
	nextID int
}

// Open loads the task file at path. A missing or unreadable file, or one
// that fails to parse, starts the store with an empty list rather than
// failing: the file will be rewritten on the next mutation.
func Open(path string) *Store {
	s := &Store{path: path, nextID: 1}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return s
	}
	s.tasks = tasks
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

func (s *Store) Path() string { return s.path }

// Exists reports whether the backing file is already on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *Store) Tasks() []Task { return s.tasks }

func (s *Store) Len() int { return len(s.tasks) }

// Task returns the task at index. The second result is false when the
// index is out of range.
func (s *Store) Task(index int) (Task, bool) {
	if index < 0 || index >= len(s.tasks) {
		return Task{}, false
	}
	return s.tasks[index], true
}

// Add appends a task with the next free id. The task is always added;
// the returned error only reports whether writing the file failed.
func (s *Store) Add(title, description string) (Task, error) {
	t := Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
	}
	s.tasks = append(s.tasks, t)
	s.nextID++
	return t, s.save()
}

// Delete removes the task at index. Out-of-range indexes are a no-op.
// Callers holding a selection must re-clamp it afterwards.
func (s *Store) Delete(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return nil
	}
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return s.save()
}

// Toggle flips the completed flag of the task at index.
func (s *Store) Toggle(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return nil
	}
	s.tasks[index].Completed = !s.tasks[index].Completed
	return s.save()
}

// SetTitle replaces the title of the task at index.
func (s *Store) SetTitle(index int, title string) error {
	if index < 0 || index >= len(s.tasks) {
		return nil
	}
	s.tasks[index].Title = title
	return s.save()
}

// SetDescription replaces the description of the task at index.
func (s *Store) SetDescription(index int, description string) error {
	if index < 0 || index >= len(s.tasks) {
		return nil
	}
	s.tasks[index].Description = description
	return s.save()
}

// save rewrites the whole task list. The list is small and mutations are
// human-paced, so a full rewrite per mutation is fine.
func (s *Store) save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
