// Package task implements the in-memory to-do store.
//
// The store owns the ordered task sequence and the ID counter. Persistence
// is handled elsewhere; the store only tracks whether it has unsaved
// changes.
package task

import (
	"strings"
)

// Task is a single to-do item.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"task"`
	Completed   bool   `json:"completed"`
}

// Store holds tasks in insertion order and assigns IDs from a counter that
// only moves forward: an ID freed by a delete is not handed out again while
// the store is alive.
//
// The zero value is not usable; construct with New or Restore.
type Store struct {
	tasks  []Task
	nextID int
	dirty  bool
}

// New returns an empty store. The first task added gets ID 1.
func New() *Store {
	return &Store{nextID: 1}
}

// Restore builds a store from previously persisted tasks, preserving their
// order. The ID counter resumes at one past the highest ID seen, so
// surviving tasks never have their IDs reassigned. Tasks with nonpositive
// or duplicate IDs are rejected.
func Restore(tasks []Task) (*Store, error) {
	seen := make(map[int]bool, len(tasks))
	next := 1
	for _, t := range tasks {
		if t.ID < 1 {
			return nil, invalidID(t.ID)
		}
		if seen[t.ID] {
			return nil, duplicateID(t.ID)
		}
		seen[t.ID] = true
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	s := &Store{nextID: next}
	s.tasks = append(s.tasks, tasks...)
	return s, nil
}

// Add creates a task with the next free ID and appends it to the sequence.
// The description is trimmed; an empty result is rejected.
func (s *Store) Add(description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}

	t := Task{ID: s.nextID, Description: description}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.dirty = true
	return t, nil
}

// Tasks returns the tasks in insertion order. The returned slice is a
// copy; callers may not mutate the store through it.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Edit replaces the description of the task with the given ID, leaving its
// position and completion state alone.
func (s *Store) Edit(id int, description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}

	i := s.index(id)
	if i < 0 {
		return Task{}, notFound(id)
	}
	s.tasks[i].Description = description
	s.dirty = true
	return s.tasks[i], nil
}

// Complete marks the task with the given ID as completed. Completing a
// task that is already completed succeeds.
func (s *Store) Complete(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, notFound(id)
	}
	s.tasks[i].Completed = true
	s.dirty = true
	return s.tasks[i], nil
}

// Delete removes the task with the given ID and returns it. The remaining
// tasks keep their IDs and relative order.
func (s *Store) Delete(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, notFound(id)
	}
	t := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.dirty = true
	return t, nil
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Dirty reports whether the store has changes that have not been saved.
func (s *Store) Dirty() bool {
	return s.dirty
}

// index returns the position of the task with the given ID, or -1.
func (s *Store) index(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
