// Package testutil provides testing utilities.
package testutil

import (
	"todo/internal/store"
	"todo/internal/task"
)

// FakeBackend is an in-memory implementation of store.Backend for testing.
// The zero value loads an empty store.
type FakeBackend struct {
	// Tasks seeds the store returned by Load.
	Tasks []task.Task

	// Error injection for testing
	LoadErr error
	SaveErr error

	// Saved records the task sequence of every successful Save, in order.
	Saved [][]task.Task
}

var _ store.Backend = (*FakeBackend)(nil)

// Load implements store.Backend.
func (f *FakeBackend) Load() (*task.Store, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	return task.Restore(f.Tasks)
}

// Save implements store.Backend.
func (f *FakeBackend) Save(st *task.Store) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saved = append(f.Saved, st.Tasks())
	return nil
}

// Path implements store.Backend.
func (f *FakeBackend) Path() string {
	return "fake"
}

// LastSaved returns the task sequence of the most recent Save, or nil if
// nothing was saved.
func (f *FakeBackend) LastSaved() []task.Task {
	if len(f.Saved) == 0 {
		return nil
	}
	return f.Saved[len(f.Saved)-1]
}
