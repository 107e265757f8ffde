// Package store defines the persistence contract for the task store.
package store

import (
	"errors"

	"todo/internal/task"
)

// ErrCorrupt is returned by Load when the storage file exists but cannot
// be understood. Callers must leave the file alone in that case so a user
// can inspect or repair it.
var ErrCorrupt = errors.New("corrupt store file")

// Backend round-trips the full task sequence between memory and durable
// storage. Commands never touch storage directly; they mutate the in-memory
// store and the dispatcher saves it through a Backend afterwards.
type Backend interface {
	// Load reads storage and rebuilds the store. Missing storage is not an
	// error: it yields a fresh, empty store.
	Load() (*task.Store, error)

	// Save writes the store's full task sequence, replacing any previous
	// contents. A failed save must leave the previous contents intact.
	Save(*task.Store) error

	// Path returns the storage location, for messages and logs.
	Path() string
}
