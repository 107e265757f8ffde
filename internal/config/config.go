// Package config resolves the storage location for an invocation.
package config

import (
	"fmt"
	"os"
)

// Storage backend names.
const (
	// BackendJSON stores tasks as a pretty-printed JSON array.
	BackendJSON = "json"

	// BackendSQLite stores tasks in a SQLite database file.
	BackendSQLite = "sqlite"
)

const (
	// DefaultFile is the storage filename for the JSON backend.
	DefaultFile = "todos.json"

	// DefaultSQLiteFile is the storage filename for the SQLite backend.
	DefaultSQLiteFile = "todos.db"

	// EnvFile overrides the storage file path.
	EnvFile = "TODO_FILE"

	// EnvBackend overrides the storage backend.
	EnvBackend = "TODO_BACKEND"
)

// Config holds the resolved storage location and settings.
type Config struct {
	// File is the storage file path.
	File string

	// Backend selects the storage format, BackendJSON or BackendSQLite.
	Backend string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New resolves the storage file and backend for one invocation. A non-empty
// flag value wins; otherwise the TODO_FILE and TODO_BACKEND environment
// variables apply; otherwise the defaults are todos.json (or todos.db for
// the sqlite backend) in the current directory.
func New(file, backend string) (*Config, error) {
	if backend == "" {
		backend = os.Getenv(EnvBackend)
	}
	switch backend {
	case "":
		backend = BackendJSON
	case BackendJSON, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}

	if file == "" {
		file = os.Getenv(EnvFile)
	}
	if file == "" {
		file = DefaultFile
		if backend == BackendSQLite {
			file = DefaultSQLiteFile
		}
	}

	return &Config{File: file, Backend: backend}, nil
}
