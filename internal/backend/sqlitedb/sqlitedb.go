// Package sqlitedb persists the task store in a local SQLite database
// file. It is selected with --backend sqlite; the JSON file backend stays
// the default.
package sqlitedb

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"todo/internal/store"
	"todo/internal/task"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0
)`

// DB is a store.Backend backed by a SQLite database file.
type DB struct {
	path string
	db   *sql.DB
}

// New opens the database at path, creating it if needed, and ensures the
// tasks table exists.
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapErr(path, "open database", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, wrapErr(path, "open database", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, wrapErr(path, "init database", err)
	}

	return &DB{path: path, db: db}, nil
}

var _ store.Backend = (*DB)(nil)

// Path returns the database file location.
func (s *DB) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *DB) Close() error {
	return s.db.Close()
}

// Load reads all rows and rebuilds the store. Row order follows the ID
// column, which matches insertion order because IDs only grow.
func (s *DB) Load() (*task.Store, error) {
	rows, err := s.db.Query(`SELECT id, description, completed FROM tasks ORDER BY id`)
	if err != nil {
		return nil, wrapErr(s.path, "read database", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var completed int
		if err := rows.Scan(&t.ID, &t.Description, &completed); err != nil {
			return nil, wrapErr(s.path, "read database", err)
		}
		t.Completed = completed == 1
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(s.path, "read database", err)
	}

	st, err := task.Restore(tasks)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrCorrupt, s.path, err)
	}
	return st, nil
}

// Save replaces the table contents with the store's full task sequence in
// one transaction, so a failed save leaves the previous rows intact.
func (s *DB) Save(st *task.Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return wrapErr(s.path, "write database", err)
	}

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		tx.Rollback()
		return wrapErr(s.path, "write database", err)
	}
	for _, t := range st.Tasks() {
		completed := 0
		if t.Completed {
			completed = 1
		}
		if _, err := tx.Exec(`INSERT INTO tasks (id, description, completed) VALUES (?, ?, ?)`,
			t.ID, t.Description, completed); err != nil {
			tx.Rollback()
			return wrapErr(s.path, "write database", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapErr(s.path, "write database", err)
	}
	return nil
}

// wrapErr adds the file path to a driver error. A file that exists but is
// not a SQLite database is reported as corrupt.
func wrapErr(path, op string, err error) error {
	if strings.Contains(err.Error(), "not a database") {
		return fmt.Errorf("%w: %s: %v", store.ErrCorrupt, path, err)
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}
