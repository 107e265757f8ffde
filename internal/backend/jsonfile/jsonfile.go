// Package jsonfile persists the task store as a pretty-printed JSON array
// in a single file. It is the default storage backend.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"todo/internal/store"
	"todo/internal/task"
)

// File is a store.Backend backed by one JSON file.
type File struct {
	path string
}

// New returns a backend reading and writing the given file path. The file
// is not touched until Load or Save is called.
func New(path string) *File {
	return &File{path: path}
}

var _ store.Backend = (*File)(nil)

// Path returns the storage file location.
func (f *File) Path() string {
	return f.path
}

// Load reads the storage file and rebuilds the store. A missing file and a
// zero-length file both yield an empty store; anything else that fails to
// parse is reported as corrupt rather than silently discarded.
func (f *File) Load() (*task.Store, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return task.New(), nil
		}
		return nil, fmt.Errorf("read store file %s: %w", f.path, err)
	}

	if len(data) == 0 {
		return task.New(), nil
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrCorrupt, f.path, err)
	}
	// A JSON null decodes into a nil slice without an unmarshal error.
	if tasks == nil {
		return nil, fmt.Errorf("%w: %s: expected a task array", store.ErrCorrupt, f.path)
	}

	st, err := task.Restore(tasks)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrCorrupt, f.path, err)
	}
	return st, nil
}

// Save writes the full task sequence to the storage file. The data goes to
// a temporary file in the same directory first and is renamed over the
// target, so a failed save leaves the previous contents intact.
func (f *File) Save(st *task.Store) error {
	data, err := json.MarshalIndent(st.Tasks(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("write store file %s: %w", f.path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		tmp.Close()
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write store file %s: %w", f.path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("write store file %s: %w", f.path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("write store file %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write store file %s: %w", f.path, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("write store file %s: %w", f.path, err)
	}
	committed = true
	return nil
}
