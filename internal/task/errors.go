package task

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDescription is returned when an add or edit supplies an
	// empty or whitespace-only description.
	ErrEmptyDescription = errors.New("description required")

	// ErrNotFound is returned when no task has the requested ID.
	ErrNotFound = errors.New("to-do not found")
)

func notFound(id int) error {
	return fmt.Errorf("%w: %d", ErrNotFound, id)
}

func invalidID(id int) error {
	return fmt.Errorf("invalid task id: %d", id)
}

func duplicateID(id int) error {
	return fmt.Errorf("duplicate task id: %d", id)
}
