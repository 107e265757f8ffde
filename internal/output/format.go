// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"

	"todo/internal/task"
)

const (
	// ListHeader is printed above a non-empty task list.
	ListHeader = "--- Your To-Do List ---"

	// EmptyListMessage is printed when there are no tasks.
	EmptyListMessage = "No to-dos yet! Add one with the 'add' command."
)

// FormatAdded reports a newly created task.
// Descriptions print unescaped; %q would mangle quotes inside them.
func FormatAdded(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "✅ Added new to-do: \"%s\" (ID: %d)\n", t.Description, t.ID)
}

// FormatTask formats one list row.
// Format: "[x] {ID}: {DESCRIPTION}\n" ("[ ]" while the task is open)
func FormatTask(w io.Writer, t task.Task) {
	status := "[ ]"
	if t.Completed {
		status = "[x]"
	}
	fmt.Fprintf(w, "%s %d: %s\n", status, t.ID, t.Description)
}

// FormatEdited reports a task whose description changed.
func FormatEdited(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "📝 Edited to-do %d: \"%s\"\n", t.ID, t.Description)
}

// FormatCompleted reports a task marked as completed.
func FormatCompleted(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "🎉 Completed to-do %d: \"%s\"\n", t.ID, t.Description)
}

// FormatDeleted reports a removed task.
func FormatDeleted(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "🗑️ Deleted to-do with ID %d.\n", t.ID)
}
