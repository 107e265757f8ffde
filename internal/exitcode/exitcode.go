// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes reported to the shell.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, task
	// not found).
	UserError = 1

	// CorruptError indicates the storage file exists but could not be
	// parsed. The file is left untouched.
	CorruptError = 2

	// StorageError indicates the storage file could not be read or
	// written.
	StorageError = 3
)
