// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/task"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the task store.
	// Commands like help and version return false and never touch storage.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// st is the loaded store, nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code. The dispatcher saves the store afterwards when a
	// successful command left it dirty.
	Run(ctx context.Context, cfg *config.Config, st *task.Store, args []string, out, errOut io.Writer) int
}
