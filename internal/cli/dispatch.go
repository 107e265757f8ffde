// Package cli parses arguments and dispatches commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/store"
	"todo/internal/task"
)

// BackendFactory creates a storage backend from config.
// Used to inject the persistence layer during dispatch.
type BackendFactory func(cfg *config.Config) (store.Backend, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  BackendFactory
}

// NewDispatcher creates a new dispatcher with the given registry and backend factory.
func NewDispatcher(registry *commands.Registry, factory BackendFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	// Look up command
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	// Parse flags
	remaining := args[1:]
	return d.dispatchCommand(ctx, cmd, remaining, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var file string
	var backendName string
	var quiet bool
	var debug bool

	fs.StringVar(&file, "file", "", "")
	fs.StringVar(&backendName, "backend", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	// Parse flags
	if err := fs.Parse(args); err != nil {
		// Handle specific error types
		errStr := err.Error()

		// Check for missing flag value
		if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "needs an argument") {
			// Extract flag name
			parts := strings.Split(errStr, ":")
			flagName := strings.TrimSpace(parts[len(parts)-1])
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
			return exitcode.UserError
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	// Create config
	cfg, err := config.New(file, backendName)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger := logging.New(errOut, cfg.Debug)
	logger.Debug("dispatching command", slog.String("command", cmd.Name()))

	// Load the store for commands that operate on it
	var st *task.Store
	var be store.Backend
	if cmd.NeedsStore() {
		be, err = d.factory(cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return loadExitCode(err)
		}
		defer closeBackend(be, logger)

		st, err = be.Load()
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return loadExitCode(err)
		}
		logger.Debug("store loaded", slog.String("path", be.Path()), slog.Int("tasks", st.Len()))
	}

	// Run command
	code := cmd.Run(ctx, cfg, st, positionalArgs, out, errOut)

	// Save mutations. A command that failed, or only read, leaves the file
	// exactly as it was.
	if code == exitcode.Success && st != nil && st.Dirty() {
		logger.Debug("saving store", slog.String("path", be.Path()), slog.Int("tasks", st.Len()))
		if err := be.Save(st); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.StorageError
		}
	}

	return code
}

// loadExitCode maps a backend open or load failure to its exit code.
func loadExitCode(err error) int {
	if errors.Is(err, store.ErrCorrupt) {
		return exitcode.CorruptError
	}
	return exitcode.StorageError
}

// closeBackend closes backends that hold resources, like the SQLite one.
func closeBackend(be store.Backend, logger *slog.Logger) {
	if c, ok := be.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("closing backend", slog.String("error", err.Error()))
		}
	}
}
