package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/task"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *task.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                List all to-dos
  todo list [common flags]            List all to-dos
  todo add [common flags] <description...>
  todo edit [common flags] <id> <description...>
  todo complete [common flags] <id>   Mark a to-do completed
  todo done [common flags] <id>       Alias for complete
  todo delete [common flags] <id>     Delete a to-do
  todo rm [common flags] <id>         Alias for delete
  todo help
  todo version

Common flags:
  --file <path>     Override the storage file (default todos.json)
  --backend <name>  Select storage backend: json or sqlite
  --quiet           Suppress informational output
  --debug           Print debug logs to stderr
`
