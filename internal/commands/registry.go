package commands

import (
	"fmt"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	byName map[string]Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds a command under its name and all aliases.
// Returns an error if any of them is already taken.
func (r *Registry) Register(c Command) error {
	names := append([]string{c.Name()}, c.Aliases()...)
	for _, name := range names {
		if _, exists := r.byName[name]; exists {
			return fmt.Errorf("command already registered: %s", name)
		}
	}
	for _, name := range names {
		r.byName[name] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// DefaultRegistry is the global command registry, populated by the init
// functions in this package.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry. Registration happens
// during init, so a name collision is a programming error and panics.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
