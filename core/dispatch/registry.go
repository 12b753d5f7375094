package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"CmdBot/core"
)

var (
	// ErrDuplicateCommand is returned when a command or subcommand name collides
	// with an existing registration. Names differing only by case collide.
	ErrDuplicateCommand = errors.New("command already registered")
	// ErrUnknownCommand is returned when registering a subcommand under a parent
	// that does not exist.
	ErrUnknownCommand = errors.New("no such command")
)

// Registry stores command definitions keyed by lowercased name. It is append
// only: commands are registered during setup, before the session opens, and the
// registry is read-only while messages are being dispatched.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: map[string]*Command{}}
}

// Register normalizes options into a Command and stores it under the lowercased
// name. Registration failures are returned synchronously and never recovered;
// callers typically treat them as fatal during startup.
func (r *Registry) Register(name string, opts CommandOptions) (*Command, error) {
	key := strings.ToLower(name)
	if _, exists := r.commands[key]; exists {
		return nil, fmt.Errorf("%s: %w", name, ErrDuplicateCommand)
	}
	c := newCommand(name, opts)
	r.commands[key] = c
	if core.IsLogInfo() {
		core.LogInfoF("Registered command: %s", key)
	}
	return c, nil
}

// RegisterSubcommand stores a command definition under an existing parent.
// Subcommands are resolved one level deep; nesting further is not supported.
func (r *Registry) RegisterSubcommand(parent, name string, opts CommandOptions) (*Command, error) {
	p := r.commands[strings.ToLower(parent)]
	if p == nil {
		return nil, fmt.Errorf("%s: %w", parent, ErrUnknownCommand)
	}
	key := strings.ToLower(name)
	if _, exists := p.subcommands[key]; exists {
		return nil, fmt.Errorf("%s %s: %w", parent, name, ErrDuplicateCommand)
	}
	c := newCommand(name, opts)
	p.subcommands[key] = c
	if core.IsLogInfo() {
		core.LogInfoF("Registered subcommand: %s %s", strings.ToLower(parent), key)
	}
	return c, nil
}

// Get returns the command stored under exactly the given key, or nil. Storage
// keys are lowercased at registration and lookups are not folded, so a message
// invoking `Ping` will not match a command registered as `ping`.
func (r *Registry) Get(name string) *Command {
	return r.commands[name]
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []*Command {
	list := make([]*Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].name < list[j].name
	})
	return list
}
