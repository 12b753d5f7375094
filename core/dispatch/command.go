// Package dispatch implements the command layer for the bot: a registry of
// command definitions, a typed positional-argument parser, a permission gate,
// and the dispatcher that classifies incoming messages and routes them to
// command handlers.
package dispatch

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Argument type tags, used in Argument.Type.
const (
	TypeString     = "string"
	TypeNumber     = "number"
	TypeBoolean    = "boolean"
	TypeSubcommand = "subcommand"
)

// Args holds the parsed arguments for one invocation, keyed by argument name.
// Values are string, float64 or bool depending on the argument type. Optional
// arguments that were not satisfied and have no default are absent.
type Args map[string]interface{}

// Has reports whether a value was recorded for the named argument.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the named argument as a string, or "" if absent or not a string.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Number returns the named argument as a float64, or 0 if absent.
func (a Args) Number(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

// Bool returns the named argument as a bool, or false if absent.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// Message is the container handed to command handlers: the platform message plus
// everything the dispatcher worked out about it. RawArgs always holds the
// unparsed parameter tokens; Args is only populated on the guild path, where the
// argument parser runs.
type Message struct {
	*discordgo.Message
	Session Session
	Prefix  string
	Command string
	Args    Args
	RawArgs []string
	IsPM    bool
}

// Utility method to send a quick reply back to the originating channel.
func (m *Message) ReplyToChannel(format string, v ...interface{}) {
	m.Session.Send(m.ChannelID, fmt.Sprintf(format, v...))
}

// ExecuteFunc runs a matched command.
type ExecuteFunc func(m *Message)

// MissingFunc is invoked when a required argument could not be satisfied,
// typically to send a usage message.
type MissingFunc func(m *Message, arg *Argument)

// LevelFunc is an arbitrary boolean gate over the triggering message, evaluated
// after the four permission lists pass. The default accepts everything.
type LevelFunc func(m *Message) bool

// Argument describes one entry of a command's positional argument schema.
type Argument struct {
	Name string
	Type string
	// Optional inverts the default: arguments are required unless this is set.
	Optional bool
	// Default is recorded when no token satisfies the entry. Must match the
	// type tag (string, float64 or bool).
	Default interface{}
	// Literals is the allow-list for subcommand and string arguments. A string
	// argument without literals never captures a token; handlers that want
	// free-form text read Message.RawArgs instead.
	Literals  []string
	OnMissing MissingFunc
}

// Command is a registered command definition. Immutable after registration
// except for subcommand insertion, which only happens during setup.
type Command struct {
	name        string
	description string
	aliases     []string
	args        []*Argument

	userChannelPerms []int64
	userServerPerms  []int64
	botChannelPerms  []int64
	botServerPerms   []int64

	level       LevelFunc
	allowPM     bool
	execute     ExecuteFunc
	subcommands map[string]*Command
}

// Name returns the name the command was registered under.
func (c *Command) Name() string { return c.name }

// Description returns the registered help text.
func (c *Command) Description() string { return c.description }

// Aliases returns the informational alias list. Aliases are surfaced in help
// output but are not dispatch lookup keys.
func (c *Command) Aliases() []string { return c.aliases }

// CommandOptions is what callers pass to Registry.Register; zero values give a
// guild-only command with no arguments, no permission requirements and an
// always-true level gate.
type CommandOptions struct {
	Description string
	// Aliases are carried for help output only; they are not lookup keys.
	Aliases []string
	Args    []*Argument

	UserChannelPerms []int64
	UserServerPerms  []int64
	BotChannelPerms  []int64
	BotServerPerms   []int64

	Level   LevelFunc
	AllowPM bool
	Execute ExecuteFunc
}

func newCommand(name string, opts CommandOptions) *Command {
	c := &Command{
		name:             name,
		description:      opts.Description,
		aliases:          opts.Aliases,
		args:             opts.Args,
		userChannelPerms: opts.UserChannelPerms,
		userServerPerms:  opts.UserServerPerms,
		botChannelPerms:  opts.BotChannelPerms,
		botServerPerms:   opts.BotServerPerms,
		level:            opts.Level,
		allowPM:          opts.AllowPM,
		execute:          opts.Execute,
		subcommands:      map[string]*Command{},
	}
	if c.level == nil {
		c.level = func(*Message) bool { return true }
	}
	return c
}
