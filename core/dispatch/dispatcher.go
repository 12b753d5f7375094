package dispatch

import (
	"strings"

	"CmdBot/core"

	"github.com/bwmarrin/discordgo"
	"github.com/thoas/go-funk"
)

// PrefixResolver returns the effective command prefix for a message's context.
// The default resolver returns the fixed configured prefix; an override can
// look up per-guild prefixes.
type PrefixResolver func(m *discordgo.Message) string

// Dispatcher classifies incoming messages and routes command invocations
// through the permission gate and argument parser to the matched handler. One
// Dispatch call runs per message; calls for distinct messages may run
// concurrently and complete out of order.
type Dispatcher struct {
	session   Session
	registry  *Registry
	prefix    string
	resolve   PrefixResolver
	translate Translator
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPrefixResolver overrides prefix resolution for guild messages. Direct
// messages always use the fixed configured prefix.
func WithPrefixResolver(r PrefixResolver) Option {
	return func(d *Dispatcher) { d.resolve = r }
}

// WithTranslator overrides the Translator used for dispatcher-generated
// messages (mention replies, missing-permission reports).
func WithTranslator(t Translator) Option {
	return func(d *Dispatcher) { d.translate = t }
}

// New creates a dispatcher over a session and a populated registry. prefix is
// the fixed configured command prefix.
func New(session Session, registry *Registry, prefix string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		session:   session,
		registry:  registry,
		prefix:    prefix,
		translate: DefaultTranslator,
	}
	d.resolve = func(*discordgo.Message) string { return d.prefix }
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch processes one incoming message. It returns once the message has
// been fully handled or discarded; every failure path is absorbed internally,
// so callers can fire it off on its own goroutine.
func (d *Dispatcher) Dispatch(msg *discordgo.Message) {
	// Short-circuit on messages from bot accounts (including our own) to avoid
	// bot-to-bot trigger loops.
	if msg.Author == nil || msg.Author.Bot {
		return
	}
	core.LogDebug("Got message: ", msg.Content)

	bot := d.session.BotUser()
	mentions := []string{"<@" + bot.ID + ">", "<@!" + bot.ID + ">"}
	if funk.ContainsString(mentions, msg.Content) {
		// the message is the bare mention and nothing else
		d.session.Send(msg.ChannelID, d.translate("mentioned", map[string]interface{}{
			"user":   msg.Author.Username,
			"prefix": d.resolve(msg),
		}))
		return
	}

	// A leading mention acts as the prefix for this message; otherwise ask the
	// resolver for the effective prefix in this context.
	prefix := ""
	for _, mention := range mentions {
		if strings.HasPrefix(msg.Content, mention) {
			prefix = mention
			break
		}
	}
	if prefix == "" {
		prefix = d.resolve(msg)
	}

	channel, err := d.session.Channel(msg.ChannelID)
	if err != nil {
		core.LogError("Failed to resolve channel: ", err)
		return
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		d.dispatchDirect(msg)
		return
	}

	trimmed := strings.TrimPrefix(msg.Content, prefix)
	if trimmed == msg.Content {
		return
	}
	tokens := splitTokens(trimmed)
	if len(tokens) == 0 {
		return
	}

	command := d.registry.Get(tokens[0])
	if command == nil {
		// most chatter is not for us; stay quiet
		return
	}
	core.LogDebugF("Matched command %s with parameters %v", tokens[0], tokens[1:])

	// Permission evaluation needs our own member record for this guild.
	if _, err := d.session.BotMember(msg.GuildID); err != nil {
		core.LogErrorF("Failed to fetch own member in guild %s: %s", msg.GuildID, err)
		return
	}

	m := &Message{
		Message: msg,
		Session: d.session,
		Prefix:  prefix,
		Command: tokens[0],
		RawArgs: tokens[1:],
	}
	if !d.checkPermissions(m, command) {
		return
	}
	parsed, ok := parseArguments(m, command.args, m.RawArgs)
	if !ok {
		// the failing argument's OnMissing callback has told the user
		return
	}
	m.Args = parsed

	if len(command.args) == 0 || command.args[0].Type != TypeSubcommand {
		command.execute(m)
		return
	}

	sub := command.subcommands[strings.ToLower(parsed.String(command.args[0].Name))]
	if sub == nil {
		return
	}
	// The gate runs against the parent's requirements again, not the
	// subcommand's own lists.
	if !d.checkPermissions(m, command) {
		return
	}
	sub.execute(m)
}

// dispatchDirect handles messages outside guild text channels. Direct commands
// use the fixed configured prefix, must be flagged DM-eligible, and skip both
// the permission gate and the argument parser: handlers get raw tokens.
func (d *Dispatcher) dispatchDirect(msg *discordgo.Message) {
	trimmed := strings.TrimPrefix(msg.Content, d.prefix)
	if trimmed == msg.Content {
		return
	}
	tokens := splitTokens(trimmed)
	if len(tokens) == 0 {
		return
	}
	command := d.registry.Get(tokens[0])
	if command == nil || !command.allowPM {
		return
	}
	m := &Message{
		Message: msg,
		Session: d.session,
		Prefix:  d.prefix,
		Command: tokens[0],
		RawArgs: tokens[1:],
		IsPM:    true,
	}
	if !command.level(m) {
		return
	}
	if len(command.args) > 0 && command.args[0].Type == TypeSubcommand {
		if len(m.RawArgs) == 0 {
			return
		}
		sub := command.subcommands[strings.ToLower(m.RawArgs[0])]
		if sub == nil {
			return
		}
		sub.execute(&Message{
			Message: msg,
			Session: d.session,
			Prefix:  d.prefix,
			Command: m.RawArgs[0],
			RawArgs: m.RawArgs[1:],
			IsPM:    true,
		})
		return
	}
	command.execute(m)
}

// splitTokens splits command text on spaces and drops blank tokens.
func splitTokens(s string) []string {
	return funk.FilterString(strings.Split(s, " "), func(token string) bool {
		return strings.Trim(token, "\t\r") != ""
	})
}
