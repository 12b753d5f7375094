package handlers

import (
	"CmdBot/core"
	"CmdBot/core/database"
	"CmdBot/core/dispatch"

	"github.com/bwmarrin/discordgo"
)

// RegisterPrefix registers the prefix command and its subcommands. Changing the
// prefix requires Manage Server; the requirement sits on the parent, which is
// also what gates the subcommands.
func RegisterPrefix(r *dispatch.Registry) error {
	usage := func(m *dispatch.Message, arg *dispatch.Argument) {
		m.ReplyToChannel("Usage: %sprefix <show|set|reset>", m.Prefix)
	}
	_, err := r.Register("prefix", dispatch.CommandOptions{
		Description:     "Show or change the command prefix for this server",
		UserServerPerms: []int64{discordgo.PermissionManageServer},
		Args: []*dispatch.Argument{
			{Name: "action", Type: dispatch.TypeSubcommand, Literals: []string{"show", "set", "reset"}, OnMissing: usage},
		},
	})
	if err != nil {
		return err
	}

	if _, err = r.RegisterSubcommand("prefix", "show", dispatch.CommandOptions{
		Description: "Show the prefix used on this server",
		Execute: func(m *dispatch.Message) {
			m.ReplyToChannel("The prefix here is `%s`.", m.Prefix)
		},
	}); err != nil {
		return err
	}

	if _, err = r.RegisterSubcommand("prefix", "set", dispatch.CommandOptions{
		Description: "Set a custom prefix for this server",
		Execute: func(m *dispatch.Message) {
			// free-form values are not parser-captured; the new prefix is the
			// token after the action
			if len(m.RawArgs) < 2 {
				m.ReplyToChannel("Usage: %sprefix set <new prefix>", m.Prefix)
				return
			}
			prefix := m.RawArgs[1]
			if err := database.SetGuildPrefix(m.GuildID, prefix); err != nil {
				m.ReplyToChannel("Failed to store the new prefix, try again later.")
				return
			}
			m.ReplyToChannel("Prefix changed to `%s`.", prefix)
		},
	}); err != nil {
		return err
	}

	_, err = r.RegisterSubcommand("prefix", "reset", dispatch.CommandOptions{
		Description: "Reset this server to the default prefix",
		Execute: func(m *dispatch.Message) {
			if err := database.ClearGuildPrefix(m.GuildID); err != nil {
				m.ReplyToChannel("Failed to reset the prefix, try again later.")
				return
			}
			m.ReplyToChannel("Prefix reset to `%s`.", core.Settings.CommandPrefix())
		},
	})
	return err
}
