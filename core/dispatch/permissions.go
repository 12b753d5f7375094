package dispatch

import (
	"strings"

	"CmdBot/core"

	"github.com/bwmarrin/discordgo"
)

// PermissionNames maps discordgo permission flags to the names Discord shows in
// its UI, for user-facing missing-permission reports.
var PermissionNames = map[int64]string{
	discordgo.PermissionCreateInstantInvite: "Create Instant Invite",
	discordgo.PermissionKickMembers:         "Kick Members",
	discordgo.PermissionBanMembers:          "Ban Members",
	discordgo.PermissionAdministrator:       "Administrator",
	discordgo.PermissionManageChannels:      "Manage Channels",
	discordgo.PermissionManageServer:        "Manage Server",
	discordgo.PermissionAddReactions:        "Add Reactions",
	discordgo.PermissionViewAuditLogs:       "View Audit Logs",
	discordgo.PermissionViewChannel:         "View Channel",
	discordgo.PermissionSendMessages:        "Send Messages",
	discordgo.PermissionSendTTSMessages:     "Send TTS Messages",
	discordgo.PermissionManageMessages:      "Manage Messages",
	discordgo.PermissionEmbedLinks:          "Embed Links",
	discordgo.PermissionAttachFiles:         "Attach Files",
	discordgo.PermissionReadMessageHistory:  "Read Message History",
	discordgo.PermissionMentionEveryone:     "Mention Everyone",
	discordgo.PermissionUseExternalEmojis:   "Use External Emojis",
	discordgo.PermissionChangeNickname:      "Change Nickname",
	discordgo.PermissionManageNicknames:     "Manage Nicknames",
	discordgo.PermissionManageRoles:         "Manage Roles",
	discordgo.PermissionManageWebhooks:      "Manage Webhooks",
	discordgo.PermissionVoiceConnect:        "Connect to Voice Channel",
	discordgo.PermissionVoiceSpeak:          "Speak",
	discordgo.PermissionVoiceMuteMembers:    "Mute Members",
	discordgo.PermissionVoiceDeafenMembers:  "Deafen Members",
	discordgo.PermissionVoiceMoveMembers:    "Move Members",
	discordgo.PermissionVoiceUseVAD:         "Use Voice Activity Detection",
}

// checkPermissions evaluates the command's four permission lists in fixed
// order: user-channel, user-server, bot-channel, bot-server. An empty list
// passes vacuously. The first failing category reports the missing flags to the
// originating channel and short-circuits the remaining categories. When all
// four pass, the command's level gate decides the final outcome.
func (d *Dispatcher) checkPermissions(m *Message, cmd *Command) bool {
	bot := d.session.BotUser()
	checks := []struct {
		scope  string
		userID string
		perms  []int64
		server bool
	}{
		{"user.channel", m.Author.ID, cmd.userChannelPerms, false},
		{"user.server", m.Author.ID, cmd.userServerPerms, true},
		{"bot.channel", bot.ID, cmd.botChannelPerms, false},
		{"bot.server", bot.ID, cmd.botServerPerms, true},
	}

	for _, check := range checks {
		if len(check.perms) == 0 {
			continue
		}
		var mask int64
		var err error
		if check.server {
			mask, err = d.session.GuildPermissions(check.userID, m.GuildID)
		} else {
			mask, err = d.session.ChannelPermissions(check.userID, m.ChannelID)
		}
		if err != nil {
			core.LogErrorF("Failed to look up %s permissions for %s: %s", check.scope, m.Command, err)
			return false
		}
		missing := missingPermissions(mask, check.perms)
		if len(missing) == 0 {
			continue
		}
		core.LogDebugF("Denying %s: missing %s permissions %v", m.Command, check.scope, missing)
		d.session.Send(m.ChannelID, d.translate("permissions.missing."+check.scope, map[string]interface{}{
			"command":     m.Command,
			"user":        m.Author.Username,
			"permissions": permissionList(missing),
		}))
		return false
	}
	return cmd.level(m)
}

// missingPermissions returns the flags from required that are not all present
// in mask.
func missingPermissions(mask int64, required []int64) []int64 {
	var missing []int64
	for _, p := range required {
		if mask&p != p {
			missing = append(missing, p)
		}
	}
	return missing
}

func permissionList(perms []int64) string {
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		if name, ok := PermissionNames[p]; ok {
			names = append(names, name)
		} else {
			names = append(names, "Unknown Permission")
		}
	}
	return strings.Join(names, ", ")
}
