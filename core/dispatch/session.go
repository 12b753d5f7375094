package dispatch

import (
	"CmdBot/core"

	"github.com/bwmarrin/discordgo"
	"github.com/thoas/go-funk"
)

// Session is the narrow slice of the chat platform the dispatcher needs. The
// production implementation wraps *discordgo.Session; tests substitute fakes so
// permission lookups and sends can be observed without a live connection.
type Session interface {
	// BotUser returns the bot's own user record.
	BotUser() *discordgo.User
	// BotMember resolves the bot's member record in a guild, fetching on demand
	// when the state cache has no entry. Safe to race; fetches are idempotent.
	BotMember(guildID string) (*discordgo.Member, error)
	// Channel resolves a channel so the dispatcher can tell guild text channels
	// from direct messages.
	Channel(channelID string) (*discordgo.Channel, error)
	// ChannelPermissions returns a member's effective permission mask in a channel.
	ChannelPermissions(userID, channelID string) (int64, error)
	// GuildPermissions returns a member's server-wide permission mask.
	GuildPermissions(userID, guildID string) (int64, error)
	// Send delivers a message to a channel. It silently no-ops when the bot
	// cannot view, send, or embed in the target channel.
	Send(channelID, content string)
}

type discordSession struct {
	s *discordgo.Session
}

// WrapSession adapts a discordgo session to the Session interface.
func WrapSession(s *discordgo.Session) Session {
	return &discordSession{s: s}
}

func (d *discordSession) BotUser() *discordgo.User {
	return d.s.State.User
}

func (d *discordSession) BotMember(guildID string) (*discordgo.Member, error) {
	return d.member(guildID, d.s.State.User.ID)
}

func (d *discordSession) Channel(channelID string) (*discordgo.Channel, error) {
	if channel, err := d.s.State.Channel(channelID); err == nil {
		return channel, nil
	}
	return d.s.Channel(channelID)
}

func (d *discordSession) ChannelPermissions(userID, channelID string) (int64, error) {
	return d.s.UserChannelPermissions(userID, channelID)
}

func (d *discordSession) GuildPermissions(userID, guildID string) (int64, error) {
	guild, err := d.guild(guildID)
	if err != nil {
		return 0, err
	}
	if guild.OwnerID == userID {
		return discordgo.PermissionAll, nil
	}
	member, err := d.member(guildID, userID)
	if err != nil {
		return 0, err
	}
	var perms int64
	for _, role := range guild.Roles {
		// the @everyone role shares the guild's id and applies to all members
		if role.ID == guild.ID || funk.ContainsString(member.Roles, role.ID) {
			perms |= role.Permissions
		}
	}
	if perms&discordgo.PermissionAdministrator == discordgo.PermissionAdministrator {
		return discordgo.PermissionAll, nil
	}
	return perms, nil
}

func (d *discordSession) Send(channelID, content string) {
	channel, err := d.Channel(channelID)
	if err != nil {
		core.LogError("Failed to resolve channel for send: ", err)
		return
	}
	if channel.Type != discordgo.ChannelTypeDM && channel.Type != discordgo.ChannelTypeGroupDM {
		needed := int64(discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionEmbedLinks)
		perms, err := d.ChannelPermissions(d.s.State.User.ID, channelID)
		if err != nil || perms&needed != needed {
			core.LogDebugF("Not allowed to send to channel %s, dropping message", channelID)
			return
		}
	}
	if _, err := d.s.ChannelMessageSend(channelID, content); err != nil {
		core.LogError("Failed to send message: ", err)
	}
}

func (d *discordSession) guild(guildID string) (*discordgo.Guild, error) {
	if guild, err := d.s.State.Guild(guildID); err == nil {
		return guild, nil
	}
	return d.s.Guild(guildID)
}

func (d *discordSession) member(guildID, userID string) (*discordgo.Member, error) {
	if member, err := d.s.State.Member(guildID, userID); err == nil {
		return member, nil
	}
	member, err := d.s.GuildMember(guildID, userID)
	if err != nil {
		return nil, err
	}
	member.GuildID = guildID
	if err := d.s.State.MemberAdd(member); err != nil {
		core.LogDebug("Failed to cache member: ", err)
	}
	return member, nil
}
