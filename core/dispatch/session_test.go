package dispatch

import (
	"github.com/bwmarrin/discordgo"
)

// fakeSession records permission lookups and sends so tests can assert on gate
// evaluation order and user-facing output without a live connection.
type fakeSession struct {
	bot          *discordgo.User
	channelType  discordgo.ChannelType
	channelPerms map[string]int64 // userID -> channel permission mask
	guildPerms   map[string]int64 // userID -> server permission mask
	memberErr    error
	memberCalls  int
	permCalls    []string
	sent         []string
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		bot:          &discordgo.User{ID: "bot1", Username: "TestBot", Bot: true},
		channelType:  discordgo.ChannelTypeGuildText,
		channelPerms: map[string]int64{},
		guildPerms:   map[string]int64{},
	}
}

func (f *fakeSession) BotUser() *discordgo.User { return f.bot }

func (f *fakeSession) BotMember(guildID string) (*discordgo.Member, error) {
	f.memberCalls++
	if f.memberErr != nil {
		return nil, f.memberErr
	}
	return &discordgo.Member{GuildID: guildID, User: f.bot}, nil
}

func (f *fakeSession) Channel(channelID string) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: channelID, Type: f.channelType}, nil
}

func (f *fakeSession) ChannelPermissions(userID, channelID string) (int64, error) {
	f.permCalls = append(f.permCalls, "channel:"+userID)
	return f.channelPerms[userID], nil
}

func (f *fakeSession) GuildPermissions(userID, guildID string) (int64, error) {
	f.permCalls = append(f.permCalls, "guild:"+userID)
	return f.guildPerms[userID], nil
}

func (f *fakeSession) Send(channelID, content string) {
	f.sent = append(f.sent, content)
}

func guildMessage(content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        "msg1",
		ChannelID: "chan1",
		GuildID:   "guild1",
		Content:   content,
		Author:    &discordgo.User{ID: "user1", Username: "alice"},
	}
}
