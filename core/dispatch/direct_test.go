package dispatch

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func directMessage(content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        "msg1",
		ChannelID: "dm1",
		Content:   content,
		Author:    &discordgo.User{ID: "user1", Username: "alice"},
	}
}

func newDirectSession() *fakeSession {
	session := newFakeSession()
	session.channelType = discordgo.ChannelTypeDM
	return session
}

func TestDirectDispatchPassesRawTokens(t *testing.T) {
	session := newDirectSession()
	r := NewRegistry()
	var got *Message
	missing := 0
	mustRegister(t, r, "calc", CommandOptions{
		AllowPM: true,
		Args: []*Argument{{
			Name: "amount",
			Type: TypeNumber,
			OnMissing: func(m *Message, arg *Argument) {
				missing++
			},
		}},
		Execute: func(m *Message) { got = m },
	})
	d := New(session, r, "!")

	// "0" would fail the guild-path parser; DMs skip it entirely
	d.Dispatch(directMessage("!calc 0 extra"))

	if got == nil {
		t.Fatal("Expected command to execute")
	}
	if missing != 0 {
		t.Error("Expected the argument parser not to run on the DM path")
	}
	if got.Args != nil {
		t.Errorf("Expected no parsed arguments, got %v", got.Args)
	}
	if len(got.RawArgs) != 2 || got.RawArgs[0] != "0" || got.RawArgs[1] != "extra" {
		t.Errorf("Expected raw tokens [0 extra], got %v", got.RawArgs)
	}
	if !got.IsPM {
		t.Error("Expected IsPM=true")
	}
}

func TestDirectDispatchRequiresEligibility(t *testing.T) {
	session := newDirectSession()
	r := NewRegistry()
	executed := 0
	mustRegister(t, r, "guildonly", CommandOptions{Execute: func(m *Message) { executed++ }})
	d := New(session, r, "!")

	d.Dispatch(directMessage("!guildonly"))

	if executed != 0 || len(session.sent) != 0 {
		t.Error("Expected DM-ineligible command to terminate silently")
	}
}

func TestDirectDispatchChecksLevelPredicate(t *testing.T) {
	session := newDirectSession()
	r := NewRegistry()
	executed := 0
	mustRegister(t, r, "secret", CommandOptions{
		AllowPM: true,
		Level:   func(m *Message) bool { return false },
		Execute: func(m *Message) { executed++ },
	})
	d := New(session, r, "!")

	d.Dispatch(directMessage("!secret"))

	if executed != 0 {
		t.Error("Expected level predicate to block the DM path")
	}
}

func TestDirectDispatchSkipsPermissionGate(t *testing.T) {
	session := newDirectSession()
	r := NewRegistry()
	executed := 0
	mustRegister(t, r, "purge", CommandOptions{
		AllowPM:          true,
		UserChannelPerms: []int64{discordgo.PermissionManageMessages},
		Execute:          func(m *Message) { executed++ },
	})
	d := New(session, r, "!")

	d.Dispatch(directMessage("!purge"))

	if executed != 1 {
		t.Error("Expected DM dispatch to skip channel permission checks")
	}
	if len(session.permCalls) != 0 {
		t.Errorf("Expected no permission lookups, got %v", session.permCalls)
	}
}

func TestDirectDispatchUsesConfiguredPrefix(t *testing.T) {
	session := newDirectSession()
	r := NewRegistry()
	executed := 0
	mustRegister(t, r, "ping", CommandOptions{AllowPM: true, Execute: func(m *Message) { executed++ }})
	// the resolver only applies to guild messages
	d := New(session, r, "!", WithPrefixResolver(func(m *discordgo.Message) string { return "?" }))

	d.Dispatch(directMessage("?ping"))
	if executed != 0 {
		t.Error("Expected resolver prefix to be ignored in DMs")
	}
	d.Dispatch(directMessage("!ping"))
	if executed != 1 {
		t.Errorf("Expected configured prefix to dispatch in DMs, got %d executions", executed)
	}
}

func TestDirectDispatchResolvesSubcommandFromMap(t *testing.T) {
	session := newDirectSession()
	r := NewRegistry()
	var got *Message
	mustRegister(t, r, "conf", CommandOptions{
		AllowPM: true,
		Args: []*Argument{
			{Name: "action", Type: TypeSubcommand, Literals: []string{"get", "set"}},
		},
	})
	if _, err := r.RegisterSubcommand("conf", "set", CommandOptions{
		Execute: func(m *Message) { got = m },
	}); err != nil {
		t.Fatalf("Failed to register subcommand: %v", err)
	}
	d := New(session, r, "!")

	d.Dispatch(directMessage("!conf SET key value"))

	if got == nil {
		t.Fatal("Expected subcommand to execute")
	}
	if got.Command != "SET" {
		t.Errorf("Expected Command to be the invoking token, got %q", got.Command)
	}
	if len(got.RawArgs) != 2 || got.RawArgs[0] != "key" {
		t.Errorf("Expected remaining tokens [key value], got %v", got.RawArgs)
	}
}

func TestDirectDispatchSubcommandEdgeCases(t *testing.T) {
	session := newDirectSession()
	r := NewRegistry()
	executed := 0
	mustRegister(t, r, "conf", CommandOptions{
		AllowPM: true,
		Args: []*Argument{
			{Name: "action", Type: TypeSubcommand, Literals: []string{"get", "set"}},
		},
	})
	if _, err := r.RegisterSubcommand("conf", "set", CommandOptions{
		Execute: func(m *Message) { executed++ },
	}); err != nil {
		t.Fatalf("Failed to register subcommand: %v", err)
	}
	d := New(session, r, "!")

	// no subcommand token
	d.Dispatch(directMessage("!conf"))
	// token does not name a registered subcommand
	d.Dispatch(directMessage("!conf frobnicate"))

	if executed != 0 || len(session.sent) != 0 {
		t.Error("Expected missing and unknown subcommands to terminate silently")
	}
}
