package handlers

import (
	"CmdBot/core/dispatch"
)

// RegisterPing registers the liveness commands.
func RegisterPing(r *dispatch.Registry) error {
	_, err := r.Register("ping", dispatch.CommandOptions{
		Description: "Simple command to check that bot is alive",
		AllowPM:     true,
		Execute: func(m *dispatch.Message) {
			m.ReplyToChannel("Pong!")
		},
	})
	if err != nil {
		return err
	}
	_, err = r.Register("pong", dispatch.CommandOptions{
		Description: "Simple command to check that bot is alive",
		AllowPM:     true,
		Execute: func(m *dispatch.Message) {
			m.ReplyToChannel("Ping!")
		},
	})
	return err
}
