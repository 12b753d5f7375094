package handlers

import (
	"fmt"
	"strings"

	"CmdBot/core/dispatch"
)

// RegisterHelp registers the help command, listing every registered command
// with its description.
func RegisterHelp(r *dispatch.Registry) error {
	_, err := r.Register("help", dispatch.CommandOptions{
		Description: "List available commands",
		AllowPM:     true,
		Execute: func(m *dispatch.Message) {
			var lines []string
			for _, c := range r.Commands() {
				if c.Description() == "" {
					continue
				}
				line := fmt.Sprintf("**%s%s** — %s", m.Prefix, c.Name(), c.Description())
				if aliases := c.Aliases(); len(aliases) > 0 {
					line += fmt.Sprintf(" (also known as %s)", strings.Join(aliases, ", "))
				}
				lines = append(lines, line)
			}
			m.ReplyToChannel("Available commands:\n%s", strings.Join(lines, "\n"))
		},
	})
	return err
}
