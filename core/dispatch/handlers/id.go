package handlers

import (
	"fmt"
	"strings"

	"CmdBot/core/dispatch"

	"github.com/bwmarrin/discordgo"
	"github.com/thoas/go-funk"
)

// RegisterIdent registers the id command: it reports the Discord ID of the
// author, or of every @mentioned user.
func RegisterIdent(r *dispatch.Registry) error {
	_, err := r.Register("id", dispatch.CommandOptions{
		Description: "Return Discord ID for the user, or all @mentioned users",
		Execute: func(m *dispatch.Message) {
			var identities []string
			addUser := func(user *discordgo.User) {
				identities = append(identities, fmt.Sprintf("%v has id %s", user.Username, user.ID))
			}
			if len(m.RawArgs) == 0 {
				addUser(m.Author)
			} else {
				funk.ForEach(m.Mentions, addUser)
			}
			if len(identities) > 0 {
				m.ReplyToChannel("Identities:\n\t%s", strings.Join(identities, "\n\t"))
			} else {
				m.ReplyToChannel("No one was identified")
			}
		},
	})
	return err
}
