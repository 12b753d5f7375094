package handlers

import (
	"fmt"
	"math/rand"
	"strings"

	"CmdBot/core/dispatch"
)

const maxDice = 100

// RegisterRoll registers the dice roller. count is a required number argument;
// verbose optionally lists the individual dice.
func RegisterRoll(r *dispatch.Registry) error {
	usage := func(m *dispatch.Message, arg *dispatch.Argument) {
		m.ReplyToChannel("Usage: %sroll <count> [on|off] — roll up to %d six-sided dice", m.Prefix, maxDice)
	}
	_, err := r.Register("roll", dispatch.CommandOptions{
		Description: "Roll a handful of six-sided dice",
		AllowPM:     true,
		Args: []*dispatch.Argument{
			{Name: "count", Type: dispatch.TypeNumber, OnMissing: usage},
			{Name: "verbose", Type: dispatch.TypeBoolean, Optional: true},
		},
		Execute: func(m *dispatch.Message) {
			count := int(m.Args.Number("count"))
			if count < 1 || count > maxDice {
				m.ReplyToChannel("I can roll between 1 and %d dice.", maxDice)
				return
			}
			total := 0
			rolls := make([]string, count)
			for i := 0; i < count; i++ {
				die := rand.Intn(6) + 1
				total += die
				rolls[i] = fmt.Sprintf("%d", die)
			}
			if m.Args.Bool("verbose") {
				m.ReplyToChannel("Rolled %s for a total of %d.", strings.Join(rolls, ", "), total)
			} else {
				m.ReplyToChannel("Rolled %dd6 for a total of %d.", count, total)
			}
		},
	})
	return err
}
