// Package handlers holds the bot's built-in commands. Commands are registered
// explicitly from main via RegisterAll rather than through init side effects,
// so tests can build registries with any subset they need.
package handlers

import (
	"CmdBot/core/dispatch"
)

// RegisterAll registers every built-in command on the given registry. The
// first registration error aborts; duplicate names at startup are programmer
// errors.
func RegisterAll(r *dispatch.Registry) error {
	for _, register := range []func(*dispatch.Registry) error{
		RegisterPing,
		RegisterIdent,
		RegisterAnimals,
		RegisterRoll,
		RegisterPrefix,
		RegisterHelp,
	} {
		if err := register(r); err != nil {
			return err
		}
	}
	return nil
}
