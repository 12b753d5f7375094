package dispatch

import "fmt"

// Translator renders user-facing text for a message key and structured
// arguments. The default formats a built-in English table; embedders can swap
// in a real localization backend via WithTranslator.
type Translator func(key string, args map[string]interface{}) string

// DefaultTranslator is the built-in English Translator.
func DefaultTranslator(key string, args map[string]interface{}) string {
	switch key {
	case "mentioned":
		return fmt.Sprintf("Hi %v! My prefix here is `%v`.", args["user"], args["prefix"])
	case "permissions.missing.user.channel":
		return fmt.Sprintf("%v, you need the following permissions in this channel to use `%v`: %v",
			args["user"], args["command"], args["permissions"])
	case "permissions.missing.user.server":
		return fmt.Sprintf("%v, you need the following server permissions to use `%v`: %v",
			args["user"], args["command"], args["permissions"])
	case "permissions.missing.bot.channel":
		return fmt.Sprintf("I need the following permissions in this channel to run `%v`: %v",
			args["command"], args["permissions"])
	case "permissions.missing.bot.server":
		return fmt.Sprintf("I need the following server permissions to run `%v`: %v",
			args["command"], args["permissions"])
	}
	return key
}
