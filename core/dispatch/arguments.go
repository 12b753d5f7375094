package dispatch

import (
	"math"
	"strconv"
	"strings"

	"github.com/thoas/go-funk"
)

var booleanTokens = []string{"true", "false", "on", "off"}

// parseArguments walks a command's argument schema left to right over the token
// sequence, consuming at most one token per entry and never revisiting a
// consumed token. The bool result distinguishes an abandoned parse from a
// successful parse that happened to record nothing: on failure the failing
// entry's OnMissing callback has already been invoked and the Args value is nil.
func parseArguments(m *Message, schema []*Argument, tokens []string) (Args, bool) {
	args := Args{}
	pos := 0

	for _, spec := range schema {
		var token string
		hasToken := pos < len(tokens)
		if hasToken {
			token = tokens[pos]
		}

		switch spec.Type {
		case TypeSubcommand:
			matched := ""
			if hasToken {
				for _, lit := range spec.Literals {
					if strings.EqualFold(lit, token) {
						matched = lit
						break
					}
				}
			}
			switch {
			case matched != "":
				// record the allow-list's canonical casing, not the token's
				args[spec.Name] = matched
				pos++
			case spec.Default != nil:
				args[spec.Name] = spec.Default
			default:
				// a subcommand is always required when one is expected
				reportMissing(m, spec)
				return nil, false
			}

		case TypeNumber:
			value := math.NaN()
			if hasToken {
				if f, err := strconv.ParseFloat(token, 64); err == nil {
					value = f
				}
			}
			// zero is rejected along with NaN: "0" does not satisfy a number
			if !math.IsNaN(value) && value != 0 {
				args[spec.Name] = value
				pos++
			} else if !recordFallback(args, spec) {
				reportMissing(m, spec)
				return nil, false
			}

		case TypeBoolean:
			if hasToken && funk.ContainsString(booleanTokens, token) {
				args[spec.Name] = token == "true" || token == "on"
				pos++
			} else if !recordFallback(args, spec) {
				reportMissing(m, spec)
				return nil, false
			}

		case TypeString:
			// strings only capture through their allow-list; free-form input
			// stays in Message.RawArgs for the handler
			if hasToken && len(spec.Literals) > 0 &&
				funk.ContainsString(spec.Literals, strings.ToLower(token)) {
				args[spec.Name] = token
				pos++
			} else if !recordFallback(args, spec) {
				reportMissing(m, spec)
				return nil, false
			}
		}
	}
	return args, true
}

// recordFallback applies the entry's default when present and otherwise reports
// whether the entry may be skipped. False means the entry is required and the
// parse must be abandoned.
func recordFallback(args Args, spec *Argument) bool {
	if spec.Default != nil {
		args[spec.Name] = spec.Default
		return true
	}
	return spec.Optional
}

func reportMissing(m *Message, spec *Argument) {
	if spec.OnMissing != nil {
		spec.OnMissing(m, spec)
	}
}
