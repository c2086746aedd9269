// Package parser converts raw input lines into (verb, args) commands.
// Intentionally dumb: no NLP, just alias expansion. Parse is pure.
package parser

import (
	"regexp"
	"strings"

	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// aliases maps shorthand to its expansion. Multi-word values expand to
// verb plus leading args.
var aliases = map[string]string{
	// Movement
	"go":    "move",
	"walk":  "move",
	"n":     "move north",
	"s":     "move south",
	"e":     "move east",
	"w":     "move west",
	"u":     "move up",
	"d":     "move down",
	"north": "move north",
	"south": "move south",
	"east":  "move east",
	"west":  "move west",
	"up":    "move up",
	"down":  "move down",

	// Look
	"l":       "look",
	"inspect": "examine",
	"study":   "examine",
	"read":    "examine",

	// Combat
	"fight":  "attack",
	"a":      "attack",
	"run":    "flee",
	"escape": "flee",

	// Inventory
	"inv":     "inventory",
	"i":       "inventory",
	"pick":    "take",
	"grab":    "take",
	"get":     "take",
	"wield":   "equip",
	"wear":    "equip",
	"remove":  "unequip",
	"unwield": "unequip",

	// Shop / tavern
	"purchase": "buy",
	"bet":      "gamble",

	// Fountain
	"sip": "drink",

	// Stats
	"status": "stats",

	// Help
	"?": "help",

	// Quit
	"exit": "quit",
	"q":    "quit",
}

// directions normalizes direction shorthand for the move verb.
var directions = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
	"u": "up",
	"d": "down",
}

var validDirections = map[string]bool{
	"north": true, "south": true, "east": true,
	"west": true, "up": true, "down": true,
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// NormalizeDirection expands direction shorthand ("n" → "north").
// Full direction names pass through unchanged.
func NormalizeDirection(direction string) string {
	d := strings.ToLower(direction)
	if full, ok := directions[d]; ok {
		return full
	}
	return d
}

// ValidDirection reports whether a full direction name is one of the six
// the dungeon uses.
func ValidDirection(direction string) bool {
	return validDirections[strings.ToLower(direction)]
}

// Parse resolves one line of player input into a Command. It trims,
// lower-cases, strips punctuation, then expands aliases:
//
//   - the full normalized line may match an alias phrase ("n" → move north)
//   - "pick up <x>" resolves to take before single-word alias lookup
//   - a first-token alias substitutes the verb (multi-word aliases prepend
//     their extra words to the remaining args)
//   - the move verb normalizes its first arg through the direction table
//
// Empty or all-punctuation input yields a Command with an empty verb.
func Parse(input string) types.Command {
	cleaned := strings.ToLower(strings.TrimSpace(input))

	// Punctuation aliases ("?") must match before stripping.
	if expansion, ok := aliases[cleaned]; ok {
		expanded := strings.Fields(expansion)
		return command(expanded[0], expanded[1:])
	}

	cleaned = nonWord.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	parts := strings.Fields(cleaned)
	if len(parts) == 0 {
		return types.Command{Verb: "", Args: []string{}}
	}

	first := parts[0]
	rest := parts[1:]

	// Whole-line alias ("n", "go north" is not one, "exit" is).
	if expansion, ok := aliases[cleaned]; ok {
		expanded := strings.Fields(expansion)
		return command(expanded[0], expanded[1:])
	}

	// "pick up" wins over the "pick" → take alias.
	if first == "pick" && len(rest) > 0 && rest[0] == "up" {
		return command("take", rest[1:])
	}

	if expansion, ok := aliases[first]; ok {
		if strings.Contains(expansion, " ") {
			expanded := strings.Fields(expansion)
			return command(expanded[0], append(expanded[1:], rest...))
		}
		return command(expansion, rest)
	}

	return command(first, rest)
}

func command(verb string, args []string) types.Command {
	out := make([]string, len(args))
	copy(out, args)
	if verb == "move" && len(out) > 0 {
		out[0] = NormalizeDirection(out[0])
	}
	return types.Command{Verb: verb, Args: out}
}

// ItemName joins args back into a single item name.
func ItemName(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
