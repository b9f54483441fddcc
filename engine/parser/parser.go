// Package parser converts command strings into Command values.
// Intentionally dumb: no NLP, just a closed alias table.
package parser

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/nathoo/questmud/types"
)

var directionAliases = map[string]types.Direction{
	"n":     types.North,
	"north": types.North,
	"북":     types.North,
	"s":     types.South,
	"south": types.South,
	"남":     types.South,
	"e":     types.East,
	"east":  types.East,
	"동":     types.East,
	"w":     types.West,
	"west":  types.West,
	"서":     types.West,
}

var commandAliases = map[string]types.CommandKind{
	// Combat
	"a":      types.CmdAttack,
	"attack": types.CmdAttack,
	"hit":    types.CmdAttack,
	"fight":  types.CmdAttack,
	"공격":     types.CmdAttack,
	"f":      types.CmdFlee,
	"flee":   types.CmdFlee,
	"run":    types.CmdFlee,
	"도망":     types.CmdFlee,

	// Look
	"l":    types.CmdLook,
	"look": types.CmdLook,
	"주변":   types.CmdLook,

	// Take / Get
	"g":       types.CmdTake,
	"get":     types.CmdTake,
	"take":    types.CmdTake,
	"pick up": types.CmdTake,
	"grab":    types.CmdTake,
	"줍기":      types.CmdTake,

	// Use
	"u":   types.CmdUse,
	"use": types.CmdUse,
	"사용":  types.CmdUse,

	// Miscellaneous
	"i":         types.CmdInventory,
	"inv":       types.CmdInventory,
	"inventory": types.CmdInventory,
	"인벤토리":      types.CmdInventory,
	"h":         types.CmdHelp,
	"help":      types.CmdHelp,
	"?":         types.CmdHelp,
	"도움말":       types.CmdHelp,
	"q":         types.CmdQuit,
	"quit":      types.CmdQuit,
	"exit":      types.CmdQuit,
	"종료":        types.CmdQuit,
}

// Movement verbs that take a direction argument: "go north", "move e".
var moveVerbs = map[string]bool{
	"go":   true,
	"move": true,
	"walk": true,
	"이동":   true,
}

// Normalize trims, case-folds, and collapses runs of whitespace.
func Normalize(input string) string {
	folded := cases.Fold().String(input)
	return strings.Join(strings.Fields(folded), " ")
}

// Parse converts a raw command string into a Command.
func Parse(input string) types.Command {
	norm := Normalize(input)
	if norm == "" {
		return types.Command{Kind: types.CmdNone}
	}

	if dir, ok := directionAliases[norm]; ok {
		return types.Command{Kind: types.CmdGo, Dir: dir, Raw: norm}
	}
	if kind, ok := commandAliases[norm]; ok {
		return types.Command{Kind: kind, Raw: norm}
	}

	// "go <direction>"
	words := strings.Fields(norm)
	if len(words) == 2 && moveVerbs[words[0]] {
		if dir, ok := directionAliases[words[1]]; ok {
			return types.Command{Kind: types.CmdGo, Dir: dir, Raw: norm}
		}
	}

	return types.Command{Kind: types.CmdUnknown, Raw: norm}
}
