package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleCombatBar = lipgloss.NewStyle().
			Background(lipgloss.Color("52")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	styleGaugeFull = lipgloss.NewStyle().
			Background(lipgloss.Color("52")).
			Foreground(lipgloss.Color("196"))

	styleGaugeEmpty = lipgloss.NewStyle().
			Background(lipgloss.Color("52")).
			Foreground(lipgloss.Color("239"))

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleRoomTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	styleInfo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleEncounter = lipgloss.NewStyle().
			Foreground(lipgloss.Color("202")).
			Bold(true)

	styleDamage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("209"))

	styleVictory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindRoomTitle
	kindInfo
	kindExits
	kindEncounter
	kindDamage
	kindVictory
	kindSystem
	kindError
	kindTrace
)

var errorPrefixes = []string{
	"You can't",
	"You don't",
	"You are not in combat.",
	"You have nothing",
	"You failed to escape!",
	"There is nothing",
	"Unknown command:",
}

var victoryPrefixes = []string{
	"You defeated",
	"You gained",
	"Level up!",
	"You escaped",
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "=== ") && strings.HasSuffix(line, " ==="):
		return kindRoomTitle
	case strings.HasPrefix(line, "!!! "):
		return kindEncounter
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case strings.HasPrefix(line, "Items:"),
		strings.HasPrefix(line, "Monsters:"),
		strings.HasPrefix(line, "People:"):
		return kindInfo
	case hasAnyPrefix(line, errorPrefixes):
		return kindError
	case hasAnyPrefix(line, victoryPrefixes):
		return kindVictory
	case strings.Contains(line, "hits you for"),
		strings.HasPrefix(line, "A deadly blow!"):
		return kindDamage
	default:
		return kindNarrative
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindRoomTitle:
		return styleRoomTitle.Render(line)
	case kindInfo:
		return styleInfo.Render(line)
	case kindExits:
		return styleExits.Render(line)
	case kindEncounter:
		return styleEncounter.Render(line)
	case kindDamage:
		return styleDamage.Render(line)
	case kindVictory:
		return styleVictory.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
