package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/questmud/engine/state"
	"github.com/nathoo/questmud/types"
)

// panelWidth is the inner width of each panel, in terminal cells.
const panelWidth = 22

var titleCase = cases.Title(language.English)

// Panels renders the character, room, and combat panels side by side.
// Widths are measured in terminal cells, so wide runes line up.
func Panels(s *types.State) []string {
	cols := [][]string{
		characterRows(s),
		roomRows(s),
		combatRows(s),
	}
	titles := []string{"Character", "Location", "Combat"}

	height := 0
	for _, rows := range cols {
		height = max(height, len(rows))
	}

	boxes := make([][]string, len(cols))
	for i, rows := range cols {
		for len(rows) < height {
			rows = append(rows, "")
		}
		boxes[i] = box(titles[i], rows)
	}

	out := make([]string, len(boxes[0]))
	for i := range out {
		parts := make([]string, len(boxes))
		for j, b := range boxes {
			parts[j] = b[i]
		}
		out[i] = strings.Join(parts, " ")
	}
	return out
}

func characterRows(s *types.State) []string {
	p := s.Player
	return []string{
		fmt.Sprintf("Level:   %d", p.Level),
		fmt.Sprintf("HP:      %d/%d", p.HP, p.MaxHP),
		fmt.Sprintf("Exp:     %d/%d", p.Exp, p.ExpNeeded),
		fmt.Sprintf("Attack:  %d", p.Attack),
		fmt.Sprintf("Defense: %d", p.Defense),
		fmt.Sprintf("Gold:    %d", p.Gold),
		fmt.Sprintf("Weapon:  %s", itemName(p.Weapon)),
		fmt.Sprintf("Armor:   %s", itemName(p.Armor)),
	}
}

func roomRows(s *types.State) []string {
	room := state.CurrentRoom(s)

	exits := make([]string, 0, len(room.Exits))
	for _, d := range state.ExitDirections(room) {
		exits = append(exits, titleCase.String(d.String()))
	}
	monsters := make([]string, len(room.Monsters))
	for i, m := range room.Monsters {
		monsters[i] = m.Name
	}

	return []string{
		room.Name,
		"Exits:    " + orNone(exits),
		"Items:    " + orNone(itemNames(room.Items)),
		"Monsters: " + orNone(monsters),
	}
}

func combatRows(s *types.State) []string {
	m := s.Player.Monster
	if m == nil {
		return []string{"Not in combat."}
	}
	return []string{
		m.Name,
		fmt.Sprintf("HP: %d/%d", m.HP, m.MaxHP),
		HPBar(m.HP, m.MaxHP, panelWidth-2),
		"",
		"[attack] [flee]",
	}
}

// HPBar draws a fixed-width gauge like [#####-----].
func HPBar(hp, maxHP, width int) string {
	if width < 1 {
		return "[]"
	}
	filled := 0
	if maxHP > 0 && hp > 0 {
		filled = min(width, (hp*width+maxHP-1)/maxHP)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func box(title string, rows []string) []string {
	bar := strings.Repeat("─", panelWidth+2)
	out := []string{
		"┌" + bar + "┐",
		"│ " + center(title) + " │",
		"│ " + fit("") + " │",
	}
	for _, r := range rows {
		out = append(out, "│ "+fit(r)+" │")
	}
	return append(out, "└"+bar+"┘")
}

// fit truncates or pads s to exactly panelWidth cells.
func fit(s string) string {
	return runewidth.FillRight(runewidth.Truncate(s, panelWidth, "…"), panelWidth)
}

func center(s string) string {
	s = runewidth.Truncate(s, panelWidth, "…")
	pad := (panelWidth - runewidth.StringWidth(s)) / 2
	return fit(strings.Repeat(" ", pad) + s)
}

func orNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
