package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/questmud/engine/state"
)

var titleCase = cases.Title(language.English)

// exitLabel lists the current room's exits, e.g. "North, South".
func (m Model) exitLabel() string {
	dirs := state.ExitDirections(m.engine.CurrentRoom())
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = titleCase.String(d.String())
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// renderStatusBar produces a full-width inverted status line showing the
// room and exits on the left and the character's numbers on the right.
func (m Model) renderStatusBar() string {
	s := m.engine.State
	p := s.Player

	left := fmt.Sprintf(" %s | Exits: %s", m.engine.CurrentRoom().Name, m.exitLabel())
	right := fmt.Sprintf("Lv %d  HP %d/%d  Exp %d/%d  Gold %d | T:%d ",
		p.Level, p.HP, p.MaxHP, p.Exp, p.ExpNeeded, p.Gold, s.TurnCount)

	// Drop the less important numbers on narrow terminals.
	if lipgloss.Width(left)+lipgloss.Width(right) > m.width {
		right = fmt.Sprintf("HP %d/%d ", p.HP, p.MaxHP)
	}

	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).MaxWidth(m.width).Render(bar)
}

// renderCombatBar shows the current opponent and an HP gauge. It is empty
// outside combat.
func (m Model) renderCombatBar() string {
	mon := m.engine.State.Player.Monster
	if mon == nil {
		return ""
	}

	label := fmt.Sprintf(" Fighting: %s ", mon.Name)
	hp := fmt.Sprintf(" %d/%d  [a]ttack [f]lee ", mon.HP, mon.MaxHP)

	gaugeWidth := min(30, m.width-lipgloss.Width(label)-lipgloss.Width(hp))
	gauge := ""
	if gaugeWidth > 0 {
		gauge = renderGauge(mon.HP, mon.MaxHP, gaugeWidth)
	}

	bar := styleCombatBar.Render(label) + gauge + styleCombatBar.Render(hp)
	pad := max(0, m.width-lipgloss.Width(bar))
	return bar + styleCombatBar.Render(strings.Repeat(" ", pad))
}

// renderGauge draws an HP gauge of the given width in cells.
func renderGauge(hp, maxHP, width int) string {
	filled := gaugeFill(hp, maxHP, width)
	return styleGaugeFull.Render(strings.Repeat("█", filled)) +
		styleGaugeEmpty.Render(strings.Repeat("░", width-filled))
}

// gaugeFill returns how many of width cells represent hp out of maxHP,
// rounding up so a living monster always shows at least one cell.
func gaugeFill(hp, maxHP, width int) int {
	if maxHP <= 0 || hp <= 0 || width <= 0 {
		return 0
	}
	return min(width, (hp*width+maxHP-1)/maxHP)
}
