package loader

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nathoo/questmud/engine/state"
	"github.com/nathoo/questmud/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled defs for referential integrity and sane
// numbers. Warnings are logged; only errors fail the load.
func validate(defs *state.Defs) error {
	ve := check(defs)

	for _, w := range ve.Warnings {
		slog.Warn("world content", "warning", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func check(defs *state.Defs) *ValidationError {
	ve := &ValidationError{}
	errorf := func(format string, args ...any) {
		ve.Errors = append(ve.Errors, fmt.Sprintf(format, args...))
	}
	warnf := func(format string, args ...any) {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(format, args...))
	}

	if defs.Game.Title == "" {
		errorf("Game.title is required")
	}
	if defs.Game.Start == "" {
		errorf("Game.start is required")
	} else if _, ok := defs.Rooms[defs.Game.Start]; !ok {
		errorf("start room %q not found in defined rooms", defs.Game.Start)
	}

	p := defs.Game.Player
	if p.HP <= 0 || p.HP > p.MaxHP {
		errorf("player hp must be in 1..max_hp, got %d/%d", p.HP, p.MaxHP)
	}
	if p.ExpNeeded <= 0 {
		errorf("player exp_needed must be positive, got %d", p.ExpNeeded)
	}
	if p.Level <= 0 {
		errorf("player level must be positive, got %d", p.Level)
	}

	for _, key := range sortedKeys(defs.Items) {
		it := defs.Items[key]
		switch it.Kind {
		case types.Weapon:
			if it.AttackBonus <= 0 {
				warnf("weapon %q has no attack bonus", key)
			}
		case types.Armor:
			if it.DefenseBonus <= 0 {
				warnf("armor %q has no defense bonus", key)
			}
		case types.Potion:
			if it.HealAmount <= 0 {
				warnf("potion %q heals nothing and can never be used", key)
			}
		case types.Treasure:
		}
	}

	for _, key := range sortedKeys(defs.Monsters) {
		m := defs.Monsters[key]
		if m.HP <= 0 {
			errorf("monster %q must have positive hp, got %d", key, m.HP)
		}
		if m.MaxHP < m.HP {
			errorf("monster %q max_hp %d is below hp %d", key, m.MaxHP, m.HP)
		}
	}

	for _, id := range sortedKeys(defs.Rooms) {
		room := defs.Rooms[id]
		for _, dir := range types.Directions() {
			target, ok := room.Exits[dir]
			if !ok {
				continue
			}
			if _, ok := defs.Rooms[target]; !ok {
				errorf("room %q exit %s points to undefined room %q", id, dir, target)
			}
		}
		for _, key := range room.Items {
			if _, ok := defs.Items[key]; !ok {
				errorf("room %q holds undefined item %q", id, key)
			}
		}
		for _, key := range room.Monsters {
			if _, ok := defs.Monsters[key]; !ok {
				errorf("room %q holds undefined monster %q", id, key)
			}
		}
		if room.Description == "" {
			warnf("room %q has no description", id)
		}
	}

	if _, ok := defs.Rooms[defs.Game.Start]; ok {
		reached := reachable(defs, defs.Game.Start)
		for _, id := range sortedKeys(defs.Rooms) {
			if !reached[id] {
				warnf("room %q is unreachable from the start room", id)
			}
		}
	}

	return ve
}

// reachable walks the exit graph from start.
func reachable(defs *state.Defs, start string) map[string]bool {
	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, target := range defs.Rooms[id].Exits {
			if _, ok := defs.Rooms[target]; ok && !seen[target] {
				seen[target] = true
				queue = append(queue, target)
			}
		}
	}
	return seen
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
