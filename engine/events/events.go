// Package events names the events the engine emits and implements the
// room-entry check that turns a monster-filled room into an encounter.
package events

import (
	"github.com/nathoo/questmud/engine/state"
	"github.com/nathoo/questmud/types"
)

// Event types.
const (
	Moved      = "moved"
	Encounter  = "encounter"
	Hit        = "hit"
	Victory    = "victory"
	LevelUp    = "level_up"
	Survived   = "survived"
	Fled       = "fled"
	FleeFailed = "flee_failed"
	PickedUp   = "picked_up"
	Consumed   = "consumed"
	Equipped   = "equipped"
)

// New builds an event from alternating key/value pairs.
func New(typ string, kv ...any) types.Event {
	ev := types.Event{Type: typ}
	if len(kv) > 0 {
		ev.Data = make(map[string]any, len(kv)/2)
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			ev.Data[k] = kv[i+1]
		}
	}
	return ev
}

// Types returns the type names of evts, in order.
func Types(evts []types.Event) []string {
	names := make([]string, len(evts))
	for i, e := range evts {
		names[i] = e.Type
	}
	return names
}

// CheckEncounter decides whether entering the current room starts a fight.
// It picks one of the room's monsters uniformly using pick, which must
// return a value in [0, n). No encounter happens while already in combat,
// in an empty room, or (when safeRooms is set) in a room marked safe.
// The returned monster is a copy; the room keeps its own.
func CheckEncounter(s *types.State, safeRooms bool, pick func(n int) int) (types.Monster, bool) {
	if state.InCombat(s) {
		return types.Monster{}, false
	}
	room := state.CurrentRoom(s)
	if len(room.Monsters) == 0 {
		return types.Monster{}, false
	}
	if safeRooms && room.Safe {
		return types.Monster{}, false
	}
	return room.Monsters[pick(len(room.Monsters))], true
}
