// Package state manages the catalog definitions and the mutable world:
// rooms, the player, and the movement rules over the room graph.
package state

import (
	"fmt"

	"github.com/nathoo/questmud/types"
)

// Defs holds the immutable catalog and room definitions loaded from Lua.
type Defs struct {
	Game     types.GameDef
	Items    map[string]types.Item
	Monsters map[string]types.Monster
	Rooms    map[string]types.RoomDef
}

// Item looks up an item template by catalog key.
func (d *Defs) Item(key string) (types.Item, bool) {
	it, ok := d.Items[key]
	return it, ok
}

// Monster looks up a monster template by catalog key.
func (d *Defs) Monster(key string) (types.Monster, bool) {
	m, ok := d.Monsters[key]
	return m, ok
}

// NewState creates a fresh game state from definitions. Every room item
// becomes its own instance, and every room monster is a copy of its
// template, so no two rooms share mutable data with the catalog.
// Unknown catalog keys are skipped; the loader rejects them up front.
func NewState(defs *Defs) *types.State {
	p := defs.Game.Player
	s := &types.State{
		Player: types.Player{
			Level:     p.Level,
			HP:        p.HP,
			MaxHP:     p.MaxHP,
			Exp:       p.Exp,
			ExpNeeded: p.ExpNeeded,
			Attack:    p.Attack,
			Defense:   p.Defense,
			Gold:      p.Gold,
			Location:  defs.Game.Start,
			Inventory: []*types.Item{},
		},
		Rooms:      make(map[string]*types.Room, len(defs.Rooms)),
		CommandLog: []string{},
	}

	for id, def := range defs.Rooms {
		room := &types.Room{
			ID:          id,
			Name:        def.Name,
			Description: def.Description,
			Exits:       make(map[types.Direction]string, len(def.Exits)),
			Items:       []*types.Item{},
			Monsters:    []types.Monster{},
			NPCs:        append([]string(nil), def.NPCs...),
			Safe:        def.Safe,
		}
		for dir, target := range def.Exits {
			room.Exits[dir] = target
		}
		for _, key := range def.Items {
			if tmpl, ok := defs.Item(key); ok {
				it := tmpl
				room.Items = append(room.Items, &it)
			}
		}
		for _, key := range def.Monsters {
			if tmpl, ok := defs.Monster(key); ok {
				room.Monsters = append(room.Monsters, tmpl)
			}
		}
		s.Rooms[id] = room
	}

	return s
}

// CurrentRoom returns the room the player is standing in. A location that
// is not in the world graph means the state is corrupt, so it panics.
func CurrentRoom(s *types.State) *types.Room {
	room, ok := s.Rooms[s.Player.Location]
	if !ok {
		panic(fmt.Sprintf("state: player location %q is not a room", s.Player.Location))
	}
	return room
}

// Move moves the player through the exit in the given direction.
// Returns false and leaves the state untouched if there is no such exit.
func Move(s *types.State, dir types.Direction) bool {
	target, ok := CurrentRoom(s).Exits[dir]
	if !ok {
		return false
	}
	s.Player.Location = target
	return true
}

// InCombat reports whether the player is fighting a monster.
func InCombat(s *types.State) bool {
	return s.Player.Monster != nil
}

// HasItem returns true if the given instance is in the player's inventory.
func HasItem(s *types.State, item *types.Item) bool {
	return indexOf(s.Player.Inventory, item) >= 0
}

// RoomHasItem returns true if the given instance lies in the room.
func RoomHasItem(room *types.Room, item *types.Item) bool {
	return indexOf(room.Items, item) >= 0
}

// ExitDirections returns the room's exits in declaration order.
func ExitDirections(room *types.Room) []types.Direction {
	var dirs []types.Direction
	for _, d := range types.Directions() {
		if _, ok := room.Exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// RemoveItem removes one occurrence of item (by identity) from items.
func RemoveItem(items []*types.Item, item *types.Item) ([]*types.Item, bool) {
	i := indexOf(items, item)
	if i < 0 {
		return items, false
	}
	return append(items[:i:i], items[i+1:]...), true
}

func indexOf(items []*types.Item, item *types.Item) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}
