package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/questmud/types"
)

func testDefs() *Defs {
	return &Defs{
		Game: types.GameDef{
			Title:   "Test Game",
			Version: "0.1.0",
			Start:   "village",
			Player: types.PlayerDef{
				Level: 1, HP: 100, MaxHP: 100, ExpNeeded: 100, Attack: 10, Defense: 5,
			},
		},
		Items: map[string]types.Item{
			"potion": {Key: "potion", Name: "Health Potion", Kind: types.Potion, HealAmount: 50},
			"coin":   {Key: "coin", Name: "Gold Coin", Kind: types.Treasure, Value: 100},
		},
		Monsters: map[string]types.Monster{
			"goblin": {Key: "goblin", Name: "Goblin", HP: 30, MaxHP: 30, Attack: 8, Defense: 2},
		},
		Rooms: map[string]types.RoomDef{
			"village": {
				ID:    "village",
				Name:  "Village",
				Exits: map[types.Direction]string{types.North: "forest", types.East: "road"},
				Items: []string{"potion"},
				NPCs:  []string{"Village Elder"},
				Safe:  true,
			},
			"forest": {
				ID:       "forest",
				Name:     "Forest",
				Exits:    map[types.Direction]string{types.South: "village"},
				Items:    []string{"coin", "coin"},
				Monsters: []string{"goblin"},
			},
			"road": {
				ID:    "road",
				Name:  "Road",
				Exits: map[types.Direction]string{types.West: "village"},
			},
		},
	}
}

func TestNewState(t *testing.T) {
	s := NewState(testDefs())

	assert.Equal(t, "village", s.Player.Location)
	assert.Equal(t, 100, s.Player.HP)
	assert.Equal(t, 100, s.Player.ExpNeeded)
	assert.Equal(t, 10, s.Player.Attack)
	assert.Empty(t, s.Player.Inventory)
	assert.False(t, InCombat(s))
	assert.Len(t, s.Rooms, 3)

	village := s.Rooms["village"]
	require.Len(t, village.Items, 1)
	assert.Equal(t, "Health Potion", village.Items[0].Name)
	assert.True(t, village.Safe)
	assert.Equal(t, []string{"Village Elder"}, village.NPCs)
}

func TestNewState_DistinctInstances(t *testing.T) {
	s := NewState(testDefs())

	coins := s.Rooms["forest"].Items
	require.Len(t, coins, 2)
	assert.NotSame(t, coins[0], coins[1], "two coins must be two instances")
	assert.Equal(t, *coins[0], *coins[1])
}

func TestNewState_DoesNotAliasDefs(t *testing.T) {
	defs := testDefs()
	s := NewState(defs)

	s.Rooms["forest"].Monsters[0].HP = 1
	s.Rooms["village"].Items[0].HealAmount = 0
	s.Rooms["village"].Exits[types.West] = "nowhere"

	assert.Equal(t, 30, defs.Monsters["goblin"].HP)
	assert.Equal(t, 50, defs.Items["potion"].HealAmount)
	assert.NotContains(t, defs.Rooms["village"].Exits, types.West)

	fresh := NewState(defs)
	assert.Equal(t, 30, fresh.Rooms["forest"].Monsters[0].HP)
}

func TestNewState_SkipsUnknownKeys(t *testing.T) {
	defs := testDefs()
	road := defs.Rooms["road"]
	road.Items = []string{"ghost"}
	road.Monsters = []string{"phantom"}
	defs.Rooms["road"] = road

	s := NewState(defs)
	assert.Empty(t, s.Rooms["road"].Items)
	assert.Empty(t, s.Rooms["road"].Monsters)
}

func TestCurrentRoom(t *testing.T) {
	s := NewState(testDefs())
	assert.Equal(t, "village", CurrentRoom(s).ID)

	s.Player.Location = "limbo"
	assert.Panics(t, func() { CurrentRoom(s) })
}

func TestMove(t *testing.T) {
	s := NewState(testDefs())

	require.True(t, Move(s, types.North))
	assert.Equal(t, "forest", s.Player.Location)

	assert.False(t, Move(s, types.North))
	assert.Equal(t, "forest", s.Player.Location)

	require.True(t, Move(s, types.South))
	assert.Equal(t, "village", s.Player.Location)
}

func TestInCombat(t *testing.T) {
	s := NewState(testDefs())
	assert.False(t, InCombat(s))
	s.Player.Monster = &types.Monster{Name: "Goblin"}
	assert.True(t, InCombat(s))
}

func TestHasItem(t *testing.T) {
	s := NewState(testDefs())
	coins := s.Rooms["forest"].Items

	s.Player.Inventory = append(s.Player.Inventory, coins[0])
	assert.True(t, HasItem(s, coins[0]))
	assert.False(t, HasItem(s, coins[1]), "identity, not equality")
	assert.True(t, RoomHasItem(s.Rooms["forest"], coins[1]))
	assert.False(t, RoomHasItem(s.Rooms["village"], coins[1]))
}

func TestExitDirections(t *testing.T) {
	s := NewState(testDefs())
	assert.Equal(t, []types.Direction{types.North, types.East}, ExitDirections(s.Rooms["village"]))
	assert.Empty(t, ExitDirections(&types.Room{}))
}

func TestRemoveItem(t *testing.T) {
	a := &types.Item{Name: "A"}
	b := &types.Item{Name: "B"}
	c := &types.Item{Name: "A"}
	items := []*types.Item{a, b, c}

	got, ok := RemoveItem(items, c)
	require.True(t, ok)
	assert.Equal(t, []*types.Item{a, b}, got)
	assert.Same(t, a, got[0])

	// The input slice is not clobbered.
	assert.Same(t, c, items[2])

	got, ok = RemoveItem(got, c)
	assert.False(t, ok)
	assert.Len(t, got, 2)
}
