package loader

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/questmud/content"
	"github.com/nathoo/questmud/types"
)

func luaFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, src := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(src)}
	}
	return fsys
}

const smallWorld = `
Game {
    title = "Small World",
    start = "village",
    player = { hp = 80, attack = 12 },
}

Item "sword" { name = "Sword", kind = "weapon", attack = 5, value = 10, description = "Sharp." }
Item "potion" { name = "Potion", kind = "potion", heal = 50 }
Monster "goblin" { name = "Goblin", hp = 30, attack = 8, defense = 2, exp = 20, gold = 15 }

Room "village" {
    name = "Village",
    description = "Quiet.",
    exits = { north = "forest" },
    items = { "potion", "potion" },
    npcs = { "Elder" },
    safe = true,
}

Room "forest" {
    description = "Dark.",
    exits = { south = "village" },
    items = { "sword" },
    monsters = { "goblin" },
}
`

func TestLoad_MinimalWorld(t *testing.T) {
	defs, err := Load("testdata/minimal")
	require.NoError(t, err)

	assert.Equal(t, "Minimal Test World", defs.Game.Title)
	assert.Equal(t, "hall", defs.Game.Start)
	require.Contains(t, defs.Rooms, "hall")
	assert.Equal(t, "A grand hall.", defs.Rooms["hall"].Description)
	assert.Equal(t, defaultPlayer, defs.Game.Player)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load("testdata/nope")
	assert.Error(t, err)
}

func TestLoadFS_SmallWorld(t *testing.T) {
	defs, err := LoadFS(luaFS(map[string]string{"world.lua": smallWorld}))
	require.NoError(t, err)

	p := defs.Game.Player
	assert.Equal(t, 80, p.HP)
	assert.Equal(t, 80, p.MaxHP, "max_hp defaults to hp")
	assert.Equal(t, 12, p.Attack)
	assert.Equal(t, 5, p.Defense, "defaults fill the rest")
	assert.Equal(t, 100, p.ExpNeeded)

	sword := defs.Items["sword"]
	assert.Equal(t, types.Item{
		Key: "sword", Name: "Sword", Kind: types.Weapon, AttackBonus: 5, Value: 10, Description: "Sharp.",
	}, sword)
	assert.Equal(t, types.Potion, defs.Items["potion"].Kind)

	goblin := defs.Monsters["goblin"]
	assert.Equal(t, 30, goblin.HP)
	assert.Equal(t, 30, goblin.MaxHP)
	assert.Equal(t, 20, goblin.ExpReward)
	assert.Equal(t, 15, goblin.GoldReward)

	village := defs.Rooms["village"]
	assert.Equal(t, map[types.Direction]string{types.North: "forest"}, village.Exits)
	assert.Equal(t, []string{"potion", "potion"}, village.Items)
	assert.Equal(t, []string{"Elder"}, village.NPCs)
	assert.True(t, village.Safe)

	forest := defs.Rooms["forest"]
	assert.Equal(t, "forest", forest.Name, "name defaults to the id")
	assert.False(t, forest.Safe)
}

func TestLoadFS_GameFileFirst(t *testing.T) {
	fsys := luaFS(map[string]string{
		"game.lua":  `Game { title = "Split", start = "a" } START = "a"`,
		"rooms.lua": `Room (START) { description = "A." }`,
	})
	defs, err := LoadFS(fsys)
	require.NoError(t, err)
	assert.Contains(t, defs.Rooms, "a")
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no game", `Room "a" { }`, "no Game"},
		{"lua syntax", `Game {`, "world.lua"},
		{"bad kind", `Game { title = "x", start = "a" } Room "a" {} Item "x" { kind = "spell" }`, `unknown kind "spell"`},
		{"bad direction", `Game { title = "x", start = "a" } Room "a" { exits = { up = "a" } }`, `unknown exit direction "up"`},
		{"duplicate room", `Game { title = "x", start = "a" } Room "a" {} Room "a" {}`, `duplicate room "a"`},
		{"missing start", `Game { title = "x", start = "b" } Room "a" {}`, `start room "b" not found`},
		{"missing title", `Game { start = "a" } Room "a" {}`, "Game.title is required"},
		{"dangling exit", `Game { title = "x", start = "a" } Room "a" { exits = { north = "b" } }`, `points to undefined room "b"`},
		{"unknown item", `Game { title = "x", start = "a" } Room "a" { items = { "ghost" } }`, `undefined item "ghost"`},
		{"unknown monster", `Game { title = "x", start = "a" } Room "a" { monsters = { "ghoul" } }`, `undefined monster "ghoul"`},
		{"dead monster", `Game { title = "x", start = "a" } Room "a" {} Monster "m" { hp = 0 }`, `monster "m" must have positive hp`},
		{"bad player", `Game { title = "x", start = "a", player = { hp = 120, max_hp = 100 } } Room "a" {}`, "player hp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(luaFS(map[string]string{"world.lua": tt.src}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFS_AggregatesErrors(t *testing.T) {
	src := `Game { start = "a" } Room "a" { exits = { north = "b" }, items = { "ghost" } }`
	_, err := LoadFS(luaFS(map[string]string{"world.lua": src}))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 3)
}

func TestLoadFS_Sandbox(t *testing.T) {
	for _, global := range []string{"dofile", "loadfile", "require", "io", "os"} {
		src := `assert(` + global + ` == nil, "` + global + ` is reachable") Game { title = "x", start = "a" } Room "a" {}`
		_, err := LoadFS(luaFS(map[string]string{"world.lua": src}))
		assert.NoError(t, err, global)
	}
}

func TestLoadFS_NoLuaFiles(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{"README": &fstest.MapFile{Data: []byte("hi")}})
	assert.ErrorContains(t, err, "no .lua files")
}

func TestCheck_Warnings(t *testing.T) {
	src := `
Game { title = "x", start = "a" }
Item "flask" { kind = "potion" }
Room "a" { description = "A." }
Room "island" { description = "Cut off." }
`
	defs, err := LoadFS(luaFS(map[string]string{"world.lua": src}))
	require.NoError(t, err, "warnings do not fail the load")

	ve := check(defs)
	assert.Empty(t, ve.Errors)
	assert.Contains(t, ve.Warnings, `potion "flask" heals nothing and can never be used`)
	assert.Contains(t, ve.Warnings, `room "island" is unreachable from the start room`)
}

func TestLoadFS_ShippedWorld(t *testing.T) {
	defs, err := LoadFS(content.World)
	require.NoError(t, err)
	assert.Empty(t, check(defs).Warnings)

	assert.Equal(t, "start_village", defs.Game.Start)
	assert.Len(t, defs.Items, 6)
	assert.Len(t, defs.Monsters, 4)
	assert.Len(t, defs.Rooms, 6)

	items := []struct {
		key                string
		kind               types.ItemKind
		atk, def, heal, vl int
	}{
		{"rusty_sword", types.Weapon, 5, 0, 0, 10},
		{"iron_sword", types.Weapon, 15, 0, 0, 50},
		{"leather_armor", types.Armor, 0, 3, 0, 20},
		{"iron_armor", types.Armor, 0, 8, 0, 80},
		{"health_potion", types.Potion, 0, 0, 50, 15},
		{"gold_coin", types.Treasure, 0, 0, 0, 100},
	}
	for _, want := range items {
		got := defs.Items[want.key]
		assert.Equal(t, want.kind, got.Kind, want.key)
		assert.Equal(t, want.atk, got.AttackBonus, want.key)
		assert.Equal(t, want.def, got.DefenseBonus, want.key)
		assert.Equal(t, want.heal, got.HealAmount, want.key)
		assert.Equal(t, want.vl, got.Value, want.key)
	}

	monsters := []struct {
		key                     string
		hp, atk, def, exp, gold int
	}{
		{"goblin", 30, 8, 2, 20, 15},
		{"orc", 60, 15, 5, 40, 30},
		{"troll", 100, 25, 10, 80, 60},
		{"dragon", 200, 40, 20, 200, 150},
	}
	for _, want := range monsters {
		got := defs.Monsters[want.key]
		assert.Equal(t, []int{want.hp, want.hp, want.atk, want.def, want.exp, want.gold},
			[]int{got.HP, got.MaxHP, got.Attack, got.Defense, got.ExpReward, got.GoldReward}, want.key)
	}

	lair := defs.Rooms["dragon_lair"]
	assert.Equal(t, []string{"gold_coin", "gold_coin"}, lair.Items)
	assert.Equal(t, []string{"dragon"}, lair.Monsters)
	assert.Equal(t, map[types.Direction]string{types.South: "mountain_pass"}, lair.Exits)

	pass := defs.Rooms["mountain_pass"]
	assert.Equal(t, []string{"orc", "troll"}, pass.Monsters)
	assert.True(t, defs.Rooms["start_village"].Safe)
}
