package loader

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the world constructors as globals.
//
//	Game { title = "...", start = "room_id", player = { hp = 100 } }
//	Item "rusty_sword" { name = "...", kind = "weapon", attack = 5 }
//	Monster "goblin" { name = "...", hp = 30, attack = 8 }
//	Room "start_village" { name = "...", exits = { north = "..." } }
func registerAPI(L *lua.LState, coll *collector) {
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("Item", curried(L, func(d rawDef) { coll.items = append(coll.items, d) }))
	L.SetGlobal("Monster", curried(L, func(d rawDef) { coll.monsters = append(coll.monsters, d) }))
	L.SetGlobal("Room", curried(L, func(d rawDef) { coll.rooms = append(coll.rooms, d) }))
}

// curried builds a `Kind "id" { ... }` constructor: the call with the id
// returns a function that takes the body table.
func curried(L *lua.LState, add func(rawDef)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		line := currentLine(L)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			add(rawDef{id: id, line: line, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	})
}

// currentLine reports where the calling Lua code is, e.g. "world.lua:12".
func currentLine(L *lua.LState) string {
	return strings.TrimSuffix(L.Where(1), ":")
}
