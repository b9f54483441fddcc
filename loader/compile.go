package loader

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/questmud/engine/state"
	"github.com/nathoo/questmud/types"
)

// rawDef holds an Item, Monster, or Room table before compilation.
type rawDef struct {
	id    string
	line  string
	table *lua.LTable
}

func (d rawDef) String() string {
	if d.line == "" {
		return fmt.Sprintf("%q", d.id)
	}
	return fmt.Sprintf("%q (%s)", d.id, d.line)
}

// defaultPlayer is used for any stat the Game table leaves out.
var defaultPlayer = types.PlayerDef{
	Level:     1,
	HP:        100,
	MaxHP:     100,
	ExpNeeded: 100,
	Attack:    10,
	Defense:   5,
}

// compile turns the collected Lua tables into Defs. Problems that make a
// definition unrepresentable (unknown kinds, bad directions, duplicate ids)
// are reported together as a *ValidationError.
func compile(coll *collector) (*state.Defs, error) {
	if coll.game == nil {
		return nil, errors.New("no Game { ... } definition found")
	}

	ve := &ValidationError{}
	defs := &state.Defs{
		Game:     compileGame(coll.game),
		Items:    make(map[string]types.Item, len(coll.items)),
		Monsters: make(map[string]types.Monster, len(coll.monsters)),
		Rooms:    make(map[string]types.RoomDef, len(coll.rooms)),
	}

	for _, raw := range coll.items {
		if _, dup := defs.Items[raw.id]; dup {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate item %s", raw))
			continue
		}
		it, err := compileItem(raw)
		if err != nil {
			ve.Errors = append(ve.Errors, err.Error())
			continue
		}
		defs.Items[raw.id] = it
	}

	for _, raw := range coll.monsters {
		if _, dup := defs.Monsters[raw.id]; dup {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate monster %s", raw))
			continue
		}
		defs.Monsters[raw.id] = compileMonster(raw)
	}

	for _, raw := range coll.rooms {
		if _, dup := defs.Rooms[raw.id]; dup {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate room %s", raw))
			continue
		}
		room, errs := compileRoom(raw)
		ve.Errors = append(ve.Errors, errs...)
		defs.Rooms[raw.id] = room
	}

	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	g := types.GameDef{
		Title:   getString(tbl, "title"),
		Author:  getString(tbl, "author"),
		Version: getString(tbl, "version"),
		Start:   getString(tbl, "start"),
		Intro:   getString(tbl, "intro"),
		Player:  defaultPlayer,
	}

	p := getTable(tbl, "player")
	if p == nil {
		return g
	}
	g.Player.Level = getIntOr(p, "level", defaultPlayer.Level)
	g.Player.HP = getIntOr(p, "hp", defaultPlayer.HP)
	g.Player.MaxHP = getIntOr(p, "max_hp", g.Player.HP)
	g.Player.Exp = getIntOr(p, "exp", 0)
	g.Player.ExpNeeded = getIntOr(p, "exp_needed", defaultPlayer.ExpNeeded)
	g.Player.Attack = getIntOr(p, "attack", defaultPlayer.Attack)
	g.Player.Defense = getIntOr(p, "defense", defaultPlayer.Defense)
	g.Player.Gold = getIntOr(p, "gold", 0)
	return g
}

func compileItem(raw rawDef) (types.Item, error) {
	tbl := raw.table
	kindName := getString(tbl, "kind")
	kind, ok := types.ParseItemKind(kindName)
	if !ok {
		return types.Item{}, fmt.Errorf("item %s: unknown kind %q", raw, kindName)
	}
	return types.Item{
		Key:          raw.id,
		Name:         getStringOr(tbl, "name", raw.id),
		Kind:         kind,
		AttackBonus:  getInt(tbl, "attack"),
		DefenseBonus: getInt(tbl, "defense"),
		HealAmount:   getInt(tbl, "heal"),
		Value:        getInt(tbl, "value"),
		Description:  getString(tbl, "description"),
	}, nil
}

func compileMonster(raw rawDef) types.Monster {
	tbl := raw.table
	hp := getInt(tbl, "hp")
	return types.Monster{
		Key:         raw.id,
		Name:        getStringOr(tbl, "name", raw.id),
		HP:          hp,
		MaxHP:       getIntOr(tbl, "max_hp", hp),
		Attack:      getInt(tbl, "attack"),
		Defense:     getInt(tbl, "defense"),
		ExpReward:   getInt(tbl, "exp"),
		GoldReward:  getInt(tbl, "gold"),
		Description: getString(tbl, "description"),
	}
}

func compileRoom(raw rawDef) (types.RoomDef, []string) {
	tbl := raw.table
	var errs []string

	room := types.RoomDef{
		ID:          raw.id,
		Name:        getStringOr(tbl, "name", raw.id),
		Description: getString(tbl, "description"),
		Exits:       map[types.Direction]string{},
		Items:       stringList(getTable(tbl, "items")),
		Monsters:    stringList(getTable(tbl, "monsters")),
		NPCs:        stringList(getTable(tbl, "npcs")),
		Safe:        getBool(tbl, "safe", false),
	}

	if exits := getTable(tbl, "exits"); exits != nil {
		exits.ForEach(func(k, v lua.LValue) {
			name, _ := k.(lua.LString)
			dir, ok := types.ParseDirection(string(name))
			if !ok {
				errs = append(errs, fmt.Sprintf("room %s: unknown exit direction %q", raw, k.String()))
				return
			}
			target, ok := v.(lua.LString)
			if !ok {
				errs = append(errs, fmt.Sprintf("room %s: exit %s must name a room", raw, dir))
				return
			}
			room.Exits[dir] = string(target)
		})
	}

	return room, errs
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	return getStringOr(tbl, key, "")
}

// getStringOr returns a string field from a Lua table, or def if missing.
func getStringOr(tbl *lua.LTable, key, def string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return def
}

// getBool returns a bool field from a Lua table, or def if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return getIntOr(tbl, key, 0)
}

// getIntOr returns an int field from a Lua table, or def if missing.
func getIntOr(tbl *lua.LTable, key string, def int) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// stringList reads the array part of tbl as strings, skipping non-strings.
func stringList(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}
