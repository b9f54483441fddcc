// Package types defines the shared data structures for the questmud engine.
// Apart from the enum String/Parse helpers, this package holds no logic.
package types

// Direction is one of the four compass exits a room can have.
type Direction int

const (
	North Direction = iota + 1
	South
	East
	West
)

var directionNames = map[Direction]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Directions returns every direction in declaration order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// ParseDirection maps a lowercase direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if name == s {
			return d, true
		}
	}
	return 0, false
}

// ItemKind classifies an item template.
type ItemKind int

const (
	Weapon ItemKind = iota + 1
	Armor
	Potion
	Treasure
)

var itemKindNames = map[ItemKind]string{
	Weapon:   "weapon",
	Armor:    "armor",
	Potion:   "potion",
	Treasure: "treasure",
}

func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseItemKind maps a lowercase kind name to an ItemKind.
func ParseItemKind(s string) (ItemKind, bool) {
	for k, name := range itemKindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Item is an item instance. Rooms and the inventory hold *Item, so two
// items with the same name are still distinct.
type Item struct {
	Key          string // catalog key
	Name         string
	Kind         ItemKind
	AttackBonus  int
	DefenseBonus int
	HealAmount   int
	Value        int
	Description  string
}

// Monster is a monster template or a live combatant copied from one.
type Monster struct {
	Key         string // catalog key
	Name        string
	HP          int
	MaxHP       int
	Attack      int
	Defense     int
	ExpReward   int
	GoldReward  int
	Description string
}

// RoomDef is the static definition of a room. Items and monsters are
// catalog keys, instantiated when the world is built.
type RoomDef struct {
	ID          string
	Name        string
	Description string
	Exits       map[Direction]string // direction → room_id
	Items       []string
	Monsters    []string
	NPCs        []string
	Safe        bool
}

// Room is a live room in the world graph.
type Room struct {
	ID          string
	Name        string
	Description string
	Exits       map[Direction]string
	Items       []*Item
	Monsters    []Monster
	NPCs        []string
	Safe        bool // advisory unless the safe-room rule is enabled
}

// PlayerDef holds the starting stats from the game content.
type PlayerDef struct {
	Level     int
	HP        int
	MaxHP     int
	Exp       int
	ExpNeeded int
	Attack    int
	Defense   int
	Gold      int
}

// GameDef holds game metadata from Lua.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Start   string // starting room ID
	Intro   string
	Player  PlayerDef
}

// Player holds the player's runtime state. The player is in combat
// exactly when Monster is non-nil.
type Player struct {
	Level     int
	HP        int
	MaxHP     int
	Exp       int
	ExpNeeded int
	Attack    int
	Defense   int
	Gold      int
	Location  string
	Inventory []*Item
	Weapon    *Item
	Armor     *Item
	Monster   *Monster
}

// State is the complete mutable game state of one session.
type State struct {
	Player      Player
	Rooms       map[string]*Room
	TurnCount   int
	RNGSeed     int64
	RNGPosition int64
	CommandLog  []string
}

// CommandKind is the closed set of commands the interpreter dispatches.
type CommandKind int

const (
	CmdNone CommandKind = iota // empty input
	CmdGo
	CmdAttack
	CmdFlee
	CmdLook
	CmdTake
	CmdUse
	CmdInventory
	CmdHelp
	CmdQuit
	CmdUnknown
)

// Command is the parsed representation of a player command.
type Command struct {
	Kind CommandKind
	Dir  Direction // set for CmdGo
	Raw  string    // normalized input
}

// Event is emitted by every state mutation.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single game step.
type Result struct {
	Events []Event
	Output []string
	Quit   bool
}
