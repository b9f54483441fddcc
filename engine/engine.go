// Package engine provides the Step() orchestrator that wires parsing,
// movement, combat, inventory, and room events into a single turn.
package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nathoo/questmud/engine/events"
	"github.com/nathoo/questmud/engine/parser"
	"github.com/nathoo/questmud/engine/state"
	"github.com/nathoo/questmud/types"
)

// Rules toggles optional gameplay rules. The zero value is the classic
// behavior: equipment is bookkeeping only and safe rooms are advisory.
type Rules struct {
	// EquipmentBonuses folds the equipped weapon's attack bonus and the
	// equipped armor's defense bonus into combat math.
	EquipmentBonuses bool
	// SafeRooms suppresses encounters in rooms marked safe.
	SafeRooms bool
}

// Engine is one game session: definitions, mutable state, randomness, and
// rules. Sessions share nothing, so several can run side by side.
type Engine struct {
	ID    uuid.UUID
	Defs  *state.Defs
	State *types.State
	RNG   Source
	Rules Rules

	log     *slog.Logger
	pending []types.Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the engine's RNG.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.State.RNGSeed = seed
		e.RNG = NewRNG(seed)
	}
}

// WithSource replaces the RNG, typically with a fixed source in tests.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.RNG = src
	}
}

// WithRules enables optional gameplay rules.
func WithRules(r Rules) Option {
	return func(e *Engine) {
		e.Rules = r
	}
}

// WithLogger sets the logger. Engines log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New creates a new game session from definitions, starting in the
// content's start room.
func New(defs *state.Defs, opts ...Option) *Engine {
	s := state.NewState(defs)
	e := &Engine{
		ID:    uuid.New(),
		Defs:  defs,
		State: s,
		RNG:   NewRNG(s.RNGSeed),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("session", e.ID.String())
	return e
}

// CurrentRoom returns the room the player is in.
func (e *Engine) CurrentRoom() *types.Room {
	return state.CurrentRoom(e.State)
}

// Move moves the player through an exit. Returns false, changing nothing,
// if the current room has no exit that way. Room events are not checked
// here; callers run CheckRoomEvents after a successful move.
func (e *Engine) Move(dir types.Direction) bool {
	from := e.State.Player.Location
	if !state.Move(e.State, dir) {
		return false
	}
	e.emit(events.New(events.Moved, "from", from, "to", e.State.Player.Location, "direction", dir.String()))
	return true
}

// CheckRoomEvents runs the room-entry hook: if the room holds monsters and
// the player is not already fighting, one of them attacks. Returns the
// encounter text, or "" when nothing happens.
func (e *Engine) CheckRoomEvents() string {
	m, ok := events.CheckEncounter(e.State, e.Rules.SafeRooms, e.RNG.Intn)
	if !ok {
		return ""
	}
	e.StartCombat(m)
	return fmt.Sprintf("!!! The %s appears! !!!\n%s", m.Name, m.Description)
}

// DrainEvents returns and clears the events emitted since the last drain.
func (e *Engine) DrainEvents() []types.Event {
	evts := e.pending
	e.pending = nil
	return evts
}

func (e *Engine) emit(ev types.Event) {
	e.pending = append(e.pending, ev)
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result
	e.pending = nil

	cmd := parser.Parse(input)
	e.State.CommandLog = append(e.State.CommandLog, input)

	switch cmd.Kind {
	case types.CmdNone:
		result.Output = append(result.Output, "What do you want to do?")
	case types.CmdGo:
		result.Output = append(result.Output, e.stepGo(cmd.Dir)...)
	case types.CmdAttack:
		result.Output = append(result.Output, lines(e.Attack())...)
	case types.CmdFlee:
		result.Output = append(result.Output, lines(e.Flee())...)
	case types.CmdLook:
		result.Output = append(result.Output, e.Look()...)
	case types.CmdTake:
		result.Output = append(result.Output, e.stepTake())
	case types.CmdUse:
		result.Output = append(result.Output, e.stepUse())
	case types.CmdInventory:
		result.Output = append(result.Output, e.describeInventory()...)
	case types.CmdHelp:
		result.Output = append(result.Output, HelpText...)
	case types.CmdQuit:
		result.Quit = true
		result.Output = append(result.Output, "Farewell, adventurer.")
	case types.CmdUnknown:
		result.Output = append(result.Output, "Unknown command: "+cmd.Raw)
	}

	result.Events = e.DrainEvents()

	if p, ok := e.RNG.(interface{ Position() int64 }); ok {
		e.State.RNGPosition = p.Position()
	}
	e.State.TurnCount++

	e.log.Debug("step",
		"turn", e.State.TurnCount,
		"command", cmd.Raw,
		"location", e.State.Player.Location,
		"events", events.Types(result.Events),
	)

	return result
}

// HelpText lists the game commands.
var HelpText = []string{
	"=== Help ===",
	"Movement:",
	"  north/south/east/west, n/s/e/w, go <direction>",
	"Combat:",
	"  attack (a)     - Strike the monster you are fighting",
	"  flee (f)       - Try to escape (70% chance)",
	"Other:",
	"  look (l)       - Describe your surroundings",
	"  get (g)        - Pick up the first item in the room",
	"  inventory (i)  - List what you are carrying",
	"  use (u)        - Use or equip the first item you carry",
	"  help (h)       - Show this help",
	"  quit (q)       - Leave the game",
	"Goal:",
	"  Defeat monsters for experience and gold, level up,",
	"  and slay the dragon to become a legend.",
}

func (e *Engine) stepGo(dir types.Direction) []string {
	if !e.Move(dir) {
		return []string{fmt.Sprintf("You can't go %s.", dir)}
	}
	out := []string{fmt.Sprintf("You head %s.", dir)}
	if text := e.CheckRoomEvents(); text != "" {
		out = append(out, lines(text)...)
	}
	return out
}

func (e *Engine) stepTake() string {
	room := e.CurrentRoom()
	if len(room.Items) == 0 {
		return "There is nothing here to pick up."
	}
	return e.PickUp(room.Items[0])
}

func (e *Engine) stepUse() string {
	inv := e.State.Player.Inventory
	if len(inv) == 0 {
		return "You have nothing to use."
	}
	return e.Use(inv[0])
}

// Look describes the current room without taking a turn.
func (e *Engine) Look() []string {
	room := e.CurrentRoom()

	output := []string{
		fmt.Sprintf("=== %s ===", room.Name),
		room.Description,
	}

	if len(room.Items) > 0 {
		names := make([]string, len(room.Items))
		for i, it := range room.Items {
			names[i] = it.Name
		}
		output = append(output, "Items: "+strings.Join(names, ", "))
	}
	if len(room.Monsters) > 0 {
		names := make([]string, len(room.Monsters))
		for i, m := range room.Monsters {
			names[i] = m.Name
		}
		output = append(output, "Monsters: "+strings.Join(names, ", "))
	}
	if len(room.NPCs) > 0 {
		output = append(output, "People: "+strings.Join(room.NPCs, ", "))
	}

	dirs := state.ExitDirections(room)
	if len(dirs) > 0 {
		names := make([]string, len(dirs))
		for i, d := range dirs {
			names[i] = d.String()
		}
		output = append(output, "Exits: "+strings.Join(names, ", "))
	}

	return output
}

func (e *Engine) describeInventory() []string {
	p := &e.State.Player
	if len(p.Inventory) == 0 {
		return []string{"Your inventory is empty."}
	}
	output := []string{"=== Inventory ==="}
	for i, it := range p.Inventory {
		line := fmt.Sprintf("%d. %s - %s", i+1, it.Name, it.Description)
		if it == p.Weapon || it == p.Armor {
			line += " (equipped)"
		}
		output = append(output, line)
	}
	return output
}

// lines splits multi-line engine text into output lines.
func lines(text string) []string {
	return strings.Split(text, "\n")
}
