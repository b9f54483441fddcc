// Package cli provides line-mode terminal I/O, output formatting, and
// meta-command dispatch for the questmud engine. It also plays back
// command scripts.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/questmud/engine"
	"github.com/nathoo/questmud/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
	Panels    bool // draw the character/room/combat panels after each turn
	lastCmd   string
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It shows the intro, describes the starting room,
// then loops: prompt → input → dispatch → output. It returns when the input
// ends or the player quits.
func (c *CLI) Run() error {
	if intro := c.Engine.Defs.Game.Intro; intro != "" {
		c.printLine(intro)
		c.printLine("")
	}
	for _, line := range c.Engine.Look() {
		c.printLine(line)
	}
	c.printPanels()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return nil
			}
			continue
		}

		// "again" repeats the last game command.
		if strings.EqualFold(input, "again") {
			if c.lastCmd == "" {
				c.printSystem("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)

		if c.Trace {
			c.printTrace(result)
		}
		if result.Quit {
			return nil
		}
		c.printPanels()
	}
	c.printLine("")
	return scanner.Err()
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.ToLower(strings.Fields(input)[0])

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		c.printSystem("Trace output " + onOff(c.Trace) + ".")

	case "/panels":
		c.Panels = !c.Panels
		c.printSystem("Status panels " + onOff(c.Panels) + ".")
		c.printPanels()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

// MetaHelp lists the meta-commands shared by the CLI and the TUI.
var MetaHelp = []string{
	"System:",
	"  /quit    - Exit game",
	"  /help    - Show this help",
	"  /state   - Debug: dump current state",
	"  /trace   - Toggle event trace output",
	"  /panels  - Toggle the status panels",
	"  again    - Repeat your last command",
	"",
}

func (c *CLI) cmdHelp() {
	for _, line := range MetaHelp {
		c.printLine(line)
	}
	for _, line := range engine.HelpText {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	for _, line := range StateDump(c.Engine) {
		c.printSystem(line)
	}
}

// StateDump renders the session state for the /state meta-command.
func StateDump(eng *engine.Engine) []string {
	s := eng.State
	p := s.Player
	lines := []string{
		fmt.Sprintf("Session: %s", eng.ID),
		fmt.Sprintf("Turn: %d  Seed: %d  RNG position: %d", s.TurnCount, s.RNGSeed, s.RNGPosition),
		fmt.Sprintf("Location: %s", p.Location),
		fmt.Sprintf("Level %d  HP %d/%d  Exp %d/%d  Atk %d  Def %d  Gold %d",
			p.Level, p.HP, p.MaxHP, p.Exp, p.ExpNeeded, p.Attack, p.Defense, p.Gold),
		fmt.Sprintf("Inventory: [%s]", strings.Join(itemNames(p.Inventory), ", ")),
		fmt.Sprintf("Weapon: %s  Armor: %s", itemName(p.Weapon), itemName(p.Armor)),
	}
	if p.Monster != nil {
		lines = append(lines, fmt.Sprintf("Fighting: %s %d/%d", p.Monster.Name, p.Monster.HP, p.Monster.MaxHP))
	}
	return lines
}

// TraceLines renders a result's events for the /trace meta-command.
func TraceLines(result types.Result) []string {
	if len(result.Events) == 0 {
		return nil
	}
	lines := []string{fmt.Sprintf("[trace] Events: %d", len(result.Events))}
	for _, e := range result.Events {
		if len(e.Data) == 0 {
			lines = append(lines, fmt.Sprintf("[trace]   %s", e.Type))
			continue
		}
		lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
	return lines
}

func (c *CLI) printTrace(result types.Result) {
	for _, line := range TraceLines(result) {
		c.printLine(line)
	}
}

func (c *CLI) printPanels() {
	if !c.Panels {
		return
	}
	for _, line := range Panels(c.Engine.State) {
		c.printLine(line)
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func itemName(it *types.Item) string {
	if it == nil {
		return "-"
	}
	return it.Name
}

func itemNames(items []*types.Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}
