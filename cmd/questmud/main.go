// Questmud is a turn-based text adventure: wander the world, fight monsters,
// collect gear, and level up.
// Usage: questmud [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [--world <dir>]
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/nathoo/questmud/cli"
	"github.com/nathoo/questmud/config"
	"github.com/nathoo/questmud/content"
	"github.com/nathoo/questmud/engine"
	"github.com/nathoo/questmud/engine/state"
	"github.com/nathoo/questmud/loader"
	"github.com/nathoo/questmud/logger"
	"github.com/nathoo/questmud/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: questmud [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [--world <dir>]"

func main() {
	plain := false
	trace := false
	var worldDir, scriptFile, seedArg string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("questmud %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--help", "-h":
			fmt.Println(usage)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script", "--seed", "--world":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a value\n", args[i])
				os.Exit(1)
			}
			switch args[i] {
			case "--script":
				scriptFile = args[i+1]
			case "--seed":
				seedArg = args[i+1]
			default:
				worldDir = args[i+1]
			}
			i++
		default:
			if worldDir == "" {
				worldDir = args[i]
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if seedArg != "" {
		seed, err := strconv.ParseInt(seedArg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid --seed %q: %v\n\n%s\n", seedArg, err, usage)
			os.Exit(1)
		}
		cfg.Seed = seed
	}
	if worldDir == "" {
		worldDir = cfg.WorldDir
	}

	useTUI := scriptFile == "" && !plain && isatty.IsTerminal(os.Stdout.Fd())

	log, closeLog, err := newLogger(cfg, useTUI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(log)

	defs, err := loadWorld(worldDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng := engine.New(defs,
		engine.WithSeed(seed),
		engine.WithRules(engine.Rules{
			EquipmentBonuses: cfg.EquipmentBonuses,
			SafeRooms:        cfg.SafeRooms,
		}),
		engine.WithLogger(log),
	)
	log.Info("session started",
		"session", eng.ID.String(),
		"world", defs.Game.Title,
		"seed", seed,
		"mode", mode(scriptFile, useTUI),
	)

	if useTUI {
		if err := tui.Run(eng); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%s v%s by %s\n\n", defs.Game.Title, defs.Game.Version, defs.Game.Author)
	c := cli.New(eng)
	c.Trace = trace

	// Script mode: read commands from the file and echo them.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c.In = f
		c.EchoInput = true
	}

	if err := c.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadWorld reads .lua files from dir, or the built-in world when dir is empty.
func loadWorld(dir string) (*state.Defs, error) {
	if dir == "" {
		return loader.LoadFS(content.World)
	}
	return loader.Load(dir)
}

// newLogger builds the process logger. The TUI owns the screen, so it only
// logs to a file. Line mode logs warnings and up to stderr unless a file is set.
func newLogger(cfg *config.Config, useTUI bool) (*slog.Logger, func(), error) {
	lc := logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Version: version,
	}

	if cfg.LogFile != "" {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, nil, err
		}
		return logger.New(lc, f), func() { f.Close() }, nil
	}
	if useTUI {
		return logger.Discard(), func() {}, nil
	}

	if lc.LogLevel() < slog.LevelWarn {
		lc.Level = "warn"
	}
	return logger.New(lc, os.Stderr), func() {}, nil
}

func mode(scriptFile string, useTUI bool) string {
	switch {
	case scriptFile != "":
		return "script"
	case useTUI:
		return "tui"
	default:
		return "plain"
	}
}
