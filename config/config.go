// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSeed             = "QUESTMUD_SEED"
	EnvLogLevel         = "QUESTMUD_LOG_LEVEL"
	EnvLogFormat        = "QUESTMUD_LOG_FORMAT"
	EnvLogFile          = "QUESTMUD_LOG_FILE"
	EnvWorldDir         = "QUESTMUD_WORLD_DIR"
	EnvEquipmentBonuses = "QUESTMUD_EQUIPMENT_BONUSES"
	EnvSafeRooms        = "QUESTMUD_SAFE_ROOMS"
)

// Config holds the application configuration.
type Config struct {
	// Seed for the game RNG. Zero means pick one from the clock.
	Seed      int64
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
	LogFile   string
	// WorldDir overrides the embedded world with .lua files on disk.
	WorldDir         string
	EquipmentBonuses bool
	SafeRooms        bool
}

// Load loads a .env file from the working directory if there is one, then
// reads the configuration from environment variables.
func Load() (*Config, error) {
	// A missing .env is normal; real env vars still apply.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, "info")),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, "text")),
		LogFile:   getEnv(EnvLogFile, ""),
		WorldDir:  getEnv(EnvWorldDir, ""),
	}

	var err error
	if cfg.Seed, err = getInt64(EnvSeed); err != nil {
		return nil, err
	}
	if cfg.EquipmentBonuses, err = getBool(EnvEquipmentBonuses); err != nil {
		return nil, err
	}
	if cfg.SafeRooms, err = getBool(EnvSafeRooms); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid %s value %q: want debug, info, warn, or error", EnvLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid %s value %q: want text or json", EnvLogFormat, c.LogFormat)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt64(key string) (int64, error) {
	s := strings.TrimSpace(getEnv(key, ""))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getBool(key string) (bool, error) {
	s := strings.TrimSpace(getEnv(key, ""))
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return b, nil
}
