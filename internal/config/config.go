// Package config resolves the CLI's runtime settings from the
// environment, with an optional .env file for development setups.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// DBPath is the SQLite database file. ":memory:" is accepted for
	// throwaway runs.
	DBPath string

	// Workspace scopes every command; a single-user install keeps the
	// default.
	Workspace string

	// Timezone drives day and week boundaries. Empty means the system
	// local zone.
	Timezone string

	// LogPath, when set, receives service telemetry lines.
	LogPath string
}

// Load reads STINT_* variables, after loading an optional .env file.
// A missing .env is not an error; a malformed one is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		DBPath:    getEnv("STINT_DB", defaultDBPath()),
		Workspace: getEnv("STINT_WORKSPACE", "default"),
		Timezone:  getEnv("STINT_TZ", ""),
		LogPath:   getEnv("STINT_LOG", ""),
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid STINT_TZ '%s': %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks the settings and creates the database directory when
// it does not exist yet.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.Workspace == "" {
		return fmt.Errorf("workspace cannot be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	if c.DBPath != ":memory:" {
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating database directory '%s': %w", dir, err)
				}
			}
		}
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "stint.db"
	}
	return filepath.Join(home, ".stint", "stint.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
