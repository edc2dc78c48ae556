package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/dyluth/xword/internal/game"
	"github.com/dyluth/xword/pkg/puz"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "XWORD_CONFIG"

// DefaultFileName is looked up in the user config directory when neither the
// flag nor the environment variable is set.
const DefaultFileName = "xword.yml"

// XwordConfig represents the top-level xword.yml configuration
type XwordConfig struct {
	Version string         `yaml:"version"`
	Display *DisplayConfig `yaml:"display,omitempty"`
	Session *SessionConfig `yaml:"session,omitempty"`
}

// DisplayConfig controls how grids are drawn
type DisplayConfig struct {
	Color       *bool `yaml:"color,omitempty"`        // highlight cursor, selection and wrong letters (default true)
	ShowNumbers *bool `yaml:"show_numbers,omitempty"` // print clue numbers in empty cells (default true)
	Reveal      bool  `yaml:"reveal,omitempty"`       // show solution letters in `show`
}

// SessionConfig controls how play sessions start
type SessionConfig struct {
	Seed           string `yaml:"seed,omitempty"`            // "empty" (default) or "saved"
	StartDirection string `yaml:"start_direction,omitempty"` // "across" (default) or "down"
}

// Default returns the configuration used when no file exists.
func Default() *XwordConfig {
	c := &XwordConfig{Version: "1.0"}
	if err := c.Validate(); err != nil {
		panic(err) // defaults are always valid
	}
	return c
}

// Validate performs strict validation on the configuration and fills in
// defaults for missing sections.
func (c *XwordConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Display == nil {
		c.Display = &DisplayConfig{}
	}
	if c.Display.Color == nil {
		enabled := true
		c.Display.Color = &enabled
	}
	if c.Display.ShowNumbers == nil {
		enabled := true
		c.Display.ShowNumbers = &enabled
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.Seed == "" {
		c.Session.Seed = string(game.SeedEmpty)
	}
	if err := game.SeedMode(c.Session.Seed).Validate(); err != nil {
		return fmt.Errorf("session.seed: %w", err)
	}
	if c.Session.StartDirection == "" {
		c.Session.StartDirection = "across"
	}
	if c.Session.StartDirection != "across" && c.Session.StartDirection != "down" {
		return fmt.Errorf("session.start_direction: invalid value: %s (must be 'across' or 'down')", c.Session.StartDirection)
	}

	return nil
}

// GameOptions converts the session section to options for game.New.
func (c *XwordConfig) GameOptions() game.Options {
	dir, err := puz.ParseTypingDirection(c.Session.StartDirection)
	if err != nil {
		dir = puz.Across
	}
	return game.Options{
		Seed:      game.SeedMode(c.Session.Seed),
		Direction: dir,
	}
}

// Load reads and validates xword.yml from the specified path
func Load(path string) (*XwordConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config XwordConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultPath returns <user config dir>/xword/xword.yml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "xword", DefaultFileName), nil
}

// Resolve loads the configuration named by the --config flag, then the
// XWORD_CONFIG environment variable, then the default location. An explicit
// path must exist; a missing default file yields Default().
func Resolve(flagPath string) (*XwordConfig, error) {
	if flagPath != "" {
		return Load(flagPath)
	}
	if envPath := os.Getenv(EnvVar); envPath != "" {
		return Load(envPath)
	}

	path, err := DefaultPath()
	if err != nil {
		log.Printf("[Config] no user config directory: %v", err)
		return Default(), nil
	}

	config, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] loaded %s", path)
	return config, nil
}
