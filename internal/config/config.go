// internal/config/config.go
//
// This package handles configuration and the robotfindskitten home directory.
// Every player gets a ~/.robotfindskitten/ folder (or $RFK_HOME) that holds
// config.yaml, logs, extra item packs and the session records.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// HomeDirName is the directory created under the user's home.
	HomeDirName = ".robotfindskitten"

	// HomeEnv overrides the home directory location.
	HomeEnv = "RFK_HOME"

	// DefaultItems is how many NKIs appear when no count is given.
	DefaultItems = 20

	// MaxDefaultItems matches the size of the stock item catalog.
	MaxDefaultItems = 201
)

const defaultSettingsYAML = `# robotfindskitten configuration
version: 1

game:
  # Number of non-kitten items when none is given on the command line.
  default_items: 20
  # RNG seed. 0 picks a new board every time.
  seed: 0
  show_title: true

display:
  color: true
  # "#RRGGBB" or an ANSI palette index.
  robot_color: "15"

items:
  # Include the 201 stock descriptions.
  builtin: true
  # Restrict extra packs under items/ to these ids. Empty loads them all.
  packs: []

records:
  enabled: true
`

// GameSettings controls board generation.
type GameSettings struct {
	DefaultItems int   `yaml:"default_items"`
	Seed         int64 `yaml:"seed"`
	ShowTitle    *bool `yaml:"show_title,omitempty"`
}

// DisplaySettings controls rendering.
type DisplaySettings struct {
	Color      *bool  `yaml:"color,omitempty"`
	RobotColor string `yaml:"robot_color,omitempty"`
}

// ItemSettings selects the item catalog sources.
type ItemSettings struct {
	Builtin *bool    `yaml:"builtin,omitempty"`
	Packs   []string `yaml:"packs,omitempty"`
}

// RecordSettings toggles the session database.
type RecordSettings struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Settings models config.yaml.
type Settings struct {
	Version int             `yaml:"version"`
	Game    GameSettings    `yaml:"game"`
	Display DisplaySettings `yaml:"display"`
	Items   ItemSettings    `yaml:"items"`
	Records RecordSettings  `yaml:"records"`
}

// Config holds the runtime configuration.
type Config struct {
	// HomeDir is where config, logs, packs and records live.
	HomeDir string

	Settings Settings
}

// DefaultHomeDir resolves $RFK_HOME, falling back to ~/.robotfindskitten.
func DefaultHomeDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(HomeEnv)); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, HomeDirName), nil
}

// InitHomeDir creates the directory structure in homeDir.
//
// Structure created:
// <home>/
// ├── config.yaml
// ├── items/    <- extra item packs (*.yaml, *.nki, *.go)
// ├── logs/     <- diagnostic log and event journal
// └── state/    <- session records
func InitHomeDir(homeDir string) error {
	dirs := []string{
		filepath.Join(homeDir, "items"),
		filepath.Join(homeDir, "logs"),
		filepath.Join(homeDir, "state"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return ensureSettingsFile(filepath.Join(homeDir, "config.yaml"))
}

// NewConfig creates a Config populated from homeDir/config.yaml. A missing
// file yields the defaults.
func NewConfig(homeDir string) (*Config, error) {
	if strings.TrimSpace(homeDir) == "" {
		return nil, fmt.Errorf("config: home directory is required")
	}
	cfg := &Config{
		HomeDir:  filepath.Clean(homeDir),
		Settings: defaultSettings(),
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location for config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.HomeDir, "config.yaml")
}

// ItemsDir returns the directory scanned for item packs.
func (c *Config) ItemsDir() string {
	return filepath.Join(c.HomeDir, "items")
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.HomeDir, "logs")
}

// StateDir returns the path to the state directory.
func (c *Config) StateDir() string {
	return filepath.Join(c.HomeDir, "state")
}

// JournalPath returns the event journal file.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journal.log")
}

// RecordsPath returns the session database file.
func (c *Config) RecordsPath() string {
	return filepath.Join(c.StateDir(), "records.db")
}

// DefaultItems returns the configured NKI count.
func (c *Config) DefaultItems() int { return c.Settings.Game.DefaultItems }

// Seed returns the configured RNG seed; 0 means time-based.
func (c *Config) Seed() int64 { return c.Settings.Game.Seed }

// ShowTitle reports whether the title screen is shown.
func (c *Config) ShowTitle() bool { return boolOr(c.Settings.Game.ShowTitle, true) }

// ColorEnabled reports whether glyphs are drawn in color.
func (c *Config) ColorEnabled() bool { return boolOr(c.Settings.Display.Color, true) }

// RobotColor returns the lipgloss color for robot.
func (c *Config) RobotColor() string { return c.Settings.Display.RobotColor }

// BuiltinItems reports whether the stock descriptions are used.
func (c *Config) BuiltinItems() bool { return boolOr(c.Settings.Items.Builtin, true) }

// PackFilter returns the pack ids to load; empty means all.
func (c *Config) PackFilter() []string { return c.Settings.Items.Packs }

// RecordsEnabled reports whether sessions are saved.
func (c *Config) RecordsEnabled() bool { return boolOr(c.Settings.Records.Enabled, true) }

// SetDefaultItems updates the default NKI count and persists it back to
// config.yaml.
func (c *Config) SetDefaultItems(n int) error {
	if n < 0 || n > MaxDefaultItems {
		return fmt.Errorf("config: default items must be between 0 and %d", MaxDefaultItems)
	}
	c.Settings.Game.DefaultItems = n
	return c.saveSettings()
}

func (c *Config) loadSettings() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultSettings()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Settings = parsed
	return nil
}

func defaultSettings() Settings {
	return Settings{
		Version: 1,
		Game: GameSettings{
			DefaultItems: DefaultItems,
		},
		Display: DisplaySettings{
			RobotColor: "15",
		},
	}
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if strings.TrimSpace(s.Display.RobotColor) == "" {
		s.Display.RobotColor = "15"
	}
}

func (s *Settings) normalize() {
	s.Display.RobotColor = strings.ToUpper(strings.TrimSpace(s.Display.RobotColor))
	packs := s.Items.Packs[:0]
	for _, id := range s.Items.Packs {
		if id = strings.TrimSpace(id); id != "" && !contains(packs, id) {
			packs = append(packs, id)
		}
	}
	s.Items.Packs = packs
}

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func (s *Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if s.Game.DefaultItems < 0 || s.Game.DefaultItems > MaxDefaultItems {
		return fmt.Errorf("game.default_items must be between 0 and %d", MaxDefaultItems)
	}
	if err := validateColor(s.Display.RobotColor); err != nil {
		return fmt.Errorf("display.robot_color: %w", err)
	}
	return nil
}

func validateColor(value string) error {
	if hexColor.MatchString(value) {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return fmt.Errorf("%q is neither #RRGGBB nor an ANSI index 0-255", value)
	}
	return nil
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

// contains matches pack ids exactly, the same way the item catalog does.
func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func ensureSettingsFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultSettingsYAML), 0644)
}

func (c *Config) saveSettings() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Settings.applyDefaults()
	c.Settings.normalize()
	if err := c.Settings.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.HomeDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure home dir: %w", err)
	}
	data, err := yaml.Marshal(c.Settings)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("config: write config: %w", err)
	}
	return nil
}
