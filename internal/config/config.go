package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const (
	// DefaultFrontend is the terminal host used when none is configured.
	DefaultFrontend = "console"
	// DefaultFPS is the frame rate the frontends drive the game at.
	DefaultFPS = 60
	// MaxFPS caps the configurable frame rate.
	MaxFPS = 240
	// DefaultVolume is the master volume for sound effects and music.
	DefaultVolume = 0.8
)

// Config holds the user configuration: which terminal frontend to use, how
// fast to drive it and where to log.
type Config struct {
	Frontend    string  `toml:"frontend"`
	FPS         int     `toml:"fps"`
	Mute        bool    `toml:"mute"`
	Volume      float64 `toml:"volume"`
	Seed        int64   `toml:"seed"`     // 0 means seed from the clock
	LogFilePath string  `toml:"log_path"` // empty means use the XDG state dir
}

func Default() *Config {
	return &Config{
		Frontend: DefaultFrontend,
		FPS:      DefaultFPS,
		Volume:   DefaultVolume,
	}
}

// Path returns the XDG location of the config file.
func Path() (string, error) {
	path, err := xdg.ConfigFile("crashyplane/config.toml")
	if err != nil {
		return "", fmt.Errorf("could not get config path: %w", err)
	}
	return path, nil
}

// Load reads the configuration at path. A missing file yields the defaults;
// a malformed one is an error. Out-of-range values fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Frontend = strings.ToLower(strings.TrimSpace(c.Frontend))
	if c.Frontend == "" {
		c.Frontend = DefaultFrontend
	}
	if c.FPS <= 0 || c.FPS > MaxFPS {
		c.FPS = DefaultFPS
	}
	if c.Volume < 0 || c.Volume > 1 {
		c.Volume = DefaultVolume
	}
	c.LogFilePath = strings.TrimSpace(c.LogFilePath)
}

const defaultConfig = `# crashyplane configuration file

# Terminal frontend: "console" (termloop) or "tui" (bubbletea)
frontend = "console"

# Frames per second the game is driven at (1-240)
fps = 60

# Disable sound effects and music
mute = false

# Master volume (0.0-1.0)
volume = 0.8

# Random seed for rock gaps; 0 seeds from the clock
seed = 0

# Log file path for crashyplane internal logs
# If commented out or empty, logs will be stored in the default XDG state directory:
#   - macOS: ~/Library/Application Support/crashyplane/crashyplane.log
#   - Linux: ~/.local/state/crashyplane/crashyplane.log
# You can override this with a custom path (supports ~ for home directory)
# log_path = "/tmp/crashyplane.log"
`

// CreateDefaultConfig writes a commented default configuration to path if
// nothing exists there yet. It never overwrites an existing file.
func CreateDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

func (c *Config) String() string {
	return fmt.Sprintf("Frontend: %s\nFPS: %d\nMute: %t\nVolume: %.2f\nSeed: %d",
		c.Frontend, c.FPS, c.Mute, c.Volume, c.Seed)
}
