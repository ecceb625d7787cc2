package utils

import (
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	WorldsDir           string        `json:"worlds_dir"`
	Pattern             string        `json:"pattern"`
	DeadChar            string        `json:"dead_char"`
	AliveChar           string        `json:"alive_char"`
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	CellSize            int           `json:"cell_size"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	Interactive         bool          `json:"interactive"`
	LogLevel            string        `json:"log_level"`
	LogFormat           string        `json:"log_format"`
	LogFile             string        `json:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		WorldsDir:           "worlds",
		Pattern:             "glider_gun",
		DeadChar:            ".",
		AliveChar:           "*",
		Width:               60,
		Height:              30,
		CellSize:            1,
		FrameRate:           20 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      0,
		Interactive:         true,
		LogLevel:            "info",
		LogFormat:           "text",
		LogFile:             "sparse-life.log",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that every value can drive a simulation
func (c Config) Validate() error {
	if _, err := sentinel("dead_char", c.DeadChar); err != nil {
		return err
	}
	if _, err := sentinel("alive_char", c.AliveChar); err != nil {
		return err
	}
	if c.DeadChar == c.AliveChar {
		return errors.Wrapf(ErrInvalidConfig, "dead_char and alive_char are both %q", c.DeadChar)
	}
	if c.FrameRate <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must be positive, got %v", c.FrameRate)
	}
	if c.CellSize < 1 || c.CellSize > 20 {
		return errors.Wrapf(ErrInvalidConfig, "cell_size must be within [1, 20], got %d", c.CellSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.StagnationThreshold < 1 {
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// Sentinels returns the dead and alive characters
func (c Config) Sentinels() (dead, alive rune, err error) {
	if dead, err = sentinel("dead_char", c.DeadChar); err != nil {
		return
	}
	alive, err = sentinel("alive_char", c.AliveChar)
	return
}

func sentinel(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Wrapf(ErrInvalidConfig, "%s must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '\n' || r == '\r' {
		return 0, errors.Wrapf(ErrInvalidConfig, "%s must not be a line break", name)
	}
	return r, nil
}
