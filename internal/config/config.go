// Package config provides YAML-based configuration loading for tui2048.
package config

import "fmt"

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
	Theme   ThemeConfig   `yaml:"theme"`

	// Source is the file the config was read from, or "embedded".
	Source string `yaml:"-"`
}

// GameConfig defines the rules of a session.
type GameConfig struct {
	Seed                 int64   `yaml:"seed"` // 0 = seed from clock
	SpawnFourProbability float64 `yaml:"spawn_four_probability"`
	UndoDepth            int     `yaml:"undo_depth"`
}

// InputConfig defines gesture thresholds.
type InputConfig struct {
	DragThreshold float64 `yaml:"drag_threshold"` // terminal cells
}

// StorageConfig defines where the best score lives.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig defines the log level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// UIConfig defines presentation timings.
type UIConfig struct {
	ToastSeconds float64 `yaml:"toast_seconds"`
	Animate      bool    `yaml:"animate"` // slide and pop tiles after a move
}

// TileColor is a foreground/background pair in lipgloss color notation.
type TileColor struct {
	Fg string `yaml:"fg"`
	Bg string `yaml:"bg"`
}

// ThemeConfig maps tile values to colors.
type ThemeConfig struct {
	Tiles    map[int]TileColor `yaml:"tiles"`
	Fallback TileColor         `yaml:"fallback"` // values above the largest listed tile
	Empty    TileColor         `yaml:"empty"`
}

// TileColor returns the colors for a tile value.
func (t ThemeConfig) TileColor(value int) TileColor {
	if value == 0 {
		return t.Empty
	}
	if c, ok := t.Tiles[value]; ok {
		return c
	}
	return t.Fallback
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

// Validate checks that every value is in range.
func (c Config) Validate() error {
	if p := c.Game.SpawnFourProbability; p < 0 || p > 1 {
		return fmt.Errorf("config: spawn_four_probability %v out of range [0,1]", p)
	}
	if c.Game.UndoDepth < 1 {
		return fmt.Errorf("config: invalid undo_depth %d", c.Game.UndoDepth)
	}
	if c.Input.DragThreshold <= 0 {
		return fmt.Errorf("config: drag_threshold must be positive, got %v", c.Input.DragThreshold)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage path is empty")
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.UI.ToastSeconds <= 0 {
		return fmt.Errorf("config: toast_seconds must be positive, got %v", c.UI.ToastSeconds)
	}
	for v := range c.Theme.Tiles {
		if v < 2 || v&(v-1) != 0 {
			return fmt.Errorf("config: theme tile %d is not a power of two", v)
		}
	}
	return nil
}
