// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Player      PlayerConfig      `toml:"player"`
	Game        GameConfig        `toml:"game"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
	Log         LogConfig         `toml:"log"`
}

// PlayerConfig maps profile settings.
type PlayerConfig struct {
	Name *string `toml:"name"`
}

// GameConfig maps session defaults.
type GameConfig struct {
	Mode      *string `toml:"mode"`
	ShapeMode *bool   `toml:"shape-mode"`
}

// LeaderboardConfig maps leaderboard settings.
type LeaderboardConfig struct {
	Window *int `toml:"window"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// Template is written by `colornova config` when no file exists yet.
const Template = `# colornova configuration

[player]
# name = "Player"

[game]
# mode = "easy"        # easy, moderate, hard
# shape-mode = false

[leaderboard]
# window = 500

[log]
# level = "info"       # debug, info, warn, error, fatal
`

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
