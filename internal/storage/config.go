// Package storage persists high scores and settings as a versioned TOML file
// in the user's home directory. Loads never fail: anything unreadable,
// oversized, or corrupt degrades to defaults so the game always starts.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"snaketerm/internal/game"
	"snaketerm/internal/i18n"
)

// CurrentConfigVersion is stamped on every save. Version 1 was the legacy
// single high_score format, migrated on load.
const CurrentConfigVersion = 2

// maxConfigBytes caps how much of the config file is trusted. Anything
// larger is treated as corrupt.
const maxConfigBytes = 64 << 10

const configFileName = ".snaketerm.toml"

// HighScores holds the best score per difficulty tier.
type HighScores struct {
	Easy    int `toml:"easy"`
	Medium  int `toml:"medium"`
	Hard    int `toml:"hard"`
	Extreme int `toml:"extreme"`
}

// Get returns the stored best for a tier.
func (h *HighScores) Get(d game.Difficulty) int {
	switch d {
	case game.Easy:
		return h.Easy
	case game.Hard:
		return h.Hard
	case game.Extreme:
		return h.Extreme
	default:
		return h.Medium
	}
}

// Set stores a new best for a tier.
func (h *HighScores) Set(d game.Difficulty, score int) {
	switch d {
	case game.Easy:
		h.Easy = score
	case game.Hard:
		h.Hard = score
	case game.Extreme:
		h.Extreme = score
	default:
		h.Medium = score
	}
}

// Settings are the player preferences surfaced in the settings menu.
type Settings struct {
	Language          i18n.Language   `toml:"language"`
	PauseOnFocusLoss  bool            `toml:"pause_on_focus_loss"`
	SoundOn           bool            `toml:"sound_on"`
	DefaultDifficulty game.Difficulty `toml:"default_difficulty"`
}

// Config is the full persisted state.
type Config struct {
	ConfigVersion int        `toml:"config_version"`
	HighScores    HighScores `toml:"high_scores"`
	Settings      Settings   `toml:"settings"`
}

// Default returns the config used when nothing valid is on disk.
func Default() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Settings: Settings{
			Language:          i18n.En,
			PauseOnFocusLoss:  true,
			SoundOn:           true,
			DefaultDifficulty: game.Medium,
		},
	}
}

// legacyConfig matches the version 1 flat format: a single high_score line
// with no version stamp.
type legacyConfig struct {
	HighScore int `toml:"high_score"`
}

// DefaultPath returns the config location in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home dir: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// Load reads the config at path. It never returns an error: missing,
// oversized, or unparseable files yield defaults, and a legacy versionless
// file has its single high score seeded into every tier.
func Load(path string) Config {
	cfg := Default()

	info, err := os.Stat(path)
	if err != nil || info.Size() > maxConfigBytes {
		return cfg
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path is our own config file
	if err != nil {
		return cfg
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	if cfg.ConfigVersion == 0 {
		var legacy legacyConfig
		if err := toml.Unmarshal(data, &legacy); err == nil && legacy.HighScore > 0 {
			cfg = Default()
			cfg.HighScores = HighScores{
				Easy:    legacy.HighScore,
				Medium:  legacy.HighScore,
				Hard:    legacy.HighScore,
				Extreme: legacy.HighScore,
			}
		}
		cfg.ConfigVersion = CurrentConfigVersion
	}
	return cfg
}

// Save writes the config atomically: marshal to a temp file in the same
// directory, then rename over the target.
func Save(path string, cfg Config) error {
	cfg.ConfigVersion = CurrentConfigVersion

	tmp, err := os.CreateTemp(filepath.Dir(path), configFileName+".tmp")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()

	enc := toml.NewEncoder(tmp)
	if err := enc.Encode(cfg); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
