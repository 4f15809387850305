// Package config provides YAML-based game configuration loading and
// difficulty presets for 2048.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for the 2048 game.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RulesConfig defines win condition, undo budget and opening.
type RulesConfig struct {
	WinTile    int `yaml:"win_tile"`
	MaxUndos   int `yaml:"max_undos"`
	StartTiles int `yaml:"start_tiles"`
}

// SpawnConfig defines how new tiles are generated.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Board.Rows < 2 || c.Board.Cols < 2:
		return fmt.Errorf("%w: board must be at least 2x2, got %dx%d", ErrInvalidConfig, c.Board.Rows, c.Board.Cols)
	case c.Rules.WinTile < 4 || c.Rules.WinTile&(c.Rules.WinTile-1) != 0:
		return fmt.Errorf("%w: win_tile %d is not a power of two above 2", ErrInvalidConfig, c.Rules.WinTile)
	case c.Rules.MaxUndos < 0:
		return fmt.Errorf("%w: max_undos %d is negative", ErrInvalidConfig, c.Rules.MaxUndos)
	case c.Rules.StartTiles < 0 || c.Rules.StartTiles > c.Board.Rows*c.Board.Cols:
		return fmt.Errorf("%w: start_tiles %d does not fit the board", ErrInvalidConfig, c.Rules.StartTiles)
	case c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1:
		return fmt.Errorf("%w: four_probability %v outside [0, 1]", ErrInvalidConfig, c.Spawn.FourProbability)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.MaxUndos = 5
		cfg.Spawn.FourProbability = 0.05
	case DifficultyHard:
		cfg.Rules.MaxUndos = 1
		cfg.Spawn.FourProbability = 0.25
	}
}
