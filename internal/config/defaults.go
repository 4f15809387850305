package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the classic 2048 configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows: 4,
			Cols: 4,
		},
		Rules: RulesConfig{
			WinTile:    2048,
			MaxUndos:   3,
			StartTiles: 2,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
