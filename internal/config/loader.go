package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "t2048.yaml"

// Skipped is a config file in the search path that exists but could not be used.
type Skipped struct {
	Path string
	Err  error
}

// Load loads the 2048 configuration.
// Search order: customPath -> ~/.t2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default.
// Files are decoded on top of Default, so a file may set only some keys.
// Search path files that are unreadable or invalid are passed over and
// returned as skipped so the caller can warn about them.
func Load(customPath string) (Config, []Skipped, error) {
	return load(customPath, searchPaths())
}

func load(customPath string, paths []string) (Config, []Skipped, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, nil, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, nil, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil, nil
	}

	var skipped []Skipped
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}
		return cfg, skipped, nil
	}

	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, skipped, nil
	}
	return Default(), skipped, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "configs", filename)
}
