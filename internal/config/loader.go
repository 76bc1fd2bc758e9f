package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the user and local directories.
const FileName = "adventure.yaml"

// LoadAdventure loads the adventure configuration.
// Search order: customPath -> ~/.adventure/configs/adventure.yaml -> ./configs/adventure.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadAdventure(customPath string) (AdventureConfig, error) {
	cfg, _, err := LoadAdventureFrom(customPath)
	return cfg, err
}

// LoadAdventureFrom is LoadAdventure that also reports which source won:
// a file path, or "embedded".
func LoadAdventureFrom(customPath string) (AdventureConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AdventureConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return AdventureConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return AdventureConfig{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultAdventureYAML)
	if err != nil {
		return DefaultAdventureConfig(), "embedded", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// decode unmarshals data over the hard-coded defaults.
func decode(data []byte) (AdventureConfig, error) {
	cfg := DefaultAdventureConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AdventureConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg AdventureConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// WriteDefault writes the embedded default file to path, creating parent
// directories. An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultAdventureYAML, 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns ~/.adventure/configs/adventure.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	return userConfigPath(FileName)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".adventure", "configs", filename)
}

// ApplyAdventurePreset modifies the config based on a difficulty preset.
// Fixed and normal leave the file's values untouched.
func ApplyAdventurePreset(cfg *AdventureConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Hostile.Speed *= 0.75
	case DifficultyHard:
		cfg.Session.Lives = 1
		cfg.Hostile.Speed *= 1.5
	}
}
