package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BreakoutConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or invalid files here are skipped rather than fatal.
	for _, path := range []string{userConfigPath("breakout.yaml"), filepath.Join("configs", "breakout.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultBreakoutYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Load loads the configuration and applies a difficulty preset by name.
func Load(customPath, difficulty string) (BreakoutConfig, error) {
	preset, err := ParsePreset(difficulty)
	if err != nil {
		return BreakoutConfig{}, err
	}
	cfg, err := LoadBreakout(customPath)
	if err != nil {
		return BreakoutConfig{}, err
	}
	ApplyBreakoutPreset(&cfg, preset)
	return cfg, nil
}

// Encode renders a configuration as YAML.
func Encode(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// decode unmarshals YAML on top of the hardcoded defaults.
func decode(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
