package config

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned for an unrecognized difficulty name.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = "" // Keep the loaded config untouched
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI flag value to a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyNone, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNone, fmt.Errorf("config: %q: %w", name, ErrUnknownPreset)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal restores the classic rules regardless of what the file said.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ball.BaseSpeed = 0.4
	case DifficultyNormal:
		cfg.Gameplay.Lives = 3
		cfg.Ball.BaseSpeed = 0.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ball.BaseSpeed = 0.65
	}
}
