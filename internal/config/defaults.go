package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration.
// It mirrors defaults/breakout.yaml and is the fallback when that fails to parse.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			BrickColumns: 14,
			BrickRows:    8,
			BrickWidth:   50,
			BrickHeight:  15,
			BrickGap:     6,
			Padding:      150,
		},
		Ball: BallConfig{
			Size:      16,
			BaseSpeed: 0.5,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		HUD: HUDConfig{
			FontSize:         21,
			LabelY:           32,
			OverlaySpacing:   64,
			ExitButtonMargin: 100,
			BorderThickness:  16,
		},
		Terminal: TerminalConfig{
			CellWidth:   8,
			CellHeight:  21,
			TickRate:    60,
			PointerStep: 24,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
