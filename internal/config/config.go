// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the game.
type BreakoutConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	HUD      HUDConfig      `yaml:"hud"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// ArenaConfig defines the brick layout. The arena width is derived from it.
type ArenaConfig struct {
	BrickColumns int     `yaml:"brick_columns"`
	BrickRows    int     `yaml:"brick_rows"`
	BrickWidth   float64 `yaml:"brick_width"`
	BrickHeight  float64 `yaml:"brick_height"`
	BrickGap     float64 `yaml:"brick_gap"`
	Padding      float64 `yaml:"padding"` // Distance from the top to the brick wall and from the paddle to the bottom
}

// Width returns the logical arena width: columns of bricks separated by gaps.
func (a ArenaConfig) Width() float64 {
	return float64(a.BrickColumns)*(a.BrickWidth+a.BrickGap) - a.BrickGap
}

// BallConfig defines ball size and launch speed.
type BallConfig struct {
	Size      float64 `yaml:"size"`
	BaseSpeed float64 `yaml:"base_speed"` // Units per simulated millisecond on each axis
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// HUDConfig positions the score, lives and overlay texts.
type HUDConfig struct {
	FontSize         float64 `yaml:"font_size"`
	LabelY           float64 `yaml:"label_y"`
	OverlaySpacing   float64 `yaml:"overlay_spacing"`
	ExitButtonMargin float64 `yaml:"exit_button_margin"` // Distance of the exit button from the bottom
	BorderThickness  float64 `yaml:"border_thickness"`
}

// TerminalConfig maps logical units onto terminal cells.
type TerminalConfig struct {
	CellWidth   float64 `yaml:"cell_width"`
	CellHeight  float64 `yaml:"cell_height"`
	TickRate    int     `yaml:"tick_rate"`
	PointerStep float64 `yaml:"pointer_step"` // Keyboard pointer nudge in logical units
}

// Validate checks that every size the game divides by or lays out with
// is positive.
func (c BreakoutConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"arena.brick_columns", c.Arena.BrickColumns > 0},
		{"arena.brick_rows", c.Arena.BrickRows > 0},
		{"arena.brick_width", c.Arena.BrickWidth > 0},
		{"arena.brick_height", c.Arena.BrickHeight > 0},
		{"arena.brick_gap", c.Arena.BrickGap >= 0},
		{"arena.padding", c.Arena.Padding >= 0},
		{"ball.size", c.Ball.Size > 0},
		{"ball.base_speed", c.Ball.BaseSpeed > 0},
		{"gameplay.lives", c.Gameplay.Lives > 0},
		{"hud.font_size", c.HUD.FontSize > 0},
		{"terminal.cell_width", c.Terminal.CellWidth > 0},
		{"terminal.cell_height", c.Terminal.CellHeight > 0},
		{"terminal.tick_rate", c.Terminal.TickRate > 0},
		{"terminal.pointer_step", c.Terminal.PointerStep > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s out of range: %w", chk.name, ErrInvalidConfig)
		}
	}
	if c.Ball.Size >= c.Arena.Width() {
		return fmt.Errorf("config: ball.size must be smaller than the arena width %.0f: %w", c.Arena.Width(), ErrInvalidConfig)
	}
	return nil
}
