package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Breakout.

Controls:
  Mouse          - Move the paddle
  Left click     - Start, resume or play again
  Space/Enter    - Click at the virtual pointer
  Left/Right     - Move the virtual pointer
  P/Esc          - Pause
  Ctrl+S         - Save a text screenshot to ~/.arcade/screenshots
  ?              - More keys
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - 5 balls, slower ball
  normal - 3 balls, classic speed
  hard   - 2 balls, faster ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --fps 120`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size before the program takes over
	rt := core.DefaultConfig()
	rt.TickRate = cfg.Terminal.TickRate
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Debug("config", "lives", cfg.Gameplay.Lives, "speed", cfg.Ball.BaseSpeed, "fps", rt.TickRate)
	if err := tui.Run(tui.Options{Config: cfg, Runtime: rt, Logger: logger}); err != nil {
		logger.Error("game failed", "err", err)
		return err
	}
	return nil
}

// newLogger builds the session logger. The terminal belongs to the game,
// so logs go to a file or nowhere.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
