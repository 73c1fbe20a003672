// breakout is the classic brick-breaking game, played in the terminal.
//
// Usage:
//
//	breakout play     - Play a game
//	breakout config   - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--fps <rate>          - Tick rate (default: from config)
//	--log-file <path>     - Append logs to this file (default: discard)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break the wall in your terminal",
	Long: `Breakout is the classic brick-breaking game for the terminal.
Steer the paddle with the mouse, keep the ball in play and clear
all 112 bricks before you run out of balls.

Available commands:
  play     - Play a game
  config   - Print the effective configuration

Examples:
  breakout play
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml --log-file /tmp/breakout.log
  breakout config > ~/.arcade/configs/breakout.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.Load(flagConfig, flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Terminal.TickRate = flagFPS
	}
	return cfg, nil
}
