// blocks is a falling-block puzzle game for the terminal, a desktop window,
// and SSH.
//
// Usage:
//
//	blocks play              - Play in this terminal
//	blocks window            - Play in a desktop window
//	blocks serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a specific config file
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocks/internal/config"
	"github.com/vovakirdan/blocks/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle",
	Long: `Blocks drops tetrominoes into a 10x20 well. Steer and rotate each
piece with the arrow keys; full rows disappear. The game ends when a new
piece has no room to spawn.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play

Examples:
  blocks play
  blocks play --seed 42
  blocks window --fps 120
  blocks serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file and applies the global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger creates the process logger writing to w.
func newLogger(cfg config.Config, w io.Writer) *log.Logger {
	level, _ := cfg.LogLevel() // validated by loadConfig
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "blocks",
	})
}

// newGame creates a game styled by the config.
func newGame(cfg config.Config) (*tetris.Game, error) {
	palette, err := cfg.GamePalette()
	if err != nil {
		return nil, err
	}
	game := tetris.New()
	game.SetPalette(palette)
	game.SetBlockWidth(cfg.Terminal.BlockWidth)
	return game, nil
}
