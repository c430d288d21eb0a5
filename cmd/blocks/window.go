package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocks/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window with the board drawn as colored squares.

Controls:
  Left/Right  - Move the piece
  Down        - Drop one row
  Up          - Rotate clockwise
  R           - Restart (after game over)
  Esc         - Quit

Examples:
  blocks window
  blocks window --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)

	game, err := newGame(cfg)
	if err != nil {
		return err
	}

	return gui.Run(game, gui.Options{
		Title:     cfg.Window.Title,
		BlockSize: cfg.Window.BlockSize,
		TickRate:  cfg.TickRate,
		Seed:      flagSeed,
	}, logger)
}
