package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blocks/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right  - Move the piece
  Down        - Drop one row
  Up          - Rotate clockwise
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

The terminal owns the screen while playing, so logs are discarded unless
--log-file is given.

Examples:
  blocks play
  blocks play --seed 42
  blocks play --log-file ./blocks.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(cfg, logOut)

	game, err := newGame(cfg)
	if err != nil {
		return err
	}
	game.OnGameOver(func() {
		logger.Debug("final board", "state", game.DebugState())
	})

	// Get terminal size; the first WindowSizeMsg corrects it
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(game, cfg.RuntimeConfig(width, height, flagSeed), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
