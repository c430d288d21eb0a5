package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocks/internal/config"
	"github.com/vovakirdan/blocks/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blocks SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Sessions share nothing.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blocks/host_key

Examples:
  blocks serve                           # Listen on the configured address
  blocks serve --ssh :2222               # Listen on port 2222
  blocks serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes (-1 = use config, 0 = none)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)

	// Fail early on a bad palette rather than on the first connection
	if _, err := newGame(cfg); err != nil {
		return err
	}

	sshCfg, err := serverConfig(cfg)
	if err != nil {
		return err
	}
	sshCfg.NewGame = func() tui.Game {
		game, _ := newGame(cfg)
		return game
	}

	server, err := tui.NewSSHServer(sshCfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting blocks SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// serverConfig merges the serve flags over the config file.
func serverConfig(cfg config.Config) (tui.SSHServerConfig, error) {
	addr := cfg.Server.Address
	if flagSSHAddr != "" {
		addr = flagSSHAddr
	}

	hostKey := cfg.Server.HostKeyPath
	if flagHostKey != "" {
		hostKey = flagHostKey
	}
	hostKey, err := config.ExpandHome(hostKey)
	if err != nil {
		return tui.SSHServerConfig{}, err
	}

	idle := cfg.Server.IdleTimeout()
	if flagIdleTimeout >= 0 {
		idle = time.Duration(flagIdleTimeout) * time.Minute
	}

	return tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		IdleTimeout: idle,
		TickRate:    cfg.TickRate,
	}, nil
}
