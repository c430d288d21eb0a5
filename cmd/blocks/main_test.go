package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/blocks/internal/config"
	"github.com/vovakirdan/blocks/internal/games/tetris"
)

func TestServerConfigFlagsOverrideFile(t *testing.T) {
	t.Cleanup(func() {
		flagSSHAddr, flagHostKey, flagIdleTimeout = "", "", -1
	})

	cfg := config.Default()

	sc, err := serverConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Address != ":23234" || sc.IdleTimeout != 30*time.Minute {
		t.Errorf("defaults: %+v", sc)
	}

	flagSSHAddr, flagHostKey, flagIdleTimeout = ":2222", "/tmp/key", 0
	sc, err = serverConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Address != ":2222" || sc.HostKeyPath != "/tmp/key" || sc.IdleTimeout != 0 {
		t.Errorf("overrides: %+v", sc)
	}
}

func TestNewGameUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Palette["I"] = "white"
	cfg.Terminal.BlockWidth = 1

	game, err := newGame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if c := game.Palette().ColorFor(tetris.Cell(tetris.ShapeI)); c.String() != "white" {
		t.Errorf("I color = %s, expected white", c)
	}

	cfg.Palette["Q"] = "red"
	if _, err := newGame(cfg); err == nil {
		t.Error("newGame should reject an unknown shape")
	}
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() { flagFPS, flagLogLevel = 0, "" })

	flagFPS, flagLogLevel = 120, "debug"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TickRate != 120 || cfg.Log.Level != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}

	flagFPS = 1000
	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig should reject an out of range --fps")
	}
}
