// Package config provides YAML-based configuration loading for blocks.
// Only presentation, runtime, and server settings live here; the game rules
// are fixed.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocks/internal/core"
	"github.com/vovakirdan/blocks/internal/games/tetris"
)

// Config contains all configuration for blocks.
type Config struct {
	TickRate int               `yaml:"tick_rate"`
	Terminal TerminalConfig    `yaml:"terminal"`
	Window   WindowConfig      `yaml:"window"`
	Palette  map[string]string `yaml:"palette"`
	Server   ServerConfig      `yaml:"server"`
	Log      LogConfig         `yaml:"log"`
}

// TerminalConfig defines how the board is drawn in a terminal.
type TerminalConfig struct {
	BlockWidth int `yaml:"block_width"`
}

// WindowConfig defines the pixel canvas.
type WindowConfig struct {
	BlockSize int    `yaml:"block_size"`
	Title     string `yaml:"title"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"` // Auto-generated under ~/.blocks when empty
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// IdleTimeout returns the server idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log level: %w", err)
	}
	return lvl, nil
}

// GamePalette resolves the palette names into game colors. Shapes missing
// from the config keep their default color.
func (c Config) GamePalette() (tetris.Palette, error) {
	p := tetris.DefaultPalette()
	for name, colorName := range c.Palette {
		shape, ok := tetris.ParseShape(name)
		if !ok {
			return p, fmt.Errorf("config: palette: unknown shape %q", name)
		}
		color, ok := core.ParseColor(colorName)
		if !ok {
			return p, fmt.Errorf("config: palette: unknown color %q for shape %s", colorName, shape)
		}
		p[shape] = color
	}
	return p, nil
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.TickRate < 1 || c.TickRate > 240 {
		errs = append(errs, fmt.Errorf("tick_rate must be between 1 and 240, got %d", c.TickRate))
	}
	if c.Terminal.BlockWidth < 1 || c.Terminal.BlockWidth > 4 {
		errs = append(errs, fmt.Errorf("terminal.block_width must be between 1 and 4, got %d", c.Terminal.BlockWidth))
	}
	if c.Window.BlockSize < 4 {
		errs = append(errs, fmt.Errorf("window.block_size must be at least 4, got %d", c.Window.BlockSize))
	}
	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address must not be empty"))
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes))
	}
	if _, err := c.GamePalette(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// RuntimeConfig builds the game runtime config for a screen of the given size.
func (c Config) RuntimeConfig(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: c.TickRate,
		Seed:     seed,
	}
}
