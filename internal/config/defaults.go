package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Terminal: TerminalConfig{
			BlockWidth: 2,
		},
		Window: WindowConfig{
			BlockSize: 30,
			Title:     "Blocks",
		},
		Palette: map[string]string{
			"T": "purple",
			"Z": "red",
			"S": "green",
			"I": "cyan",
			"O": "yellow",
			"L": "orange",
			"J": "blue",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
