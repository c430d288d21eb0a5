package gui

import (
	"image/color"

	"github.com/vovakirdan/blocks/internal/core"
)

// rgba maps core colors to window colors.
var rgba = map[core.Color]color.RGBA{
	core.ColorBlack:   {0, 0, 0, 255},
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGreen:   {0, 255, 0, 255},
	core.ColorYellow:  {255, 255, 0, 255},
	core.ColorBlue:    {0, 0, 255, 255},
	core.ColorMagenta: {255, 0, 255, 255},
	core.ColorCyan:    {0, 255, 255, 255},
	core.ColorWhite:   {255, 255, 255, 255},
	core.ColorOrange:  {255, 165, 0, 255},
	core.ColorPurple:  {128, 0, 128, 255},
	core.ColorGray:    {128, 128, 128, 255},
}

var (
	background = rgba[core.ColorBlack]
	outline    = rgba[core.ColorBlack]
	shade      = color.RGBA{0, 0, 0, 160}
)

// RGBA returns the window color for c. Unknown colors draw white.
func RGBA(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorWhite]
}
