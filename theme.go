package main

import (
	"image/color"
	"strings"

	dark "github.com/thiagokokada/dark-mode-go"
)

type palette struct {
	name     string
	bg       color.RGBA
	element  color.RGBA
	dragging color.RGBA
	guide    color.RGBA
	resting  color.RGBA
	hudBG    color.RGBA
}

var darkPalette = palette{
	name:     "dark",
	bg:       color.RGBA{0x1e, 0x1f, 0x24, 0xff},
	element:  color.RGBA{0x4f, 0x9d, 0xff, 0xff},
	dragging: color.RGBA{0x8c, 0xc2, 0xff, 0xff},
	guide:    color.RGBA{0x55, 0x58, 0x63, 0xff},
	resting:  color.RGBA{0xf2, 0xb3, 0x3d, 0xff},
	hudBG:    color.RGBA{0x00, 0x00, 0x00, 0x99},
}

var lightPalette = palette{
	name:     "light",
	bg:       color.RGBA{0xf4, 0xf4, 0xf1, 0xff},
	element:  color.RGBA{0x1f, 0x6f, 0xd6, 0xff},
	dragging: color.RGBA{0x5a, 0x97, 0xe6, 0xff},
	guide:    color.RGBA{0xc4, 0xc4, 0xbe, 0xff},
	resting:  color.RGBA{0xd9, 0x7b, 0x00, 0xff},
	hudBG:    color.RGBA{0x20, 0x20, 0x20, 0xcc},
}

// pickPalette honours an explicit "dark" or "light" theme and otherwise
// follows the OS preference, falling back to dark.
func pickPalette(theme string) palette {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "dark":
		return darkPalette
	case "light":
		return lightPalette
	}
	isDark, err := dark.IsDarkMode()
	if err != nil {
		logDebug("dark mode query: %v", err)
		return darkPalette
	}
	if isDark {
		return darkPalette
	}
	return lightPalette
}
