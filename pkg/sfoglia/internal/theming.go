package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of sfoglia widgets.
// Colors follow a light/dark palette; IsAppFocused is stamped onto the
// value returned by CurrentTheme from the window's focus state and
// controls the selected-segment inversion described on the widget.
type Theme struct {
	IsLight      bool // Light palette (dark text on light surfaces)
	IsAppFocused bool // Window currently has input focus

	Accent200 sdl.Color // Upper stop of the focused selection gradient
	Accent500 sdl.Color // Lower stop of the focused selection gradient
	Grey200   sdl.Color // Upper stop of the unfocused selection gradient
	Grey300   sdl.Color // Lower stop of the unfocused selection gradient

	BackgroundSecondary0 sdl.Color // Upper stop of the idle segment gradient
	BackgroundSecondary1 sdl.Color // Lower stop of the idle segment gradient

	Black sdl.Color
	White sdl.Color

	FontPath     string // Path to the text font
	IconFontPath string // Path to the icon glyph font
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme as stored.
func GetTheme() Theme {
	return currentTheme
}

// CurrentTheme returns the active theme with IsAppFocused reflecting the
// window's live focus state. Widgets read this once per frame and never
// cache it across frames.
func CurrentTheme() Theme {
	theme := currentTheme
	if window != nil {
		theme.IsAppFocused = window.IsAppFocused()
	}
	return theme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// DefaultLightTheme returns the built-in light palette.
func DefaultLightTheme() Theme {
	return Theme{
		IsLight:              true,
		IsAppFocused:         true,
		Accent200:            HexToColor(0x64B5F6),
		Accent500:            HexToColor(0x1E88E5),
		Grey200:              HexToColor(0xEEEEEE),
		Grey300:              HexToColor(0xE0E0E0),
		BackgroundSecondary0: HexToColor(0xFAFAFA),
		BackgroundSecondary1: HexToColor(0xF0F0F0),
		Black:                HexToColor(0x000000),
		White:                HexToColor(0xFFFFFF),
	}
}

// DefaultDarkTheme returns the built-in dark palette.
func DefaultDarkTheme() Theme {
	return Theme{
		IsLight:              false,
		IsAppFocused:         true,
		Accent200:            HexToColor(0x64B5F6),
		Accent500:            HexToColor(0x1E88E5),
		Grey200:              HexToColor(0xEEEEEE),
		Grey300:              HexToColor(0xE0E0E0),
		BackgroundSecondary0: HexToColor(0x3A3A3A),
		BackgroundSecondary1: HexToColor(0x2E2E2E),
		Black:                HexToColor(0x000000),
		White:                HexToColor(0xFFFFFF),
	}
}
