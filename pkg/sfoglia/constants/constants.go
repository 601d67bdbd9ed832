// Package constants defines shared constants and configuration values
// used throughout the sfoglia widget framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// TouchDeviceEnvVar names the evdev touchscreen device to read taps from.
const TouchDeviceEnvVar = "SFOGLIA_TOUCH_DEVICE"

// ThemePathEnvVar overrides the theme file path passed to Init.
const ThemePathEnvVar = "SFOGLIA_THEME"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing constants.
const (
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events
)
