// Package sfoglia provides a segmented selector widget for graphical
// applications on embedded Linux devices, particularly handheld gaming
// consoles running custom firmware.
//
// The package handles SDL initialization, theming, touchscreen input, and
// provides the SegmentedSelector component plus a blocking SegmentBar
// widget for quick select-and-confirm flows.
package sfoglia

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// Options configures framework initialization.
type Options struct {
	WindowTitle     string                 // Window title displayed in windowed mode
	WindowOptions   internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	ThemePath       string                 // Path to a TOML theme file; empty uses the built-in palette
	Dark            bool                   // Use the dark built-in palette when no theme file applies
	LogPath         string                 // Full path for log file including filename (creates parent directories)
	TouchDevicePath string                 // evdev touchscreen device; empty disables touch input
}

// Init initializes SDL, theming, fonts, and input handling.
// Must be called before any widget functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	internal.SetInternalLogLevel(slog.LevelError)

	themePath := options.ThemePath
	if env := os.Getenv(constants.ThemePathEnvVar); env != "" {
		themePath = env
	}

	theme := internal.DefaultLightTheme()
	if options.Dark {
		theme = internal.DefaultDarkTheme()
	}
	if themePath != "" {
		loaded, err := internal.LoadThemeFile(themePath)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load theme file; using defaults", "path", themePath, "error", err)
		} else {
			theme = loaded
		}
	}
	internal.SetTheme(theme)

	touchDevice := options.TouchDevicePath
	if env := os.Getenv(constants.TouchDeviceEnvVar); env != "" {
		touchDevice = env
	}

	internal.Init(options.WindowTitle, options.WindowOptions, touchDevice)
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
