package internal

import (
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

var window *Window

var touchReader *TouchReader

// Init brings up SDL, the window, fonts, and the optional touchscreen
// reader. The active theme must be set before calling.
func Init(title string, winOpts WindowOptions, touchDevicePath string) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	window = initWindow(title, winOpts)

	initFonts(GetTheme())

	if touchDevicePath != "" {
		reader, err := NewTouchReader(touchDevicePath)
		if err != nil {
			GetInternalLogger().Warn("Touchscreen unavailable", "device", touchDevicePath, "error", err)
		} else {
			touchReader = reader
		}
	}
}

// TouchTaps returns the tap channel of the touchscreen reader, or nil
// when no touchscreen is configured. A nil channel blocks forever, which
// makes it safe to select on directly.
func TouchTaps() <-chan TapPoint {
	if touchReader == nil {
		return nil
	}
	return touchReader.Taps()
}

// SDLCleanup tears down everything Init set up.
func SDLCleanup() {
	if touchReader != nil {
		touchReader.Close()
		touchReader = nil
	}
	window.closeWindow()
	closeFonts()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
