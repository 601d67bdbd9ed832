package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// Content point sizes. Text labels and icon glyphs render at different
// sizes so glyphs stay optically balanced against text.
const (
	TextPointSize = 12
	IconPointSize = 14
)

// FontSet holds the loaded UI fonts. Either font may be nil when the
// theme does not provide a usable path; render paths skip nil fonts.
type FontSet struct {
	Text *ttf.Font // Label font, opened at TextPointSize
	Icon *ttf.Font // Icon glyph font, opened at IconPointSize
}

// Fonts is the framework font set, populated during Init.
var Fonts FontSet

func initFonts(theme Theme) {
	scale := GetScaleFactor()

	if theme.FontPath != "" {
		font, err := ttf.OpenFont(theme.FontPath, int(float32(TextPointSize)*scale))
		if err != nil {
			GetInternalLogger().Error("Failed to open text font", "path", theme.FontPath, "error", err)
		} else {
			Fonts.Text = font
		}
	}

	iconPath := theme.IconFontPath
	if iconPath == "" {
		iconPath = theme.FontPath
	}
	if iconPath != "" {
		font, err := ttf.OpenFont(iconPath, int(float32(IconPointSize)*scale))
		if err != nil {
			GetInternalLogger().Error("Failed to open icon font", "path", iconPath, "error", err)
		} else {
			Fonts.Icon = font
		}
	}
}

func closeFonts() {
	if Fonts.Text != nil {
		Fonts.Text.Close()
		Fonts.Text = nil
	}
	if Fonts.Icon != nil {
		Fonts.Icon.Close()
		Fonts.Icon = nil
	}
}
