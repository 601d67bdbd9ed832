package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// themeFile is the on-disk TOML representation of a theme.
// Colors are "#RRGGBB" strings; missing colors keep the palette defaults.
type themeFile struct {
	Light  bool              `toml:"light"`
	Colors map[string]string `toml:"colors"`
	Fonts  struct {
		Text string `toml:"text"`
		Icon string `toml:"icon"`
	} `toml:"fonts"`
}

// LoadThemeFile reads a theme definition from a TOML file.
// Unknown color keys are ignored and missing keys fall back to the
// built-in palette for the file's light/dark setting.
func LoadThemeFile(path string) (Theme, error) {
	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Theme{}, fmt.Errorf("theme: decode %s: %w", path, err)
	}
	return themeFromFile(file)
}

func themeFromFile(file themeFile) (Theme, error) {
	theme := DefaultLightTheme()
	if !file.Light {
		theme = DefaultDarkTheme()
	}

	targets := map[string]*sdl.Color{
		"accent200":             &theme.Accent200,
		"accent500":             &theme.Accent500,
		"grey200":               &theme.Grey200,
		"grey300":               &theme.Grey300,
		"background_secondary0": &theme.BackgroundSecondary0,
		"background_secondary1": &theme.BackgroundSecondary1,
		"black":                 &theme.Black,
		"white":                 &theme.White,
	}

	for key, value := range file.Colors {
		target, ok := targets[key]
		if !ok {
			continue
		}
		color, err := ParseHexColor(value)
		if err != nil {
			return Theme{}, fmt.Errorf("theme: color %q: %w", key, err)
		}
		*target = color
	}

	theme.FontPath = file.Fonts.Text
	theme.IconFontPath = file.Fonts.Icon

	return theme, nil
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque sdl.Color.
func ParseHexColor(s string) (sdl.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return sdl.Color{}, fmt.Errorf("expected RRGGBB, got %q", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("expected RRGGBB, got %q", s)
	}
	return HexToColor(uint32(value)), nil
}
