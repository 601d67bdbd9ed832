package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func writeThemeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadThemeFile(t *testing.T) {
	path := writeThemeFile(t, `
light = true

[colors]
accent200 = "#FFAA00"
accent500 = "ff5500"
background_secondary0 = "#101112"

[fonts]
text = "/fonts/body.ttf"
icon = "/fonts/icons.ttf"
`)

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)

	require.True(t, theme.IsLight)
	require.Equal(t, sdl.Color{R: 0xFF, G: 0xAA, B: 0x00, A: 255}, theme.Accent200)
	require.Equal(t, sdl.Color{R: 0xFF, G: 0x55, B: 0x00, A: 255}, theme.Accent500)
	require.Equal(t, sdl.Color{R: 0x10, G: 0x11, B: 0x12, A: 255}, theme.BackgroundSecondary0)
	require.Equal(t, "/fonts/body.ttf", theme.FontPath)
	require.Equal(t, "/fonts/icons.ttf", theme.IconFontPath)

	// Colors the file omits keep the light palette defaults.
	require.Equal(t, DefaultLightTheme().Grey200, theme.Grey200)
	require.Equal(t, DefaultLightTheme().White, theme.White)
}

func TestLoadThemeFile_DarkDefaults(t *testing.T) {
	path := writeThemeFile(t, `light = false`)

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)
	require.False(t, theme.IsLight)
	require.Equal(t, DefaultDarkTheme().BackgroundSecondary0, theme.BackgroundSecondary0)
}

func TestLoadThemeFile_UnknownColorKeyIgnored(t *testing.T) {
	path := writeThemeFile(t, `
light = true

[colors]
chartreuse900 = "#ABCDEF"
`)

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultLightTheme().Accent200, theme.Accent200)
}

func TestLoadThemeFile_BadColor(t *testing.T) {
	path := writeThemeFile(t, `
light = true

[colors]
accent200 = "not-a-color"
`)

	_, err := LoadThemeFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "accent200")
}

func TestLoadThemeFile_MissingFile(t *testing.T) {
	_, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	color, err := ParseHexColor("#0080FF")
	require.NoError(t, err)
	require.Equal(t, sdl.Color{R: 0x00, G: 0x80, B: 0xFF, A: 255}, color)

	color, err = ParseHexColor("  0080ff ")
	require.NoError(t, err)
	require.Equal(t, sdl.Color{R: 0x00, G: 0x80, B: 0xFF, A: 255}, color)

	for _, bad := range []string{"", "#FFF", "#GGGGGG", "#AABBCCDD"} {
		_, err := ParseHexColor(bad)
		require.Error(t, err, "input %q", bad)
	}
}
