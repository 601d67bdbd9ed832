package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestLerpColor(t *testing.T) {
	a := sdl.Color{R: 0, G: 100, B: 200, A: 255}
	b := sdl.Color{R: 200, G: 100, B: 0, A: 255}

	require.Equal(t, a, LerpColor(a, b, 0))
	require.Equal(t, b, LerpColor(a, b, 1))

	mid := LerpColor(a, b, 0.5)
	require.Equal(t, uint8(100), mid.R)
	require.Equal(t, uint8(100), mid.G)
	require.Equal(t, uint8(100), mid.B)
	require.Equal(t, uint8(255), mid.A)

	// Out-of-range t clamps rather than extrapolating.
	require.Equal(t, a, LerpColor(a, b, -2))
	require.Equal(t, b, LerpColor(a, b, 3))
}

func TestCornerInset(t *testing.T) {
	// No radius means no inset anywhere.
	require.Equal(t, int32(0), cornerInset(0, 0))

	// Rows at or beyond the radius are untouched.
	require.Equal(t, int32(0), cornerInset(4, 4))
	require.Equal(t, int32(0), cornerInset(4, 10))

	// Insets shrink monotonically away from the corner and the outermost
	// row is inset but never loses the full radius.
	previous := cornerInset(4, 0)
	require.Greater(t, previous, int32(0))
	require.Less(t, previous, int32(4))
	for row := int32(1); row < 4; row++ {
		inset := cornerInset(4, row)
		require.LessOrEqual(t, inset, previous, "row %d", row)
		require.GreaterOrEqual(t, inset, int32(0), "row %d", row)
		previous = inset
	}
}

func TestUniformRadii(t *testing.T) {
	radii := UniformRadii(4)
	require.Equal(t, CornerRadii{TopLeft: 4, TopRight: 4, BottomLeft: 4, BottomRight: 4}, radii)
}

func TestMin32(t *testing.T) {
	require.Equal(t, int32(1), Min32(1, 2))
	require.Equal(t, int32(-5), Min32(3, -5))
}
