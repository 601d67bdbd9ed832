package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// CornerRadii holds per-corner radii in pixels. A zero radius leaves the
// corner square, which is how interior segments of a bar are drawn.
type CornerRadii struct {
	TopLeft     int32
	TopRight    int32
	BottomLeft  int32
	BottomRight int32
}

// UniformRadii returns CornerRadii with the same radius on every corner.
func UniformRadii(radius int32) CornerRadii {
	return CornerRadii{
		TopLeft:     radius,
		TopRight:    radius,
		BottomLeft:  radius,
		BottomRight: radius,
	}
}

// LerpColor interpolates between two colors. t is clamped to [0, 1].
func LerpColor(a, b sdl.Color, t float32) sdl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return sdl.Color{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// cornerInset returns how many pixels a scanline is pushed inward by a
// rounded corner. row counts from the edge the corner sits on; rows at or
// beyond the radius are not inset at all.
func cornerInset(radius, row int32) int32 {
	if radius <= 0 || row >= radius {
		return 0
	}
	dy := float64(radius-row) - 0.5
	r := float64(radius)
	return radius - int32(math.Round(math.Sqrt(r*r-dy*dy)))
}

// FillRoundedGradient fills rect with a two-stop top-to-bottom gradient,
// clipping the given corners to their radii. Passing the same color for
// both stops produces a flat rounded fill.
func FillRoundedGradient(renderer *sdl.Renderer, rect *sdl.Rect, top, bottom sdl.Color, radii CornerRadii) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	for y := int32(0); y < rect.H; y++ {
		t := float32(0)
		if rect.H > 1 {
			t = float32(y) / float32(rect.H-1)
		}
		color := LerpColor(top, bottom, t)

		leftInset := cornerInset(radii.TopLeft, y)
		if inset := cornerInset(radii.BottomLeft, rect.H-1-y); inset > leftInset {
			leftInset = inset
		}
		rightInset := cornerInset(radii.TopRight, y)
		if inset := cornerInset(radii.BottomRight, rect.H-1-y); inset > rightInset {
			rightInset = inset
		}

		x1 := rect.X + leftInset
		x2 := rect.X + rect.W - 1 - rightInset
		if x2 < x1 {
			continue
		}

		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.DrawLine(x1, rect.Y+y, x2, rect.Y+y)
	}
}

// FillRoundedRect fills rect with a flat color and uniform corner radius.
func FillRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	FillRoundedGradient(renderer, rect, color, color, UniformRadii(radius))
}

// DrawDropShadow paints a faint shadow under rect: black at ~10% opacity,
// offset one pixel down, with the blur approximated by a second, larger
// pass at half the opacity each.
func DrawDropShadow(renderer *sdl.Renderer, rect *sdl.Rect, radius, offset int32) {
	if offset < 1 {
		offset = 1
	}
	shadow := sdl.Color{R: 0, G: 0, B: 0, A: 13}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	outer := sdl.Rect{
		X: rect.X - offset,
		Y: rect.Y,
		W: rect.W + 2*offset,
		H: rect.H + 2*offset,
	}
	FillRoundedGradient(renderer, &outer, shadow, shadow, UniformRadii(radius+offset))

	inner := sdl.Rect{X: rect.X, Y: rect.Y + offset, W: rect.W, H: rect.H}
	FillRoundedGradient(renderer, &inner, shadow, shadow, UniformRadii(radius))
}

// RenderText draws a single line of text at (x, y) and returns its size.
// Failures render nothing and return zero sizes.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// TextSize measures a single line of text without rendering it.
func TextSize(font *ttf.Font, text string) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
