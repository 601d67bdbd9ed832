package internal

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders an SVG document to a square texture of the given
// pixel size and tints it with color via the texture color mod. The
// texture belongs to the caller.
func RasterizeSVG(renderer *sdl.Renderer, svg string, size int32, color sdl.Color) (*sdl.Texture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("svg: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("svg: parse: %w", err)
	}

	w, h := int(size), int(size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(w), int32(h), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("svg: surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("svg: texture: %w", err)
	}

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	texture.SetColorMod(color.R, color.G, color.B)

	return texture, nil
}
