package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SegmentContent is the renderable content of one segment. It is a closed
// set of variants so styling dispatches on the content kind rather than on
// runtime type inspection: TextContent, IconContent, and RawContent.
type SegmentContent interface {
	segmentContent()
}

// TextStyle carries text attributes that pass through to rendering.
// The widget overrides only color and point size; everything else is
// honored as given.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
}

// TextContent renders a plain text label.
type TextContent struct {
	Value string
	Style TextStyle
}

func (TextContent) segmentContent() {}

// IconContent renders an icon glyph. When SVG is set it is rasterized at
// the icon size and tinted with the resolved content color; otherwise
// Glyph is drawn with the theme's icon font (see the constants package
// for common glyph code points).
type IconContent struct {
	Glyph string
	SVG   string
}

func (IconContent) segmentContent() {}

// RawContent is the generic fallback for content the widget does not
// understand: a caller-owned texture copied into the segment unstyled.
// The widget never fails on unrecognized content; it lands here.
type RawContent struct {
	Texture *sdl.Texture
}

func (RawContent) segmentContent() {}
