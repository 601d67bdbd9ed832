package sfoglia

import (
	"fmt"
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// Bar geometry in baseline pixels. All values are multiplied by the
// display scale factor at render time.
const (
	segmentHeight   = 24  // Fixed height of the segment row
	barCornerRadius = 4   // Outer bar and end-segment corner radius
	segmentGap      = 1   // Leading gap between adjacent segments
	containerInset  = 0.5 // Uniform padding between bar edge and segments
)

// containerFill is the light grey visible in the inter-segment gaps and
// around the segment row.
var containerFill = internal.HexToColor(0xD6D6D6)

// SegmentedSelectorSettings configures a SegmentedSelector.
type SegmentedSelectorSettings struct {
	// AllowsMultipleSelection makes each segment toggle independently.
	// When false (the default) selection is mutually exclusive: tapping a
	// segment selects it and deselects every other segment, and tapping
	// the selected segment keeps it selected.
	AllowsMultipleSelection bool

	// OnChanged is invoked synchronously after every tap with a snapshot
	// of the selection states. The slice is a fresh copy per call; the
	// callback may keep or mutate it freely. Callbacks run on the UI
	// thread and must not block.
	OnChanged func(selected []bool)
}

// SegmentedSelector is a bar of equally sized selectable segments.
// It owns its selection state: the slice passed at construction is copied,
// and the current state is observable through Selected and the OnChanged
// snapshot.
type SegmentedSelector struct {
	options  []SegmentContent
	selected []bool
	settings SegmentedSelectorSettings

	segmentRects []sdl.Rect
	contentCache *internal.TextureCache
	dirty        bool
}

// NewSegmentedSelector creates a segmented selector over the given
// contents. selected provides the initial state, one entry per option;
// a length mismatch is an InvalidConfigurationError and the selector must
// not be used.
func NewSegmentedSelector(options []SegmentContent, selected []bool, settings SegmentedSelectorSettings) (*SegmentedSelector, error) {
	if len(options) != len(selected) {
		return nil, NewInvalidConfigurationError(
			"new_segmented_selector",
			fmt.Errorf("%d options but %d selection states", len(options), len(selected)),
		)
	}

	states := make([]bool, len(selected))
	copy(states, selected)

	return &SegmentedSelector{
		options:      options,
		selected:     states,
		settings:     settings,
		contentCache: internal.NewTextureCache(),
	}, nil
}

// Len returns the number of segments.
func (s *SegmentedSelector) Len() int {
	return len(s.options)
}

// Selected returns a snapshot of the selection states. Mutating the
// returned slice does not affect the selector.
func (s *SegmentedSelector) Selected() []bool {
	snapshot := make([]bool, len(s.selected))
	copy(snapshot, s.selected)
	return snapshot
}

// Dirty reports whether the selection changed since the last Render.
func (s *SegmentedSelector) Dirty() bool {
	return s.dirty
}

// HandleTap applies a tap on the given segment. In multiple-selection
// mode the segment toggles; otherwise selection becomes exclusive to the
// tapped segment. The tap is a complete, atomic state transition:
// selection mutates, the selector is marked for re-render, and OnChanged
// fires once, synchronously, with a post-tap snapshot. Out-of-range
// indexes are ignored.
func (s *SegmentedSelector) HandleTap(index int) {
	if index < 0 || index >= len(s.selected) {
		return
	}

	if s.settings.AllowsMultipleSelection {
		s.selected[index] = !s.selected[index]
	} else {
		for i := range s.selected {
			s.selected[i] = i == index
		}
	}

	s.dirty = true

	if s.settings.OnChanged != nil {
		s.settings.OnChanged(s.Selected())
	}
}

// SegmentAt maps a point in window coordinates to a segment index using
// the rects recorded by the last Render. Returns -1 when the point does
// not hit a segment or the selector has not rendered yet.
func (s *SegmentedSelector) SegmentAt(x, y int32) int {
	point := sdl.Point{X: x, Y: y}
	for i := range s.segmentRects {
		if point.InRect(&s.segmentRects[i]) {
			return i
		}
	}
	return -1
}

// resolveContentColor picks the foreground color for a segment. The light
// theme defaults to black content and the dark theme to white; a selected
// segment inverts that default only while the inversion condition holds
// (app focused on light, app unfocused on dark).
func (s *SegmentedSelector) resolveContentColor(index int, theme internal.Theme) sdl.Color {
	selected := index >= 0 && index < len(s.selected) && s.selected[index]

	if theme.IsLight {
		if selected && theme.IsAppFocused {
			return theme.White
		}
		return theme.Black
	}

	if selected && !theme.IsAppFocused {
		return theme.Black
	}
	return theme.White
}

// resolveSegmentGradient picks the two stops of a segment's top-to-bottom
// background gradient.
func (s *SegmentedSelector) resolveSegmentGradient(index int, theme internal.Theme) (top, bottom sdl.Color) {
	selected := index >= 0 && index < len(s.selected) && s.selected[index]

	switch {
	case selected && theme.IsAppFocused:
		return theme.Accent200, theme.Accent500
	case selected:
		return theme.Grey200, theme.Grey300
	default:
		return theme.BackgroundSecondary0, theme.BackgroundSecondary1
	}
}

// BarHeight returns the total bar height at the current scale factor,
// including the container insets around the segment row.
func (s *SegmentedSelector) BarHeight() int32 {
	scale := internal.GetScaleFactor()
	return scaled(segmentHeight, scale) + 2*scaled(containerInset, scale)
}

// Render draws the bar with its top-left corner at (x, y) and the given
// width, records segment hit rects for SegmentAt, and clears the dirty
// flag. The theme is read per call; callers pass the current value on
// every frame rather than having the selector cache one.
func (s *SegmentedSelector) Render(renderer *sdl.Renderer, x, y, width int32, theme internal.Theme) {
	if len(s.options) == 0 || width <= 0 {
		s.segmentRects = nil
		s.dirty = false
		return
	}

	scale := internal.GetScaleFactor()
	radius := scaled(barCornerRadius, scale)
	gap := scaled(segmentGap, scale)
	inset := scaled(containerInset, scale)
	rowHeight := scaled(segmentHeight, scale)

	bar := sdl.Rect{X: x, Y: y, W: width, H: rowHeight + 2*inset}

	internal.DrawDropShadow(renderer, &bar, radius, scaled(1, scale))
	internal.FillRoundedRect(renderer, &bar, radius, containerFill)

	inner := sdl.Rect{X: bar.X + inset, Y: bar.Y + inset, W: bar.W - 2*inset, H: rowHeight}
	rects := layoutSegments(inner, len(s.options), gap)

	for i, rect := range rects {
		var radii internal.CornerRadii
		if i == 0 {
			radii.TopLeft, radii.BottomLeft = radius, radius
		}
		if i == len(rects)-1 {
			radii.TopRight, radii.BottomRight = radius, radius
		}

		top, bottom := s.resolveSegmentGradient(i, theme)
		internal.FillRoundedGradient(renderer, &rect, top, bottom, radii)

		s.renderContent(renderer, i, rect, theme)
	}

	s.segmentRects = rects
	s.dirty = false
}

// Destroy releases cached content textures. Call when the selector is
// removed for good; it is not required between renders.
func (s *SegmentedSelector) Destroy() {
	s.contentCache.Destroy()
}

func (s *SegmentedSelector) renderContent(renderer *sdl.Renderer, index int, rect sdl.Rect, theme internal.Theme) {
	color := s.resolveContentColor(index, theme)

	switch content := s.options[index].(type) {
	case TextContent:
		s.renderLabel(renderer, internal.Fonts.Text, content.Value, content.Style, color, rect)
	case IconContent:
		if content.SVG != "" {
			s.renderSVG(renderer, content.SVG, color, rect)
		} else {
			s.renderLabel(renderer, internal.Fonts.Icon, content.Glyph, TextStyle{}, color, rect)
		}
	case RawContent:
		// Generic fallback: copy the caller's texture through unstyled.
		if content.Texture != nil {
			copyCentered(renderer, content.Texture, rect)
		}
	}
}

func (s *SegmentedSelector) renderLabel(renderer *sdl.Renderer, font *ttf.Font, text string, style TextStyle, color sdl.Color, rect sdl.Rect) {
	if font == nil || text == "" {
		return
	}

	key := fmt.Sprintf("label:%s:%d:%02x%02x%02x", text, styleFlags(style), color.R, color.G, color.B)
	texture := s.contentCache.Get(key)
	if texture == nil {
		font.SetStyle(styleFlags(style))
		surface, err := font.RenderUTF8Blended(text, color)
		font.SetStyle(ttf.STYLE_NORMAL)
		if err != nil {
			return
		}
		texture, err = renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return
		}
		s.contentCache.Set(key, texture)
	}

	copyCentered(renderer, texture, rect)
}

func (s *SegmentedSelector) renderSVG(renderer *sdl.Renderer, svg string, color sdl.Color, rect sdl.Rect) {
	scale := internal.GetScaleFactor()
	size := scaled(internal.IconPointSize, scale)

	key := fmt.Sprintf("svg:%d:%s", size, svg)
	texture := s.contentCache.Get(key)
	if texture == nil {
		var err error
		texture, err = internal.RasterizeSVG(renderer, svg, size, color)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to rasterize segment icon", "error", err)
			return
		}
		s.contentCache.Set(key, texture)
	}

	// Tint is a texture property, so refresh it for the current color.
	texture.SetColorMod(color.R, color.G, color.B)
	copyCentered(renderer, texture, rect)
}

// layoutSegments splits inner into count segments of equal width with a
// gap before every segment but the first. Leftover pixels from integer
// division widen the leftmost segments by one each.
func layoutSegments(inner sdl.Rect, count int, gap int32) []sdl.Rect {
	if count <= 0 {
		return nil
	}

	available := inner.W - gap*int32(count-1)
	if available < 0 {
		available = 0
	}
	base := available / int32(count)
	leftover := available % int32(count)

	rects := make([]sdl.Rect, count)
	x := inner.X
	for i := range rects {
		w := base
		if int32(i) < leftover {
			w++
		}
		rects[i] = sdl.Rect{X: x, Y: inner.Y, W: w, H: inner.H}
		x += w + gap
	}
	return rects
}

func copyCentered(renderer *sdl.Renderer, texture *sdl.Texture, rect sdl.Rect) {
	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	// Shrink to fit while keeping aspect ratio; never upscale.
	if w > rect.W || h > rect.H {
		ratio := math.Min(float64(rect.W)/float64(w), float64(rect.H)/float64(h))
		w = int32(float64(w) * ratio)
		h = int32(float64(h) * ratio)
	}

	dst := sdl.Rect{
		X: rect.X + (rect.W-w)/2,
		Y: rect.Y + (rect.H-h)/2,
		W: w,
		H: h,
	}
	renderer.Copy(texture, nil, &dst)
}

func styleFlags(style TextStyle) int {
	flags := ttf.STYLE_NORMAL
	if style.Bold {
		flags |= ttf.STYLE_BOLD
	}
	if style.Italic {
		flags |= ttf.STYLE_ITALIC
	}
	if style.Underline {
		flags |= ttf.STYLE_UNDERLINE
	}
	return flags
}

func scaled(value float32, scale float32) int32 {
	pixels := int32(math.Round(float64(value * scale)))
	if value > 0 && pixels < 1 {
		return 1
	}
	return pixels
}
