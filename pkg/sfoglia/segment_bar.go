package sfoglia

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// SegmentBarSettings configures the SegmentBar widget.
type SegmentBarSettings struct {
	// AllowsMultipleSelection makes segments toggle independently.
	AllowsMultipleSelection bool
	// OnChanged receives a selection snapshot after every tap.
	OnChanged func(selected []bool)
	// DisableBackButton hides the back action and disables cancellation.
	DisableBackButton bool
	// InitialFocus is the segment the focus indicator starts on.
	InitialFocus int
	// TitleAlign positions the title along the top edge.
	TitleAlign constants.TextAlign
	// BarWidth overrides the bar width. Zero means 60% of the window.
	BarWidth int32
	// FooterHelpItems replaces the default localized footer actions.
	FooterHelpItems []FooterHelpItem
}

// SegmentBarResult is the final state when SegmentBar returns.
type SegmentBarResult struct {
	Selected []bool // Selection snapshot at confirmation
	Focused  int    // Segment the focus indicator ended on
}

type segmentBarController struct {
	selector      *SegmentedSelector
	title         string
	settings      SegmentBarSettings
	focusIndex    int
	lastInputTime time.Time
	confirmed     bool
	cancelled     bool

	directionalInput internal.DirectionalInput
}

// SegmentBar presents a segmented selector centered in the window and
// blocks until the user confirms or cancels. Left/right move focus (with
// held-key repeat), the select key taps the focused segment, and mouse
// clicks or touchscreen taps hit segments directly. The theme is re-read
// every frame, so theme and focus changes show up immediately.
// Returns ErrCancelled if the user backs out.
func SegmentBar(title string, settings SegmentBarSettings, options []SegmentContent, selected []bool) (*SegmentBarResult, error) {
	selector, err := NewSegmentedSelector(options, selected, SegmentedSelectorSettings{
		AllowsMultipleSelection: settings.AllowsMultipleSelection,
		OnChanged:               settings.OnChanged,
	})
	if err != nil {
		return nil, err
	}
	defer selector.Destroy()

	window := internal.GetWindow()
	renderer := window.Renderer

	controller := &segmentBarController{
		selector:         selector,
		title:            title,
		settings:         settings,
		focusIndex:       settings.InitialFocus,
		lastInputTime:    time.Now(),
		directionalInput: internal.NewDirectionalInput(),
	}

	if controller.focusIndex < 0 || controller.focusIndex >= selector.Len() {
		controller.focusIndex = 0
	}

	if len(controller.settings.FooterHelpItems) == 0 {
		controller.settings.FooterHelpItems = defaultFooterItems(settings.DisableBackButton)
	}

	taps := internal.TouchTaps()

	for {
		if !controller.handleEvents(window) {
			break
		}

		select {
		case tap := <-taps:
			controller.tapAt(tap.X, tap.Y)
		default:
		}

		if direction := controller.directionalInput.Update(); direction != internal.DirectionNone {
			controller.moveFocus(direction)
		}

		controller.render(renderer, window)
		window.Present()
	}

	if controller.cancelled {
		return nil, ErrCancelled
	}

	return &SegmentBarResult{
		Selected: selector.Selected(),
		Focused:  controller.focusIndex,
	}, nil
}

func defaultFooterItems(disableBack bool) []FooterHelpItem {
	items := make([]FooterHelpItem, 0, 3)
	if !disableBack {
		items = append(items, FooterHelpItem{ButtonName: "B", HelpText: internal.T("footer_back")})
	}
	items = append(items,
		FooterHelpItem{ButtonName: "A", HelpText: internal.T("footer_select")},
		FooterHelpItem{ButtonName: "Start", HelpText: internal.T("footer_confirm")},
	)
	return items
}

func (c *segmentBarController) handleEvents(window *internal.Window) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.WindowEvent:
			window.HandleWindowEvent(e)

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
				c.tapAt(e.X, e.Y)
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYUP {
				c.releaseKey(e.Keysym.Sym)
				continue
			}
			if e.Repeat != 0 {
				continue
			}
			if time.Since(c.lastInputTime) < constants.DefaultInputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			if !c.pressKey(e.Keysym.Sym) {
				return false
			}
		}
	}
	return true
}

// pressKey handles a key press and reports whether the loop continues.
func (c *segmentBarController) pressKey(key sdl.Keycode) bool {
	switch key {
	case sdl.K_LEFT:
		c.directionalInput.SetHeld(internal.DirectionLeft, true)
		c.moveFocus(internal.DirectionLeft)

	case sdl.K_RIGHT:
		c.directionalInput.SetHeld(internal.DirectionRight, true)
		c.moveFocus(internal.DirectionRight)

	case sdl.K_a, sdl.K_SPACE:
		c.selector.HandleTap(c.focusIndex)

	case sdl.K_RETURN:
		c.confirmed = true
		return false

	case sdl.K_b, sdl.K_ESCAPE:
		if !c.settings.DisableBackButton {
			c.cancelled = true
			return false
		}
	}
	return true
}

func (c *segmentBarController) releaseKey(key sdl.Keycode) {
	switch key {
	case sdl.K_LEFT:
		c.directionalInput.SetHeld(internal.DirectionLeft, false)
	case sdl.K_RIGHT:
		c.directionalInput.SetHeld(internal.DirectionRight, false)
	}
}

func (c *segmentBarController) moveFocus(direction internal.Direction) {
	count := c.selector.Len()
	if count == 0 {
		return
	}

	switch direction {
	case internal.DirectionLeft:
		c.focusIndex--
		if c.focusIndex < 0 {
			c.focusIndex = count - 1
		}
	case internal.DirectionRight:
		c.focusIndex++
		if c.focusIndex >= count {
			c.focusIndex = 0
		}
	}
}

func (c *segmentBarController) tapAt(x, y int32) {
	index := c.selector.SegmentAt(x, y)
	if index < 0 {
		return
	}
	c.focusIndex = index
	c.selector.HandleTap(index)
}

func (c *segmentBarController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.CurrentTheme()

	background := theme.Black
	if theme.IsLight {
		background = theme.White
	}
	renderer.SetDrawColor(background.R, background.G, background.B, 255)
	renderer.Clear()

	titleColor := theme.White
	if theme.IsLight {
		titleColor = theme.Black
	}

	margins := internal.UniformPadding(20)
	if c.title != "" {
		titleWidth, _ := internal.TextSize(internal.Fonts.Text, c.title)
		var titleX int32
		switch c.settings.TitleAlign {
		case constants.TextAlignCenter:
			titleX = (window.GetWidth() - titleWidth) / 2
		case constants.TextAlignRight:
			titleX = window.GetWidth() - margins.Right - titleWidth
		default:
			titleX = margins.Left
		}
		internal.RenderText(renderer, internal.Fonts.Text, c.title, titleX, margins.Top, titleColor)
	}

	barWidth := c.settings.BarWidth
	if barWidth <= 0 {
		barWidth = window.GetWidth() * 6 / 10
	}
	barWidth = internal.Min32(barWidth, window.GetWidth()-margins.Left-margins.Right)
	barX := (window.GetWidth() - barWidth) / 2
	barY := (window.GetHeight() - c.selector.BarHeight()) / 2

	c.selector.Render(renderer, barX, barY, barWidth, theme)
	c.renderFocusIndicator(renderer, theme)

	renderFooter(renderer, internal.Fonts.Text, c.settings.FooterHelpItems, margins.Bottom)
}

func (c *segmentBarController) renderFocusIndicator(renderer *sdl.Renderer, theme internal.Theme) {
	if c.focusIndex < 0 || c.focusIndex >= len(c.selector.segmentRects) {
		return
	}

	scale := internal.GetScaleFactor()
	segment := c.selector.segmentRects[c.focusIndex]

	underline := sdl.Rect{
		X: segment.X,
		Y: segment.Y + segment.H + scaled(3, scale),
		W: segment.W,
		H: scaled(2, scale),
	}
	internal.FillRoundedRect(renderer, &underline, scaled(1, scale), theme.Accent500)
}
