package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// FooterHelpItem pairs a button name with the action it performs, shown
// along the bottom edge of blocking widgets.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, bottomMargin int32) {
	if font == nil || len(items) == 0 {
		return
	}

	window := internal.GetWindow()
	buttonColor := sdl.Color{R: 180, G: 180, B: 180, A: 255}
	textColor := sdl.Color{R: 120, G: 120, B: 120, A: 255}

	itemGap, _ := internal.TextSize(font, "    ")
	pairGap, _ := internal.TextSize(font, " ")

	var totalWidth int32
	for i, item := range items {
		bw, _ := internal.TextSize(font, item.ButtonName)
		hw, _ := internal.TextSize(font, item.HelpText)
		totalWidth += bw + pairGap + hw
		if i < len(items)-1 {
			totalWidth += itemGap
		}
	}

	_, fontHeight := internal.TextSize(font, "Aj")
	x := (window.GetWidth() - totalWidth) / 2
	y := window.GetHeight() - bottomMargin - fontHeight

	for _, item := range items {
		bw, _ := internal.RenderText(renderer, font, item.ButtonName, x, y, buttonColor)
		x += bw + pairGap
		hw, _ := internal.RenderText(renderer, font, item.HelpText, x, y, textColor)
		x += hw + itemGap
	}
}
