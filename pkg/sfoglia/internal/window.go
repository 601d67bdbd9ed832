package internal

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// Window wraps the SDL window and renderer with framework state.
// Focus is tracked atomically: the event loop writes it when SDL delivers
// focus events and the render path reads it through the current theme.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	focused         *atomic.Bool
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions) *Window {
	displayIndex := 0
	displayMode, err := sdl.GetCurrentDisplayMode(displayIndex)

	if err != nil {
		GetInternalLogger().Error("Failed to get display mode!", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, winOpts)
}

func initWindowWithSize(title string, width, height int32, winOpts WindowOptions) *Window {
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false

		x, y = int32(50), int32(50)
		if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				width = int32(n)
			} else {
				GetInternalLogger().Warn("Invalid WINDOW_WIDTH; using default", "value", v, "error", err)
				width = 1024
			}
		} else {
			width = 1024
		}

		if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				height = int32(n)
			} else {
				GetInternalLogger().Warn("Invalid WINDOW_HEIGHT; using default", "value", v, "error", err)
				height = 768
			}
		} else {
			height = 768
		}
	}

	windowFlags := winOpts.ToSDLFlags()

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Error("Failed to create renderer!", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		focused:  atomic.NewBool(true),
		hasVSync: vsync,
	}
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the framework window.
func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// IsAppFocused reports whether the window currently has input focus.
func (w *Window) IsAppFocused() bool {
	return w.focused.Load()
}

// HandleWindowEvent updates focus state from SDL window events.
// Call this from widget event loops for every *sdl.WindowEvent.
func (w *Window) HandleWindowEvent(event *sdl.WindowEvent) {
	switch event.Event {
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		w.focused.Store(true)
	case sdl.WINDOWEVENT_FOCUS_LOST:
		w.focused.Store(false)
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
