package sdlsurface

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
)

type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string
}

// Init brings up SDL, SDL_ttf and SDL_image.
// Must be called before NewWindow!
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to initialize SDL_ttf: %w", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		internal.GetInternalLogger().Warn("SDL_image initialized partially", "error", err)
	}
	return nil
}

// Quit tears down what Init set up.
// Must be called after every window is closed!
func Quit() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// NewWindow opens a window covering the current display, or a 1024x768
// bordered one in dev mode (overridable with WINDOW_WIDTH and WINDOW_HEIGHT).
func NewWindow(title string) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
	}
	return NewWindowWithSize(title, displayMode.W, displayMode.H)
}

func NewWindowWithSize(title string, width, height int32) (*Window, error) {
	x, y := int32(0), int32(0)
	windowFlags := uint32(sdl.WINDOW_SHOWN)

	if constants.IsDevMode() {
		x, y = 50, 50
		width = envDimension("WINDOW_WIDTH", devWindowWidth)
		height = envDimension("WINDOW_HEIGHT", devWindowHeight)
		windowFlags |= sdl.WINDOW_RESIZABLE
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	return &Window{Window: window, Renderer: renderer, Title: title}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) Width() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) Height() int32 {
	_, height := w.Window.GetSize()
	return height
}

func (w *Window) Close() {
	if w.Renderer != nil {
		w.Renderer.Destroy()
	}
	if w.Window != nil {
		w.Window.Destroy()
	}
}
