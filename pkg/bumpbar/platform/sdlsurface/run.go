package sdlsurface

import (
	"context"
	"image/color"
	"math"
	"time"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar"
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const frameDelay = 16

type RunOptions struct {
	// Touches carries taps in window pixels from another input source, such
	// as the evdev reader. Taps above the bar are ignored.
	Touches <-chan bumpbar.TouchPoint

	// Background fills the window above the bar.
	Background color.RGBA
}

// Run drives view inside window until the window is closed or ctx is done.
// The bar is docked to the bottom of the window.
func Run(ctx context.Context, window *Window, view *bumpbar.NavigationView, surface *Surface, opts RunOptions) error {
	logger := internal.GetInternalLogger()
	barTop := float64(0)

	layout := func() {
		width, height := window.Width(), window.Height()
		barHeight := view.Measure(int(width), int(height), bumpbar.MeasureAtMost)
		view.OnSizeChanged(int(width), barHeight)
		barTop = float64(height) - float64(barHeight)
		surface.SetOrigin(0, barTop)
	}
	layout()

	touch := func(x, y float64) {
		if !inBar(y, barTop) {
			return
		}
		if !view.OnTouch(x) {
			logger.Debug("Touch outside any item", "x", x, "y", y)
		}
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.MouseButtonEvent:
				// SDL also reports finger taps here.
				if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT {
					touch(float64(e.X), float64(e.Y))
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					layout()
				}
			}
		}

	drain:
		for opts.Touches != nil {
			select {
			case p, ok := <-opts.Touches:
				if !ok {
					opts.Touches = nil
					break drain
				}
				touch(p.X, p.Y)
			default:
				break drain
			}
		}

		now := time.Now()
		view.Tick(now.Sub(last))
		last = now

		if view.NeedsLayout() {
			layout()
		}

		if view.NeedsRedraw() {
			bg := opts.Background
			window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
			window.Renderer.Clear()
			view.Render(surface)
			window.Renderer.Present()
		}

		sdl.Delay(frameDelay)
	}
}

// inBar reports whether a tap at window row y lands on the bar docked at
// barTop. A NaN y comes from a source without a vertical axis and is kept.
func inBar(y, barTop float64) bool {
	return math.IsNaN(y) || y >= barTop
}
