package sdlsurface

import (
	"fmt"
	"math"
	"os"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/goregular"
)

const FallbackFontEnvVar = "FALLBACK_FONT"

// Font is a TTF font opened at the bar's text size. It measures titles for
// the render projector and draws them for the Surface.
type Font struct {
	font *ttf.Font
	bold bool
}

// OpenFont opens path at size pixels. An empty path falls back to
// FALLBACK_FONT and then to the embedded Go Regular face.
func OpenFont(path string, size float64) (*Font, error) {
	px := max(int(math.Round(size)), 1)

	candidates := []string{path, os.Getenv(FallbackFontEnvVar)}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		font, err := ttf.OpenFont(candidate, px)
		if err == nil {
			return &Font{font: font}, nil
		}
		internal.GetInternalLogger().Debug("Failed to load font, trying next", "path", candidate, "error", err)
	}

	return loadEmbeddedFont(goregular.TTF, px)
}

func loadEmbeddedFont(bytes []byte, size int) (*Font, error) {
	rw, err := sdl.RWFromMem(bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create RW from embedded font: %w", err)
	}

	font, err := ttf.OpenFontRW(rw, 1, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded font: %w", err)
	}
	return &Font{font: font}, nil
}

func (f *Font) SetBold(bold bool) {
	if f.bold == bold {
		return
	}
	f.bold = bold
	if bold {
		f.font.SetStyle(ttf.STYLE_BOLD)
	} else {
		f.font.SetStyle(ttf.STYLE_NORMAL)
	}
}

func (f *Font) Ascent() float64 {
	return float64(f.font.Ascent())
}

func (f *Font) MeasureText(text string) float64 {
	w, _, err := f.font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return float64(w)
}

func (f *Font) Close() {
	if f.font != nil {
		f.font.Close()
	}
}
