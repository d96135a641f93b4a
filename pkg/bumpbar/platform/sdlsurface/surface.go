package sdlsurface

import (
	"image/color"
	"math"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar"
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	curveSteps     = 24
	maxShadowSteps = 12
)

// Surface draws bar frames with SDL_gfx primitives. Every coordinate is
// shifted by the origin, which is where the bar sits in the window.
type Surface struct {
	renderer *sdl.Renderer
	font     *Font
	originX  float64
	originY  float64
}

func NewSurface(renderer *sdl.Renderer, font *Font) *Surface {
	return &Surface{renderer: renderer, font: font}
}

func (s *Surface) SetOrigin(x, y float64) {
	s.originX = x
	s.originY = y
}

func (s *Surface) SetFont(font *Font) {
	s.font = font
}

func (s *Surface) FillPath(path bumpbar.Path, fill color.RGBA, shadow bumpbar.Shadow) {
	pts := path.Flatten(curveSteps)
	if len(pts) < 3 {
		return
	}

	// The shadow spreads above the bar outline.
	steps := shadowSteps(shadow)
	for k := steps; k >= 1; k-- {
		shift := shadow.Radius * float64(k) / float64(steps)
		vx, vy := s.polygon(pts, -shift)
		gfx.FilledPolygonColor(s.renderer, vx, vy, shadowLayer(shadow.Color, steps))
	}

	vx, vy := s.polygon(pts, 0)
	gfx.FilledPolygonColor(s.renderer, vx, vy, toSDL(fill))
	gfx.AAPolygonColor(s.renderer, vx, vy, toSDL(fill))
}

func (s *Surface) polygon(pts []bumpbar.Point, dy float64) ([]int16, []int16) {
	vx := make([]int16, len(pts))
	vy := make([]int16, len(pts))
	for i, p := range pts {
		vx[i] = int16(math.Round(p.X + s.originX))
		vy[i] = int16(math.Round(p.Y + s.originY + dy))
	}
	return vx, vy
}

func (s *Surface) FillCircle(center bumpbar.Point, radius float64, fill color.RGBA, shadow bumpbar.Shadow) {
	cx := int32(math.Round(center.X + s.originX))
	cy := int32(math.Round(center.Y + s.originY))
	r := int32(math.Round(radius))

	steps := shadowSteps(shadow)
	for k := steps; k >= 1; k-- {
		spread := int32(math.Round(shadow.Radius * float64(k) / float64(steps)))
		gfx.FilledCircleColor(s.renderer, cx, cy, r+spread, shadowLayer(shadow.Color, steps))
	}

	drawCircleShape(s.renderer, cx, cy, r, toSDL(fill))
}

func drawCircleShape(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)

	if radius > 2 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

func (s *Surface) DrawIcon(icon bumpbar.Icon, bounds bumpbar.Rect, tint color.RGBA) {
	texture, ok := icon.(*sdl.Texture)
	if !ok || texture == nil {
		return
	}

	texture.SetColorMod(tint.R, tint.G, tint.B)
	texture.SetAlphaMod(tint.A)
	s.renderer.Copy(texture, nil, &sdl.Rect{
		X: int32(math.Round(bounds.X + s.originX)),
		Y: int32(math.Round(bounds.Y + s.originY)),
		W: int32(math.Round(bounds.W)),
		H: int32(math.Round(bounds.H)),
	})
}

func (s *Surface) DrawText(text string, origin bumpbar.Point, style bumpbar.TextStyle) {
	if s.font == nil || text == "" || style.Color.A == 0 {
		return
	}
	s.font.SetBold(style.Bold)

	surface, err := s.font.font.RenderUTF8Blended(text, sdl.Color{R: style.Color.R, G: style.Color.G, B: style.Color.B, A: 255})
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to render title", "text", text, "error", err)
		return
	}
	defer surface.Free()

	texture, err := s.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to create title texture", "text", text, "error", err)
		return
	}
	defer texture.Destroy()

	texture.SetAlphaMod(style.Color.A)
	s.renderer.Copy(texture, nil, &sdl.Rect{
		X: int32(math.Round(origin.X + s.originX)),
		Y: int32(math.Round(origin.Y + s.originY - s.font.Ascent())),
		W: surface.W,
		H: surface.H,
	})
}

func shadowSteps(shadow bumpbar.Shadow) int {
	if shadow.Radius <= 0 || shadow.Color.A == 0 {
		return 0
	}
	return min(int(math.Ceil(shadow.Radius)), maxShadowSteps)
}

// shadowLayer splits the shadow alpha over the stacked layers.
func shadowLayer(c color.RGBA, steps int) sdl.Color {
	a := uint8(max(int(c.A)/steps, 1))
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: a}
}

func toSDL(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
