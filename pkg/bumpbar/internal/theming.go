package internal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
	"github.com/lucasb-eyer/go-colorful"
)

type Theme struct {
	BackgroundColor     color.RGBA // Bar and bump fill
	CircleColor         color.RGBA // Sliding circle under the selected icon
	SelectedIconColor   color.RGBA // Tint of the icon sitting on the circle
	UnselectedIconColor color.RGBA // Tint of every other icon
	TextColor           color.RGBA // Title of the selected item
	ShadowColor         color.RGBA // Shadow under the bar and the circle

	BackgroundShadow float64 // px
	CircleShadow     float64 // px
	TextBold         bool
	FontPath         string
}

func DefaultTheme(density Density) Theme {
	return Theme{
		BackgroundColor:     MustParseHexColor(constants.DefaultBackgroundColorHex),
		CircleColor:         MustParseHexColor(constants.DefaultCircleColorHex),
		SelectedIconColor:   MustParseHexColor(constants.DefaultSelectedIconColorHex),
		UnselectedIconColor: MustParseHexColor(constants.DefaultUnselectedIconHex),
		TextColor:           MustParseHexColor(constants.DefaultTextColorHex),
		ShadowColor:         MustParseHexColor(constants.DefaultShadowColorHex),
		BackgroundShadow:    density.DpToPx(constants.DefaultShadowLayerDP),
		CircleShadow:        density.DpToPx(constants.DefaultShadowLayerDP),
		TextBold:            true,
	}
}

// ParseHexColor accepts #RGB, #RRGGBB and #AARRGGBB (alpha first).
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = "#" + s[3:]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

func MustParseHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha scales the color's alpha by a in [0, 1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = uint8(float64(c.A)*ClampUnit(a) + 0.5)
	return c
}
