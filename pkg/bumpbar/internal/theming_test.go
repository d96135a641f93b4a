package internal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF7043", color.RGBA{R: 0xFF, G: 0x70, B: 0x43, A: 0xFF}},
		{"#33000000", color.RGBA{A: 0x33}},
		{"#fff", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{"0x00FF00", color.RGBA{G: 0xFF, A: 0xFF}},
		{" 336699 ", color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#GGGGGG", "#ZZ000000"} {
		_, err := ParseHexColor(in)
		assert.Error(t, err, in)
	}
}

func TestMustParseHexColor_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseHexColor("nope") })
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	assert.Equal(t, uint8(128), WithAlpha(c, 0.5).A)
	assert.Equal(t, uint8(0), WithAlpha(c, -1).A)
	assert.Equal(t, uint8(255), WithAlpha(c, 2).A)
	assert.Equal(t, uint8(10), WithAlpha(c, 0.5).R)
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme(2)

	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x70, B: 0x43, A: 0xFF}, theme.CircleColor)
	assert.Equal(t, 20.0, theme.BackgroundShadow)
	assert.Equal(t, 20.0, theme.CircleShadow)
	assert.True(t, theme.TextBold)
}
