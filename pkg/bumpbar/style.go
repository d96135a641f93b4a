package bumpbar

import (
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
)

type (
	Style       = internal.Style
	Theme       = internal.Theme
	Metrics     = internal.Metrics
	Density     = internal.Density
	StyleConfig = internal.StyleConfig
)

func DefaultStyle(density Density) Style {
	return internal.DefaultStyle(density)
}

// LoadStyle reads the layered style files and resolves them for density.
func LoadStyle(density Density) (Style, error) {
	cfg, err := internal.LoadStyleConfig()
	if err != nil {
		return Style{}, err
	}
	return cfg.Resolve(density)
}

// LoadStyleFile reads a single style file and resolves it for density.
func LoadStyleFile(path string, density Density) (Style, error) {
	cfg, err := internal.LoadStyleConfigFile(path)
	if err != nil {
		return Style{}, err
	}
	return cfg.Resolve(density)
}

func restValues(m Metrics) RestValues {
	return RestValues{
		SelectedIconSize:   m.SelectedIconSize,
		UnselectedIconSize: m.UnselectedIconSize,
		TextAnimDistance:   m.TextAnimDistance,
	}
}

func DensityFromDPI(dpi float64) Density {
	return internal.DensityFromDPI(dpi)
}

// DensityFromWidth is for displays that report no usable DPI.
func DensityFromWidth(screenWidth int32) Density {
	return internal.DensityFromWidth(screenWidth)
}
