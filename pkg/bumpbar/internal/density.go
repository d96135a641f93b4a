package internal

import "github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"

// Density is the number of pixels per density-independent unit.
type Density float64

const baselineDPI = 160

func (d Density) DpToPx(dp float64) float64 {
	if dp < 0 {
		return 0
	}
	return min(dp, constants.MaxDP) * float64(d.orDefault())
}

func (d Density) orDefault() Density {
	if d <= 0 {
		return 1
	}
	return d
}

func DensityFromDPI(dpi float64) Density {
	if dpi <= 0 {
		return 1
	}
	return Density(dpi / baselineDPI)
}

// DensityFromWidth derives a density for displays that report no usable DPI,
// scaling against a 1024px reference with damped growth above it.
func DensityFromWidth(screenWidth int32) Density {
	const referenceWidth int32 = 1024
	if screenWidth <= 0 {
		return 1
	}

	scaleFactor := float64(screenWidth) / float64(referenceWidth)
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}
	return Density(scaleFactor)
}
