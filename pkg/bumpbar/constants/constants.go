package constants

import (
	"os"
	"strings"
	"time"
)

const DevModeEnvVar = "BUMPBAR_DEV"

// MaxItems is the fixed slot capacity of a navigation bar.
const MaxItems = 5

// Default sizes in density-independent units.
const (
	DefaultSelectedIconSizeDP   = 36
	DefaultUnselectedIconSizeDP = 24
	DefaultTextSizeDP           = 14
	DefaultTextMarginTopDP      = 10
	DefaultShadowLayerDP        = 10

	TextAnimDistanceDP = 20
	CirclePaddingDP    = 8
	BumpExtraDP        = 4
	BarPaddingDP       = 10
	TopBarPaddingDP    = 12
	MinHeightDP        = 48
	TextGapBelowIconDP = 4

	MaxDP = 1000
)

// Bump outline shape factors, relative to the bump radius.
const (
	BumpSpreadFactor  = 1.7
	BumpControlFactor = 0.95
)

const DefaultAnimationDuration = 400 * time.Millisecond

const (
	DefaultBackgroundColorHex   = "#FFFFFF"
	DefaultCircleColorHex       = "#FF7043"
	DefaultSelectedIconColorHex = "#FFFFFF"
	DefaultUnselectedIconHex    = "#FF7043"
	DefaultTextColorHex         = "#000000"
	DefaultShadowColorHex       = "#33000000"
)

func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) != ""
}

// EasingCurve names the interpolators a transition can use.
type EasingCurve int

const (
	EasingLinear EasingCurve = iota
	EasingAccelerate
	EasingDecelerate
	EasingAccelerateDecelerate
	EasingOvershoot
	EasingBounce
	EasingNone
	EasingAnticipate
	EasingAnticipateOvershoot
	EasingFastOutSlowIn
)

const DefaultEasing = EasingOvershoot

var easingNames = map[EasingCurve]string{
	EasingLinear:               "linear",
	EasingAccelerate:           "accelerate",
	EasingDecelerate:           "decelerate",
	EasingAccelerateDecelerate: "accelerate_decelerate",
	EasingOvershoot:            "overshoot",
	EasingBounce:               "bounce",
	EasingNone:                 "none",
	EasingAnticipate:           "anticipate",
	EasingAnticipateOvershoot:  "anticipate_overshoot",
	EasingFastOutSlowIn:        "fast_out_slow_in",
}

func (c EasingCurve) String() string {
	if name, ok := easingNames[c]; ok {
		return name
	}
	return easingNames[DefaultEasing]
}

// Valid reports whether c is one of the known curves.
func (c EasingCurve) Valid() bool {
	_, ok := easingNames[c]
	return ok
}

// ParseEasingCurve accepts names like "fast-out-slow-in" or "FAST_OUT_SLOW_IN".
// Unknown names resolve to DefaultEasing.
func ParseEasingCurve(name string) EasingCurve {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for curve, n := range easingNames {
		if n == normalized {
			return curve
		}
	}
	return DefaultEasing
}
