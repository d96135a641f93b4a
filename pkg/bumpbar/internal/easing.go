package internal

import (
	"math"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
)

// EasingFunc maps linear progress in [0, 1] to eased progress. The result
// may leave [0, 1] for overshooting and anticipating curves.
type EasingFunc func(t float64) float64

const (
	overshootTension          = 2.0
	anticipateTension         = 2.0
	anticipateOvershootFactor = 1.5
)

var fastOutSlowIn = CubicBezier(0.4, 0.0, 0.2, 1.0)

// Easing resolves a curve; unknown curves fall back to overshoot.
func Easing(curve constants.EasingCurve) EasingFunc {
	switch curve {
	case constants.EasingLinear:
		return Linear
	case constants.EasingAccelerate:
		return Accelerate
	case constants.EasingDecelerate:
		return Decelerate
	case constants.EasingAccelerateDecelerate:
		return AccelerateDecelerate
	case constants.EasingOvershoot:
		return Overshoot
	case constants.EasingBounce:
		return Bounce
	case constants.EasingNone:
		return Immediate
	case constants.EasingAnticipate:
		return Anticipate
	case constants.EasingAnticipateOvershoot:
		return AnticipateOvershoot
	case constants.EasingFastOutSlowIn:
		return fastOutSlowIn
	default:
		return Overshoot
	}
}

func Linear(t float64) float64 {
	return t
}

func Accelerate(t float64) float64 {
	return t * t
}

func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Immediate jumps to the end value on the first tick.
func Immediate(float64) float64 {
	return 1
}

func Overshoot(t float64) float64 {
	t -= 1
	return t*t*((overshootTension+1)*t+overshootTension) + 1
}

func Anticipate(t float64) float64 {
	return t * t * ((anticipateTension+1)*t - anticipateTension)
}

func AnticipateOvershoot(t float64) float64 {
	tension := anticipateTension * anticipateOvershootFactor
	if t < 0.5 {
		s := t * 2
		return 0.5 * (s * s * ((tension+1)*s - tension))
	}
	s := t*2 - 2
	return 0.5 * (s*s*((tension+1)*s+tension) + 2)
}

func Bounce(t float64) float64 {
	t *= 1.1226
	switch {
	case t < 0.3535:
		return bounceStep(t)
	case t < 0.7408:
		return bounceStep(t-0.54719) + 0.7
	case t < 0.9644:
		return bounceStep(t-0.8526) + 0.9
	default:
		return bounceStep(t-1.0435) + 0.95
	}
}

func bounceStep(t float64) float64 {
	return t * t * 8
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for i := 0; i < 8; i++ {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleBezier(y1, y2, ClampUnit(u))
			}
			dx := sampleBezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton-Raphson stalled; bisect.
		lo, hi := 0.0, 1.0
		u = ClampUnit(u)
		for i := 0; i < 12; i++ {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleBezier(y1, y2, u)
	}
}

func sampleBezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleBezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func ClampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
