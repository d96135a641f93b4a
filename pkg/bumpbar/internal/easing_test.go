package internal

import (
	"testing"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
	"github.com/stretchr/testify/assert"
)

var allCurves = []constants.EasingCurve{
	constants.EasingLinear,
	constants.EasingAccelerate,
	constants.EasingDecelerate,
	constants.EasingAccelerateDecelerate,
	constants.EasingOvershoot,
	constants.EasingBounce,
	constants.EasingAnticipate,
	constants.EasingAnticipateOvershoot,
	constants.EasingFastOutSlowIn,
}

func TestEasing_Endpoints(t *testing.T) {
	for _, curve := range allCurves {
		t.Run(curve.String(), func(t *testing.T) {
			fn := Easing(curve)
			assert.InDelta(t, 0.0, fn(0), 1e-3)
			assert.InDelta(t, 1.0, fn(1), 1e-3)
		})
	}
}

func TestEasing_NoneJumpsToEnd(t *testing.T) {
	fn := Easing(constants.EasingNone)

	assert.Equal(t, 1.0, fn(0))
	assert.Equal(t, 1.0, fn(0.3))
	assert.Equal(t, 1.0, fn(1))
}

func TestEasing_UnknownFallsBackToOvershoot(t *testing.T) {
	fn := Easing(constants.EasingCurve(42))

	assert.Equal(t, Overshoot(0.35), fn(0.35))
}

func TestOvershoot_PassesTarget(t *testing.T) {
	assert.Greater(t, Overshoot(0.7), 1.0)
}

func TestAnticipate_DipsBelowStart(t *testing.T) {
	assert.Less(t, Anticipate(0.2), 0.0)
	assert.Less(t, AnticipateOvershoot(0.1), 0.0)
	assert.Greater(t, AnticipateOvershoot(0.9), 1.0)
}

func TestEasing_Midpoints(t *testing.T) {
	assert.Equal(t, 0.5, Linear(0.5))
	assert.Equal(t, 0.25, Accelerate(0.5))
	assert.Equal(t, 0.75, Decelerate(0.5))
	assert.InDelta(t, 0.5, AccelerateDecelerate(0.5), 1e-9)
	assert.InDelta(t, 0.5, AnticipateOvershoot(0.5), 1e-9)
}

func TestBounce_StaysInRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := Bounce(float64(i) / 100)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.001)
	}
}

func TestCubicBezier_DiagonalIsLinear(t *testing.T) {
	fn := CubicBezier(0, 0, 1, 1)

	for _, x := range []float64{0.1, 0.25, 0.5, 0.8} {
		assert.InDelta(t, x, fn(x), 1e-5)
	}
}

func TestCubicBezier_FastOutSlowInIsMonotonic(t *testing.T) {
	fn := Easing(constants.EasingFastOutSlowIn)

	prev := fn(0)
	for i := 1; i <= 50; i++ {
		v := fn(float64(i) / 50)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.Greater(t, fn(0.5), 0.5, "front-loaded")
}

func TestCubicBezier_ClampsInput(t *testing.T) {
	fn := CubicBezier(0.4, 0, 0.2, 1)

	assert.Equal(t, 0.0, fn(-1))
	assert.Equal(t, 1.0, fn(2))
}

func TestClampUnit(t *testing.T) {
	assert.Equal(t, 0.0, ClampUnit(-0.5))
	assert.Equal(t, 0.4, ClampUnit(0.4))
	assert.Equal(t, 1.0, ClampUnit(1.5))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 15.0, Lerp(10, 20, 0.5))
	assert.Equal(t, 22.0, Lerp(10, 20, 1.2))
}

func TestParseEasingCurve(t *testing.T) {
	assert.Equal(t, constants.EasingFastOutSlowIn, constants.ParseEasingCurve("fast-out-slow-in"))
	assert.Equal(t, constants.EasingBounce, constants.ParseEasingCurve(" BOUNCE "))
	assert.Equal(t, constants.EasingOvershoot, constants.ParseEasingCurve("wobble"))
	assert.Equal(t, "overshoot", constants.EasingCurve(99).String())
	assert.False(t, constants.EasingCurve(99).Valid())
}
