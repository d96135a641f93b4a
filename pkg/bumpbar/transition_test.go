package bumpbar

import (
	"math"
	"testing"
	"time"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDuration = 400 * time.Millisecond

func newEngine(t *testing.T) (*ItemStore, *TransitionEngine, *selectionRecorder) {
	t.Helper()
	s := newFullStore(t)
	s.setCenterX(50)
	e := NewTransitionEngine(s, discardLogger())
	rec := &selectionRecorder{}
	e.SetOnSettled(rec.record)
	return s, e, rec
}

func startSwitch(t *testing.T, s *ItemStore, e *TransitionEngine, to int, endX float64, easing internal.EasingFunc) {
	t.Helper()
	req, ok := s.Select(to, e.Running())
	require.True(t, ok)
	e.Start(TransitionSpec{
		From:         req.From,
		To:           req.To,
		Duration:     testDuration,
		Easing:       easing,
		StartCircleX: s.CenterX(),
		EndCircleX:   endX,
	})
}

func TestTransitionEngine_Midway(t *testing.T) {
	s, e, rec := newEngine(t)
	startSwitch(t, s, e, 2, 250, internal.Linear)

	assert.Equal(t, TransitionRunning, e.State())
	assert.False(t, e.Advance(200*time.Millisecond))

	assert.InDelta(t, 150.0, s.CenterX(), 1e-9)

	old, _ := s.Item(0)
	assert.InDelta(t, 30.0, old.IconSize, 1e-9)
	assert.InDelta(t, 0.5, old.TextAlpha, 1e-9)
	assert.InDelta(t, 10.0, old.TextOffset, 1e-9)

	next, _ := s.Item(2)
	assert.InDelta(t, 30.0, next.IconSize, 1e-9)
	assert.InDelta(t, 0.5, next.TextAlpha, 1e-9)
	assert.InDelta(t, 10.0, next.TextOffset, 1e-9)

	assert.Empty(t, rec.indices)
}

func TestTransitionEngine_Settles(t *testing.T) {
	s, e, rec := newEngine(t)
	startSwitch(t, s, e, 2, 250, internal.Linear)

	assert.True(t, e.Advance(testDuration))

	assert.Equal(t, TransitionIdle, e.State())
	assert.Equal(t, 250.0, s.CenterX())
	assertSettled(t, s, 2)
	assert.Equal(t, []int{2}, rec.indices)

	assert.False(t, e.Advance(time.Second), "nothing left to advance")
	assert.Equal(t, []int{2}, rec.indices)
}

func TestTransitionEngine_AdvancePastEndClamps(t *testing.T) {
	s, e, _ := newEngine(t)
	startSwitch(t, s, e, 4, 450, internal.Linear)

	assert.True(t, e.Advance(3*testDuration))
	assert.Equal(t, 450.0, s.CenterX())
	assertSettled(t, s, 4)
}

func TestTransitionEngine_StepAccumulates(t *testing.T) {
	s, e, rec := newEngine(t)
	startSwitch(t, s, e, 1, 150, internal.Linear)

	for i := 0; i < 3; i++ {
		assert.False(t, e.Step(100*time.Millisecond))
	}
	assert.Equal(t, 300*time.Millisecond, e.Elapsed())
	assert.InDelta(t, 125.0, s.CenterX(), 1e-9)

	assert.True(t, e.Step(100*time.Millisecond))
	assert.Equal(t, []int{1}, rec.indices)
}

func TestTransitionEngine_InterruptionStartsFromCurrentValues(t *testing.T) {
	s, e, rec := newEngine(t)
	startSwitch(t, s, e, 2, 250, internal.Linear)
	e.Advance(200 * time.Millisecond)

	startSwitch(t, s, e, 4, 450, internal.Linear)

	spec, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, 2, spec.From)
	assert.Equal(t, 4, spec.To)
	assert.InDelta(t, 150.0, spec.StartCircleX, 1e-9)

	// The interrupted source is forced to rest, the interrupted target
	// continues from where it was.
	first, _ := s.Item(0)
	assert.True(t, first.AtRest(testRest, false))
	mid, _ := s.Item(2)
	assert.InDelta(t, 30.0, mid.IconSize, 1e-9)
	assert.InDelta(t, 0.5, mid.TextAlpha, 1e-9)

	e.Advance(200 * time.Millisecond)
	mid, _ = s.Item(2)
	assert.InDelta(t, 27.0, mid.IconSize, 1e-9)
	assert.InDelta(t, 0.25, mid.TextAlpha, 1e-9)
	assert.InDelta(t, 300.0, s.CenterX(), 1e-9)

	e.Advance(testDuration)
	assertSettled(t, s, 4)
	assert.Equal(t, []int{4}, rec.indices, "only the second transition notifies")
}

func TestTransitionEngine_ReselectWhileRunningRestarts(t *testing.T) {
	s, e, rec := newEngine(t)
	startSwitch(t, s, e, 2, 250, internal.Linear)
	e.Advance(200 * time.Millisecond)

	startSwitch(t, s, e, 2, 250, internal.Linear)

	spec, _ := e.Active()
	assert.Equal(t, 0, spec.From, "the original source keeps animating")
	assert.Equal(t, 2, spec.To)

	e.Advance(testDuration)
	assertSettled(t, s, 2)
	assert.Equal(t, []int{2}, rec.indices)
}

func TestTransitionEngine_CancelFreezes(t *testing.T) {
	s, e, rec := newEngine(t)
	startSwitch(t, s, e, 2, 250, internal.Linear)
	e.Advance(100 * time.Millisecond)
	before := s.Items()

	e.Cancel()

	assert.Equal(t, TransitionIdle, e.State())
	assert.Equal(t, before, s.Items())
	assert.False(t, e.Advance(testDuration))
	assert.Empty(t, rec.indices)
}

func TestTransitionEngine_OvershootKeepsAlphaInRange(t *testing.T) {
	s, e, _ := newEngine(t)
	startSwitch(t, s, e, 2, 250, internal.Overshoot)

	e.Advance(280 * time.Millisecond)

	assert.Greater(t, s.CenterX(), 250.0, "circle overshoots")
	next, _ := s.Item(2)
	assert.Greater(t, next.IconSize, testRest.SelectedIconSize)
	assert.Equal(t, 1.0, next.TextAlpha)
	old, _ := s.Item(0)
	assert.Equal(t, 0.0, old.TextAlpha)
	assert.GreaterOrEqual(t, old.IconSize, 0.0)
}

func TestTransitionEngine_ZeroDurationSettlesOnFirstTick(t *testing.T) {
	s, e, rec := newEngine(t)
	req, _ := s.Select(3, false)
	e.Start(TransitionSpec{From: req.From, To: req.To, StartCircleX: 50, EndCircleX: 350})

	assert.True(t, e.Advance(0))
	assertSettled(t, s, 3)
	assert.Equal(t, 350.0, s.CenterX())
	assert.Equal(t, []int{3}, rec.indices)
}

func TestTransitionEngine_NilEasingIsLinear(t *testing.T) {
	s, e, _ := newEngine(t)
	startSwitch(t, s, e, 2, 250, nil)

	e.Advance(100 * time.Millisecond)
	assert.InDelta(t, 100.0, s.CenterX(), 1e-9)
}

func TestTransitionEngine_NaNEasingFallsBackToProgress(t *testing.T) {
	s, e, _ := newEngine(t)
	startSwitch(t, s, e, 2, 250, func(float64) float64 { return math.NaN() })

	e.Advance(200 * time.Millisecond)
	assert.InDelta(t, 150.0, s.CenterX(), 1e-9)
}

func TestTransitionEngine_ObserverMayStartAnotherTransition(t *testing.T) {
	s, e, _ := newEngine(t)
	chained := false
	e.SetOnSettled(func(index int) {
		if index == 2 && !chained {
			chained = true
			startSwitch(t, s, e, 0, 50, internal.Linear)
		}
	})
	startSwitch(t, s, e, 2, 250, internal.Linear)

	assert.True(t, e.Advance(testDuration))

	assert.True(t, chained)
	assert.True(t, e.Running())
	spec, _ := e.Active()
	assert.Equal(t, 2, spec.From)
	assert.Equal(t, 0, spec.To)
}

func TestTransitionEngine_Retarget(t *testing.T) {
	s, e, _ := newEngine(t)
	startSwitch(t, s, e, 2, 250, internal.Linear)

	e.Retarget(100, 300)
	e.Advance(200 * time.Millisecond)
	assert.InDelta(t, 200.0, s.CenterX(), 1e-9)

	e.Advance(testDuration)
	assert.Equal(t, 300.0, s.CenterX())
}

func TestTransitionEngine_OtherItemsForcedToRest(t *testing.T) {
	s, e, _ := newEngine(t)
	s.slot(3).setAttributes(attributes{IconSize: 99, TextAlpha: 0.7, TextOffset: 1})

	startSwitch(t, s, e, 2, 250, internal.Linear)

	other, _ := s.Item(3)
	assert.True(t, other.AtRest(testRest, false))
}

func TestTransitionState_String(t *testing.T) {
	assert.Equal(t, "idle", TransitionIdle.String())
	assert.Equal(t, "running", TransitionRunning.String())
}
