package bumpbar

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
)

// TransitionState is the engine's state machine:
//
//	        Start()               t reaches 1
//	Idle ─────────────► Running ──────────────► Idle
//	                     │  ▲
//	                     └──┘ Start() cancels and restarts
type TransitionState int

const (
	TransitionIdle TransitionState = iota
	TransitionRunning
)

func (s TransitionState) String() string {
	switch s {
	case TransitionIdle:
		return "idle"
	case TransitionRunning:
		return "running"
	default:
		return fmt.Sprintf("TransitionState(%d)", int(s))
	}
}

// TransitionSpec describes one switch between two selected indices.
type TransitionSpec struct {
	From         int
	To           int
	Duration     time.Duration
	Easing       internal.EasingFunc
	StartCircleX float64
	EndCircleX   float64
}

type activeTransition struct {
	spec      TransitionSpec
	fromStart attributes
	toStart   attributes
}

// TransitionEngine plays a TransitionSpec against an ItemStore. It never
// blocks: the host feeds it time through Advance or Step.
type TransitionEngine struct {
	store     *ItemStore
	active    *activeTransition
	elapsed   time.Duration
	onSettled func(index int)
	logger    *slog.Logger
}

func NewTransitionEngine(store *ItemStore, logger *slog.Logger) *TransitionEngine {
	if logger == nil {
		logger = internal.GetInternalLogger()
	}
	return &TransitionEngine{store: store, logger: logger}
}

// SetOnSettled registers the completion callback. It runs after the engine is
// back to Idle, so it may start another transition.
func (e *TransitionEngine) SetOnSettled(fn func(index int)) {
	e.onSettled = fn
}

func (e *TransitionEngine) State() TransitionState {
	if e.active != nil {
		return TransitionRunning
	}
	return TransitionIdle
}

func (e *TransitionEngine) Running() bool {
	return e.active != nil
}

// Active returns the running spec.
func (e *TransitionEngine) Active() (TransitionSpec, bool) {
	if e.active == nil {
		return TransitionSpec{}, false
	}
	return e.active.spec, true
}

func (e *TransitionEngine) Elapsed() time.Duration {
	return e.elapsed
}

// Start begins spec, cancelling any running transition first. The From and
// To slots animate from wherever they currently are; every other slot is
// forced to unselected rest.
func (e *TransitionEngine) Start(spec TransitionSpec) {
	if e.active != nil {
		// Re-selecting the running target restarts the same switch.
		if spec.From == spec.To && e.active.spec.To == spec.To {
			spec.From = e.active.spec.From
		}
		e.logger.Debug("Transition interrupted",
			"from", e.active.spec.From,
			"to", e.active.spec.To,
			"elapsed_ms", e.elapsed.Milliseconds(),
		)
		e.Cancel()
	}
	if spec.Easing == nil {
		spec.Easing = internal.Linear
	}

	rest := e.store.Rest()
	for i := 0; i < e.store.Count(); i++ {
		if i != spec.From && i != spec.To {
			e.store.slot(i).setAttributes(rest.unselected())
		}
	}

	e.active = &activeTransition{
		spec:      spec,
		fromStart: e.store.slot(spec.From).attributes(),
		toStart:   e.store.slot(spec.To).attributes(),
	}
	e.elapsed = 0
	e.store.setCenterX(spec.StartCircleX)

	e.logger.Debug("Transition started",
		"from", spec.From,
		"to", spec.To,
		"duration_ms", spec.Duration.Milliseconds(),
	)
}

// Cancel drops the running transition. Attributes stay where the last tick
// left them and no callback fires.
func (e *TransitionEngine) Cancel() {
	e.active = nil
	e.elapsed = 0
}

// Retarget moves the circle endpoints of the running transition, used when
// the layout changes mid-flight.
func (e *TransitionEngine) Retarget(startX, endX float64) {
	if e.active == nil {
		return
	}
	e.active.spec.StartCircleX = startX
	e.active.spec.EndCircleX = endX
}

// Step advances the running transition by dt.
func (e *TransitionEngine) Step(dt time.Duration) bool {
	return e.Advance(e.elapsed + dt)
}

// Advance evaluates the running transition at elapsed time since its start.
// All streams share one progress value. It reports whether the transition
// settled on this tick.
func (e *TransitionEngine) Advance(elapsed time.Duration) bool {
	if e.active == nil {
		return false
	}
	e.elapsed = elapsed

	spec := e.active.spec
	t := 1.0
	if spec.Duration > 0 {
		t = internal.ClampUnit(float64(elapsed) / float64(spec.Duration))
	}
	p := spec.Easing(t)
	if math.IsNaN(p) {
		p = t
	}

	rest := e.store.Rest()
	e.store.setCenterX(internal.Lerp(spec.StartCircleX, spec.EndCircleX, p))
	if spec.From != spec.To {
		e.store.slot(spec.From).setAttributes(interpolate(e.active.fromStart, rest.unselected(), p))
	}
	e.store.slot(spec.To).setAttributes(interpolate(e.active.toStart, rest.selected(), p))

	if t < 1 {
		return false
	}

	e.settle()
	return true
}

func (e *TransitionEngine) settle() {
	spec := e.active.spec
	rest := e.store.Rest()

	if spec.From != spec.To {
		e.store.slot(spec.From).setAttributes(rest.unselected())
	}
	e.store.slot(spec.To).setAttributes(rest.selected())
	e.store.setCenterX(spec.EndCircleX)

	e.active = nil
	e.elapsed = 0

	e.logger.Debug("Transition settled", "index", spec.To)
	if e.onSettled != nil {
		e.onSettled(spec.To)
	}
}

func interpolate(from, to attributes, p float64) attributes {
	return attributes{
		IconSize:   math.Max(internal.Lerp(from.IconSize, to.IconSize, p), 0),
		TextAlpha:  internal.ClampUnit(internal.Lerp(from.TextAlpha, to.TextAlpha, p)),
		TextOffset: internal.Lerp(from.TextOffset, to.TextOffset, p),
	}
}
