package bumpbar

import (
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
	"go.uber.org/atomic"
)

// MeasureMode is the constraint the host places on the bar's height.
type MeasureMode int

const (
	MeasureUnspecified MeasureMode = iota
	MeasureAtMost
	MeasureExactly
)

// TouchAction is what a tap at some X coordinate resolves to.
type TouchAction int

const (
	TouchIgnored TouchAction = iota
	TouchReselect
	TouchSwitch
)

func (a TouchAction) String() string {
	switch a {
	case TouchReselect:
		return "reselect"
	case TouchSwitch:
		return "switch"
	default:
		return "ignored"
	}
}

// TouchPoint is a tap in window pixels from an input source outside the
// host's event loop. Y is NaN when the source has no vertical axis.
type TouchPoint = internal.TouchPoint

// TitleTranslator localizes menu titles. i18n.Translator implements it.
type TitleTranslator interface {
	Title(id, fallback string) string
}

type Options struct {
	Style          Style
	Measurer       TextMeasurer
	IconLoader     IconLoader
	Translator     TitleTranslator
	Logger         *slog.Logger
	OnItemSelected func(index int)
}

func DefaultOptions() Options {
	return Options{Style: DefaultStyle(1)}
}

// NavigationView is the bar as a host sees it: measure, size, touch, tick and
// render entry points around the item store and transition engine. It is not
// safe for concurrent use except for SettledIndex.
type NavigationView struct {
	style    Style
	store    *ItemStore
	engine   *TransitionEngine
	layout   Layout
	width    float64
	height   float64
	measurer TextMeasurer
	icons    IconLoader
	titles   TitleTranslator
	logger   *slog.Logger

	onItemSelected func(index int)
	settled        *atomic.Int32

	needsRedraw bool
	needsLayout bool
}

func NewNavigationView(opts Options) *NavigationView {
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	v := &NavigationView{
		style:          opts.Style,
		measurer:       opts.Measurer,
		icons:          opts.IconLoader,
		titles:         opts.Translator,
		logger:         logger,
		onItemSelected: opts.OnItemSelected,
		settled:        atomic.NewInt32(-1),
		needsLayout:    true,
		needsRedraw:    true,
	}

	v.store = NewItemStore(restValues(v.style.Metrics), logger)
	v.store.SetInitialSelection(v.style.InitialIndex)
	v.engine = NewTransitionEngine(v.store, logger)
	v.engine.SetOnSettled(v.settle)
	v.relayout()

	return v
}

// SetItems replaces the menu with parallel icon and title lists. Entries
// missing either are skipped.
func (v *NavigationView) SetItems(icons []Icon, titles []string) error {
	if _, err := v.store.SetItems(icons, titles); err != nil {
		return err
	}
	v.engine.Cancel()
	v.menuChanged()
	return nil
}

func (v *NavigationView) AddItem(icon Icon, title string) error {
	if err := v.store.AddItem(icon, title); err != nil {
		return err
	}
	v.engine.Cancel()
	v.menuChanged()
	return nil
}

func (v *NavigationView) ClearItems() {
	v.engine.Cancel()
	v.store.Clear()
	v.store.setCenterX(unsetCenterX)
	v.settled.Store(-1)
	v.relayout()
	v.needsRedraw = true
}

func (v *NavigationView) menuChanged() {
	v.store.ResetAttributes()
	v.relayout()
	v.snapCircle()
	v.settled.Store(int32(v.store.Selected()))
	v.needsLayout = true
	v.needsRedraw = true
}

// SetInitialSelection sets the index selected when a menu is adopted into an
// empty bar.
func (v *NavigationView) SetInitialSelection(index int) {
	v.style.InitialIndex = index
	v.store.SetInitialSelection(index)
}

// Select switches to index with an animated transition. It reports whether a
// transition was started.
func (v *NavigationView) Select(index int) bool {
	req, ok := v.store.Select(index, v.engine.Running())
	if !ok {
		return false
	}

	startX := v.store.CenterX()
	if !centerXSet(startX) {
		startX = v.layout.CenterX(req.From)
	}

	v.engine.Start(TransitionSpec{
		From:         req.From,
		To:           req.To,
		Duration:     v.style.AnimationDuration,
		Easing:       internal.Easing(v.style.Easing),
		StartCircleX: startX,
		EndCircleX:   v.layout.CenterX(req.To),
	})
	v.needsRedraw = true
	return true
}

func (v *NavigationView) settle(index int) {
	v.settled.Store(int32(index))
	v.needsRedraw = true
	v.notify(index)
}

func (v *NavigationView) notify(index int) {
	if v.onItemSelected != nil {
		v.onItemSelected(index)
	}
}

// SetAnimationDuration applies to transitions started afterwards. Negative
// durations are treated as zero.
func (v *NavigationView) SetAnimationDuration(d time.Duration) {
	v.style.AnimationDuration = max(d, 0)
}

func (v *NavigationView) SetEasing(curve constants.EasingCurve) {
	if !curve.Valid() {
		v.logger.Warn("Unknown easing curve, using default", "curve", int(curve), "default", constants.DefaultEasing.String())
		curve = constants.DefaultEasing
	}
	v.style.Easing = curve
}

func (v *NavigationView) SetOnItemSelected(fn func(index int)) {
	v.onItemSelected = fn
}

// SetMeasurer replaces the text measurer, typically after a text size change.
func (v *NavigationView) SetMeasurer(m TextMeasurer) {
	v.measurer = m
	v.needsRedraw = true
}

func (v *NavigationView) SetBackgroundColor(c color.RGBA) {
	v.style.Theme.BackgroundColor = c
	v.needsRedraw = true
}

func (v *NavigationView) SetBackgroundElevation(px float64) {
	v.style.Theme.BackgroundShadow = math.Max(px, 0)
	v.needsRedraw = true
}

func (v *NavigationView) SetCircleColor(c color.RGBA) {
	v.style.Theme.CircleColor = c
	v.needsRedraw = true
}

func (v *NavigationView) SetCircleElevation(px float64) {
	v.style.Theme.CircleShadow = math.Max(px, 0)
	v.needsRedraw = true
}

func (v *NavigationView) SetShadowColor(c color.RGBA) {
	v.style.Theme.ShadowColor = c
	v.needsRedraw = true
}

func (v *NavigationView) SetSelectedIconColor(c color.RGBA) {
	v.style.Theme.SelectedIconColor = c
	v.needsRedraw = true
}

func (v *NavigationView) SetUnselectedIconColor(c color.RGBA) {
	v.style.Theme.UnselectedIconColor = c
	v.needsRedraw = true
}

func (v *NavigationView) SetTextColor(c color.RGBA) {
	v.style.Theme.TextColor = c
	v.needsRedraw = true
}

func (v *NavigationView) SetTextBold(bold bool) {
	v.style.Theme.TextBold = bold
	v.needsRedraw = true
}

func (v *NavigationView) SetSelectedIconSize(px float64) {
	v.style.Metrics.SelectedIconSize = math.Max(px, 0)
	v.metricsChanged()
}

func (v *NavigationView) SetUnselectedIconSize(px float64) {
	v.style.Metrics.UnselectedIconSize = math.Max(px, 0)
	v.metricsChanged()
}

func (v *NavigationView) SetTextSize(px float64) {
	v.style.Metrics.TextSize = math.Max(px, 0)
	v.metricsChanged()
}

func (v *NavigationView) SetTextMarginTop(px float64) {
	v.style.Metrics.TextMarginTop = math.Max(px, 0)
	v.metricsChanged()
}

// metricsChanged re-derives the rest values and the layout. Idle bars snap
// to the new rest state; a running transition keeps going toward it.
func (v *NavigationView) metricsChanged() {
	v.store.SetRest(restValues(v.style.Metrics))
	v.relayout()
	if v.engine.Running() {
		v.retarget(v.width)
	} else {
		v.store.ResetAttributes()
		v.snapCircle()
	}
	v.needsLayout = true
	v.needsRedraw = true
}

// Measure returns the height the bar wants under the given constraint.
func (v *NavigationView) Measure(width, height int, mode MeasureMode) int {
	desired := v.style.Metrics.DesiredHeight()
	v.needsLayout = false

	switch mode {
	case MeasureExactly:
		return height
	case MeasureAtMost:
		return min(desired, height)
	default:
		return desired
	}
}

func (v *NavigationView) OnSizeChanged(width, height int) {
	oldWidth := v.width
	v.width = float64(max(width, 0))
	v.height = float64(max(height, 0))
	v.relayout()

	if v.engine.Running() {
		v.retarget(oldWidth)
	} else {
		v.snapCircle()
	}
	v.needsRedraw = true

	v.logger.Debug("Navigation bar resized", "width", width, "height", height)
}

func (v *NavigationView) relayout() {
	v.layout = internal.ComputeLayout(v.width, v.height, v.store.Count(), v.style.Metrics)
}

func (v *NavigationView) snapCircle() {
	if v.store.Count() == 0 || v.width <= 0 {
		v.store.setCenterX(unsetCenterX)
		return
	}
	v.store.setCenterX(v.layout.CenterX(v.store.Selected()))
}

// retarget rescales the running circle path from a view oldWidth pixels wide
// to the current one, so the circle keeps its relative position and the
// transition carries on without a jump.
func (v *NavigationView) retarget(oldWidth float64) {
	spec, ok := v.engine.Active()
	if !ok {
		return
	}
	if oldWidth <= 0 || !centerXSet(spec.StartCircleX) {
		v.engine.Retarget(v.layout.CenterX(spec.From), v.layout.CenterX(spec.To))
		return
	}

	scale := v.width / oldWidth
	v.engine.Retarget(spec.StartCircleX*scale, spec.EndCircleX*scale)
	if x := v.store.CenterX(); centerXSet(x) {
		v.store.setCenterX(x * scale)
	}
}

// MapTouch resolves a tap at x without acting on it.
func (v *NavigationView) MapTouch(x float64) (TouchAction, int) {
	index, ok := internal.MapTouch(x, v.layout.ViewWidth, v.store.Count())
	if !ok {
		return TouchIgnored, -1
	}
	if index == v.store.Selected() {
		return TouchReselect, index
	}
	return TouchSwitch, index
}

// OnTouch handles a tap at x and reports whether it was consumed.
func (v *NavigationView) OnTouch(x float64) bool {
	action, index := v.MapTouch(x)

	switch action {
	case TouchReselect:
		v.logger.Debug("Item reselected", "index", index)
		v.notify(index)
		return true
	case TouchSwitch:
		v.Select(index)
		return true
	default:
		return false
	}
}

// Tick advances a running transition by dt. It reports whether anything
// changed.
func (v *NavigationView) Tick(dt time.Duration) bool {
	if !v.engine.Running() {
		return false
	}
	v.engine.Step(dt)
	v.needsRedraw = true
	return true
}

func (v *NavigationView) Frame() Frame {
	return Project(v.store, v.layout, v.style, v.measurer)
}

func (v *NavigationView) Render(surface Surface) {
	if surface == nil {
		return
	}
	v.Frame().Replay(surface)
	v.needsRedraw = false
}

func (v *NavigationView) SelectedIndex() int { return v.store.Selected() }
func (v *NavigationView) Count() int         { return v.store.Count() }
func (v *NavigationView) IsAnimating() bool  { return v.engine.Running() }
func (v *NavigationView) Layout() Layout     { return v.layout }
func (v *NavigationView) Style() Style       { return v.style }
func (v *NavigationView) NeedsRedraw() bool  { return v.needsRedraw }
func (v *NavigationView) NeedsLayout() bool  { return v.needsLayout }

// CircleX is the current horizontal center of the circle, or -1 before the
// bar has a size and items.
func (v *NavigationView) CircleX() float64 { return v.store.CenterX() }

// CenterXForIndex is the horizontal center of item i's section.
func (v *NavigationView) CenterXForIndex(i int) float64 { return v.layout.CenterX(i) }

func (v *NavigationView) Item(i int) (MenuItem, bool) {
	return v.store.Item(i)
}

// SettledIndex is the index the last finished transition settled on, or -1
// for an empty bar. Safe to call from any goroutine.
func (v *NavigationView) SettledIndex() int {
	return int(v.settled.Load())
}
