package internal

import (
	"math"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
)

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// Metrics holds the pixel-space inputs of the layout.
type Metrics struct {
	SelectedIconSize   float64
	UnselectedIconSize float64
	TextMarginTop      float64
	TextSize           float64

	CirclePadding    float64
	BumpExtra        float64
	BarPadding       float64
	TopPadding       float64
	MinHeight        float64
	TextGap          float64
	TextAnimDistance float64
}

// DefaultMetrics converts the dp defaults with the given density.
func DefaultMetrics(density Density) Metrics {
	return Metrics{
		SelectedIconSize:   density.DpToPx(constants.DefaultSelectedIconSizeDP),
		UnselectedIconSize: density.DpToPx(constants.DefaultUnselectedIconSizeDP),
		TextMarginTop:      density.DpToPx(constants.DefaultTextMarginTopDP),
		TextSize:           density.DpToPx(constants.DefaultTextSizeDP),
		CirclePadding:      density.DpToPx(constants.CirclePaddingDP),
		BumpExtra:          density.DpToPx(constants.BumpExtraDP),
		BarPadding:         density.DpToPx(constants.BarPaddingDP),
		TopPadding:         density.DpToPx(constants.TopBarPaddingDP),
		MinHeight:          density.DpToPx(constants.MinHeightDP),
		TextGap:            density.DpToPx(constants.TextGapBelowIconDP),
		TextAnimDistance:   density.DpToPx(constants.TextAnimDistanceDP),
	}
}

func (m Metrics) CircleRadius() float64 {
	return m.SelectedIconSize/2 + m.CirclePadding
}

func (m Metrics) BumpRadius() float64 {
	return m.CircleRadius() + m.BumpExtra
}

func (m Metrics) BarHeight() float64 {
	return math.Max(m.SelectedIconSize, m.UnselectedIconSize) + m.TextMarginTop + m.TextSize + m.BarPadding
}

// DesiredHeight is the height the bar asks for when measured.
func (m Metrics) DesiredHeight() int {
	raw := int(math.Ceil(m.BumpRadius() + m.BarHeight() + m.TopPadding))
	return max(raw, int(m.MinHeight))
}

// Layout is the geometry derived from the view size, item count and metrics.
// It is never persisted; the view recomputes it whenever an input changes.
type Layout struct {
	ViewWidth     float64
	ViewHeight    float64
	BarTopY       float64
	BarHeight     float64
	CircleRadius  float64
	BumpRadius    float64
	CircleCenterY float64
	Count         int
}

func ComputeLayout(width, height float64, count int, m Metrics) Layout {
	bump := m.BumpRadius()
	top := bump + m.TopPadding
	return Layout{
		ViewWidth:     width,
		ViewHeight:    height,
		BarTopY:       top,
		BarHeight:     m.BarHeight(),
		CircleRadius:  m.CircleRadius(),
		BumpRadius:    bump,
		CircleCenterY: top,
		Count:         count,
	}
}

func (l Layout) SectionWidth() float64 {
	if l.Count <= 0 {
		return l.ViewWidth
	}
	return l.ViewWidth / float64(l.Count)
}

// CenterX is the horizontal center of section i. Bump, circle, icons and touch
// mapping all derive their positions from it.
func (l Layout) CenterX(i int) float64 {
	if l.Count <= 0 {
		return l.ViewWidth / 2
	}
	w := l.SectionWidth()
	return w*float64(i) + w/2
}

// Bump describes the raised part of the bar outline around centerX.
type Bump struct {
	Left  Point
	Apex  Point
	Right Point

	// Control points of the rising and the falling cubic segments.
	RiseC1, RiseC2 Point
	FallC1, FallC2 Point
}

func (l Layout) Bump(centerX float64) Bump {
	r := l.BumpRadius
	top := l.BarTopY
	k := constants.BumpControlFactor
	left := centerX - r*constants.BumpSpreadFactor
	right := centerX + r*constants.BumpSpreadFactor

	return Bump{
		Left:   Point{left, top},
		Apex:   Point{centerX, top - r},
		Right:  Point{right, top},
		RiseC1: Point{left + r*k, top},
		RiseC2: Point{centerX - r, top - r*k},
		FallC1: Point{centerX + r, top - r*k},
		FallC2: Point{right - r*k, top},
	}
}

// Outline builds the closed bar shape: flat top, bump, and the rectangle below.
func (l Layout) Outline(centerX float64) Path {
	b := l.Bump(centerX)
	var p Path
	p.MoveTo(Point{0, l.BarTopY})
	p.LineTo(b.Left)
	p.CubicTo(b.RiseC1, b.RiseC2, b.Apex)
	p.CubicTo(b.FallC1, b.FallC2, b.Right)
	p.LineTo(Point{l.ViewWidth, l.BarTopY})
	p.LineTo(Point{l.ViewWidth, l.ViewHeight})
	p.LineTo(Point{0, l.ViewHeight})
	p.Close()
	return p
}

type PathVerb int

const (
	PathMoveTo PathVerb = iota
	PathLineTo
	PathCubicTo
	PathClose
)

// PathOp is one outline instruction. CubicTo uses all three points
// (two controls and the end point), MoveTo and LineTo use only the first.
type PathOp struct {
	Verb   PathVerb
	Points [3]Point
}

type Path struct {
	Ops []PathOp
}

func (p *Path) MoveTo(pt Point) {
	p.Ops = append(p.Ops, PathOp{Verb: PathMoveTo, Points: [3]Point{pt}})
}

func (p *Path) LineTo(pt Point) {
	p.Ops = append(p.Ops, PathOp{Verb: PathLineTo, Points: [3]Point{pt}})
}

func (p *Path) CubicTo(c1, c2, end Point) {
	p.Ops = append(p.Ops, PathOp{Verb: PathCubicTo, Points: [3]Point{c1, c2, end}})
}

func (p *Path) Close() {
	p.Ops = append(p.Ops, PathOp{Verb: PathClose})
}

// Flatten approximates the path as a polygon, splitting every cubic segment
// into steps line segments.
func (p Path) Flatten(steps int) []Point {
	if steps < 1 {
		steps = 1
	}

	var pts []Point
	var cur Point
	for _, op := range p.Ops {
		switch op.Verb {
		case PathMoveTo, PathLineTo:
			cur = op.Points[0]
			pts = append(pts, cur)
		case PathCubicTo:
			for i := 1; i <= steps; i++ {
				pts = append(pts, cubicAt(cur, op.Points[0], op.Points[1], op.Points[2], float64(i)/float64(steps)))
			}
			cur = op.Points[2]
		case PathClose:
		}
	}
	return pts
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
