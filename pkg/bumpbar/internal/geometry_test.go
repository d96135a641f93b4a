package internal

import (
	"fmt"
	"testing"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DerivedSizes(t *testing.T) {
	m := DefaultMetrics(1)

	assert.Equal(t, 26.0, m.CircleRadius())
	assert.Equal(t, 30.0, m.BumpRadius())
	assert.Equal(t, 70.0, m.BarHeight())
	assert.Equal(t, 112, m.DesiredHeight())
}

func TestMetrics_DesiredHeightHonorsMinimum(t *testing.T) {
	m := Metrics{MinHeight: 48}

	assert.Equal(t, 48, m.DesiredHeight())
}

func TestMetrics_DesiredHeightRoundsUp(t *testing.T) {
	m := DefaultMetrics(1)
	m.TextSize = 14.2

	assert.Equal(t, 113, m.DesiredHeight())
}

func TestMetrics_BarHeightUsesLargerIcon(t *testing.T) {
	m := DefaultMetrics(1)
	m.UnselectedIconSize = 50

	assert.Equal(t, 84.0, m.BarHeight())
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(500, 112, 5, DefaultMetrics(1))

	assert.Equal(t, 42.0, l.BarTopY)
	assert.Equal(t, l.BarTopY, l.CircleCenterY)
	assert.Equal(t, 26.0, l.CircleRadius)
	assert.Equal(t, 30.0, l.BumpRadius)
	assert.Equal(t, 70.0, l.BarHeight)
	assert.Equal(t, 100.0, l.SectionWidth())
}

func TestLayout_CenterX(t *testing.T) {
	l := ComputeLayout(500, 112, 5, DefaultMetrics(1))

	assert.Equal(t, 50.0, l.CenterX(0))
	assert.Equal(t, 250.0, l.CenterX(2))
	assert.Equal(t, 450.0, l.CenterX(4))

	empty := ComputeLayout(500, 112, 0, DefaultMetrics(1))
	assert.Equal(t, 250.0, empty.CenterX(0))
	assert.Equal(t, 250.0, empty.CenterX(3))
}

func TestLayout_CenterXPartitionsWidth(t *testing.T) {
	for n := 1; n <= constants.MaxItems; n++ {
		for _, width := range []float64{500, 333} {
			t.Run(fmt.Sprintf("%d items at %.0fpx", n, width), func(t *testing.T) {
				l := ComputeLayout(width, 112, n, DefaultMetrics(1))
				section := width / float64(n)

				for i := 0; i < n; i++ {
					x := l.CenterX(i)
					assert.InDelta(t, section*float64(i)+section/2, x, 1e-9)
					assert.InDelta(t, width, x+l.CenterX(n-1-i), 1e-9, "mirror of %d", i)

					index, ok := MapTouch(x, width, n)
					require.True(t, ok)
					assert.Equal(t, i, index)
				}
				if n%2 == 1 {
					assert.InDelta(t, width/2, l.CenterX(n/2), 1e-9)
				}
			})
		}
	}
}

func TestLayout_Bump(t *testing.T) {
	l := ComputeLayout(500, 112, 5, DefaultMetrics(1))
	b := l.Bump(250)

	assert.InDelta(t, 199.0, b.Left.X, 1e-9)
	assert.InDelta(t, 301.0, b.Right.X, 1e-9)
	assert.Equal(t, 42.0, b.Left.Y)
	assert.Equal(t, 42.0, b.Right.Y)
	assert.Equal(t, Point{250, 12}, b.Apex)

	// Mirror symmetric around the center.
	assert.InDelta(t, 250-b.RiseC1.X, b.FallC2.X-250, 1e-9)
	assert.InDelta(t, 250-b.RiseC2.X, b.FallC1.X-250, 1e-9)
	assert.Equal(t, b.RiseC2.Y, b.FallC1.Y)
}

func TestLayout_Outline(t *testing.T) {
	l := ComputeLayout(500, 112, 5, DefaultMetrics(1))
	p := l.Outline(250)

	require.Len(t, p.Ops, 8)

	verbs := make([]PathVerb, len(p.Ops))
	for i, op := range p.Ops {
		verbs[i] = op.Verb
	}
	assert.Equal(t, []PathVerb{
		PathMoveTo, PathLineTo, PathCubicTo, PathCubicTo,
		PathLineTo, PathLineTo, PathLineTo, PathClose,
	}, verbs)

	assert.Equal(t, Point{0, 42}, p.Ops[0].Points[0])
	assert.Equal(t, Point{250, 12}, p.Ops[2].Points[2])
	assert.Equal(t, Point{500, 42}, p.Ops[4].Points[0])
	assert.Equal(t, Point{500, 112}, p.Ops[5].Points[0])
	assert.Equal(t, Point{0, 112}, p.Ops[6].Points[0])
}

func TestPath_Flatten(t *testing.T) {
	l := ComputeLayout(500, 112, 5, DefaultMetrics(1))
	pts := l.Outline(250).Flatten(4)

	require.Len(t, pts, 13)
	assert.Equal(t, Point{0, 42}, pts[0])
	assert.InDelta(t, 250.0, pts[5].X, 1e-9)
	assert.InDelta(t, 12.0, pts[5].Y, 1e-9)
	assert.Equal(t, Point{0, 112}, pts[len(pts)-1])

	for _, pt := range pts {
		assert.GreaterOrEqual(t, pt.Y, 12.0-1e-9, "nothing rises above the apex")
	}
}

func TestPath_FlattenClampsSteps(t *testing.T) {
	var p Path
	p.MoveTo(Point{0, 0})
	p.CubicTo(Point{1, 1}, Point{2, 1}, Point{3, 0})

	assert.Len(t, p.Flatten(0), 2)
}

func TestDensity_DpToPx(t *testing.T) {
	assert.Equal(t, 20.0, Density(2).DpToPx(10))
	assert.Equal(t, 0.0, Density(2).DpToPx(-5))
	assert.Equal(t, 2000.0, Density(2).DpToPx(5000))
	assert.Equal(t, 10.0, Density(0).DpToPx(10))
}

func TestDensityFromDPI(t *testing.T) {
	assert.Equal(t, Density(2), DensityFromDPI(320))
	assert.Equal(t, Density(1), DensityFromDPI(0))
}

func TestDensityFromWidth(t *testing.T) {
	assert.Equal(t, Density(1), DensityFromWidth(1024))
	assert.Equal(t, Density(0.5), DensityFromWidth(512))
	assert.Equal(t, Density(1.75), DensityFromWidth(2048))
	assert.Equal(t, Density(1), DensityFromWidth(0))
}
