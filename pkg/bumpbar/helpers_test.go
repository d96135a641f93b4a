package bumpbar

import (
	"image/color"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
)

var testRest = RestValues{SelectedIconSize: 36, UnselectedIconSize: 24, TextAnimDistance: 20}

var menuTitles = []string{"Home", "Search", "Add", "Reaction", "Favorite"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func menuIcons() []Icon {
	icons := make([]Icon, len(menuTitles))
	for i, title := range menuTitles {
		icons[i] = "icon:" + title
	}
	return icons
}

func newFullStore(t testing.TB) *ItemStore {
	t.Helper()
	s := NewItemStore(testRest, discardLogger())
	if _, err := s.SetItems(menuIcons(), menuTitles); err != nil {
		t.Fatalf("SetItems: %v", err)
	}
	return s
}

// fixedMeasurer reports 10px ascent and 8px per byte.
type fixedMeasurer struct{}

func (fixedMeasurer) Ascent() float64                 { return 10 }
func (fixedMeasurer) MeasureText(text string) float64 { return float64(8 * len(text)) }

type surfaceCall struct {
	Op     string
	Path   Path
	Center Point
	Radius float64
	Icon   Icon
	Bounds Rect
	Text   string
	Origin Point
	Color  color.RGBA
	Shadow Shadow
	Style  TextStyle
}

type recordingSurface struct {
	calls []surfaceCall
}

func (r *recordingSurface) FillPath(path Path, fill color.RGBA, shadow Shadow) {
	r.calls = append(r.calls, surfaceCall{Op: "path", Path: path, Color: fill, Shadow: shadow})
}

func (r *recordingSurface) FillCircle(center Point, radius float64, fill color.RGBA, shadow Shadow) {
	r.calls = append(r.calls, surfaceCall{Op: "circle", Center: center, Radius: radius, Color: fill, Shadow: shadow})
}

func (r *recordingSurface) DrawIcon(icon Icon, bounds Rect, tint color.RGBA) {
	r.calls = append(r.calls, surfaceCall{Op: "icon", Icon: icon, Bounds: bounds, Color: tint})
}

func (r *recordingSurface) DrawText(text string, origin Point, style TextStyle) {
	r.calls = append(r.calls, surfaceCall{Op: "text", Text: text, Origin: origin, Style: style})
}

func (r *recordingSurface) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Op
	}
	return out
}

type selectionRecorder struct {
	indices []int
}

func (s *selectionRecorder) record(index int) {
	s.indices = append(s.indices, index)
}

func testStyle() Style {
	style := DefaultStyle(1)
	style.AnimationDuration = 400 * time.Millisecond
	style.Easing = constants.EasingLinear
	return style
}

// newTestView returns a 500x112 view holding the five item menu.
func newTestView(t testing.TB, initial int, rec *selectionRecorder) *NavigationView {
	t.Helper()
	style := testStyle()
	style.InitialIndex = initial

	v := NewNavigationView(Options{
		Style:          style,
		Measurer:       fixedMeasurer{},
		Logger:         discardLogger(),
		OnItemSelected: rec.record,
	})
	if err := v.SetItems(menuIcons(), menuTitles); err != nil {
		t.Fatalf("SetItems: %v", err)
	}
	v.OnSizeChanged(500, v.Measure(500, 0, MeasureUnspecified))
	return v
}

// runToEnd ticks v in 50ms steps until its transition settles.
func runToEnd(v *NavigationView) {
	for i := 0; i < 100 && v.IsAnimating(); i++ {
		v.Tick(50 * time.Millisecond)
	}
}
