package bumpbar

import (
	"image/color"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
)

type (
	Point  = internal.Point
	Rect   = internal.Rect
	Path   = internal.Path
	Layout = internal.Layout
)

// Shadow is a soft shadow drawn behind a filled shape.
type Shadow struct {
	Radius float64
	Color  color.RGBA
}

type TextStyle struct {
	Color color.RGBA
	Size  float64
	Bold  bool
}

// Surface is the drawing collaborator a Frame is replayed onto.
type Surface interface {
	FillPath(path Path, fill color.RGBA, shadow Shadow)
	FillCircle(center Point, radius float64, fill color.RGBA, shadow Shadow)
	DrawIcon(icon Icon, bounds Rect, tint color.RGBA)
	// DrawText draws text with its left edge at origin.X and its baseline at origin.Y.
	DrawText(text string, origin Point, style TextStyle)
}

// TextMeasurer supplies font metrics. Ascent is the positive distance from
// the top of the line to the baseline.
type TextMeasurer interface {
	Ascent() float64
	MeasureText(text string) float64
}

type DrawCommand interface {
	Replay(s Surface)
}

type PathCommand struct {
	Path   Path
	Fill   color.RGBA
	Shadow Shadow
}

func (c PathCommand) Replay(s Surface) { s.FillPath(c.Path, c.Fill, c.Shadow) }

type CircleCommand struct {
	Center Point
	Radius float64
	Fill   color.RGBA
	Shadow Shadow
}

func (c CircleCommand) Replay(s Surface) { s.FillCircle(c.Center, c.Radius, c.Fill, c.Shadow) }

type IconCommand struct {
	Index    int
	Selected bool
	Icon     Icon
	Bounds   Rect
	Tint     color.RGBA
}

func (c IconCommand) Replay(s Surface) { s.DrawIcon(c.Icon, c.Bounds, c.Tint) }

type TextCommand struct {
	Index  int
	Text   string
	Origin Point
	Style  TextStyle
}

func (c TextCommand) Replay(s Surface) { s.DrawText(c.Text, c.Origin, c.Style) }

// Frame is the ordered list of draw commands for one repaint.
type Frame struct {
	Commands []DrawCommand
}

func (f Frame) Empty() bool {
	return len(f.Commands) == 0
}

func (f Frame) Replay(s Surface) {
	for _, cmd := range f.Commands {
		cmd.Replay(s)
	}
}

// Project turns the store and layout into a Frame: background with bump,
// circle, icons, then the selected title. A store without items yields an
// empty frame.
func Project(store *ItemStore, layout Layout, style Style, measurer TextMeasurer) Frame {
	count := store.Count()
	if count == 0 {
		return Frame{}
	}

	theme := style.Theme
	metrics := style.Metrics
	selected := store.Selected()

	centerX := store.CenterX()
	if !centerXSet(centerX) {
		centerX = layout.CenterX(selected)
	}

	frame := Frame{Commands: make([]DrawCommand, 0, count+3)}

	frame.Commands = append(frame.Commands, PathCommand{
		Path:   layout.Outline(centerX),
		Fill:   theme.BackgroundColor,
		Shadow: Shadow{Radius: theme.BackgroundShadow, Color: theme.ShadowColor},
	})

	frame.Commands = append(frame.Commands, CircleCommand{
		Center: Point{X: centerX, Y: layout.CircleCenterY},
		Radius: layout.CircleRadius,
		Fill:   theme.CircleColor,
		Shadow: Shadow{Radius: theme.CircleShadow, Color: theme.ShadowColor},
	})

	for i := 0; i < count; i++ {
		item := store.slot(i)
		if item.Icon == nil {
			continue
		}

		itemX := layout.CenterX(i)
		size := item.IconSize
		bounds := Rect{X: itemX - size/2, W: size, H: size}
		tint := theme.UnselectedIconColor
		if i == selected {
			bounds.Y = layout.CircleCenterY - size/2
			tint = theme.SelectedIconColor
		} else {
			bounds.Y = layout.BarTopY + (layout.BarHeight-size)/2
		}

		frame.Commands = append(frame.Commands, IconCommand{
			Index:    i,
			Selected: i == selected,
			Icon:     item.Icon,
			Bounds:   bounds,
			Tint:     tint,
		})
	}

	if title := store.slot(selected).Title; title != "" {
		item := store.slot(selected)

		var ascent, width float64
		if measurer != nil {
			ascent = measurer.Ascent()
			width = measurer.MeasureText(title)
		}

		baseline := layout.BarTopY + metrics.SelectedIconSize + metrics.TextGap + ascent + item.TextOffset
		frame.Commands = append(frame.Commands, TextCommand{
			Index:  selected,
			Text:   title,
			Origin: Point{X: layout.CenterX(selected) - width/2, Y: baseline},
			Style: TextStyle{
				Color: internal.WithAlpha(theme.TextColor, item.TextAlpha),
				Size:  metrics.TextSize,
				Bold:  theme.TextBold,
			},
		})
	}

	return frame
}
