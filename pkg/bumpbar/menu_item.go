package bumpbar

// Icon is an opaque drawable handle. The bar never looks inside it; a Surface
// receives it back in DrawIcon together with the bounds and tint to use.
type Icon any

type MenuItem struct {
	Icon  Icon
	Title string

	// Animated attributes, in pixels and [0, 1] alpha.
	IconSize   float64
	TextAlpha  float64
	TextOffset float64
}

// RestValues are the settled attribute values for selected and unselected items.
type RestValues struct {
	SelectedIconSize   float64
	UnselectedIconSize float64
	TextAnimDistance   float64
}

func (r RestValues) selected() attributes {
	return attributes{IconSize: r.SelectedIconSize, TextAlpha: 1, TextOffset: 0}
}

func (r RestValues) unselected() attributes {
	return attributes{IconSize: r.UnselectedIconSize, TextAlpha: 0, TextOffset: r.TextAnimDistance}
}

func (r RestValues) forSelection(selected bool) attributes {
	if selected {
		return r.selected()
	}
	return r.unselected()
}

// attributes is the animated part of a MenuItem.
type attributes struct {
	IconSize   float64
	TextAlpha  float64
	TextOffset float64
}

func (m *MenuItem) attributes() attributes {
	return attributes{IconSize: m.IconSize, TextAlpha: m.TextAlpha, TextOffset: m.TextOffset}
}

func (m *MenuItem) setAttributes(a attributes) {
	m.IconSize = a.IconSize
	m.TextAlpha = a.TextAlpha
	m.TextOffset = a.TextOffset
}

// AtRest reports whether the item sits exactly on the rest state for the given selection.
func (m MenuItem) AtRest(rest RestValues, selected bool) bool {
	return m.attributes() == rest.forSelection(selected)
}
