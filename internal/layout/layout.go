package layout

// Layout holds the computed geometry of a node after layout calculation.
type Layout struct {
	// Order is the node's index among its siblings. Paint siblings in
	// increasing Order.
	Order uint32

	// Location is the border box origin relative to the parent's border
	// box origin.
	Location Point

	// Size is the border box size.
	Size Size

	// ContentSize is the extent of the node's content (its children's
	// margin boxes plus padding), used for scrolling.
	ContentSize Size

	// ScrollbarSize is the space reserved for scrollbars: Width for a
	// vertical scrollbar, Height for a horizontal one.
	ScrollbarSize Size

	Border  Edges
	Padding Edges
	Margin  Edges
}

// BorderRect returns the border box relative to the parent.
func (l Layout) BorderRect() Rect {
	return NewRect(l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height)
}

// ContentRect returns the content box in the node's own coordinates
// (border box minus border, padding and scrollbar gutters).
func (l Layout) ContentRect() Rect {
	r := NewRect(0, 0, l.Size.Width, l.Size.Height).Inset(l.Border.Add(l.Padding))
	r.Width -= l.ScrollbarSize.Width
	r.Height -= l.ScrollbarSize.Height
	return r
}
