package layout

// Edges represents resolved lengths for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// Sum returns the combined size the edges add to a box.
func (e Edges) Sum() Size {
	return Size{Width: e.Horizontal(), Height: e.Vertical()}
}

// Add returns the per-side sum.
func (e Edges) Add(o Edges) Edges {
	return Edges{Top: e.Top + o.Top, Right: e.Right + o.Right, Bottom: e.Bottom + o.Bottom, Left: e.Left + o.Left}
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

func (e Edges) start(ax axis) float64 {
	if ax == horizontal {
		return e.Left
	}
	return e.Top
}

func (e Edges) end(ax axis) float64 {
	if ax == horizontal {
		return e.Right
	}
	return e.Bottom
}

func (e Edges) axisSum(ax axis) float64 {
	if ax == horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

func (e *Edges) setStart(ax axis, v float64) {
	if ax == horizontal {
		e.Left = v
	} else {
		e.Top = v
	}
}

func (e *Edges) setEnd(ax axis, v float64) {
	if ax == horizontal {
		e.Right = v
	} else {
		e.Bottom = v
	}
}

// orZero replaces undefined sides with zero.
func (e Edges) orZero() Edges {
	return Edges{Top: orElse(e.Top, 0), Right: orElse(e.Right, 0), Bottom: orElse(e.Bottom, 0), Left: orElse(e.Left, 0)}
}
