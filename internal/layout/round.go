package layout

import "math"

// roundLayout snaps the subtree's layouts to whole pixels. Edges are
// rounded in absolute coordinates and sizes derived from the rounded
// edges, so adjacent boxes never gain gaps or overlaps and children of
// one parent always tile as they did before rounding.
func (t *Tree) roundLayout(root NodeID) {
	type frame struct {
		id         NodeID
		parentAbsX float64
		parentAbsY float64
	}
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.node(f.id)
		u := n.unrounded
		absX := f.parentAbsX + u.Location.X
		absY := f.parentAbsY + u.Location.Y

		l := u
		l.Location.X = math.Round(absX) - math.Round(f.parentAbsX)
		l.Location.Y = math.Round(absY) - math.Round(f.parentAbsY)
		l.Size.Width = roundSpan(absX, u.Size.Width)
		l.Size.Height = roundSpan(absY, u.Size.Height)
		l.ContentSize.Width = roundSpan(absX, u.ContentSize.Width)
		l.ContentSize.Height = roundSpan(absY, u.ContentSize.Height)
		l.ScrollbarSize.Width = math.Round(u.ScrollbarSize.Width)
		l.ScrollbarSize.Height = math.Round(u.ScrollbarSize.Height)
		l.Border = roundInner(absX, absY, u.Size, u.Border)
		l.Padding = roundInner(absX+u.Border.Left, absY+u.Border.Top,
			Size{Width: u.Size.Width - u.Border.Horizontal(), Height: u.Size.Height - u.Border.Vertical()}, u.Padding)
		l.Margin = Edges{
			Top:    math.Round(absY) - math.Round(absY-u.Margin.Top),
			Right:  math.Round(absX+u.Size.Width+u.Margin.Right) - math.Round(absX+u.Size.Width),
			Bottom: math.Round(absY+u.Size.Height+u.Margin.Bottom) - math.Round(absY+u.Size.Height),
			Left:   math.Round(absX) - math.Round(absX-u.Margin.Left),
		}
		n.final = l

		for _, child := range n.children {
			stack = append(stack, frame{id: child, parentAbsX: absX, parentAbsY: absY})
		}
	}
}

// roundSpan rounds a length that starts at absolute offset start.
func roundSpan(start, length float64) float64 {
	return math.Round(start+length) - math.Round(start)
}

// roundInner rounds edges that sit inside a box at (x, y) of size s.
func roundInner(x, y float64, s Size, e Edges) Edges {
	return Edges{
		Top:    roundSpan(y, e.Top),
		Left:   roundSpan(x, e.Left),
		Bottom: math.Round(y+s.Height) - math.Round(y+s.Height-e.Bottom),
		Right:  math.Round(x+s.Width) - math.Round(x+s.Width-e.Right),
	}
}
