package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

func (p Point) axis(ax axis) float64 {
	if ax == horizontal {
		return p.X
	}
	return p.Y
}

func (p *Point) setAxis(ax axis, v float64) {
	if ax == horizontal {
		p.X = v
	} else {
		p.Y = v
	}
}
