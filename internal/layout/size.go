package layout

// axis names one of the two physical layout axes.
type axis uint8

const (
	horizontal axis = iota
	vertical
)

func (a axis) other() axis {
	if a == horizontal {
		return vertical
	}
	return horizontal
}

// Size is a width/height pair. Inside the engine an axis may be NaN to
// mean "not known yet".
type Size struct {
	Width, Height float64
}

// UndefinedSize returns a Size with both axes unknown.
func UndefinedSize() Size {
	return Size{Width: undefined, Height: undefined}
}

func (s Size) axis(ax axis) float64 {
	if ax == horizontal {
		return s.Width
	}
	return s.Height
}

func (s *Size) setAxis(ax axis, v float64) {
	if ax == horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
}

// Add returns the per-axis sum.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Sub returns the per-axis difference.
func (s Size) Sub(o Size) Size {
	return Size{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Or fills undefined axes from fallback.
func (s Size) Or(fallback Size) Size {
	return Size{Width: orElse(s.Width, fallback.Width), Height: orElse(s.Height, fallback.Height)}
}

// Max returns the per-axis maximum, ignoring undefined axes of o.
func (s Size) Max(o Size) Size {
	return Size{Width: maybeMax(s.Width, o.Width), Height: maybeMax(s.Height, o.Height)}
}

func (s Size) maybeSub(o Size) Size {
	return Size{Width: maybeSub(s.Width, o.Width), Height: maybeSub(s.Height, o.Height)}
}

func (s Size) maybeAdd(o Size) Size {
	return Size{Width: maybeAdd(s.Width, o.Width), Height: maybeAdd(s.Height, o.Height)}
}

func (s Size) maybeClamp(lo, hi Size) Size {
	return Size{Width: maybeClamp(s.Width, lo.Width, hi.Width), Height: maybeClamp(s.Height, lo.Height, hi.Height)}
}

func (s Size) maybeMin(o Size) Size {
	return Size{Width: maybeMin(s.Width, o.Width), Height: maybeMin(s.Height, o.Height)}
}

func (s Size) maybeMax(o Size) Size {
	return Size{Width: maybeMax(s.Width, o.Width), Height: maybeMax(s.Height, o.Height)}
}

func (s Size) equal(o Size) bool {
	return sameLength(s.Width, o.Width) && sameLength(s.Height, o.Height)
}

// applyAspectRatio derives an unknown axis from the known one.
// ratio is width / height.
func (s Size) applyAspectRatio(ratio *float64) Size {
	if ratio == nil || *ratio <= 0 {
		return s
	}
	switch {
	case isDefined(s.Width) && !isDefined(s.Height):
		s.Height = s.Width / *ratio
	case isDefined(s.Height) && !isDefined(s.Width):
		s.Width = s.Height * *ratio
	}
	return s
}
