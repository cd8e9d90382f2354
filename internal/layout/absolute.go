package layout

// layoutAbsoluteChildren positions the absolutely positioned children of a
// container whose border box is containerSize. Their containing block is
// the container's padding box. It returns the children's content extent.
func (c *computer) layoutAbsoluteChildren(id NodeID, containerSize Size, bm boxModel) Size {
	n := c.tree.node(id)
	gutter := n.style.scrollbarGutter()
	areaSize := Size{
		Width:  max(containerSize.Width-bm.border.Horizontal()-gutter.Width, 0),
		Height: max(containerSize.Height-bm.border.Vertical()-gutter.Height, 0),
	}
	origin := Point{X: bm.border.Left, Y: bm.border.Top}
	contentOrigin := Point{X: bm.border.Left + bm.padding.Left, Y: bm.border.Top + bm.padding.Top}

	var extent Size
	children := n.children
	for i, child := range children {
		cs := &c.tree.node(child).style
		if cs.Position != PositionAbsolute || cs.Display == DisplayNone {
			continue
		}
		loc, out, margin := c.placeAbsolute(child, areaSize, origin, contentOrigin)
		c.setLayout(child, uint32(i), loc, out, areaSize.Width)
		c.tree.node(child).unrounded.Margin = margin
		ext := contentContribution(loc, out, margin, cs)
		extent = Size{Width: max(extent.Width, ext.Width), Height: max(extent.Height, ext.Height)}
	}
	return extent
}

// placeAbsolute sizes one absolutely positioned child and returns its
// border-box location in the parent.
func (c *computer) placeAbsolute(child NodeID, area Size, origin, contentOrigin Point) (Point, layoutOutput, Edges) {
	cs := &c.tree.node(child).style
	bm := cs.resolveBoxModel(area.Width)
	pb := bm.paddingBorder()
	margin := cs.Margin.Resolve(area.Width)
	left := cs.Inset.Left.Resolve(area.Width)
	right := cs.Inset.Right.Resolve(area.Width)
	top := cs.Inset.Top.Resolve(area.Height)
	bottom := cs.Inset.Bottom.Resolve(area.Height)

	size, minSize, maxSize := cs.resolvedSizes(area, pb)
	if !isDefined(size.Width) && isDefined(left) && isDefined(right) {
		size.Width = max(area.Width-left-right-orElse(margin.Left, 0)-orElse(margin.Right, 0), 0)
	}
	if !isDefined(size.Height) && isDefined(top) && isDefined(bottom) {
		size.Height = max(area.Height-top-bottom-orElse(margin.Top, 0)-orElse(margin.Bottom, 0), 0)
	}
	size = size.applyAspectRatio(cs.AspectRatio).maybeClamp(minSize, maxSize)

	if !isDefined(size.Width) || !isDefined(size.Height) {
		avail := AvailableSize{
			Width:  Definite(maybeClamp(area.Width, minSize.Width, maxSize.Width)),
			Height: Definite(maybeClamp(area.Height, minSize.Height, maxSize.Height)),
		}
		measured := c.computeChild(child, layoutInput{mode: runComputeSize, known: size, parentSize: area, available: avail})
		size = size.Or(measured.size.maybeClamp(minSize, maxSize))
	}
	size = size.maybeMax(pb.Sum())

	out := c.computeChild(child, layoutInput{
		mode:       runPerformLayout,
		known:      size,
		parentSize: area,
		available:  AvailableSize{Width: Definite(area.Width), Height: Definite(area.Height)},
	})

	m := resolveAbsoluteMargins(margin, area, out.size, left, right, top, bottom)
	var loc Point
	switch {
	case isDefined(left):
		loc.X = origin.X + left + m.Left
	case isDefined(right):
		loc.X = origin.X + area.Width - right - m.Right - out.size.Width
	default:
		loc.X = contentOrigin.X + m.Left
	}
	switch {
	case isDefined(top):
		loc.Y = origin.Y + top + m.Top
	case isDefined(bottom):
		loc.Y = origin.Y + area.Height - bottom - m.Bottom - out.size.Height
	default:
		loc.Y = contentOrigin.Y + m.Top
	}
	return loc, out, m
}

// resolveAbsoluteMargins gives auto margins their used values. When both
// insets on an axis are set, auto margins share the leftover space;
// otherwise they are zero.
func resolveAbsoluteMargins(m Edges, area, size Size, left, right, top, bottom float64) Edges {
	out := m.orZero()
	if isDefined(left) && isDefined(right) {
		free := area.Width - left - right - size.Width - out.Left - out.Right
		out.Left, out.Right = splitAutoMargins(m.Left, m.Right, free)
	}
	if isDefined(top) && isDefined(bottom) {
		free := area.Height - top - bottom - size.Height - out.Top - out.Bottom
		out.Top, out.Bottom = splitAutoMargins(m.Top, m.Bottom, free)
	}
	return out
}

// splitAutoMargins distributes positive free space to the undefined (auto)
// margins of a pair. Defined margins keep their value.
func splitAutoMargins(start, end, free float64) (float64, float64) {
	free = max(free, 0)
	switch {
	case !isDefined(start) && !isDefined(end):
		return free / 2, free / 2
	case !isDefined(start):
		return free, end
	case !isDefined(end):
		return start, free
	}
	return start, end
}

// relativeOffset shifts an in-flow box by its insets. Left wins over
// right and top over bottom.
func relativeOffset(s *Style, parent Size) Point {
	var p Point
	if v := s.Inset.Left.Resolve(parent.Width); isDefined(v) {
		p.X = v
	} else if v := s.Inset.Right.Resolve(parent.Width); isDefined(v) {
		p.X = -v
	}
	if v := s.Inset.Top.Resolve(parent.Height); isDefined(v) {
		p.Y = v
	} else if v := s.Inset.Bottom.Resolve(parent.Height); isDefined(v) {
		p.Y = -v
	}
	return p
}
