package layout

// computeGrid implements CSS grid layout: placement, track sizing for
// columns then rows, track alignment and item alignment within areas.
// Baseline alignment is treated as start.
func (c *computer) computeGrid(id NodeID, in layoutInput) layoutOutput {
	n := c.tree.node(id)
	style := &n.style

	bm := style.resolveBoxModel(in.parentSize.Width)
	pb := bm.paddingBorder()
	pbSum := pb.Sum()
	gutter := style.scrollbarGutter()
	inset := pb.Add(Edges{Right: gutter.Width, Bottom: gutter.Height})
	insetSum := inset.Sum()

	known, minSize, maxSize := in.nodeSizes(style, pb)
	if in.mode == runComputeSize && isDefined(known.Width) && isDefined(known.Height) {
		return layoutOutput{size: known.maybeMax(pbSum)}
	}

	inner := known.maybeSub(insetSum)
	inner = Size{Width: maybeMax(inner.Width, 0), Height: maybeMax(inner.Height, 0)}

	// Columns may fill definite available space; rows only fill a known
	// height.
	var spaces AvailableSize
	for _, ax := range [2]axis{horizontal, vertical} {
		space := in.available.axis(ax).Sub(bm.margin.axisSum(ax) + insetSum.axis(ax))
		switch v := inner.axis(ax); {
		case isDefined(v):
			space = Definite(v)
		case ax == vertical && space.IsDefinite():
			space = MaxContentSpace()
		case space.IsDefinite():
			space = space.Min(maybeSub(maxSize.axis(ax), insetSum.axis(ax)))
			space.Value = max(space.Value, 0)
		}
		spaces.setAxis(ax, space)
	}
	gap := style.Gap.ResolveOrZero(inner)

	var explicit [2][]trackDef
	for _, ax := range [2]axis{horizontal, vertical} {
		tmpl := style.gridTemplate(ax)
		explicit[ax] = expandTemplate(tmpl, autoRepeatCount(tmpl, spaces.axis(ax).Definite(), gap.axis(ax)))
	}

	items := c.gridItems(id, inner)
	styles := make([]*Style, len(items))
	for i := range items {
		styles[i] = items[i].style
	}
	areas := placeGridItems(styles, [2]int{len(explicit[horizontal]), len(explicit[vertical])}, style.GridAutoFlow)

	var tracks [2][]gridTrack
	for _, ax := range [2]axis{horizontal, vertical} {
		lo, hi := 0, len(explicit[ax])
		for _, a := range areas {
			lo = min(lo, a[ax].start)
			hi = max(hi, a[ax].end)
		}
		tracks[ax] = buildTracks(explicit[ax], style.gridAutoTracks(ax), -lo, hi-len(explicit[ax]))
		occupied := make([]bool, len(tracks[ax]))
		for i := range items {
			s := lineSpan{areas[i][ax].start - lo, areas[i][ax].end - lo}
			items[i].area[ax] = s
			for j := s.start; j < s.end; j++ {
				occupied[j] = true
			}
		}
		for j, d := range explicit[ax] {
			if d.autoFit && !occupied[j-lo] {
				tracks[ax][j-lo].collapsed = true
			}
		}
	}

	justify := alignContentOr(style.JustifyContent, ContentStretch)
	alignC := alignContentOr(style.AlignContent, ContentStretch)

	cols := &trackSizer{c: c, ax: horizontal, tracks: tracks[horizontal], items: items, gap: gap.Width, inner: inner.Width, space: spaces.Width}
	cols.run(justify == ContentStretch)
	if !isDefined(inner.Width) {
		outer := maybeClamp(cols.baseTotal()+cols.gapTotal()+insetSum.Width, minSize.Width, maxSize.Width)
		inner.Width = max(outer-insetSum.Width, 0)
	}

	rows := &trackSizer{c: c, ax: vertical, tracks: tracks[vertical], items: items, gap: gap.Height, inner: inner.Height, space: spaces.Height,
		other: tracks[horizontal], otherGap: gap.Width}
	rows.run(alignC == ContentStretch)
	if !isDefined(inner.Height) {
		outer := maybeClamp(rows.baseTotal()+rows.gapTotal()+insetSum.Height, minSize.Height, maxSize.Height)
		inner.Height = max(outer-insetSum.Height, 0)
	}

	final := Size{Width: inner.Width + insetSum.Width, Height: inner.Height + insetSum.Height}.Max(pbSum)
	if in.mode == runComputeSize {
		return layoutOutput{size: final}
	}

	positionTracks(tracks[horizontal], inner.Width, gap.Width, inset.Left, justify)
	positionTracks(tracks[vertical], inner.Height, gap.Height, inset.Top, alignC)

	var extent Size
	for i := range items {
		it := &items[i]
		area := areaRect(tracks, it.area)
		loc, out, margin := c.placeGridItem(it, style, area)
		ext := contentContribution(loc, out, margin, it.style)
		extent = Size{Width: max(extent.Width, ext.Width), Height: max(extent.Height, ext.Height)}
	}
	abs := c.layoutAbsoluteChildren(id, final, bm)
	extent = Size{Width: max(extent.Width, abs.Width), Height: max(extent.Height, abs.Height)}
	return layoutOutput{size: final, contentSize: finishContentSize(extent, bm)}
}

// gridItems collects the in-flow children.
func (c *computer) gridItems(id NodeID, inner Size) []gridItem {
	children := c.tree.node(id).children
	items := make([]gridItem, 0, len(children))
	for i, child := range children {
		cs := &c.tree.node(child).style
		if cs.Display == DisplayNone {
			c.hideChild(child, uint32(i))
			continue
		}
		if cs.Position == PositionAbsolute {
			continue
		}
		bm := cs.resolveBoxModel(inner.Width)
		pb := bm.paddingBorder()
		size, minSize, maxSize := cs.resolvedSizes(inner, pb)
		items = append(items, gridItem{
			id:      child,
			order:   uint32(i),
			style:   cs,
			margin:  bm.margin,
			pb:      pb,
			size:    size,
			minSize: minSize,
			maxSize: maxSize,
		})
	}
	return items
}

// positionTracks sets each track's offset from the container's border box
// origin, distributing leftover space per align.
func positionTracks(tracks []gridTrack, inner, gap, start float64, align AlignContent) {
	used := 0.0
	count := 0
	for i := range tracks {
		if !tracks[i].collapsed {
			used += tracks[i].base
			count++
		}
	}
	used += gap * float64(max(count-1, 0))
	leading, between := distribute(flowContent(align, false), inner-used, count)
	pos := start + leading
	for i := range tracks {
		t := &tracks[i]
		t.offset = pos
		if !t.collapsed {
			pos += t.base + gap + between
		}
	}
}

// areaRect returns the border-box-relative rectangle of a grid area.
func areaRect(tracks [2][]gridTrack, a gridArea) Rect {
	span := func(ts []gridTrack, s lineSpan) (float64, float64) {
		first, last := &ts[s.start], &ts[s.end-1]
		return first.offset, last.offset + last.base - first.offset
	}
	x, w := span(tracks[horizontal], a[horizontal])
	y, h := span(tracks[vertical], a[vertical])
	return Rect{X: x, Y: y, Width: max(w, 0), Height: max(h, 0)}
}

// placeGridItem sizes an item within its area, runs its final layout and
// records its location.
func (c *computer) placeGridItem(it *gridItem, parent *Style, area Rect) (Point, layoutOutput, Edges) {
	cs := it.style
	areaSize := Size{Width: area.Width, Height: area.Height}
	bm := cs.resolveBoxModel(areaSize.Width)
	pb := bm.paddingBorder()
	raw := cs.Margin.Resolve(areaSize.Width)
	margin := raw.orZero()
	size, minSize, maxSize := cs.resolvedSizes(areaSize, pb)

	justify := cs.justifySelf(parent, AlignStretch)
	align := cs.alignSelf(parent, AlignStretch)
	if cs.AspectRatio != nil {
		if cs.JustifySelf == nil && parent.JustifyItems == nil {
			justify = AlignStart
		}
		if cs.AlignSelf == nil && parent.AlignItems == nil {
			align = AlignStart
		}
	}

	if !isDefined(size.Width) && justify == AlignStretch && isDefined(raw.Left) && isDefined(raw.Right) {
		size.Width = areaSize.Width - margin.Horizontal()
	}
	if !isDefined(size.Height) && align == AlignStretch && isDefined(raw.Top) && isDefined(raw.Bottom) {
		size.Height = areaSize.Height - margin.Vertical()
	}
	size = size.applyAspectRatio(cs.AspectRatio).maybeClamp(minSize, maxSize)

	avail := AvailableSize{
		Width:  Definite(max(areaSize.Width-margin.Horizontal(), 0)),
		Height: Definite(max(areaSize.Height-margin.Vertical(), 0)),
	}
	if !isDefined(size.Width) || !isDefined(size.Height) {
		measured := c.computeChild(it.id, layoutInput{mode: runComputeSize, known: size, parentSize: areaSize, available: avail})
		size = size.Or(measured.size.maybeClamp(minSize, maxSize))
	}
	size = size.maybeMax(pb.Sum())

	out := c.computeChild(it.id, layoutInput{mode: runPerformLayout, known: size, parentSize: areaSize, available: avail})

	freeX := areaSize.Width - out.size.Width - margin.Horizontal()
	freeY := areaSize.Height - out.size.Height - margin.Vertical()
	if !isDefined(raw.Left) || !isDefined(raw.Right) {
		margin.Left, margin.Right = splitAutoMargins(raw.Left, raw.Right, freeX)
		freeX = 0
	}
	if !isDefined(raw.Top) || !isDefined(raw.Bottom) {
		margin.Top, margin.Bottom = splitAutoMargins(raw.Top, raw.Bottom, freeY)
		freeY = 0
	}

	loc := Point{
		X: area.X + margin.Left + alignOffset(justify, freeX, false),
		Y: area.Y + margin.Top + alignOffset(align, freeY, false),
	}
	loc = loc.Add(relativeOffset(cs, areaSize))
	c.setLayout(it.id, it.order, loc, out, areaSize.Width)
	c.tree.node(it.id).unrounded.Margin = margin
	return loc, out, margin
}
