package layout

// computeBlock lays out children top to bottom, each on its own row. Auto
// widths stretch to the container's content box. Vertical margins do not
// collapse.
func (c *computer) computeBlock(id NodeID, in layoutInput) layoutOutput {
	n := c.tree.node(id)
	style := &n.style

	bm := style.resolveBoxModel(in.parentSize.Width)
	pb := bm.paddingBorder()
	pbSum := pb.Sum()
	gutter := style.scrollbarGutter()
	inset := pbSum.Add(gutter)

	known, minSize, maxSize := in.nodeSizes(style, pb)
	if in.mode == runComputeSize && isDefined(known.Width) && isDefined(known.Height) {
		return layoutOutput{size: known.maybeMax(pbSum)}
	}

	width := known.Width
	if !isDefined(width) {
		if in.available.Width.IsDefinite() {
			width = in.available.Width.Value - bm.margin.Horizontal()
		} else {
			width = c.blockIntrinsicWidth(id, in.available.Width.Sub(bm.margin.Horizontal()+inset.Width)) + inset.Width
		}
		width = maybeClamp(width, minSize.Width, maxSize.Width)
	}
	width = max(width, pbSum.Width)
	contentWidth := max(width-inset.Width, 0)
	contentHeight := maybeSub(known.Height, inset.Height)
	childParent := Size{Width: contentWidth, Height: contentHeight}

	availHeight := in.available.Height.Sub(bm.margin.Vertical() + inset.Height)
	if isDefined(contentHeight) {
		availHeight = Definite(max(contentHeight, 0))
	}

	var extent Size
	x0 := bm.border.Left + bm.padding.Left
	y := bm.border.Top + bm.padding.Top
	children := n.children
	for i, child := range children {
		cs := &c.tree.node(child).style
		if cs.Display == DisplayNone {
			c.hideChild(child, uint32(i))
			continue
		}
		if cs.Position == PositionAbsolute {
			continue
		}

		cbm := cs.resolveBoxModel(contentWidth)
		cpb := cbm.paddingBorder()
		margin := cs.Margin.Resolve(contentWidth)
		mSum := margin.orZero()
		cSize, cMin, cMax := cs.resolvedSizes(childParent, cpb)
		cSize = cSize.maybeClamp(cMin, cMax)

		childKnown := cSize
		if !isDefined(childKnown.Width) {
			childKnown.Width = maybeClamp(contentWidth-mSum.Horizontal(), cMin.Width, cMax.Width)
			childKnown.Width = max(childKnown.Width, cpb.Horizontal())
			childKnown = Size{Width: childKnown.Width, Height: cSize.Height}.applyAspectRatio(cs.AspectRatio)
		}

		out := c.computeChild(child, layoutInput{
			mode:       in.mode,
			known:      childKnown,
			parentSize: childParent,
			available:  AvailableSize{Width: Definite(contentWidth), Height: availHeight},
		})

		ml, mr := splitAutoMargins(margin.Left, margin.Right, contentWidth-out.size.Width-mSum.Horizontal())
		loc := Point{X: x0 + ml, Y: y + mSum.Top}.Add(relativeOffset(cs, childParent))
		if in.mode == runPerformLayout {
			c.setLayout(child, uint32(i), loc, out, contentWidth)
			ext := contentContribution(loc, out, Edges{Right: mr, Bottom: mSum.Bottom}, cs)
			extent = Size{Width: max(extent.Width, ext.Width), Height: max(extent.Height, ext.Height)}
		}
		y += mSum.Top + out.size.Height + mSum.Bottom
	}

	height := known.Height
	if !isDefined(height) {
		height = y - bm.border.Top - bm.padding.Top + inset.Height
		height = maybeClamp(height, minSize.Height, maxSize.Height)
	}
	height = max(height, pbSum.Height)
	final := Size{Width: width, Height: height}

	if in.mode == runComputeSize {
		return layoutOutput{size: final}
	}

	abs := c.layoutAbsoluteChildren(id, final, bm)
	extent = Size{Width: max(extent.Width, abs.Width), Height: max(extent.Height, abs.Height)}
	return layoutOutput{size: final, contentSize: finishContentSize(extent, bm)}
}

// blockIntrinsicWidth returns the widest in-flow child margin box under an
// intrinsic sizing request.
func (c *computer) blockIntrinsicWidth(id NodeID, space AvailableSpace) float64 {
	var widest float64
	for _, child := range c.tree.node(id).children {
		cs := &c.tree.node(child).style
		if cs.Display == DisplayNone || cs.Position == PositionAbsolute {
			continue
		}
		margin := cs.Margin.ResolveOrZero(undefined)
		out := c.computeChild(child, layoutInput{
			mode:       runComputeSize,
			known:      UndefinedSize(),
			parentSize: UndefinedSize(),
			available:  AvailableSize{Width: space, Height: MaxContentSpace()},
		})
		widest = max(widest, out.size.Width+margin.Horizontal())
	}
	return widest
}
