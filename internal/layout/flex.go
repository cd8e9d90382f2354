package layout

import "math"

// flexItem is the working state of one in-flow child during flex layout.
// All sizes are border-box; margin holds used values with auto as zero
// until alignment resolves it, rawMargin keeps NaN for auto.
type flexItem struct {
	id    NodeID
	order uint32
	style *Style

	size, minSize, maxSize Size
	margin, rawMargin      Edges
	pb                     Edges
	align                  AlignItems

	flexBasis  float64
	innerBasis float64 // flexBasis less padding and border
	minMain    float64 // resolved minimum main size
	hypoMain   float64
	hypoCross  float64

	targetMain  float64
	targetCross float64
	violation   float64
	frozen      bool

	offsetMain  float64 // flow offset of the border box along the line
	offsetCross float64 // physical offset of the border box within the line
}

type flexLine struct {
	items  []flexItem
	cross  float64
	offset float64
}

// flexContext holds the container values shared by every step.
type flexContext struct {
	main, cross axis
	reverse     bool
	wrap        bool
	wrapReverse bool

	bm        boxModel
	inset     Edges // padding + border, with the scrollbar gutter at the end sides
	innerSize Size  // content box, NaN where not yet known
	available AvailableSize
	gap       Size
}

func (fc *flexContext) mainGap() float64  { return fc.gap.axis(fc.main) }
func (fc *flexContext) crossGap() float64 { return fc.gap.axis(fc.cross) }

// computeFlexbox implements the CSS flexible box layout algorithm without
// baseline alignment.
func (c *computer) computeFlexbox(id NodeID, in layoutInput) layoutOutput {
	n := c.tree.node(id)
	style := &n.style

	bm := style.resolveBoxModel(in.parentSize.Width)
	pb := bm.paddingBorder()
	pbSum := pb.Sum()
	gutter := style.scrollbarGutter()

	known, minSize, maxSize := in.nodeSizes(style, pb)
	if in.mode == runComputeSize && isDefined(known.Width) && isDefined(known.Height) {
		return layoutOutput{size: known.maybeMax(pbSum)}
	}

	fc := &flexContext{
		main:        style.FlexDirection.mainAxis(),
		reverse:     style.FlexDirection.isReverse(),
		wrap:        style.FlexWrap != NoWrap,
		wrapReverse: style.FlexWrap == WrapReverse,
		bm:          bm,
		inset:       pb.Add(Edges{Right: gutter.Width, Bottom: gutter.Height}),
	}
	fc.cross = fc.main.other()
	insetSum := fc.inset.Sum()
	fc.innerSize = known.maybeSub(insetSum)
	fc.innerSize = Size{Width: maybeMax(fc.innerSize.Width, 0), Height: maybeMax(fc.innerSize.Height, 0)}
	fc.gap = style.Gap.ResolveOrZero(fc.innerSize)
	for _, ax := range []axis{horizontal, vertical} {
		space := in.available.axis(ax).Sub(bm.margin.axisSum(ax) + insetSum.axis(ax))
		if v := fc.innerSize.axis(ax); isDefined(v) {
			space = Definite(v)
		} else if m := maxSize.axis(ax); isDefined(m) {
			space = space.Min(max(m-insetSum.axis(ax), 0))
		}
		fc.available.setAxis(ax, space)
	}

	items := c.flexItems(id, fc)
	c.flexBases(items, fc)
	lines := collectFlexLines(items, fc)

	innerMain := flexContainerMain(lines, fc, known, minSize, maxSize)
	fc.innerSize.setAxis(fc.main, innerMain)
	for i := range lines {
		resolveFlexibleLengths(&lines[i], innerMain, fc)
	}

	c.hypotheticalCrossSizes(lines, fc)
	flexLineCrossSizes(lines, fc, style, minSize, maxSize)
	for i := range lines {
		stretchFlexItems(&lines[i], fc)
	}

	innerCross := fc.innerSize.axis(fc.cross)
	if !isDefined(innerCross) {
		total := fc.crossGap() * float64(max(len(lines)-1, 0))
		for _, l := range lines {
			total += l.cross
		}
		outer := maybeClamp(total+insetSum.axis(fc.cross), minSize.axis(fc.cross), maxSize.axis(fc.cross))
		innerCross = max(outer-insetSum.axis(fc.cross), 0)
		fc.innerSize.setAxis(fc.cross, innerCross)
	}

	var final Size
	final.setAxis(fc.main, innerMain+insetSum.axis(fc.main))
	final.setAxis(fc.cross, innerCross+insetSum.axis(fc.cross))
	final = final.Max(pbSum)
	if in.mode == runComputeSize {
		return layoutOutput{size: final}
	}

	justify := alignContentOr(style.JustifyContent, ContentFlexStart)
	for i := range lines {
		alignMainAxis(&lines[i], innerMain, justify, fc)
		alignCrossAxis(&lines[i], fc)
	}
	alignFlexLines(lines, innerCross, alignContentOr(style.AlignContent, ContentStretch), fc)

	extent := c.placeFlexItems(lines, fc)
	abs := c.layoutAbsoluteChildren(id, final, bm)
	extent = Size{Width: max(extent.Width, abs.Width), Height: max(extent.Height, abs.Height)}
	return layoutOutput{size: final, contentSize: finishContentSize(extent, bm)}
}

// flexItems collects the in-flow children. Hidden children are laid out
// as empty here; absolute children are handled after the flex items.
func (c *computer) flexItems(id NodeID, fc *flexContext) []flexItem {
	parent := &c.tree.node(id).style
	children := c.tree.node(id).children
	items := make([]flexItem, 0, len(children))
	for i, child := range children {
		cs := &c.tree.node(child).style
		if cs.Display == DisplayNone {
			c.hideChild(child, uint32(i))
			continue
		}
		if cs.Position == PositionAbsolute {
			continue
		}
		cbm := cs.resolveBoxModel(fc.innerSize.Width)
		pb := cbm.paddingBorder()
		size, minSize, maxSize := cs.resolvedSizes(fc.innerSize, pb)
		raw := cs.Margin.Resolve(fc.innerSize.Width)
		items = append(items, flexItem{
			id:        child,
			order:     uint32(i),
			style:     cs,
			size:      size,
			minSize:   minSize,
			maxSize:   maxSize,
			margin:    raw.orZero(),
			rawMargin: raw,
			pb:        pb,
			align:     cs.alignSelf(parent, AlignStretch),
		})
	}
	return items
}

// stretchesCross reports whether the item will fill its line's cross size.
func (it *flexItem) stretchesCross(cross axis) bool {
	return it.align == AlignStretch &&
		!isDefined(it.size.axis(cross)) &&
		isDefined(it.rawMargin.start(cross)) && isDefined(it.rawMargin.end(cross))
}

// flexBases determines each item's flex base size, automatic minimum size
// and hypothetical main size.
func (c *computer) flexBases(items []flexItem, fc *flexContext) {
	main, cross := fc.main, fc.cross
	crossSpace := fc.available.axis(cross)
	for i := range items {
		it := &items[i]

		childKnown := it.size
		if innerCross := fc.innerSize.axis(cross); !fc.wrap && isDefined(innerCross) && it.stretchesCross(cross) {
			v := maybeClamp(innerCross-it.margin.axisSum(cross), it.minSize.axis(cross), it.maxSize.axis(cross))
			childKnown.setAxis(cross, max(v, it.pb.axisSum(cross)))
		}
		childKnown = childKnown.applyAspectRatio(it.style.AspectRatio)

		basis := it.style.FlexBasis.Resolve(fc.innerSize.axis(main))
		if isDefined(basis) && it.style.BoxSizing == ContentBox {
			basis += it.pb.axisSum(main)
		}
		if !isDefined(basis) {
			basis = childKnown.axis(main)
		}
		if !isDefined(basis) {
			mainSpace := MaxContentSpace()
			if fc.available.axis(main).Kind == SpaceMinContent {
				mainSpace = MinContentSpace()
			}
			var avail AvailableSize
			avail.setAxis(main, mainSpace)
			avail.setAxis(cross, crossSpace.Sub(it.margin.axisSum(cross)))
			k := childKnown
			k.setAxis(main, undefined)
			out := c.computeChild(it.id, layoutInput{mode: runComputeSize, known: k, parentSize: fc.innerSize, available: avail})
			basis = out.size.axis(main)
		}

		pbMain := it.pb.axisSum(main)
		it.flexBasis = max(basis, pbMain)
		it.innerBasis = it.flexBasis - pbMain
		it.minMain = c.flexMinimumMain(it, fc, childKnown)
		it.hypoMain = max(maybeClamp(it.flexBasis, it.minMain, it.maxSize.axis(main)), pbMain)
	}
}

// flexMinimumMain returns the item's used minimum main size. An auto
// minimum is the content size, capped by the item's specified and maximum
// sizes; scroll containers may shrink to nothing.
func (c *computer) flexMinimumMain(it *flexItem, fc *flexContext, childKnown Size) float64 {
	main, cross := fc.main, fc.cross
	pbMain := it.pb.axisSum(main)
	if v := it.minSize.axis(main); isDefined(v) {
		return max(v, pbMain)
	}
	if it.style.overflow(main).isScrollContainer() {
		return pbMain
	}
	var avail AvailableSize
	avail.setAxis(main, MinContentSpace())
	avail.setAxis(cross, fc.available.axis(cross).Sub(it.margin.axisSum(cross)))
	k := childKnown
	k.setAxis(main, undefined)
	out := c.computeChild(it.id, layoutInput{
		mode:       runComputeSize,
		sizing:     sizingContent,
		known:      k,
		parentSize: fc.innerSize,
		available:  avail,
	})
	v := maybeMin(out.size.axis(main), it.size.axis(main))
	v = maybeMin(v, it.maxSize.axis(main))
	return max(v, pbMain)
}

// collectFlexLines breaks items into lines. A nowrap container has one.
func collectFlexLines(items []flexItem, fc *flexContext) []flexLine {
	if !fc.wrap || len(items) == 0 {
		return []flexLine{{items: items}}
	}
	var limit float64
	switch space := fc.available.axis(fc.main); space.Kind {
	case SpaceDefinite:
		limit = space.Value
	case SpaceMaxContent:
		limit = math.Inf(1)
	}

	var lines []flexLine
	start := 0
	used := 0.0
	for i := range items {
		outer := items[i].hypoMain + items[i].margin.axisSum(fc.main)
		if i == start {
			used = outer
			continue
		}
		if used+fc.mainGap()+outer > limit {
			lines = append(lines, flexLine{items: items[start:i]})
			start = i
			used = outer
			continue
		}
		used += fc.mainGap() + outer
	}
	return append(lines, flexLine{items: items[start:]})
}

// flexContainerMain returns the inner main size of the container.
func flexContainerMain(lines []flexLine, fc *flexContext, known, minSize, maxSize Size) float64 {
	main := fc.main
	insetMain := fc.inset.axisSum(main)
	if v := known.axis(main); isDefined(v) {
		return max(v-insetMain, 0)
	}

	var content float64
	space := fc.available.axis(main)
	if space.Kind == SpaceMinContent {
		for _, l := range lines {
			var sum float64
			for i := range l.items {
				it := &l.items[i]
				contrib := maybeClamp(orElse(it.size.axis(main), it.minMain), it.minMain, it.maxSize.axis(main))
				contrib += it.margin.axisSum(main)
				if fc.wrap {
					content = max(content, contrib)
				} else {
					sum += contrib
				}
			}
			if !fc.wrap {
				sum += fc.mainGap() * float64(max(len(l.items)-1, 0))
				content = max(content, sum)
			}
		}
	} else {
		for _, l := range lines {
			content = max(content, outerLineMain(&l, fc, func(it *flexItem) float64 { return it.hypoMain }))
		}
		if space.IsDefinite() && len(lines) > 1 {
			content = max(content, space.Value)
		}
	}

	outer := maybeClamp(content+insetMain, minSize.axis(main), maxSize.axis(main))
	return max(outer-insetMain, 0)
}

// outerLineMain sums the outer main sizes of a line's items and gaps.
func outerLineMain(l *flexLine, fc *flexContext, size func(*flexItem) float64) float64 {
	sum := fc.mainGap() * float64(max(len(l.items)-1, 0))
	for i := range l.items {
		it := &l.items[i]
		sum += size(it) + it.margin.axisSum(fc.main)
	}
	return sum
}

// resolveFlexibleLengths grows or shrinks a line's items to fill innerMain.
// Every round freezes at least one item, so the loop ends after at most
// one round per item.
func resolveFlexibleLengths(l *flexLine, innerMain float64, fc *flexContext) {
	main := fc.main
	items := l.items
	growing := outerLineMain(l, fc, func(it *flexItem) float64 { return it.hypoMain }) < innerMain

	factor := func(it *flexItem) float64 {
		if growing {
			return it.style.FlexGrow
		}
		return it.style.FlexShrink
	}
	for i := range items {
		it := &items[i]
		it.frozen = false
		it.targetMain = it.hypoMain
		if factor(it) == 0 || (growing && it.flexBasis > it.hypoMain) || (!growing && it.flexBasis < it.hypoMain) {
			it.frozen = true
		}
	}

	freeSpace := func() float64 {
		return innerMain - outerLineMain(l, fc, func(it *flexItem) float64 {
			if it.frozen {
				return it.targetMain
			}
			return it.flexBasis
		})
	}
	initialFree := freeSpace()

	for {
		var unfrozen int
		var sumFactors, sumScaled float64
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			unfrozen++
			sumFactors += factor(it)
			sumScaled += it.innerBasis * it.style.FlexShrink
		}
		if unfrozen == 0 {
			break
		}

		remaining := freeSpace()
		if sumFactors < 1 {
			if scaled := initialFree * sumFactors; math.Abs(scaled) < math.Abs(remaining) {
				remaining = scaled
			}
		}

		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			it.targetMain = it.flexBasis
			switch {
			case growing && sumFactors > 0:
				it.targetMain += remaining * it.style.FlexGrow / sumFactors
			case !growing && sumScaled > 0:
				it.targetMain += remaining * it.innerBasis * it.style.FlexShrink / sumScaled
			}
		}

		var total float64
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			clamped := max(maybeClamp(it.targetMain, it.minMain, it.maxSize.axis(main)), it.pb.axisSum(main))
			it.violation = clamped - it.targetMain
			it.targetMain = clamped
			total += it.violation
		}
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			if total == 0 || (total > 0 && it.violation > 0) || (total < 0 && it.violation < 0) {
				it.frozen = true
			}
		}
	}
}

// hypotheticalCrossSizes measures each item's cross size at its target
// main size.
func (c *computer) hypotheticalCrossSizes(lines []flexLine, fc *flexContext) {
	main, cross := fc.main, fc.cross
	for li := range lines {
		for i := range lines[li].items {
			it := &lines[li].items[i]
			var k Size
			k.setAxis(main, it.targetMain)
			k.setAxis(cross, it.size.axis(cross))
			k = k.applyAspectRatio(it.style.AspectRatio)

			v := k.axis(cross)
			if !isDefined(v) {
				var avail AvailableSize
				avail.setAxis(main, Definite(it.targetMain))
				avail.setAxis(cross, fc.available.axis(cross).Sub(it.margin.axisSum(cross)))
				out := c.computeChild(it.id, layoutInput{mode: runComputeSize, known: k, parentSize: fc.innerSize, available: avail})
				v = out.size.axis(cross)
			}
			v = maybeClamp(v, it.minSize.axis(cross), it.maxSize.axis(cross))
			it.hypoCross = max(v, it.pb.axisSum(cross))
		}
	}
}

// flexLineCrossSizes sizes every line. A single-line container with a
// definite cross size gives its line that size; multi-line containers may
// stretch lines into leftover space.
func flexLineCrossSizes(lines []flexLine, fc *flexContext, style *Style, minSize, maxSize Size) {
	cross := fc.cross
	innerCross := fc.innerSize.axis(cross)
	insetCross := fc.inset.axisSum(cross)

	for li := range lines {
		l := &lines[li]
		if !fc.wrap && isDefined(innerCross) {
			l.cross = innerCross
			continue
		}
		l.cross = 0
		for i := range l.items {
			it := &l.items[i]
			l.cross = max(l.cross, it.hypoCross+it.margin.axisSum(cross))
		}
		if !fc.wrap {
			l.cross = maybeClamp(l.cross, maybeSub(minSize.axis(cross), insetCross), maybeSub(maxSize.axis(cross), insetCross))
			l.cross = max(l.cross, 0)
		}
	}

	if fc.wrap && isDefined(innerCross) && alignContentOr(style.AlignContent, ContentStretch) == ContentStretch {
		free := innerCross - fc.crossGap()*float64(len(lines)-1)
		for _, l := range lines {
			free -= l.cross
		}
		if free > 0 {
			per := free / float64(len(lines))
			for li := range lines {
				lines[li].cross += per
			}
		}
	}
}

// stretchFlexItems sets each item's used cross size.
func stretchFlexItems(l *flexLine, fc *flexContext) {
	cross := fc.cross
	for i := range l.items {
		it := &l.items[i]
		it.targetCross = it.hypoCross
		if it.stretchesCross(cross) {
			v := maybeClamp(l.cross-it.margin.axisSum(cross), it.minSize.axis(cross), it.maxSize.axis(cross))
			it.targetCross = max(v, it.pb.axisSum(cross))
		}
	}
}

// alignMainAxis resolves auto main margins and justify-content into each
// item's flow offset.
func alignMainAxis(l *flexLine, innerMain float64, justify AlignContent, fc *flexContext) {
	main := fc.main
	items := l.items
	free := innerMain - outerLineMain(l, fc, func(it *flexItem) float64 { return it.targetMain })

	var autos int
	for i := range items {
		if !isDefined(items[i].rawMargin.start(main)) {
			autos++
		}
		if !isDefined(items[i].rawMargin.end(main)) {
			autos++
		}
	}
	if free > 0 && autos > 0 {
		per := free / float64(autos)
		for i := range items {
			it := &items[i]
			if !isDefined(it.rawMargin.start(main)) {
				it.margin.setStart(main, per)
			}
			if !isDefined(it.rawMargin.end(main)) {
				it.margin.setEnd(main, per)
			}
		}
		free = 0
	}

	leading, between := distribute(flowContent(justify, fc.reverse), free, len(items))
	pos := leading
	for i := range items {
		it := &items[i]
		lead := it.margin.start(main)
		if fc.reverse {
			lead = it.margin.end(main)
		}
		it.offsetMain = pos + lead
		pos += it.margin.axisSum(main) + it.targetMain + fc.mainGap() + between
	}
}

// alignCrossAxis positions each item within its line.
func alignCrossAxis(l *flexLine, fc *flexContext) {
	cross := fc.cross
	for i := range l.items {
		it := &l.items[i]
		free := l.cross - it.targetCross - it.margin.axisSum(cross)
		rawStart, rawEnd := it.rawMargin.start(cross), it.rawMargin.end(cross)
		if !isDefined(rawStart) || !isDefined(rawEnd) {
			start, end := splitAutoMargins(rawStart, rawEnd, free)
			it.margin.setStart(cross, start)
			it.margin.setEnd(cross, end)
			it.offsetCross = start
			continue
		}
		it.offsetCross = it.margin.start(cross) + alignOffset(it.align, free, fc.wrapReverse)
	}
}

// alignFlexLines distributes lines along the cross axis.
func alignFlexLines(lines []flexLine, innerCross float64, align AlignContent, fc *flexContext) {
	if !fc.wrap {
		lines[0].offset = 0
		return
	}
	if align == ContentStretch {
		align = ContentFlexStart
	}
	free := innerCross - fc.crossGap()*float64(len(lines)-1)
	for _, l := range lines {
		free -= l.cross
	}
	leading, between := distribute(flowContent(align, fc.wrapReverse), free, len(lines))
	pos := leading
	for li := range lines {
		l := &lines[li]
		l.offset = pos
		if fc.wrapReverse {
			l.offset = innerCross - pos - l.cross
		}
		pos += l.cross + fc.crossGap() + between
	}
}

// placeFlexItems runs the final layout of every item and records its
// location. It returns the items' content extent.
func (c *computer) placeFlexItems(lines []flexLine, fc *flexContext) Size {
	main, cross := fc.main, fc.cross
	innerMain := fc.innerSize.axis(main)
	var extent Size
	for li := range lines {
		l := &lines[li]
		for i := range l.items {
			it := &l.items[i]
			var k Size
			k.setAxis(main, it.targetMain)
			k.setAxis(cross, it.targetCross)
			out := c.computeChild(it.id, layoutInput{
				mode:       runPerformLayout,
				known:      k,
				parentSize: fc.innerSize,
				available:  AvailableSize{Width: Definite(fc.innerSize.Width), Height: Definite(fc.innerSize.Height)},
			})

			mainPos := it.offsetMain
			if fc.reverse {
				mainPos = innerMain - it.offsetMain - out.size.axis(main)
			}
			var loc Point
			loc.setAxis(main, fc.inset.start(main)+mainPos)
			loc.setAxis(cross, fc.inset.start(cross)+l.offset+it.offsetCross)
			loc = loc.Add(relativeOffset(it.style, fc.innerSize))

			c.setLayout(it.id, it.order, loc, out, fc.innerSize.Width)
			c.tree.node(it.id).unrounded.Margin = it.margin
			ext := contentContribution(loc, out, it.margin, it.style)
			extent = Size{Width: max(extent.Width, ext.Width), Height: max(extent.Height, ext.Height)}
		}
	}
	return extent
}
