package layout

import "github.com/grindlemire/boxlayout/internal/debug"

// MeasureFunc returns the content-box size of a leaf that has the measure
// flag set. known holds content-box axes the parent has already fixed
// (NaN when free); available is the space the content may use. The
// function may be called many times per layout with different inputs.
type MeasureFunc func(node NodeID, known Size, available AvailableSize) Size

// sizingMode selects whether a node's own size styles apply.
type sizingMode uint8

const (
	sizingInherent sizingMode = iota // Size, MinSize and MaxSize apply
	sizingContent                    // Only the content decides (automatic minimum sizes)
)

// layoutInput is what a parent asks of a child layout pass.
type layoutInput struct {
	mode       runMode
	sizing     sizingMode
	known      Size          // border-box sizes fixed by the parent (NaN = free)
	parentSize Size          // containing block, for percentages (NaN = indefinite)
	available  AvailableSize // space for the child's margin box
}

// layoutOutput is what a child layout pass reports back.
type layoutOutput struct {
	size        Size
	contentSize Size
}

// computer carries the state of one ComputeLayout call.
type computer struct {
	tree    *Tree
	measure MeasureFunc
}

// ComputeLayout lays out the subtree rooted at root. The root fills every
// definite axis of available regardless of its own size style.
func (t *Tree) ComputeLayout(root NodeID, available AvailableSize) error {
	return t.ComputeLayoutWithMeasure(root, available, t.measure)
}

// ComputeLayoutWithMeasure is ComputeLayout with a per-call measure function.
func (t *Tree) ComputeLayoutWithMeasure(root NodeID, available AvailableSize, measure MeasureFunc) error {
	n, ok := t.get(root)
	if !ok {
		return nodeError("ComputeLayout", root, ErrInvalidNodeID)
	}
	if debug.Enabled() {
		debug.Log("compute root=%s available=%s", root, formatAvailable(available))
	}

	c := &computer{tree: t, measure: measure}
	parentSize := available.Definite()
	hits, misses := t.stats.Hits, t.stats.Misses
	out := c.computeChild(root, layoutInput{
		mode:       runPerformLayout,
		known:      parentSize,
		parentSize: parentSize,
		available:  available,
	})

	order := n.unrounded.Order
	c.setLayout(root, order, Point{}, out, parentSize.Width)
	if n.style.Display == DisplayNone {
		// A hidden root still occupies the space it was given.
		n.unrounded.Size = parentSize.Or(Size{})
	}

	if t.rounding {
		t.roundLayout(root)
	} else {
		t.copyUnrounded(root)
	}
	if debug.Enabled() {
		debug.Log("compute root=%s size=%gx%g hits=%d misses=%d", root,
			out.size.Width, out.size.Height, t.stats.Hits-hits, t.stats.Misses-misses)
	}
	return nil
}

// Layout returns the node's final layout from the last ComputeLayout.
func (t *Tree) Layout(id NodeID) (Layout, error) {
	n, ok := t.get(id)
	if !ok {
		return Layout{}, nodeError("Layout", id, ErrInvalidNodeID)
	}
	return n.final, nil
}

// UnroundedLayout returns the node's exact layout, before rounding.
func (t *Tree) UnroundedLayout(id NodeID) (Layout, error) {
	n, ok := t.get(id)
	if !ok {
		return Layout{}, nodeError("UnroundedLayout", id, ErrInvalidNodeID)
	}
	return n.unrounded, nil
}

// computeChild runs (or recalls from cache) the layout of one node.
func (c *computer) computeChild(id NodeID, in layoutInput) layoutOutput {
	n := c.tree.node(id)
	if out, ok := n.cache.get(in); ok {
		c.tree.stats.Hits++
		if in.mode == runPerformLayout {
			n.dirty = false
		}
		return out
	}
	c.tree.stats.Misses++
	if debug.Enabled() {
		debug.Log("miss node=%s mode=%d known=%gx%g available=%s", id, in.mode,
			in.known.Width, in.known.Height, formatAvailable(in.available))
	}

	var out layoutOutput
	switch {
	case n.style.Display == DisplayNone:
		c.hideChildren(id)
	case len(n.children) == 0:
		out = c.computeLeaf(id, in)
	case n.style.Display == DisplayGrid:
		out = c.computeGrid(id, in)
	case n.style.Display == DisplayBlock:
		out = c.computeBlock(id, in)
	default:
		out = c.computeFlexbox(id, in)
	}

	n = c.tree.node(id)
	n.cache.store(in, out)
	if in.mode == runPerformLayout {
		n.dirty = false
	}
	return out
}

// nodeSizes resolves the node's border-box size for this pass along with
// the min and max constraints to apply to content-derived sizes.
func (in layoutInput) nodeSizes(style *Style, pb Edges) (known, minSize, maxSize Size) {
	if in.sizing == sizingContent {
		return in.known, UndefinedSize(), UndefinedSize()
	}
	size, minSize, maxSize := style.resolvedSizes(in.parentSize, pb)
	known = in.known.Or(size.maybeClamp(minSize, maxSize)).applyAspectRatio(style.AspectRatio)
	return known, minSize, maxSize
}

// setLayout records a child's unrounded layout. parentWidth resolves
// spacing percentages.
func (c *computer) setLayout(id NodeID, order uint32, loc Point, out layoutOutput, parentWidth float64) {
	n := c.tree.node(id)
	bm := n.style.resolveBoxModel(parentWidth)
	n.unrounded = Layout{
		Order:         order,
		Location:      loc,
		Size:          out.size,
		ContentSize:   out.contentSize,
		ScrollbarSize: n.style.scrollbarGutter(),
		Border:        bm.border,
		Padding:       bm.padding,
		Margin:        bm.margin,
	}
	if n.style.Display == DisplayNone {
		n.unrounded = Layout{Order: order}
	}
}

// hideChildren zeroes the layouts of a display:none node's subtree.
func (c *computer) hideChildren(id NodeID) {
	stack := append([]NodeID(nil), c.tree.node(id).children...)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := c.tree.node(cur)
		n.unrounded = Layout{Order: n.unrounded.Order}
		n.cache.clear()
		n.dirty = false
		stack = append(stack, n.children...)
	}
	n := c.tree.node(id)
	for i, child := range n.children {
		c.tree.node(child).unrounded.Order = uint32(i)
	}
}

// hideChild lays out a display:none child of a visible container.
func (c *computer) hideChild(id NodeID, order uint32) {
	c.computeChild(id, layoutInput{mode: runPerformLayout, known: Size{}, parentSize: UndefinedSize(), available: MaxContentSize()})
	c.tree.node(id).unrounded = Layout{Order: order}
}

// copyUnrounded publishes exact layouts when rounding is off.
func (t *Tree) copyUnrounded(root NodeID) {
	stack := []NodeID{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.node(cur)
		n.final = n.unrounded
		stack = append(stack, n.children...)
	}
}

// contentContribution is the extent a placed child adds to its parent's
// scrollable content, measured from the parent's border box origin.
// Zero-area boxes contribute nothing.
func contentContribution(loc Point, out layoutOutput, margin Edges, style *Style) Size {
	w, h := out.size.Width, out.size.Height
	if w <= 0 || h <= 0 {
		return Size{}
	}
	if style.OverflowX == OverflowVisible {
		w = max(w, out.contentSize.Width)
	}
	if style.OverflowY == OverflowVisible {
		h = max(h, out.contentSize.Height)
	}
	return Size{Width: loc.X + w + margin.Right, Height: loc.Y + h + margin.Bottom}
}

// finishContentSize adds the trailing padding and border to the children's
// extent and makes sure the box's own padding and border are covered.
func finishContentSize(extent Size, bm boxModel) Size {
	pb := bm.paddingBorder()
	return Size{
		Width:  max(extent.Width+bm.padding.Right, pb.Horizontal()),
		Height: max(extent.Height+bm.padding.Bottom, pb.Vertical()),
	}
}

func formatAvailable(a AvailableSize) string {
	return formatSpace(a.Width) + "x" + formatSpace(a.Height)
}

func formatSpace(s AvailableSpace) string {
	switch s.Kind {
	case SpaceMinContent:
		return "min-content"
	case SpaceMaxContent:
		return "max-content"
	default:
		return debug.Float(s.Value)
	}
}
