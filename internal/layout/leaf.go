package layout

// computeLeaf sizes a node without children. Nodes with the measure flag
// ask the measure function for their content size; others have none.
func (c *computer) computeLeaf(id NodeID, in layoutInput) layoutOutput {
	n := c.tree.node(id)
	style := &n.style

	bm := style.resolveBoxModel(in.parentSize.Width)
	pb := bm.paddingBorder()
	pbSum := pb.Sum()
	gutter := style.scrollbarGutter()

	nodeSize, minSize, maxSize := in.nodeSizes(style, pb)

	if isDefined(nodeSize.Width) && isDefined(nodeSize.Height) && (!n.measure || in.mode == runComputeSize) {
		final := nodeSize.maybeMax(pbSum)
		return layoutOutput{size: final, contentSize: pbSum}
	}

	inset := pbSum.Add(gutter)
	if n.measure && c.measure != nil {
		avail := AvailableSize{
			Width:  leafAvailable(in.available.Width, bm.margin.Horizontal(), nodeSize.Width, minSize.Width, maxSize.Width, inset.Width),
			Height: leafAvailable(in.available.Height, bm.margin.Vertical(), nodeSize.Height, minSize.Height, maxSize.Height, inset.Height),
		}
		known := nodeSize.maybeSub(inset)
		if isDefined(known.Width) {
			known.Width = max(known.Width, 0)
		}
		if isDefined(known.Height) {
			known.Height = max(known.Height, 0)
		}
		measured := c.measure(id, known, avail)
		outer := nodeSize.Or(measured.Add(inset)).applyAspectRatio(style.AspectRatio)
		final := outer.maybeClamp(minSize, maxSize).maybeMax(pbSum)
		return layoutOutput{size: final, contentSize: measured.Add(pbSum)}
	}

	final := nodeSize.Or(inset).applyAspectRatio(style.AspectRatio)
	final = final.maybeClamp(minSize, maxSize).maybeMax(pbSum)
	return layoutOutput{size: final, contentSize: pbSum}
}

// leafAvailable turns the space offered to a leaf's margin box into the
// space offered to its content.
func leafAvailable(space AvailableSpace, margin, known, minV, maxV, inset float64) AvailableSpace {
	if isDefined(known) {
		return Definite(max(known-inset, 0))
	}
	if !space.IsDefinite() {
		return space
	}
	v := maybeClamp(space.Value-margin, minV, maxV)
	return Definite(max(v-inset, 0))
}
